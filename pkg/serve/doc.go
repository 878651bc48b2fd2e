// Package serve hosts reactive components behind an HTTP/WebSocket
// preview surface.
//
// Each mounted kind gets a page at /p/{name}: the server renders a
// fresh instance to HTML, and a thin browser client (served at
// /client.js) opens a WebSocket to /ws/{name}. From then on the
// component lives server-side; the client forwards DOM events as JSON
// frames and applies the mutation stream each re-render produces.
//
//	srv := serve.New(serve.WithName("gallery"))
//	srv.Mount("counter", "Counter", Counter)
//	srv.ListenAndServe(ctx, "localhost:3000")
//
// Prometheus metrics are exposed at /metrics (namespace "reactive");
// WithTracing adds OpenTelemetry spans for page renders and events,
// resolved from the global tracer provider.
package serve
