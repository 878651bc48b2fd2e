package serve

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/angeljsb/reactive"
	"github.com/angeljsb/reactive/internal/errors"
	"github.com/angeljsb/reactive/pkg/rdom"
)

// frame is a server-to-client message.
type frame struct {
	Kind    string    `json:"kind"` // "init", "ops" or "error"
	HTML    string    `json:"html,omitempty"`
	Ops     []opFrame `json:"ops,omitempty"`
	Message string    `json:"message,omitempty"`
}

// opFrame is one tree mutation in wire form. Paths address nodes by
// child indices from the page root, matching what the client resolves.
type opFrame struct {
	Op    string `json:"op"`
	Path  []int  `json:"path"`
	Name  string `json:"name,omitempty"`
	Value string `json:"value,omitempty"`
	Index int    `json:"index"`
	HTML  string `json:"html,omitempty"`
}

// eventFrame is a client-to-server DOM event.
type eventFrame struct {
	Type  string `json:"type"`
	Path  []int  `json:"path"`
	Value string `json:"value,omitempty"`
}

// session is one live WebSocket connection owning one component
// instance.
type session struct {
	srv  *Server
	page *Page
	conn *websocket.Conn
	comp *reactive.Component
	ops  []rdom.Op
}

// handleWS upgrades the connection and runs the event loop until the
// client goes away.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	p := s.lookupPage(w, r)
	if p == nil {
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade failed", "page", p.Name, "error", err)
		return
	}

	sess := &session{srv: s, page: p, conn: conn, comp: p.Kind.New()}
	sess.comp.Observe(rdom.RecorderFunc(func(op rdom.Op) {
		sess.ops = append(sess.ops, op)
	}))

	s.metrics.sessionOpened()
	defer s.metrics.sessionClosed()
	defer conn.Close()

	s.logger.Info("session opened", "page", p.Name, "remote", r.RemoteAddr)
	sess.run(r)
	s.logger.Info("session closed", "page", p.Name, "remote", r.RemoteAddr)
}

func (sess *session) run(r *http.Request) {
	root := sess.comp.Get(nil)
	sess.ops = nil // first render is delivered as full HTML
	if err := sess.conn.WriteJSON(frame{Kind: "init", HTML: rdom.RenderHTML(root)}); err != nil {
		return
	}

	for {
		var ev eventFrame
		if err := sess.conn.ReadJSON(&ev); err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseNormalClosure) {
				sess.srv.logger.Error("read error", "page", sess.page.Name, "error", err)
			}
			return
		}
		if !sess.handleEvent(r, ev) {
			return
		}
	}
}

// handleEvent dispatches one client event into the component and
// streams back whatever mutations the re-render produced. Returns false
// when the connection is no longer usable.
func (sess *session) handleEvent(r *http.Request, ev eventFrame) bool {
	start := time.Now()
	_, finish := sess.srv.tracer.startEvent(r.Context(), sess.page.Name, ev.Type)

	target := rdom.Resolve(sess.comp.Tree(), ev.Path)
	if target == nil {
		err := errors.New("E081")
		sess.srv.logger.Warn("event target not found",
			"page", sess.page.Name, "type", ev.Type, "path", ev.Path)
		sess.srv.metrics.recordEvent(sess.page.Name, time.Since(start), err)
		finish(0, err)
		return sess.conn.WriteJSON(frame{Kind: "error", Message: err.Error()}) == nil
	}

	if ev.Type == "input" || ev.Type == "change" {
		target.SetValue(ev.Value)
	}

	sess.ops = nil
	target.Dispatch(&rdom.Event{Type: ev.Type, Target: target, Value: ev.Value})

	ops := sess.ops
	sess.srv.metrics.recordEvent(sess.page.Name, time.Since(start), nil)
	sess.srv.metrics.recordOps(ops)
	finish(len(ops), nil)

	if len(ops) == 0 {
		return true
	}
	return sess.conn.WriteJSON(frame{Kind: "ops", Ops: wireOps(ops)}) == nil
}

func wireOps(ops []rdom.Op) []opFrame {
	out := make([]opFrame, len(ops))
	for i, op := range ops {
		f := opFrame{
			Op:    op.Kind.String(),
			Path:  op.Path,
			Name:  op.Name,
			Value: op.Value,
			Index: op.Index,
		}
		if f.Path == nil {
			f.Path = []int{}
		}
		if op.Node != nil {
			f.HTML = rdom.RenderHTML(op.Node)
		}
		out[i] = f
	}
	return out
}
