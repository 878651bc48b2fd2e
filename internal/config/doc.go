// Package config loads and validates reactive.json / reactive.yaml
// project configuration for the preview server and CLI.
//
// Load looks for reactive.json first, then reactive.yaml; a project
// with neither file runs on defaults (localhost:3000, text logging,
// metrics on). Validation failures surface as coded errors from
// internal/errors.
package config
