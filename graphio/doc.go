// Package graphio loads and saves core.Graph snapshots as YAML, so
// hand-edited fixtures can be fed to the trace generators and the CLI.
//
// Document shape:
//
//	nodes:
//	  - id: A
//	    label: Start   # optional, defaults to id
//	    x: 120         # optional layout hints
//	    y: 80
//	edges:
//	  - from: A
//	    to: B
//
// Load validates the decoded snapshot via core.Validate, surfacing its
// sentinels (core.ErrDuplicateNodeID, core.ErrUnknownEndpoint) — hand
// edits are the one place malformed input is expected, so this is the
// strict entry point into the otherwise silent-tolerant core.
package graphio
