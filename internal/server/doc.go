// Package server wires and runs the application's transport servers.
//
// It provides orchestration for the HTTP API and the gRPC health server,
// including startup, signal handling, and graceful shutdown of all enabled
// transports and of the background workers started next to them.
package server
