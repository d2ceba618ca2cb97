// Package server wires and runs the application's HTTP transport.
//
// It provides orchestration of the server lifecycle: startup, OS signal
// handling, and graceful shutdown of in-flight requests and background
// workers.
package server
