// Package server wires and runs the application's HTTP server.
//
// It provides startup, signal handling, and graceful shutdown of the food
// API transport.
package server
