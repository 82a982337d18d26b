package server

// Server is the lifecycle of the food API transport.
type Server interface {
	// RunServer serves until SIGTERM, SIGINT or SIGQUIT and then shuts down
	// gracefully. It returns early with an error if the listener fails.
	RunServer() error

	// Shutdown stops accepting connections and waits for in-flight requests.
	Shutdown()
}
