package server

// Server is the lifecycle contract shared by the book-keeper and catalog
// HTTP servers. Both entrypoints drive it the same way: run until a
// shutdown signal arrives, then drain in-flight requests.
type Server interface {
	// RunServer starts accepting requests and blocks until the server stops.
	RunServer()

	// Shutdown stops the server gracefully, letting in-flight requests
	// finish before releasing resources.
	Shutdown()
}
