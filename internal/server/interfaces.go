package server

// Server runs every enabled transport until the process is asked to stop.
type Server interface {
	// RunServer blocks until a termination signal has been handled and all
	// transports and workers are stopped.
	RunServer()

	// Shutdown stops the transports, then the workers.
	Shutdown()
}
