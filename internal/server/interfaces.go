package server

// Server defines the common lifecycle contract for transport servers managed
// by this package.
//
// Implementations are expected to block in [RunServer] until shutdown is
// requested and to release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until a stop signal
	// arrives or a transport fails. The failure, if any, is returned.
	RunServer() error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
