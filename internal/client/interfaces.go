package client

// Client is a runnable client application. [App] is the cobra
// implementation used by cmd/client.
type Client interface {
	// Run executes the command named on the command line and blocks until
	// it finishes.
	Run() error
}

var _ Client = (*App)(nil)
