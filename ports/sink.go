package ports

import "context"

// ExplorerSink persists encoded explorer files.
type ExplorerSink interface {
	Put(ctx context.Context, name string, data []byte) error
	// Location is where Put stores name, for reporting.
	Location(name string) string
}
