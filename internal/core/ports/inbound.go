package ports

import "context"

// SessionController is the inbound contract for the interactive session.
type SessionController interface {
	SelectFile(name string, size int64, content []byte) error
	ClearSelection()
	Generate(ctx context.Context) error
	Ask(ctx context.Context, question string) error
	CopyMinutes() error
	ExportMinutes() (string, error)
	CheckServerStatus(ctx context.Context)
	PollServerStatus(ctx context.Context)
	Close()
}
