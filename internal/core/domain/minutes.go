package domain

import "time"

// Minutes is a successful generation result. It is delivered atomically by the
// backend; there is no partial or streaming form.
type Minutes struct {
	Text              string
	Filename          string
	ChunksCreated     int
	SectionsRetrieved int
	ProcessingSeconds float64
}

// Answer is one question/answer exchange over the current minutes.
type Answer struct {
	Question string
	Text     string
}

type ServerState string

const (
	ServerReady   ServerState = "ready"
	ServerLoading ServerState = "loading"
	ServerOffline ServerState = "offline"
)

// ServerStatus is the backend readiness indicator shown in the header.
type ServerStatus struct {
	State   ServerState
	Message string
}

// ProgressStep is one phase of the decorative generate indicator. Offsets are
// wall-clock constants; they do not track backend phase boundaries.
type ProgressStep struct {
	Index  int
	Name   string
	Offset time.Duration
}

// DefaultProgressSteps returns the five-phase sequence shown while a generate
// call is in flight, spaced by interval (0, 1x, 2x, 3x, 4x).
func DefaultProgressSteps(interval time.Duration) []ProgressStep {
	names := []string{
		"Uploading transcript",
		"Chunking text",
		"Embedding sections",
		"Retrieving context",
		"Generating minutes",
	}
	steps := make([]ProgressStep, 0, len(names))
	for i, name := range names {
		steps = append(steps, ProgressStep{
			Index:  i,
			Name:   name,
			Offset: time.Duration(i) * interval,
		})
	}
	return steps
}
