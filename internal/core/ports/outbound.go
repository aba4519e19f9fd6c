package ports

import (
	"context"

	"github.com/mmgen/minutes-console/internal/core/domain"
)

// MinutesAPI is the outbound contract for the minutes backend.
type MinutesAPI interface {
	Status(ctx context.Context) (domain.ServerStatus, error)
	GenerateMinutes(ctx context.Context, file *domain.TranscriptFile) (*domain.Minutes, error)
	Ask(ctx context.Context, question string) (*domain.Answer, error)
}

// View renders session state for the user.
type View interface {
	ShowSelection(file *domain.TranscriptFile)
	ShowSelectionError(message string)
	ShowCleared()
	ShowStep(step domain.ProgressStep)
	ShowMinutes(minutes *domain.Minutes)
	ShowGenerateError(message string)
	SetAskBusy(busy bool)
	ShowAnswer(text string)
	ShowCopyConfirmed(confirmed bool)
	ShowExported(path string)
	ShowNotice(message string)
	ShowServerStatus(status domain.ServerStatus)
}

// Clipboard places text on the system clipboard.
type Clipboard interface {
	Write(text string) error
}

// MinutesExporter saves minutes text to a local file and returns its path.
type MinutesExporter interface {
	Save(filename string, content []byte) (string, error)
}

// ProgressRunner drives the decorative step indicator for one generate attempt.
// Cancel on the returned handle stops every step that has not fired yet.
type ProgressRunner interface {
	Start(steps []domain.ProgressStep, onStep func(domain.ProgressStep)) ProgressHandle
}

// ProgressHandle cancels all pending step activations. Safe to call twice.
type ProgressHandle interface {
	Cancel()
}
