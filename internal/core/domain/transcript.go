package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// MaxTranscriptBytes mirrors the backend's upload limit.
const MaxTranscriptBytes = 5 * 1024 * 1024

var transcriptNamePattern = regexp.MustCompile(`(?i)\.(txt|md)$`)

// TranscriptFile is the single user-selected transcript held for the session.
type TranscriptFile struct {
	Name    string
	Size    int64
	Content []byte
}

// ValidationError carries a user-facing rejection message.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// NewTranscriptFile validates the candidate selection. Both checks must pass;
// extension is checked first to match the backend's rejection order.
func NewTranscriptFile(name string, size int64, content []byte) (*TranscriptFile, error) {
	if !transcriptNamePattern.MatchString(strings.TrimSpace(name)) {
		return nil, &ValidationError{Reason: "Invalid file type. Only .txt and .md files are supported."}
	}
	if size > MaxTranscriptBytes {
		return nil, &ValidationError{
			Reason: fmt.Sprintf("File too large (%s). Maximum size is 5 MB.", HumanSize(size)),
		}
	}
	return &TranscriptFile{Name: name, Size: size, Content: content}, nil
}

// HumanSize renders a byte count the way the upload card shows it.
func HumanSize(bytes int64) string {
	switch {
	case bytes < 1024:
		return fmt.Sprintf("%d B", bytes)
	case bytes < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(bytes)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(bytes)/(1024*1024))
	}
}
