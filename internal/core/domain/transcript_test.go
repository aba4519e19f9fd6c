package domain

import (
	"strings"
	"testing"
	"time"
)

func TestNewTranscriptFileValidation(t *testing.T) {
	cases := []struct {
		name     string
		filename string
		size     int64
		wantErr  string
	}{
		{"txt accepted", "meeting.txt", 100, ""},
		{"md accepted", "notes.md", 100, ""},
		{"case insensitive", "NOTES.MD", 100, ""},
		{"mixed case", "Meeting.Txt", 100, ""},
		{"exact limit accepted", "big.txt", MaxTranscriptBytes, ""},
		{"wrong extension", "audio.mp3", 100, "Only .txt and .md"},
		{"extension not suffix", "meeting.txt.exe", 100, "Only .txt and .md"},
		{"no extension", "transcript", 100, "Only .txt and .md"},
		{"over limit", "big.txt", MaxTranscriptBytes + 1, "File too large"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			file, err := NewTranscriptFile(tc.filename, tc.size, []byte("content"))
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("NewTranscriptFile(%q) error = %v", tc.filename, err)
				}
				if file.Name != tc.filename {
					t.Fatalf("unexpected name %q", file.Name)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected rejection for %q", tc.filename)
			}
			if !IsKind(err, ErrInvalidInput) {
				t.Fatalf("expected invalid input kind, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("message %q does not mention %q", err.Error(), tc.wantErr)
			}
		})
	}
}

func TestHumanSize(t *testing.T) {
	cases := []struct {
		bytes int64
		want  string
	}{
		{512, "512 B"},
		{2048, "2.0 KB"},
		{5 * 1024 * 1024, "5.0 MB"},
		{6291456, "6.0 MB"},
	}
	for _, tc := range cases {
		if got := HumanSize(tc.bytes); got != tc.want {
			t.Fatalf("HumanSize(%d) = %q, want %q", tc.bytes, got, tc.want)
		}
	}
}

func TestDefaultProgressStepsOffsets(t *testing.T) {
	steps := DefaultProgressSteps(3 * time.Second)
	if len(steps) != 5 {
		t.Fatalf("expected five steps, got %d", len(steps))
	}
	for i, step := range steps {
		if step.Index != i {
			t.Fatalf("step %d has index %d", i, step.Index)
		}
		if want := time.Duration(i) * 3 * time.Second; step.Offset != want {
			t.Fatalf("step %d offset = %s", i, step.Offset)
		}
		if step.Name == "" {
			t.Fatalf("step %d has no name", i)
		}
	}
}
