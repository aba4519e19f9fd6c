package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/mmgen/minutes-console/internal/core/domain"
	"github.com/mmgen/minutes-console/internal/core/ports"
)

// Config holds the session's timing knobs. Step offsets are cosmetic and never
// reflect backend phase completion.
type Config struct {
	StepInterval   time.Duration
	CopyConfirmFor time.Duration
	PollInterval   time.Duration
}

func DefaultConfig() Config {
	return Config{
		StepInterval:   3 * time.Second,
		CopyConfirmFor: 2 * time.Second,
		PollInterval:   5 * time.Second,
	}
}

func (c Config) normalize() Config {
	out := c
	def := DefaultConfig()
	if out.StepInterval <= 0 {
		out.StepInterval = def.StepInterval
	}
	if out.CopyConfirmFor <= 0 {
		out.CopyConfirmFor = def.CopyConfirmFor
	}
	if out.PollInterval <= 0 {
		out.PollInterval = def.PollInterval
	}
	return out
}

// Session owns the select -> generate -> ask lifecycle: the single selected
// transcript, the current minutes, and the timers of the in-flight attempt.
// One generate and one ask may be in flight at a time.
type Session struct {
	api       ports.MinutesAPI
	view      ports.View
	clipboard ports.Clipboard
	exporter  ports.MinutesExporter
	progress  ports.ProgressRunner
	logger    *slog.Logger
	cfg       Config

	now func() time.Time

	mu         sync.Mutex
	selected   *domain.TranscriptFile
	minutes    *domain.Minutes
	generating bool
	asking     bool
	steps      ports.ProgressHandle
	copyRevert *time.Timer
}

func NewSession(
	api ports.MinutesAPI,
	view ports.View,
	clipboard ports.Clipboard,
	exporter ports.MinutesExporter,
	progress ports.ProgressRunner,
	logger *slog.Logger,
	cfg Config,
) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		api:       api,
		view:      view,
		clipboard: clipboard,
		exporter:  exporter,
		progress:  progress,
		logger:    logger,
		cfg:       cfg.normalize(),
		now:       time.Now,
	}
}

// SelectFile validates the candidate and makes it the session's selection.
// A rejected candidate leaves any prior selection unchanged.
func (s *Session) SelectFile(name string, size int64, content []byte) error {
	file, err := domain.NewTranscriptFile(name, size, content)
	if err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			s.view.ShowSelectionError(vErr.Reason)
		}
		return err
	}

	s.mu.Lock()
	s.selected = file
	s.mu.Unlock()

	s.view.ShowSelection(file)
	return nil
}

// ClearSelection drops the selected file. Idempotent.
func (s *Session) ClearSelection() {
	s.mu.Lock()
	s.selected = nil
	s.mu.Unlock()

	s.view.ShowCleared()
}

// Generate uploads the selected transcript and renders minutes or an error.
// The decorative step sequence runs alongside the call and is cancelled
// unconditionally the moment the response is observed.
func (s *Session) Generate(ctx context.Context) error {
	s.mu.Lock()
	if s.generating {
		s.mu.Unlock()
		return domain.WrapError(domain.ErrBusy, "generate", errors.New("generation in progress"))
	}
	file := s.selected
	if file == nil {
		s.mu.Unlock()
		s.view.ShowGenerateError("Please select a transcript file first.")
		return domain.WrapError(domain.ErrInvalidInput, "generate", errors.New("no file selected"))
	}
	s.generating = true
	handle := s.progress.Start(domain.DefaultProgressSteps(s.cfg.StepInterval), s.view.ShowStep)
	s.steps = handle
	s.mu.Unlock()

	started := s.now()
	minutes, err := s.api.GenerateMinutes(ctx, file)

	handle.Cancel()
	s.mu.Lock()
	s.generating = false
	s.steps = nil
	if err == nil {
		s.minutes = minutes
	}
	s.mu.Unlock()

	if err != nil {
		message := generateFailureMessage(err)
		s.logger.Error("generate_minutes_failed",
			"filename", file.Name,
			"elapsed_ms", s.now().Sub(started).Milliseconds(),
			"error", err,
		)
		s.view.ShowGenerateError(message)
		return err
	}

	s.logger.Info("minutes_generated",
		"filename", file.Name,
		"chunks_created", minutes.ChunksCreated,
		"sections_retrieved", minutes.SectionsRetrieved,
		"processing_seconds", minutes.ProcessingSeconds,
	)
	s.view.ShowMinutes(minutes)
	return nil
}

// Ask submits one question against the generated minutes. Whitespace-only
// questions are ignored without a network call. Failures render inline as
// "Error: <message>" rather than as a separate error state.
func (s *Session) Ask(ctx context.Context, question string) error {
	q := strings.TrimSpace(question)
	if q == "" {
		return nil
	}

	s.mu.Lock()
	if s.minutes == nil {
		s.mu.Unlock()
		s.view.ShowNotice("Generate minutes before asking questions.")
		return domain.WrapError(domain.ErrNotReady, "ask", errors.New("no minutes generated"))
	}
	if s.asking {
		s.mu.Unlock()
		return domain.WrapError(domain.ErrBusy, "ask", errors.New("question in progress"))
	}
	s.asking = true
	s.mu.Unlock()

	s.view.SetAskBusy(true)
	answer, err := s.api.Ask(ctx, q)
	s.view.SetAskBusy(false)

	s.mu.Lock()
	s.asking = false
	s.mu.Unlock()

	if err != nil {
		s.logger.Warn("ask_failed", "error", err)
		s.view.ShowAnswer("Error: " + askFailureMessage(err))
		return err
	}

	s.view.ShowAnswer(answer.Text)
	return nil
}

// CopyMinutes places the current minutes on the clipboard and shows a
// confirmation that reverts after the configured delay.
func (s *Session) CopyMinutes() error {
	s.mu.Lock()
	minutes := s.minutes
	s.mu.Unlock()

	if minutes == nil {
		s.view.ShowNotice("No minutes to copy yet.")
		return domain.WrapError(domain.ErrNotReady, "copy", errors.New("no minutes generated"))
	}
	if err := s.clipboard.Write(minutes.Text); err != nil {
		s.view.ShowNotice("Copy failed: " + err.Error())
		return fmt.Errorf("copy minutes: %w", err)
	}

	s.view.ShowCopyConfirmed(true)
	s.mu.Lock()
	if s.copyRevert != nil {
		s.copyRevert.Stop()
	}
	s.copyRevert = time.AfterFunc(s.cfg.CopyConfirmFor, func() {
		s.view.ShowCopyConfirmed(false)
	})
	s.mu.Unlock()
	return nil
}

// ExportMinutes writes the minutes to meeting-minutes-<date>.txt locally,
// with no server round trip.
func (s *Session) ExportMinutes() (string, error) {
	s.mu.Lock()
	minutes := s.minutes
	s.mu.Unlock()

	if minutes == nil {
		s.view.ShowNotice("No minutes to save yet.")
		return "", domain.WrapError(domain.ErrNotReady, "export", errors.New("no minutes generated"))
	}

	filename := ExportFilename(s.now())
	path, err := s.exporter.Save(filename, []byte(minutes.Text))
	if err != nil {
		s.view.ShowNotice("Save failed: " + err.Error())
		return "", fmt.Errorf("export minutes: %w", err)
	}

	s.view.ShowExported(path)
	return path, nil
}

// CheckServerStatus performs a single status probe and renders the result.
func (s *Session) CheckServerStatus(ctx context.Context) {
	s.view.ShowServerStatus(s.probeStatus(ctx))
}

func (s *Session) probeStatus(ctx context.Context) domain.ServerStatus {
	status, err := s.api.Status(ctx)
	if err != nil {
		s.logger.Debug("status_probe_failed", "error", err)
		return domain.ServerStatus{State: domain.ServerOffline, Message: "Server offline"}
	}
	return status
}

// Close cancels any timers the session still owns.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.steps != nil {
		s.steps.Cancel()
		s.steps = nil
	}
	if s.copyRevert != nil {
		s.copyRevert.Stop()
		s.copyRevert = nil
	}
}

// ExportFilename is the download name for a given date: meeting-minutes-YYYY-MM-DD.txt.
func ExportFilename(now time.Time) string {
	return "meeting-minutes-" + now.Format("2006-01-02") + ".txt"
}

func generateFailureMessage(err error) string {
	var statusErr *domain.StatusError
	if errors.As(err, &statusErr) {
		if detail := strings.TrimSpace(statusErr.Detail); detail != "" {
			return detail
		}
		return fmt.Sprintf("HTTP %d: Failed to generate minutes", statusErr.StatusCode)
	}
	return transportMessage(err)
}

func askFailureMessage(err error) string {
	var statusErr *domain.StatusError
	if errors.As(err, &statusErr) {
		return "Failed to get answer"
	}
	return transportMessage(err)
}

// transportMessage strips the wrapping the client adds around a failed
// request so the user sees the transport error itself.
func transportMessage(err error) string {
	var netErr net.Error
	if errors.As(err, &netErr) {
		return netErr.Error()
	}
	return err.Error()
}
