package console

import (
	"fmt"
	"io"
	"sync"

	"github.com/mmgen/minutes-console/internal/core/domain"
)

// View renders session state as plain lines on the terminal. Methods may be
// called from timer goroutines, so writes are serialized.
type View struct {
	mu  sync.Mutex
	out io.Writer
}

func NewView(out io.Writer) *View {
	return &View{out: out}
}

func (v *View) printf(format string, args ...any) {
	v.mu.Lock()
	defer v.mu.Unlock()
	fmt.Fprintf(v.out, format+"\n", args...)
}

func (v *View) ShowSelection(file *domain.TranscriptFile) {
	v.printf("Selected %s (%s). Run 'generate' to create minutes.", file.Name, domain.HumanSize(file.Size))
}

func (v *View) ShowSelectionError(message string) {
	v.printf("! %s", message)
}

func (v *View) ShowCleared() {
	v.printf("Selection cleared.")
}

func (v *View) ShowStep(step domain.ProgressStep) {
	v.printf("  [%d/5] %s...", step.Index+1, step.Name)
}

func (v *View) ShowMinutes(minutes *domain.Minutes) {
	v.mu.Lock()
	defer v.mu.Unlock()
	fmt.Fprintln(v.out)
	fmt.Fprintln(v.out, "=== Meeting Minutes ===")
	fmt.Fprintln(v.out, minutes.Text)
	fmt.Fprintf(v.out, "--- chunks: %d | sections: %d | %gs ---\n",
		minutes.ChunksCreated, minutes.SectionsRetrieved, minutes.ProcessingSeconds)
	fmt.Fprintln(v.out, "You can now ask questions with 'ask <question>'.")
}

func (v *View) ShowGenerateError(message string) {
	v.printf("! %s", message)
}

func (v *View) SetAskBusy(busy bool) {
	if busy {
		v.printf("Thinking...")
	}
}

func (v *View) ShowAnswer(text string) {
	v.printf("\nA: %s", text)
}

func (v *View) ShowCopyConfirmed(confirmed bool) {
	if confirmed {
		v.printf("Copied!")
	}
}

func (v *View) ShowExported(path string) {
	v.printf("Saved to %s", path)
}

func (v *View) ShowNotice(message string) {
	v.printf("%s", message)
}

func (v *View) ShowServerStatus(status domain.ServerStatus) {
	switch status.State {
	case domain.ServerReady:
		v.printf("Server: ready (%s)", status.Message)
	case domain.ServerOffline:
		v.printf("Server: offline")
	default:
		v.printf("Server: loading (%s)", status.Message)
	}
}
