package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mmgen/minutes-console/internal/core/ports"
)

const helpText = `Commands:
  select <path>   Choose a transcript (.txt or .md, up to 5 MB)
  clear           Drop the current selection
  generate        Upload the transcript and generate minutes
  ask <question>  Ask a question about the generated minutes
  copy            Copy the minutes to the clipboard
  save            Save the minutes to meeting-minutes-<date>.txt
  status          Check backend readiness
  help            Show this help
  quit            Exit`

// Loop reads commands from in and drives the session until quit or EOF.
type Loop struct {
	session ports.SessionController
	in      io.Reader
	out     io.Writer
}

func NewLoop(session ports.SessionController, in io.Reader, out io.Writer) *Loop {
	return &Loop{session: session, in: in, out: out}
}

func (l *Loop) Run(ctx context.Context) error {
	fmt.Fprintln(l.out, "Meeting Minutes Generator. Type 'help' for commands.")
	scanner := bufio.NewScanner(l.in)
	scanner.Buffer(make([]byte, 64*1024), 64*1024)

	for {
		fmt.Fprint(l.out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		if err := ctx.Err(); err != nil {
			return nil
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		command, rest, _ := strings.Cut(line, " ")
		rest = strings.TrimSpace(rest)

		switch strings.ToLower(command) {
		case "help":
			fmt.Fprintln(l.out, helpText)
		case "select":
			l.selectFile(rest)
		case "clear":
			l.session.ClearSelection()
		case "generate":
			_ = l.session.Generate(ctx)
		case "ask":
			_ = l.session.Ask(ctx, rest)
		case "copy":
			_ = l.session.CopyMinutes()
		case "save":
			_, _ = l.session.ExportMinutes()
		case "status", "health":
			l.session.CheckServerStatus(ctx)
		case "quit", "exit":
			return nil
		default:
			fmt.Fprintf(l.out, "Unknown command: %s (try 'help')\n", command)
		}
	}
}

// selectFile stats and reads the local file, then hands name, size and bytes
// to the session for validation.
func (l *Loop) selectFile(path string) {
	if path == "" {
		fmt.Fprintln(l.out, "Usage: select <path>")
		return
	}

	info, err := os.Stat(path)
	if err != nil {
		fmt.Fprintf(l.out, "Cannot read %s: %v\n", path, err)
		return
	}
	if info.IsDir() {
		fmt.Fprintf(l.out, "%s is a directory\n", path)
		return
	}

	content, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(l.out, "Cannot read %s: %v\n", path, err)
		return
	}

	_ = l.session.SelectFile(filepath.Base(path), info.Size(), content)
}
