package clipboard

import (
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
)

// Clipboard writes text to the system clipboard through the first available
// platform tool, falling back to an OSC 52 escape sequence on the terminal
// when no tool is installed (works over SSH where the tools do not).
type Clipboard struct {
	lookPath func(string) (string, error)
	runTool  func(path string, text string) error
	terminal io.Writer
}

func New() *Clipboard {
	return &Clipboard{
		lookPath: exec.LookPath,
		runTool:  runTool,
		terminal: os.Stdout,
	}
}

var tools = []string{"wl-copy", "xclip", "xsel", "pbcopy"}

func (c *Clipboard) Write(text string) error {
	for _, tool := range tools {
		path, err := c.lookPath(tool)
		if err != nil {
			continue
		}
		if err := c.runTool(path, text); err != nil {
			return fmt.Errorf("clipboard tool %s: %w", tool, err)
		}
		return nil
	}
	return c.writeOSC52(text)
}

func (c *Clipboard) writeOSC52(text string) error {
	encoded := base64.StdEncoding.EncodeToString([]byte(text))
	if _, err := fmt.Fprintf(c.terminal, "\x1b]52;c;%s\x07", encoded); err != nil {
		return fmt.Errorf("clipboard escape write: %w", err)
	}
	return nil
}

func runTool(path string, text string) error {
	cmd := exec.Command(path)
	if needsSelectionFlag(path) {
		cmd = exec.Command(path, "-selection", "clipboard")
	}
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return err
	}
	if err := cmd.Start(); err != nil {
		return err
	}
	if _, err := io.WriteString(stdin, text); err != nil {
		stdin.Close()
		_ = cmd.Wait()
		return err
	}
	if err := stdin.Close(); err != nil {
		_ = cmd.Wait()
		return err
	}
	return cmd.Wait()
}

func needsSelectionFlag(path string) bool {
	return filepath.Base(path) == "xclip"
}
