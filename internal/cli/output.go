package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// consoleSink prints info lines to out and error lines to errOut. Colors are
// only emitted when the writer is a terminal.
type consoleSink struct {
	out    io.Writer
	errOut io.Writer
	info   lipgloss.Style
	err    lipgloss.Style
}

func newConsoleSink(out, errOut io.Writer) *consoleSink {
	return &consoleSink{
		out:    out,
		errOut: errOut,
		info:   lipgloss.NewRenderer(out).NewStyle().Foreground(lipgloss.Color("2")),
		err:    lipgloss.NewRenderer(errOut).NewStyle().Foreground(lipgloss.Color("1")),
	}
}

func (s *consoleSink) Info(line string) {
	_, _ = fmt.Fprintln(s.out, s.info.Render(line))
}

func (s *consoleSink) Error(line string) {
	_, _ = fmt.Fprintln(s.errOut, s.err.Render(line))
}
