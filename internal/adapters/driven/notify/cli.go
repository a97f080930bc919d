package notify

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/OsuohaNnamdi/admin-BRB-sub000/internal/core/ports/driven"
)

// Ensure CLI implements the interface.
var _ driven.Notifier = (*CLI)(nil)

// CLI writes styled one-line notifications to a terminal.
// Colour is dropped automatically when out is not a TTY.
type CLI struct {
	mu     sync.Mutex
	out    io.Writer
	styles map[driven.NotifyLevel]levelStyle
}

// NewCLI creates a notifier writing to out with the given theme.
// A nil theme selects DefaultTheme.
func NewCLI(out io.Writer, theme *Theme) *CLI {
	return &CLI{
		out:    out,
		styles: newLevelStyles(lipgloss.NewRenderer(out), theme),
	}
}

// Notify writes "<marker> message".
func (c *CLI) Notify(level driven.NotifyLevel, message string) {
	ls, ok := c.styles[level]
	if !ok {
		ls = c.styles[driven.NotifyInfo]
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.out, "%s %s\n", ls.style.Render(ls.marker), message)
}
