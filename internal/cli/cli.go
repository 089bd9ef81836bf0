// SPDX-License-Identifier: AGPL-3.0-only
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fluffyriot/profiledash/internal/shell"
	"github.com/fluffyriot/profiledash/internal/views"
	"golang.org/x/term"
)

const defaultWidth = 60

// HandlePrint writes a text snapshot of the dashboard. With follow set, one
// follow is applied first.
func HandlePrint(out io.Writer, s *shell.Shell, follow bool) error {
	if err := s.LoadError(); err != nil {
		return err
	}

	if follow {
		s.Follow()
	}

	return views.RenderText(out, views.NewDashboardView(s.Snapshot()), TerminalWidth(out))
}

// TerminalWidth is the column count of out when it is a terminal, capped at
// the default width.
func TerminalWidth(out io.Writer) int {
	f, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return defaultWidth
	}
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 || w > defaultWidth {
		return defaultWidth
	}
	return w
}

func Fail(err error) {
	fmt.Fprintf(os.Stderr, "profiledash: %v\n", err)
	os.Exit(1)
}
