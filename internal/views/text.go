// SPDX-License-Identifier: AGPL-3.0-only
package views

import (
	"fmt"
	"io"
	"strings"
)

const minTextWidth = 20

// RenderText writes a plain-text version of the dashboard, wrapped to width
// columns for the separators.
func RenderText(w io.Writer, d DashboardView, width int) error {
	if width < minTextWidth {
		width = minTextWidth
	}
	rule := strings.Repeat("-", width)

	var b strings.Builder
	fmt.Fprintln(&b, "User Dashboard")
	fmt.Fprintln(&b, d.Welcome)
	fmt.Fprintln(&b, rule)

	p := d.Profile
	fmt.Fprintln(&b, p.Name)
	if p.Bio != "" {
		fmt.Fprintln(&b, p.Bio)
	}
	stats := make([]string, 0, len(p.Stats))
	for _, s := range p.Stats {
		stats = append(stats, fmt.Sprintf("%s: %s", s.Label, s.Value))
	}
	fmt.Fprintln(&b, strings.Join(stats, " | "))
	if p.Button.Disabled {
		fmt.Fprintf(&b, "[ %s ] (disabled)\n", p.Button.Label)
	} else {
		fmt.Fprintf(&b, "[ %s ]\n", p.Button.Label)
	}
	fmt.Fprintln(&b, rule)

	fmt.Fprintln(&b, d.Feed.Title)
	for _, r := range d.Feed.Rows {
		fmt.Fprintf(&b, "%s %s (%s)\n", r.Icon, r.Text, r.Timestamp)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
