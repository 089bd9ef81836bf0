// SPDX-License-Identifier: AGPL-3.0-only
package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/fluffyriot/profiledash/internal/profile"
	"github.com/fluffyriot/profiledash/internal/shell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func seeded(t *testing.T) *shell.Shell {
	t.Helper()
	user, err := profile.Load("", zap.NewNop())
	require.NoError(t, err)
	return shell.New(user, zap.NewNop())
}

func TestHandlePrint(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, HandlePrint(&buf, seeded(t), false))

	out := buf.String()
	assert.Contains(t, out, "Followers: 200")
	assert.Contains(t, out, "[ Follow ]")
	assert.Contains(t, out, "Recent Activity")
}

func TestHandlePrintWithFollow(t *testing.T) {
	s := seeded(t)
	var buf bytes.Buffer
	require.NoError(t, HandlePrint(&buf, s, true))

	assert.Contains(t, buf.String(), "Followers: 201")
	assert.Contains(t, buf.String(), "Following ✅")
}

func TestHandlePrintUnavailable(t *testing.T) {
	loadErr := &profile.DataLoadError{Source: "x", Err: errors.New("gone")}
	err := HandlePrint(&bytes.Buffer{}, shell.NewUnavailable(loadErr, zap.NewNop()), false)
	assert.ErrorIs(t, err, loadErr)
}

func TestTerminalWidthNonTerminal(t *testing.T) {
	assert.Equal(t, defaultWidth, TerminalWidth(&bytes.Buffer{}))
}
