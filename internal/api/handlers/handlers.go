// SPDX-License-Identifier: AGPL-3.0-only
package handlers

import (
	"github.com/fluffyriot/profiledash/internal/config"
	"github.com/fluffyriot/profiledash/internal/shell"
	"go.uber.org/zap"
)

type Handler struct {
	Shell  *shell.Shell
	Config *config.AppConfig
	Log    *zap.Logger
}

func NewHandler(s *shell.Shell, cfg *config.AppConfig, log *zap.Logger) *Handler {
	return &Handler{
		Shell:  s,
		Config: cfg,
		Log:    log,
	}
}
