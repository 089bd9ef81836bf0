// SPDX-License-Identifier: AGPL-3.0-only
package main

import (
	"context"
	"errors"
	"flag"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fluffyriot/profiledash/internal/api"
	"github.com/fluffyriot/profiledash/internal/api/handlers"
	"github.com/fluffyriot/profiledash/internal/cli"
	"github.com/fluffyriot/profiledash/internal/config"
	"github.com/fluffyriot/profiledash/internal/logging"
	"github.com/fluffyriot/profiledash/internal/profile"
	"github.com/fluffyriot/profiledash/internal/shell"
	"go.uber.org/zap"
)

func main() {
	printFlag := flag.Bool("print", false, "Print a text snapshot of the dashboard and exit")
	followFlag := flag.Bool("follow", false, "With --print, follow the profile before printing")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		cli.Fail(err)
	}

	log, err := logging.New(cfg.LogLevel, cfg.Development)
	if err != nil {
		cli.Fail(err)
	}
	defer log.Sync()

	s := newShell(cfg, log)

	if *printFlag {
		if err := cli.HandlePrint(os.Stdout, s, *followFlag); err != nil {
			cli.Fail(err)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	h := handlers.NewHandler(s, cfg, log)
	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           api.NewRouter(h),
		ReadHeaderTimeout: 3 * time.Second,
		// Open event streams end with the process context.
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	go func() {
		log.Info("Server is starting", zap.String("addr", server.Addr), zap.String("version", config.AppVersion))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown failed", zap.Error(err))
	}
	log.Info("Server stopped")
}

// newShell loads the profile. A load failure is not fatal: the dashboard
// serves a placeholder instead.
func newShell(cfg *config.AppConfig, log *zap.Logger) *shell.Shell {
	user, err := profile.Load(cfg.ProfileData, log)
	if err != nil {
		log.Error("Profile unavailable", zap.Error(err))
		return shell.NewUnavailable(err, log)
	}
	return shell.New(user, log)
}
