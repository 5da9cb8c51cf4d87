package main

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/iw2rmb/livemark/internal/config"
)

type envKey struct{}

// env keeps everything the commands share.
type env struct {
	Cfg *config.Config
	Log *zap.Logger

	start    time.Time
	closeLog func() error
}

func envFromContext(ctx context.Context) *env {
	if e, ok := ctx.Value(envKey{}).(*env); ok {
		return e
	}
	// this should never happen
	panic("env not found in context")
}

func contextWithEnv(ctx context.Context) context.Context {
	return context.WithValue(ctx, envKey{}, &env{
		Cfg:   config.Default(),
		Log:   zap.NewNop(),
		start: time.Now(),
	})
}

func (e *env) uptime() time.Duration {
	return time.Since(e.start)
}
