// Package app provides the main application structure and lifecycle management.
package app

import (
	"context"
	"fmt"

	"go.uber.org/fx"
)

// Application represents one command invocation with its lifecycle.
type Application struct {
	app *fx.App
}

// New creates a new Application with the provided modules and options.
func New(modules ...fx.Option) *Application {
	return &Application{
		app: fx.New(modules...),
	}
}

// Err reports a dependency graph that failed to build.
func (a *Application) Err() error {
	return a.app.Err()
}

// Run starts the application, runs job and stops the application again.
// Stop hooks run even if job fails; the job's error takes precedence.
func (a *Application) Run(ctx context.Context, job func(ctx context.Context) error) error {
	startCtx, cancel := context.WithTimeout(ctx, a.app.StartTimeout())
	defer cancel()

	if err := a.app.Start(startCtx); err != nil {
		return fmt.Errorf("failed to start application: %w", err)
	}

	jobErr := job(ctx)

	// Stop gets a fresh context so that shutdown still happens after ctx
	// was canceled by a signal.
	stopCtx, cancelStop := context.WithTimeout(context.Background(), a.app.StopTimeout())
	defer cancelStop()

	if err := a.app.Stop(stopCtx); err != nil && jobErr == nil {
		return fmt.Errorf("failed to stop application: %w", err)
	}
	return jobErr
}
