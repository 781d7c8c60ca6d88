// Package main provides the entry point for the stereo-codec command.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Raikerian/go-stereo-codec/internal/cli"
	"github.com/Raikerian/go-stereo-codec/internal/codec"
)

// Exit codes by failure class.
const (
	exitFailure        = 1
	exitNotFound       = 2
	exitUnsupported    = 3
	exitLengthMismatch = 4
	exitCanceled       = 130
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := cli.Execute(ctx)
	stop()

	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(exitCode(err))
}

func exitCode(err error) int {
	switch codec.ErrorKind(err) {
	case codec.KindResourceNotFound:
		return exitNotFound
	case codec.KindUnsupported:
		return exitUnsupported
	case codec.KindLengthMismatch:
		return exitLengthMismatch
	case codec.KindCanceled:
		return exitCanceled
	}
	return exitFailure
}
