// Package cli defines the stereo-codec command tree.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Raikerian/go-stereo-codec/internal/app"
	"github.com/Raikerian/go-stereo-codec/internal/codec"
	"github.com/Raikerian/go-stereo-codec/internal/config"
	"github.com/Raikerian/go-stereo-codec/internal/infrastructure"
)

type rootOptions struct {
	configPath string
	envFile    string
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "stereo-codec",
		Short: "Split 16-bit stereo PCM into channels and join them back",
		Long: `stereo-codec deinterleaves 16-bit little-endian stereo PCM into one mono
file per channel, and interleaves two mono files into a stereo stream.

Files ending in .pcm or .raw are treated as headerless sample data;
everything else is read and written as WAV.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			err := config.LoadEnv(opts.envFile)
			if err == nil || (os.IsNotExist(err) && !cmd.Flags().Changed("env-file")) {
				return nil
			}
			return fmt.Errorf("failed to load env file %s: %w", opts.envFile, err)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "config.yaml", "Path to the YAML config file")
	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "Path to a .env file with STEREO_* overrides")

	cmd.AddCommand(newSplitCommand(opts), newJoinCommand(opts))
	return cmd
}

// Execute runs the command tree with ctx.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// runJob builds the application graph and runs job with the codec service.
func runJob(ctx context.Context, opts *rootOptions, job func(ctx context.Context, svc *codec.Service) error) error {
	var (
		svc    *codec.Service
		logger *zap.Logger
	)

	application := app.New(
		config.Module,
		infrastructure.LoggerModule,
		codec.Module,
		fx.Supply(opts.configPath),
		fx.WithLogger(infrastructure.NewFxLogger),
		fx.Populate(&svc, &logger),
	)

	return application.Run(ctx, func(ctx context.Context) error {
		logger.Debug("running job", zap.String("config", opts.configPath))
		return job(ctx, svc)
	})
}
