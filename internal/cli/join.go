package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Raikerian/go-stereo-codec/internal/codec"
)

func newJoinCommand(root *rootOptions) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:     "join <left> <right>",
		Short:   "Interleave two mono files into one stereo file",
		Example: `  stereo-codec join song.left.wav song.right.wav --out song.wav`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runJob(cmd.Context(), root, func(ctx context.Context, svc *codec.Service) error {
				res, err := svc.Join(ctx, args[0], args[1], out)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d frames (%d bytes) at %d Hz: %s\n", res.Frames, res.Bytes, res.SampleRate, out)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Stereo output file")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}
