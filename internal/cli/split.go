package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Raikerian/go-stereo-codec/internal/codec"
)

func newSplitCommand(root *rootOptions) *cobra.Command {
	var leftOut, rightOut string

	cmd := &cobra.Command{
		Use:   "split <input>",
		Short: "Write the left and right channels of a stereo file to separate files",
		Example: `  stereo-codec split song.wav
  stereo-codec split capture.pcm --left l.pcm --right r.pcm`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := args[0]
			if leftOut == "" {
				leftOut = channelPath(in, "left")
			}
			if rightOut == "" {
				rightOut = channelPath(in, "right")
			}

			return runJob(cmd.Context(), root, func(ctx context.Context, svc *codec.Service) error {
				res, err := svc.Split(ctx, in, leftOut, rightOut)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d frames at %d Hz: %s, %s\n", res.Frames, res.SampleRate, leftOut, rightOut)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&leftOut, "left", "l", "", "Left channel output (default <input>.left<ext>)")
	cmd.Flags().StringVarP(&rightOut, "right", "r", "", "Right channel output (default <input>.right<ext>)")
	return cmd
}

// channelPath turns "dir/song.wav" into "dir/song.left.wav".
func channelPath(in, channel string) string {
	ext := filepath.Ext(in)
	return strings.TrimSuffix(in, ext) + "." + channel + ext
}
