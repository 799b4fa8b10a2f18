package testbed

import (
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/spaghettifunk/quatkit/engine/animation"
	"github.com/spaghettifunk/quatkit/engine/core"
	"github.com/spf13/cobra"
)

type PlayOptions struct {
	*GlobalOptions

	Paths []string
	Steps int
	Watch bool
	Out   io.Writer
}

func NewCommandPlay(global *GlobalOptions) *cobra.Command {
	options := &PlayOptions{GlobalOptions: global}

	cmd := &cobra.Command{
		Use:   "play TRACK...",
		Short: "Sample keyframed rotation tracks",
		Long: `Load TOML rotation tracks and print their orientation at evenly spaced
times. With --watch a single track is sampled again every time its file
changes, until interrupted.`,
		Example: `  quatkit play testbed/tracks/demo.toml --steps 20
  quatkit play spin.toml --watch`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			options.Paths = args
			options.Out = cmd.OutOrStdout()
			if err := options.Validate(); err != nil {
				return err
			}
			if !options.Watch {
				tracks, err := animation.LoadTracks(options.Paths, runtime.NumCPU())
				if err != nil {
					return err
				}
				for _, t := range tracks {
					options.print(t)
				}
				return nil
			}

			w, err := animation.NewWatcher(options.Paths[0])
			if err != nil {
				return err
			}
			options.print(w.Track())
			core.LogInfo("watching %s, press ctrl-c to stop", options.Paths[0])
			return w.Run(cmd.Context(), options.print)
		},
	}
	cmd.Flags().IntVar(&options.Steps, "steps", 10, "number of samples")
	cmd.Flags().BoolVar(&options.Watch, "watch", false, "resample whenever the track file changes")
	return cmd
}

func (o *PlayOptions) Validate() error {
	if o.Steps < 1 {
		return errors.New("--steps must be at least 1")
	}
	if o.Watch && len(o.Paths) != 1 {
		return errors.New("--watch takes exactly one track")
	}
	return nil
}

func (o *PlayOptions) print(t *animation.Track) {
	clock := core.NewClock()
	clock.Start()
	samples := t.Sample(o.Steps)
	clock.Update()

	fmt.Fprintf(o.Out, "# %s (%s, %s, %d keyframes)\n", t.Name, t.ID, t.Mode, len(t.Keyframes))
	for _, s := range samples {
		fmt.Fprintf(o.Out, "%-10g %s\n", s.Time, describe(s.Rotation))
	}
	core.LogDebug("sampled %d frames of %q in %s", len(samples), t.Name, clock.Elapsed())
}
