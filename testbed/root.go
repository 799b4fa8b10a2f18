package testbed

import (
	"io"

	"github.com/spaghettifunk/quatkit/engine/config"
	"github.com/spaghettifunk/quatkit/engine/core"
	"github.com/spf13/cobra"
)

// GlobalOptions holds the persistent flags and the configuration resolved
// from them before any subcommand runs.
type GlobalOptions struct {
	ConfigPath string
	LogLevel   string

	Config *config.Config
}

func (o *GlobalOptions) Complete() error {
	cfg := config.Default()
	if o.ConfigPath != "" {
		c, err := config.Load(o.ConfigPath)
		if err != nil {
			return err
		}
		cfg = c
	}
	if o.LogLevel != "" {
		cfg.Log.Level = o.LogLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	if err := cfg.Apply(); err != nil {
		return err
	}
	o.Config = cfg
	return nil
}

func NewRootCommand(out io.Writer) *cobra.Command {
	options := &GlobalOptions{}

	cmd := &cobra.Command{
		Use:   "quatkit",
		Short: "Quaternion and rotation toolkit",
		Long: `quatkit converts between rotation representations, rotates vectors,
interpolates orientations and plays back keyframed rotation tracks.

Quaternions are written "w,x,y,z", vectors "x,y,z" and 3x3 matrices as nine
row-major values.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return options.Complete()
		},
	}
	cmd.SetOut(out)

	flags := cmd.PersistentFlags()
	flags.StringVar(&options.ConfigPath, "config", "", "path to a quatkit TOML configuration file")
	flags.StringVar(&options.LogLevel, "log-level", "", "log level (debug, info, warn, error), overrides the configuration")

	cmd.AddCommand(
		NewCommandConvert(options),
		NewCommandRotate(options),
		NewCommandSlerp(options),
		NewCommandSquad(options),
		NewCommandPlay(options),
	)
	core.LogDebug("registered %d commands", len(cmd.Commands()))
	return cmd
}
