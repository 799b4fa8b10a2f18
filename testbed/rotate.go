package testbed

import (
	"fmt"

	"github.com/spaghettifunk/quatkit/engine/math"
	"github.com/spf13/cobra"
)

func NewCommandRotate(global *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "rotate QUATERNION VECTOR",
		Short:   "Rotate a vector by a quaternion",
		Example: `  quatkit rotate "0.7071,0,0,0.7071" "1,0,0"`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := unitQuat(args[0], global.Config.ComparisonTolerance())
			if err != nil {
				return err
			}
			v, err := math.NewVec3FromString(args[1])
			if err != nil {
				return fmt.Errorf("vector %q: %w", args[1], err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), q.RotateVec(v))
			return nil
		},
	}
}
