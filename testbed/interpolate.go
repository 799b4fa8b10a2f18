package testbed

import (
	"fmt"

	"github.com/spaghettifunk/quatkit/engine/math"
	"github.com/spf13/cobra"
)

func NewCommandSlerp(global *GlobalOptions) *cobra.Command {
	long := false

	cmd := &cobra.Command{
		Use:     "slerp A B T",
		Short:   "Spherical linear interpolation between two rotations",
		Example: `  quatkit slerp "1,0,0,0" "0,0,0,1" 0.5`,
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			tol := global.Config.ComparisonTolerance()
			a, err := unitQuat(args[0], tol)
			if err != nil {
				return err
			}
			b, err := unitQuat(args[1], tol)
			if err != nil {
				return err
			}
			t, err := parseFloat(args[2], "parameter")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), describe(math.Slerp(t, a, b, math.WithShortestPath(!long))))
			return nil
		},
	}
	cmd.Flags().BoolVar(&long, "long", false, "interpolate along the long arc instead of the shortest one")
	return cmd
}

func NewCommandSquad(global *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "squad A B C D T",
		Short: "Spherical cubic interpolation",
		Long: `Spherical cubic interpolation from A to D, with B and C as the inner
control quaternions.`,
		Args: cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			tol := global.Config.ComparisonTolerance()
			qs := make([]math.Quaternion, 4)
			for i := range qs {
				q, err := unitQuat(args[i], tol)
				if err != nil {
					return err
				}
				qs[i] = q
			}
			t, err := parseFloat(args[4], "parameter")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), describe(math.Squad(t, qs[0], qs[1], qs[2], qs[3])))
			return nil
		},
	}
}
