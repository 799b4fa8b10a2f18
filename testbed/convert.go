package testbed

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spaghettifunk/quatkit/engine/math"
	"github.com/spf13/cobra"
)

const (
	fromQuat      = "quat"
	fromMatrix    = "matrix"
	fromAngleAxis = "angle-axis"
)

type ConvertOptions struct {
	*GlobalOptions

	From string
	Args []string
	Out  io.Writer
}

func NewCommandConvert(global *GlobalOptions) *cobra.Command {
	options := &ConvertOptions{GlobalOptions: global}

	cmd := &cobra.Command{
		Use:   "convert VALUE [AXIS]",
		Short: "Convert between quaternion, matrix and angle-axis forms",
		Example: `  quatkit convert "0.7071,0,0,0.7071"
  quatkit convert --from matrix "0,-1,0,1,0,0,0,0,1"
  quatkit convert --from angle-axis 90 "0,0,1"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			options.Args = args
			options.Out = cmd.OutOrStdout()
			if err := options.Validate(); err != nil {
				return err
			}
			return options.Run()
		},
	}
	cmd.Flags().StringVar(&options.From, "from", fromQuat, "input form: quat, matrix or angle-axis (degrees)")
	return cmd
}

func (o *ConvertOptions) Validate() error {
	want := 1
	switch o.From {
	case fromQuat, fromMatrix:
	case fromAngleAxis:
		want = 2
	default:
		return fmt.Errorf("unknown input form %q, expected one of %s", o.From, strings.Join([]string{fromQuat, fromMatrix, fromAngleAxis}, ", "))
	}
	if len(o.Args) != want {
		return fmt.Errorf("%s takes %d argument(s), got %d", o.From, want, len(o.Args))
	}
	return nil
}

func (o *ConvertOptions) Run() error {
	var q math.Quaternion
	switch o.From {
	case fromQuat:
		u, err := unitQuat(o.Args[0], o.Config.ComparisonTolerance())
		if err != nil {
			return err
		}
		q = u
	case fromMatrix:
		mt, err := math.NewMat3FromString(o.Args[0])
		if err != nil {
			return fmt.Errorf("matrix %q: %w", o.Args[0], err)
		}
		q = mt.ToQuat()
	case fromAngleAxis:
		deg, err := parseFloat(o.Args[0], "angle")
		if err != nil {
			return err
		}
		axis, err := math.NewVec3FromString(o.Args[1])
		if err != nil {
			return fmt.Errorf("axis %q: %w", o.Args[1], err)
		}
		if axis.LengthSquared() == 0 {
			return errors.New("axis must not be zero")
		}
		q = math.NewQuatFromAngleAxis(math.DegToRad(deg), axis)
	}

	angle, axis, err := q.ToAngleAxis()
	if err != nil {
		return err
	}
	fmt.Fprintf(o.Out, "quaternion: %s\n", q)
	fmt.Fprintf(o.Out, "matrix:     %s\n", q.ToMat3())
	fmt.Fprintf(o.Out, "angle:      %g\n", math.RadToDeg(angle))
	fmt.Fprintf(o.Out, "axis:       %s\n", axis)
	return nil
}
