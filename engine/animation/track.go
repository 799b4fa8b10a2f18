package animation

import (
	"fmt"
	gomath "math"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/spaghettifunk/quatkit/engine/core"
	"github.com/spaghettifunk/quatkit/engine/math"
	"golang.org/x/exp/slices"
)

type Mode int

const (
	ModeSlerp Mode = iota
	ModeSquad
)

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "slerp":
		return ModeSlerp, nil
	case "squad":
		return ModeSquad, nil
	default:
		return ModeSlerp, fmt.Errorf("%q: %w", s, core.ErrUnknownMode)
	}
}

func (m Mode) String() string {
	switch m {
	case ModeSlerp:
		return "slerp"
	case ModeSquad:
		return "squad"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Mode) UnmarshalText(text []byte) error {
	r, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = r
	return nil
}

type Keyframe struct {
	Time     float64
	Rotation math.Quaternion
}

// Track is an ordered list of rotation keyframes. Build it with NewTrack;
// the keyframes must not be modified afterwards.
type Track struct {
	ID        uuid.UUID
	Name      string
	Mode      Mode
	Keyframes []Keyframe

	// inner squad control point of every keyframe
	controls []math.Quaternion
}

/**
 * @brief Creates a new track from the given keyframes.
 * The keyframes are copied and sorted by time, their rotations normalized and
 * flipped where needed so that neighbouring keys lie in the same hemisphere.
 * Squad control points are computed up front.
 *
 * @param name A human readable name.
 * @param mode How to interpolate between keys.
 * @param keys The keyframes, in any order. Times must be unique.
 * @return The track, or ErrEmptyTrack, ErrDuplicateKeyframe or
 * ErrDivisionByZero for a zero rotation.
 */
func NewTrack(name string, mode Mode, keys []Keyframe) (*Track, error) {
	if len(keys) == 0 {
		return nil, fmt.Errorf("track %q: %w", name, core.ErrEmptyTrack)
	}
	if mode != ModeSlerp && mode != ModeSquad {
		return nil, fmt.Errorf("track %q: %v: %w", name, mode, core.ErrUnknownMode)
	}

	sorted := slices.Clone(keys)
	slices.SortStableFunc(sorted, func(a, b Keyframe) int {
		switch {
		case a.Time < b.Time:
			return -1
		case a.Time > b.Time:
			return 1
		}
		return 0
	})

	for i := range sorted {
		if i > 0 && sorted[i].Time == sorted[i-1].Time {
			return nil, fmt.Errorf("track %q at t=%g: %w", name, sorted[i].Time, core.ErrDuplicateKeyframe)
		}
		q, err := sorted[i].Rotation.Normalize()
		if err != nil {
			return nil, fmt.Errorf("track %q at t=%g: %w", name, sorted[i].Time, err)
		}
		if i > 0 && q.Dot(sorted[i-1].Rotation) < 0 {
			q = q.Neg()
		}
		sorted[i].Rotation = q
	}

	t := &Track{
		ID:        uuid.New(),
		Name:      name,
		Mode:      mode,
		Keyframes: sorted,
	}
	if mode == ModeSquad {
		if err := t.computeControls(); err != nil {
			return nil, fmt.Errorf("track %q: %w", name, err)
		}
	}
	return t, nil
}

// computeControls keeps the end keys as their own control points, so the
// outer segments start and stop like slerp.
func (t *Track) computeControls() error {
	n := len(t.Keyframes)
	t.controls = make([]math.Quaternion, n)
	for i, k := range t.Keyframes {
		if i == 0 || i == n-1 {
			t.controls[i] = k.Rotation
			continue
		}
		s, err := math.SquadControlPoint(t.Keyframes[i-1].Rotation, k.Rotation, t.Keyframes[i+1].Rotation)
		if err != nil {
			return err
		}
		t.controls[i] = s
	}
	return nil
}

func (t *Track) Start() float64 {
	return t.Keyframes[0].Time
}

func (t *Track) End() float64 {
	return t.Keyframes[len(t.Keyframes)-1].Time
}

func (t *Track) Duration() float64 {
	return t.End() - t.Start()
}

// Evaluate returns the rotation at time tm. Times outside the keyframe range
// are clamped to the first or last key; NaN yields the first key.
func (t *Track) Evaluate(tm float64) math.Quaternion {
	keys := t.Keyframes
	if tm <= keys[0].Time || gomath.IsNaN(tm) {
		return keys[0].Rotation
	}
	last := len(keys) - 1
	if tm >= keys[last].Time {
		return keys[last].Rotation
	}

	// first key strictly after tm, always in 1..last here
	i := sort.Search(len(keys), func(i int) bool { return keys[i].Time > tm })
	a, b := keys[i-1], keys[i]
	u := (tm - a.Time) / (b.Time - a.Time)

	if t.Mode == ModeSquad {
		return math.Squad(u, a.Rotation, t.controls[i-1], t.controls[i], b.Rotation)
	}
	return math.Slerp(u, a.Rotation, b.Rotation)
}

// Sample evaluates the track at steps evenly spaced times covering the whole
// keyframe range. A single step samples the first key.
func (t *Track) Sample(steps int) []Keyframe {
	if steps <= 0 {
		return nil
	}
	out := make([]Keyframe, steps)
	for i := range out {
		tm := t.Start()
		if steps > 1 {
			tm += t.Duration() * float64(i) / float64(steps-1)
		}
		out[i] = Keyframe{Time: tm, Rotation: t.Evaluate(tm)}
	}
	return out
}
