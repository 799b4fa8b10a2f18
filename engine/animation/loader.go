package animation

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"
	"github.com/spaghettifunk/quatkit/engine/core"
	"github.com/spaghettifunk/quatkit/engine/math"
	"github.com/spaghettifunk/quatkit/engine/systems"
)

// trackFile is the on-disk layout of a track:
//
//	name = "spin"
//	mode = "squad"
//
//	[[keyframe]]
//	time = 0.0
//	rotation = "1,0,0,0"
//
//	[[keyframe]]
//	time = 1.5
//	angle = 90.0
//	axis = "0,0,1"
type trackFile struct {
	ID        string         `toml:"id,omitempty"`
	Name      string         `toml:"name"`
	Mode      Mode           `toml:"mode"`
	Keyframes []keyframeFile `toml:"keyframe"`
}

type keyframeFile struct {
	Time     *float64 `toml:"time"`
	Rotation string   `toml:"rotation,omitempty"`
	// degrees
	Angle *float64 `toml:"angle,omitempty"`
	Axis  string   `toml:"axis,omitempty"`
}

func (k keyframeFile) keyframe(index int) (Keyframe, error) {
	if k.Time == nil {
		return Keyframe{}, fmt.Errorf("keyframe %d has no time: %w", index, core.ErrInvalidKeyframe)
	}
	hasRotation := k.Rotation != ""
	hasAngleAxis := k.Angle != nil || k.Axis != ""

	switch {
	case hasRotation && !hasAngleAxis:
		q, err := math.NewQuatFromString(k.Rotation)
		if err != nil {
			return Keyframe{}, fmt.Errorf("keyframe %d: %w", index, err)
		}
		return Keyframe{Time: *k.Time, Rotation: q}, nil
	case hasAngleAxis && !hasRotation:
		if k.Angle == nil || k.Axis == "" {
			return Keyframe{}, fmt.Errorf("keyframe %d needs both angle and axis: %w", index, core.ErrInvalidKeyframe)
		}
		axis, err := math.NewVec3FromString(k.Axis)
		if err != nil {
			return Keyframe{}, fmt.Errorf("keyframe %d: %w", index, err)
		}
		if axis.LengthSquared() == 0 {
			return Keyframe{}, fmt.Errorf("keyframe %d has a zero axis: %w", index, core.ErrInvalidKeyframe)
		}
		q := math.NewQuatFromAngleAxis(math.DegToRad(*k.Angle), axis)
		return Keyframe{Time: *k.Time, Rotation: q}, nil
	default:
		return Keyframe{}, fmt.Errorf("keyframe %d needs either rotation or angle and axis: %w", index, core.ErrInvalidKeyframe)
	}
}

// ParseTrack decodes a TOML track description.
func ParseTrack(data []byte) (*Track, error) {
	var f trackFile
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decoding track: %v: %w", err, core.ErrParse)
	}

	keys := make([]Keyframe, 0, len(f.Keyframes))
	for i, kf := range f.Keyframes {
		k, err := kf.keyframe(i)
		if err != nil {
			return nil, fmt.Errorf("track %q: %w", f.Name, err)
		}
		keys = append(keys, k)
	}

	t, err := NewTrack(f.Name, f.Mode, keys)
	if err != nil {
		return nil, err
	}
	if f.ID != "" {
		id, err := uuid.Parse(f.ID)
		if err != nil {
			return nil, fmt.Errorf("track %q id %q: %w", f.Name, f.ID, core.ErrParse)
		}
		t.ID = id
	}
	return t, nil
}

func LoadTrack(path string) (*Track, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	t, err := ParseTrack(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	core.LogDebug("loaded track %q (%s) from %s with %d keyframes", t.Name, t.ID, path, len(t.Keyframes))
	return t, nil
}

// LoadTracks loads several track files on a pool of workers. The tracks are
// returned in the order of paths; every failure is reported in the joined
// error.
func LoadTracks(paths []string, workers int) ([]*Track, error) {
	js, err := systems.NewJobSystem(max(1, min(workers, len(paths))), len(paths))
	if err != nil {
		return nil, err
	}

	tracks := make([]*Track, len(paths))
	var mutex sync.Mutex
	var errs []error
	for i, path := range paths {
		js.Submit(systems.JobTask{
			OnStart: func() error {
				t, err := LoadTrack(path)
				if err != nil {
					return err
				}
				tracks[i] = t
				return nil
			},
			OnFailure: func(err error) {
				mutex.Lock()
				errs = append(errs, err)
				mutex.Unlock()
			},
		})
	}
	if err := js.Shutdown(); err != nil {
		return nil, err
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return tracks, nil
}

// MarshalTrack encodes t in the format read by ParseTrack.
func MarshalTrack(t *Track) ([]byte, error) {
	f := trackFile{
		ID:        t.ID.String(),
		Name:      t.Name,
		Mode:      t.Mode,
		Keyframes: make([]keyframeFile, len(t.Keyframes)),
	}
	for i, k := range t.Keyframes {
		tm := k.Time
		f.Keyframes[i] = keyframeFile{Time: &tm, Rotation: k.Rotation.String()}
	}
	return toml.Marshal(f)
}
