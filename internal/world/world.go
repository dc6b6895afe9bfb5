// Package world loads and persists a world manifest: the calendar and
// solar system schemas plus the world's current moment. It is the
// bridge between configuration on disk and the validated, immutable
// schema values the engines consume; no calendrical logic lives here.
package world

import (
	"errors"
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/papapumpkin/almanac/internal/calendar"
	"github.com/papapumpkin/almanac/internal/solar"
)

// ErrNoManifest indicates no world file was found at the given path.
var ErrNoManifest = errors.New("world manifest not found")

// ErrNotJumped indicates a Return with no open rift.
var ErrNotJumped = errors.New("already in the canonical time")

// Manifest is the raw TOML shape of a world file.
type Manifest struct {
	Name     string              `toml:"name"`
	Calendar calendar.Definition `toml:"calendar"`
	Solar    solar.Definition    `toml:"solar"`
	State    State               `toml:"state"`
}

// State is the mutable portion of the manifest: where in time the
// world currently is, and the canonical moment to come back to when a
// temporal rift is open.
type State struct {
	Seconds       int64 `toml:"seconds"`
	Jumped        bool  `toml:"jumped,omitempty"`
	AnchorSeconds int64 `toml:"anchor_seconds,omitempty"`
}

// World is a loaded manifest with validated schemas.
type World struct {
	Name     string
	Calendar *calendar.Schema
	Solar    *solar.Schema
	Moment   Moment

	jumped bool
	anchor Moment

	path     string
	manifest Manifest
}

// Load reads a world manifest, validates both schemas, and returns the
// ready-to-use World. Schema validation failures surface with every
// violation listed, so a configuration author fixes one run, not many.
func Load(path string) (*World, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNoManifest, path)
		}
		return nil, fmt.Errorf("reading world manifest: %w", err)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	cal, err := calendar.Validate(m.Calendar)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	sol, err := solar.Validate(m.Solar)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &World{
		Name:     m.Name,
		Calendar: cal,
		Solar:    sol,
		Moment:   Moment{Seconds: m.State.Seconds},
		jumped:   m.State.Jumped,
		anchor:   Moment{Seconds: m.State.AnchorSeconds},
		path:     path,
		manifest: m,
	}, nil
}

// Jump opens a temporary rift: the current moment is anchored as the
// canonical timeline (only on the first jump, so nested jumps cannot
// lose it) and the world is free to move. Return comes back.
func (w *World) Jump() {
	if w.jumped {
		return
	}
	w.jumped = true
	w.anchor = w.Moment
}

// Return closes the rift and snaps the world back to the anchored
// canonical moment. Returning with no rift open fails with ErrNotJumped.
func (w *World) Return() error {
	if !w.jumped {
		return ErrNotJumped
	}
	w.Moment = w.anchor
	w.jumped = false
	w.anchor = Moment{}
	return nil
}

// Jumped reports whether the world is adrift from its canonical
// timeline.
func (w *World) Jumped() bool { return w.jumped }

// Anchor returns the canonical moment while a rift is open. The second
// return is false on the canonical timeline.
func (w *World) Anchor() (Moment, bool) {
	return w.anchor, w.jumped
}

// Save writes the world's current moment and rift state back to the
// manifest it was loaded from. Schema sections are written back
// untouched.
func (w *World) Save() error {
	w.manifest.State = State{
		Seconds:       w.Moment.Seconds,
		Jumped:        w.jumped,
		AnchorSeconds: w.anchor.Seconds,
	}
	data, err := toml.Marshal(w.manifest)
	if err != nil {
		return fmt.Errorf("encoding world manifest: %w", err)
	}
	if err := os.WriteFile(w.path, data, 0o644); err != nil {
		return fmt.Errorf("writing world manifest: %w", err)
	}
	return nil
}
