package glshader

import (
	"fmt"
	"strings"
)

// Stage identifies the pipeline stage a shader object is created for.
type Stage uint8

const (
	// StageVertex runs once per input vertex and produces a clip-space position.
	StageVertex Stage = iota + 1

	// StageFragment runs once per rasterized pixel and produces a color.
	StageFragment
)

// String returns the lowercase stage name.
func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return fmt.Sprintf("Stage(%d)", uint8(s))
	}
}

// Valid reports whether s is one of the defined stages.
func (s Stage) Valid() bool {
	return s == StageVertex || s == StageFragment
}

// ParseStage parses a stage name. Common shorthands and file extensions
// without the dot are accepted ("vert", "vs", "frag", "fs", "pixel").
func ParseStage(name string) (Stage, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "vertex", "vert", "vs", "vsh":
		return StageVertex, nil
	case "fragment", "frag", "fs", "fsh", "pixel":
		return StageFragment, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidStage, name)
}

// MarshalText implements encoding.TextMarshaler.
func (s Stage) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStage, uint8(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Stage) UnmarshalText(text []byte) error {
	v, err := ParseStage(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
