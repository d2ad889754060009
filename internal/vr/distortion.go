package vr

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownDistortion = errors.New("unknown distortion correction")

// DistortionCorrection selects which lens distortion pass the viewer runs.
type DistortionCorrection int

const (
	DistortionNone DistortionCorrection = iota
	DistortionEngine
	DistortionVendor
)

// Next returns the successor in the cycle Engine -> Vendor -> None -> Engine.
// Out of range values restart the cycle at Engine.
func (d DistortionCorrection) Next() DistortionCorrection {
	switch d {
	case DistortionEngine:
		return DistortionVendor
	case DistortionVendor:
		return DistortionNone
	default:
		return DistortionEngine
	}
}

func (d DistortionCorrection) String() string {
	switch d {
	case DistortionNone:
		return "none"
	case DistortionEngine:
		return "engine"
	case DistortionVendor:
		return "vendor"
	default:
		return fmt.Sprintf("DistortionCorrection(%d)", int(d))
	}
}

func ParseDistortionCorrection(s string) (DistortionCorrection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none":
		return DistortionNone, nil
	case "engine":
		return DistortionEngine, nil
	case "vendor":
		return DistortionVendor, nil
	}
	return DistortionNone, fmt.Errorf("%w: %q", ErrUnknownDistortion, s)
}

func (d DistortionCorrection) MarshalText() ([]byte, error) {
	if d < DistortionNone || d > DistortionVendor {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDistortion, int(d))
	}
	return []byte(d.String()), nil
}

func (d *DistortionCorrection) UnmarshalText(text []byte) error {
	parsed, err := ParseDistortionCorrection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
