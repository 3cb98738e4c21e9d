// Package shotgun implements the shared weapon: an ordered magazine of live
// and blank charges plus the one-shot sawed-off modifier.
package shotgun

import (
	"fmt"
	"strings"
)

// Charge is a single shell in the magazine.
type Charge uint8

const (
	// Blank is harmless when fired.
	Blank Charge = iota
	// Live removes life from the target when fired.
	Live
)

// String returns "live" or "blank".
func (c Charge) String() string {
	switch c {
	case Live:
		return "live"
	case Blank:
		return "blank"
	default:
		return "unknown"
	}
}

// ParseCharge converts "live" or "blank" (case-insensitive) into a Charge.
//
// Postcondition: returns an error for any other input.
func ParseCharge(s string) (Charge, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "live":
		return Live, nil
	case "blank":
		return Blank, nil
	default:
		return Blank, fmt.Errorf("shotgun: unknown charge %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c Charge) MarshalText() ([]byte, error) {
	if c != Live && c != Blank {
		return nil, fmt.Errorf("shotgun: cannot marshal charge %d", uint8(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Charge) UnmarshalText(text []byte) error {
	parsed, err := ParseCharge(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Build returns live Live charges followed by blank Blank charges.
//
// Precondition: live >= 0 and blank >= 0 (panics otherwise).
func Build(live, blank int) []Charge {
	if live < 0 || blank < 0 {
		panic(fmt.Sprintf("shotgun: Build: counts must be >= 0, got live=%d blank=%d", live, blank))
	}
	out := make([]Charge, 0, live+blank)
	for i := 0; i < live; i++ {
		out = append(out, Live)
	}
	for i := 0; i < blank; i++ {
		out = append(out, Blank)
	}
	return out
}
