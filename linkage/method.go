// SPDX-License-Identifier: MIT

package linkage

import (
	"fmt"
	"strings"
)

// Method selects a linkage rule.
type Method int

const (
	// Single linkage: minimum cross-pair similarity.
	Single Method = iota
	// Complete linkage: maximum cross-pair similarity.
	Complete
	// Average linkage: mean cross-pair similarity.
	Average
	// Ward variance criterion.
	Ward
	// David counts cross pairs below the cutoff.
	David
)

var methodNames = [...]string{
	Single:   "single",
	Complete: "complete",
	Average:  "average",
	Ward:     "ward",
	David:    "david",
}

// String returns the canonical lower-case name.
func (m Method) String() string {
	if m >= 0 && int(m) < len(methodNames) {
		return methodNames[m]
	}

	return fmt.Sprintf("Method(%d)", int(m))
}

// ParseMethod resolves a method name, case-insensitively.
func ParseMethod(name string) (Method, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for m, n := range methodNames {
		if n == key {
			return Method(m), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
}

// MarshalText implements encoding.TextMarshaler.
func (m Method) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Method) UnmarshalText(b []byte) error {
	v, err := ParseMethod(string(b))
	if err != nil {
		return err
	}
	*m = v

	return nil
}
