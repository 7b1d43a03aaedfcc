package chaos

import "fmt"

const (
	// DefaultR is the default control parameter. Values in roughly
	// [3.57, 4.0] put the map in its chaotic regime; outside that
	// range orbits converge or settle into short cycles and the
	// keystream loses diversity.
	DefaultR = 3.99

	// ChaoticOnset marks the approximate start of the chaotic regime.
	ChaoticOnset = 3.57
)

// Map is the logistic map x ← r·x·(1−x) over x in (0, 1).
type Map struct {
	x float64
	r float64
}

// NewMap creates a map seeded at x0. The seed must lie strictly
// inside (0, 1): the endpoints are fixed points that collapse the
// orbit to a constant zero.
func NewMap(x0, r float64) (*Map, error) {
	if x0 <= 0 || x0 >= 1 {
		return nil, fmt.Errorf("%w: got %g", ErrInvalidSeed, x0)
	}
	return &Map{x: x0, r: r}, nil
}

// Step advances the map one iteration and returns the new state.
func (m *Map) Step() float64 {
	m.x = m.r * m.x * (1 - m.x)
	return m.x
}

// State returns the current orbit value without advancing.
func (m *Map) State() float64 { return m.x }

func (m *Map) GetParams() map[string]float64 {
	return map[string]float64{"r": m.r, "x": m.x}
}

func (m *Map) SetParam(name string, value float64) {
	switch name {
	case "r":
		m.r = value
	case "x":
		m.x = value
	}
}

// NextKey advances the map and maps the new state into [0, 255] by
// truncation. The map is stepped before every key is read, so the
// raw seed is never emitted.
func (m *Map) NextKey() byte {
	x := m.Step()
	v := int(x * 255)
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return byte(v)
}

// GenerateKeys produces a deterministic keystream of count bytes from
// the logistic map seeded at seed with control parameter r. Identical
// (seed, r, count) always yields an identical sequence; decryption
// depends on reproducing the encryption stream bit for bit.
func GenerateKeys(seed, r float64, count int) ([]byte, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCount, count)
	}
	m, err := NewMap(seed, r)
	if err != nil {
		return nil, err
	}

	keys := make([]byte, count)
	for i := range keys {
		keys[i] = m.NextKey()
	}
	return keys, nil
}
