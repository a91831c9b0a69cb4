// Package mixer demonstrates mocking a function type with ten parameters and several results.
package mixer

import "errors"

// Exported variables.
var (
	// ErrClipped is returned when a mix exceeds the output range.
	ErrClipped = errors.New("clipped")
)

// Mixer combines ten channel levels into one output level.
type Mixer func(ch1, ch2, ch3, ch4, ch5, ch6, ch7, ch8, ch9, ch10 int) (int, error)

// Master mixes levels, which must hold exactly ten channels, and halves the result. A clipped
// mix is reported as the maximum level.
func Master(mix Mixer, levels [10]int) (int, error) {
	out, err := mix(levels[0], levels[1], levels[2], levels[3], levels[4],
		levels[5], levels[6], levels[7], levels[8], levels[9])
	if errors.Is(err, ErrClipped) {
		return maxLevel, nil
	}

	if err != nil {
		return 0, err
	}

	return out / 2, nil
}

// unexported constants.
const (
	maxLevel = 100
)
