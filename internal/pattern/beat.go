package pattern

import (
	"math"
	"time"

	"github.com/clambin/ledstrip/internal/pixel"
)

// beat16 returns a sawtooth over [0, 65535] that wraps bpm times per minute.
// 65536 / 60000ms is approximated by 280/256, keeping the maths in integers.
func beat16(bpm uint16, now time.Duration) uint16 {
	ms := uint64(now / time.Millisecond)
	return uint16((ms * uint64(bpm) * 280) >> 8)
}

func beat8(bpm uint16, now time.Duration) uint8 {
	return uint8(beat16(bpm, now) >> 8)
}

// beatsin16 returns a value oscillating between low and high (inclusive) bpm times per minute
func beatsin16(bpm uint16, low, high uint16, now time.Duration) uint16 {
	s := uint32(int32(sin16(beat16(bpm, now))) + 32768)
	span := uint32(high - low)
	return low + uint16((s*(span+1))>>16)
}

// beatsin8 returns a value oscillating between low and high (inclusive) bpm times per minute
func beatsin8(bpm uint16, low, high uint8, now time.Duration) uint8 {
	return low + pixel.Scale8(sin8(beat8(bpm, now)), high-low)
}

func sin16(theta uint16) int16 {
	return int16(math.Round(32767 * math.Sin(2*math.Pi*float64(theta)/65536)))
}

func sin8(theta uint8) uint8 {
	return uint8(math.Round(127.5 + 127.5*math.Sin(2*math.Pi*float64(theta)/256)))
}
