package pattern

import (
	"fmt"
	"time"

	"github.com/clambin/ledstrip/internal/pixel"
)

// Animation is a procedural pattern, rendered one frame at a time into a pixel.Buffer.
// Animations keep no state of their own: trails come from the previous frame still being in the buffer.
type Animation int

const (
	Rainbow Animation = iota
	RainbowWithGlitter
	OnlyGlitter
	Confetti
	Sinelon
	Juggle
	BPM
)

// Animations lists the animated patterns, in click order
var Animations = []Animation{Rainbow, RainbowWithGlitter, OnlyGlitter, Confetti, Sinelon, Juggle, BPM}

var animationNames = map[Animation]string{
	Rainbow:            "rainbow",
	RainbowWithGlitter: "rainbow-with-glitter",
	OnlyGlitter:        "glitter",
	Confetti:           "confetti",
	Sinelon:            "sinelon",
	Juggle:             "juggle",
	BPM:                "bpm",
}

func (a Animation) String() string {
	if name, ok := animationNames[a]; ok {
		return name
	}
	return fmt.Sprintf("animation(%d)", int(a))
}

// Random is the source of randomness for glitter and confetti. *rand.Rand satisfies it.
type Random interface {
	Intn(n int) int
}

// Frame holds the inputs an animation needs for one frame
type Frame struct {
	// Hue is the slowly rotating base colour
	Hue uint8
	// Now is the time since the strip started. It drives the oscillators.
	Now  time.Duration
	Rand Random
}

const (
	trailFade       = 20
	confettiFade    = 10
	glitterChance   = 80
	rainbowHueDelta = 7
	bpmBeatsPerMin  = 62
	sinelonBPM      = 13
	juggleDots      = 8
)

// Render draws one frame of the animation into buf
func (a Animation) Render(buf pixel.Buffer, f Frame) {
	switch a {
	case Rainbow:
		rainbow(buf, f)
	case RainbowWithGlitter:
		rainbow(buf, f)
		glitter(buf, f)
	case OnlyGlitter:
		buf.FadeToBlackBy(trailFade)
		glitter(buf, f)
	case Confetti:
		confetti(buf, f)
	case Sinelon:
		sinelon(buf, f)
	case Juggle:
		juggle(buf, f)
	case BPM:
		bpm(buf, f)
	default:
		panic(fmt.Sprintf("pattern: invalid animation %d", a))
	}
}

func rainbow(buf pixel.Buffer, f Frame) {
	hue := f.Hue
	for i := range buf {
		buf[i] = pixel.HSV{H: hue, S: 255, V: 255}.RGB()
		hue += rainbowHueDelta
	}
}

// glitter adds a white spark to one random LED, on roughly 31% of the frames
func glitter(buf pixel.Buffer, f Frame) {
	if f.Rand.Intn(256) < glitterChance {
		pos := f.Rand.Intn(len(buf))
		buf[pos] = buf[pos].Add(pixel.White)
	}
}

func confetti(buf pixel.Buffer, f Frame) {
	buf.FadeToBlackBy(confettiFade)
	pos := f.Rand.Intn(len(buf))
	hue := f.Hue + uint8(f.Rand.Intn(64))
	buf[pos] = buf[pos].Add(pixel.HSV{H: hue, S: 200, V: 255}.RGB())
}

// sinelon sweeps a coloured dot back and forth, leaving a fading trail
func sinelon(buf pixel.Buffer, f Frame) {
	buf.FadeToBlackBy(trailFade)
	pos := beatsin16(sinelonBPM, 0, uint16(len(buf)-1), f.Now)
	buf[pos] = buf[pos].Add(pixel.HSV{H: f.Hue, S: 255, V: 192}.RGB())
}

// bpm pulses coloured stripes at a fixed tempo
func bpm(buf pixel.Buffer, f Frame) {
	beat := beatsin8(bpmBeatsPerMin, 64, 255, f.Now)
	for i := range buf {
		buf[i] = pixel.PartyColors.At(f.Hue+uint8(i*2), beat-f.Hue+uint8(i*10))
	}
}

// juggle weaves eight coloured dots in and out of sync with each other
func juggle(buf pixel.Buffer, f Frame) {
	buf.FadeToBlackBy(trailFade)
	var hue uint8
	for i := 0; i < juggleDots; i++ {
		pos := beatsin16(uint16(i+7), 0, uint16(len(buf)-1), f.Now)
		buf[pos] = buf[pos].Or(pixel.HSV{H: hue, S: 200, V: 255}.RGB())
		hue += 32
	}
}
