package pixel

import "fmt"

// RGB is the colour of a single LED
type RGB struct {
	R, G, B uint8
}

// Named colours, using the values WS2812 libraries traditionally use
var (
	Black  = RGB{}
	White  = RGB{R: 0xFF, G: 0xFF, B: 0xFF}
	Aqua   = RGB{G: 0xFF, B: 0xFF}
	Blue   = RGB{B: 0xFF}
	Red    = RGB{R: 0xFF}
	Orange = RGB{R: 0xFF, G: 0xA5}
	Green  = RGB{G: 0x80}
	Yellow = RGB{R: 0xFF, G: 0xFF}
	Purple = RGB{R: 0x80, B: 0x80}
)

// Add adds two colours, saturating each channel at 255
func (c RGB) Add(o RGB) RGB {
	return RGB{R: qadd8(c.R, o.R), G: qadd8(c.G, o.G), B: qadd8(c.B, o.B)}
}

// Or combines two colours with a bitwise OR on each channel
func (c RGB) Or(o RGB) RGB {
	return RGB{R: c.R | o.R, G: c.G | o.G, B: c.B | o.B}
}

// Scale scales each channel by scale/256. A channel can drop to zero.
func (c RGB) Scale(scale uint8) RGB {
	return RGB{R: Scale8(c.R, scale), G: Scale8(c.G, scale), B: Scale8(c.B, scale)}
}

// ScaleVideo scales each channel by scale/256, but never turns a lit channel off unless scale is zero
func (c RGB) ScaleVideo(scale uint8) RGB {
	return RGB{R: scale8Video(c.R, scale), G: scale8Video(c.G, scale), B: scale8Video(c.B, scale)}
}

// IsBlack reports whether all channels are off
func (c RGB) IsBlack() bool {
	return c == Black
}

// Hex returns the colour in #rrggbb notation
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Scale8 returns i * (1+scale) / 256
func Scale8(i, scale uint8) uint8 {
	return uint8((uint16(i) * (1 + uint16(scale))) >> 8)
}

func scale8Video(i, scale uint8) uint8 {
	v := uint8((uint16(i) * uint16(scale)) >> 8)
	if i != 0 && scale != 0 {
		v++
	}
	return v
}

func qadd8(a, b uint8) uint8 {
	if sum := uint16(a) + uint16(b); sum < 0xFF {
		return uint8(sum)
	}
	return 0xFF
}
