package pixel

import "github.com/lucasb-eyer/go-colorful"

// HSV is a colour expressed as hue, saturation and value, each in [0,255].
// A hue of 256 would be a full turn of the colour wheel.
type HSV struct {
	H, S, V uint8
}

// RGB converts the colour to RGB
func (h HSV) RGB() RGB {
	return fromColorful(colorful.Hsv(float64(h.H)*360/256, float64(h.S)/255, float64(h.V)/255))
}

func (c RGB) toColorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func fromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}
