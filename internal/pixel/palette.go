package pixel

// Palette16 is a gradient of 16 colours. Lookups between two entries blend linearly.
type Palette16 [16]RGB

// PartyColors is a palette of saturated purples, reds, oranges and yellows, skipping the greens
var PartyColors = Palette16{
	{0x55, 0x00, 0xAB}, {0x84, 0x00, 0x7C}, {0xB5, 0x00, 0x4B}, {0xE5, 0x00, 0x1B},
	{0xE8, 0x17, 0x00}, {0xB8, 0x47, 0x00}, {0xAB, 0x77, 0x00}, {0xAB, 0xAB, 0x00},
	{0xAB, 0x55, 0x00}, {0xDD, 0x22, 0x00}, {0xF2, 0x00, 0x0E}, {0xC2, 0x00, 0x3E},
	{0x8F, 0x00, 0x71}, {0x5F, 0x00, 0xA1}, {0x2F, 0x00, 0xD0}, {0x00, 0x07, 0xF9},
}

// At returns the colour at index (the high nibble selects the entry, the low nibble blends towards the next one),
// scaled to brightness. The palette wraps from the last entry back to the first.
func (p Palette16) At(index, brightness uint8) RGB {
	entry := index >> 4
	c := p[entry]
	if fraction := index & 0x0F; fraction != 0 {
		next := p[(entry+1)%16]
		c = fromColorful(c.toColorful().BlendRgb(next.toColorful(), float64(fraction)/16))
	}
	if brightness != 0xFF {
		c = c.ScaleVideo(brightness)
	}
	return c
}
