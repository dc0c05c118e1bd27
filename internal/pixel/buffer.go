package pixel

// Buffer holds the state of every LED in the strip for the next frame
type Buffer []RGB

// New returns a black Buffer for count LEDs
func New(count int) Buffer {
	if count < 1 {
		panic("pixel: buffer needs at least one LED")
	}
	return make(Buffer, count)
}

// Fill sets every LED to the same colour
func (b Buffer) Fill(c RGB) {
	for i := range b {
		b[i] = c
	}
}

// FadeToBlackBy dims every LED by amount/256 of its current value.
// Applied repeatedly, every channel reaches zero.
func (b Buffer) FadeToBlackBy(amount uint8) {
	scale := 255 - amount
	for i := range b {
		b[i] = b[i].Scale(scale)
	}
}

// Scaled returns a copy of the buffer at the requested brightness, the way it would be emitted by the strip
func (b Buffer) Scaled(brightness uint8) Buffer {
	out := make(Buffer, len(b))
	for i, c := range b {
		if brightness == 0xFF {
			out[i] = c
			continue
		}
		out[i] = c.ScaleVideo(brightness)
	}
	return out
}

// Bytes returns the buffer as a stream of R, G, B bytes
func (b Buffer) Bytes() []byte {
	out := make([]byte, 0, 3*len(b))
	for _, c := range b {
		out = append(out, c.R, c.G, c.B)
	}
	return out
}
