package pattern

import (
	"fmt"

	"github.com/clambin/ledstrip/internal/pixel"
)

// Family groups the patterns that can be selected with a single click
type Family int

const (
	// Solid fills the strip with one of the Colors
	Solid Family = iota
	// Animated runs one of the Animations
	Animated
	familyCount
)

// Len returns the number of patterns in the family
func (f Family) Len() int {
	switch f {
	case Solid:
		return len(Colors)
	case Animated:
		return len(Animations)
	}
	panic(fmt.Sprintf("pattern: invalid family %d", f))
}

// Next returns the family that follows f, wrapping back to Solid
func (f Family) Next() Family {
	return (f + 1) % familyCount
}

func (f Family) String() string {
	switch f {
	case Solid:
		return "solid"
	case Animated:
		return "animated"
	}
	return fmt.Sprintf("family(%d)", int(f))
}

// Color is one entry of the solid colour family
type Color struct {
	Name string
	pixel.RGB
}

// Colors lists the solid colours, in click order
var Colors = []Color{
	{Name: "white", RGB: pixel.White},
	{Name: "aqua", RGB: pixel.Aqua},
	{Name: "blue", RGB: pixel.Blue},
	{Name: "red", RGB: pixel.Red},
	{Name: "orange", RGB: pixel.Orange},
	{Name: "green", RGB: pixel.Green},
	{Name: "yellow", RGB: pixel.Yellow},
	{Name: "purple", RGB: pixel.Purple},
}

// Name returns the name of the pattern at index in family f
func Name(f Family, index int) string {
	switch f {
	case Solid:
		return Colors[index].Name
	case Animated:
		return Animations[index].String()
	}
	return f.String()
}
