// Copyright (c) 2026 Shelfmark. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package rating converts numeric ratings to and from half-star displays.

A display has ten slots. Slot i (0-indexed) stands for the value (i+1)/2, so
even slots are left halves and odd slots complete a star.

	r = 3.5  →  F F F F F F F E E E   (seven slots full)
	r = 3.7  →  F F F F F F F H E E   (slot 7 half: odd, not full, 3.7 > 3.5)
*/
package rating

import (
	"fmt"
	"math"
	"strings"
)

const (
	// MaxStars is the number of whole stars in a display.
	MaxStars = 5

	// SlotCount is the number of half-star slots in a display.
	SlotCount = MaxStars * 2

	// Step is the rating granularity.
	Step = 0.5
)

// Slot is the visual state of one half-star position.
type Slot int

const (
	Empty Slot = iota
	Half
	Full
)

// String implements [fmt.Stringer].
func (s Slot) String() string {
	switch s {
	case Full:
		return "full"
	case Half:
		return "half"
	default:
		return "empty"
	}
}

// MarshalText encodes the slot as its name so JSON carries "full"/"half"/"empty".
func (s Slot) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// ErrSlotOutOfRange is returned by [FromSlot] for indexes outside [0, SlotCount).
var ErrSlotOutOfRange = fmt.Errorf("rating: slot must be between 0 and %d", SlotCount-1)

// Clamp bounds r to [0, MaxStars]. NaN is treated as 0.
func Clamp(r float64) float64 {
	switch {
	case math.IsNaN(r), r < 0:
		return 0
	case r > MaxStars:
		return MaxStars
	default:
		return r
	}
}

// Render returns the state of each slot for rating r.
//
// Slot i is full when r >= (i+1)/2. A slot that is not full is half only when
// it is a right half (odd i) and r exceeds the value of the preceding slot.
func Render(r float64) [SlotCount]Slot {
	r = Clamp(r)

	var slots [SlotCount]Slot
	for i := range slots {
		value := float64(i+1) / 2
		switch {
		case r >= value:
			slots[i] = Full
		case i%2 == 1 && r > value-Step:
			slots[i] = Half
		}
	}
	return slots
}

// FromSlot returns the rating selected by clicking slot i, which is (i+1)/2.
func FromSlot(i int) (float64, error) {
	if i < 0 || i >= SlotCount {
		return 0, ErrSlotOutOfRange
	}
	return float64(i+1) / 2, nil
}

// Snap clamps r and rounds it to the nearest multiple of [Step].
func Snap(r float64) float64 {
	return math.Round(Clamp(r)/Step) * Step
}

// OnGrid reports whether r lies in [0, MaxStars] on a multiple of [Step].
func OnGrid(r float64) bool {
	if math.IsNaN(r) || r < 0 || r > MaxStars {
		return false
	}
	return math.Mod(r, Step) == 0
}

// GlyphSet names the characters used to draw whole stars in a terminal.
type GlyphSet struct {
	Full  string
	Half  string
	Empty string
}

var (
	// UnicodeGlyphs draws stars with symbols from the Miscellaneous Symbols block.
	UnicodeGlyphs = GlyphSet{Full: "★", Half: "⯪", Empty: "☆"}

	// ASCIIGlyphs draws stars for terminals without Unicode support.
	ASCIIGlyphs = GlyphSet{Full: "*", Half: "+", Empty: "."}
)

// Glyphs draws r as MaxStars characters.
//
// A star is full when its right slot is full and half when only part of it is
// lit, which collapses the ten-slot display without losing half stars.
func Glyphs(r float64, set GlyphSet) string {
	slots := Render(r)

	var builder strings.Builder
	for star := 0; star < MaxStars; star++ {
		left, right := slots[2*star], slots[2*star+1]
		switch {
		case right == Full:
			builder.WriteString(set.Full)
		case left == Full || right == Half:
			builder.WriteString(set.Half)
		default:
			builder.WriteString(set.Empty)
		}
	}
	return builder.String()
}
