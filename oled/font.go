// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package oled

import (
	"errors"
	"fmt"
)

// Segment is the tile a segment occupies in the tens digit.
type Segment struct {
	X, Y int
}

// Font describes digits drawn with solid tiles.
type Font struct {
	// Segments lists the tiles of the tens digit.
	Segments []Segment
	// Digits has one flag per segment for each digit 0 to 9.
	Digits [10][]bool
	// Spacing is how many tiles left of the tens digit the ones digit is
	// drawn.
	Spacing int
}

// SevenSegment is a 3x5 tile font sitting right of the center of a 128x64
// panel mounted upside down. Segment 6 is the middle bar.
var SevenSegment = Font{
	Segments: []Segment{
		{7, 5}, {6, 5}, {5, 5},
		{7, 4}, {5, 4},
		{7, 3}, {6, 3}, {5, 3},
		{7, 2}, {5, 2},
		{7, 1}, {6, 1}, {5, 1},
	},
	Digits: [10][]bool{
		glyph(1, 1, 1, 1, 1, 1, 0, 1, 1, 1, 1, 1, 1),
		glyph(0, 0, 1, 0, 1, 0, 0, 1, 0, 1, 0, 0, 1),
		glyph(1, 1, 1, 0, 1, 1, 1, 1, 1, 0, 1, 1, 1),
		glyph(1, 1, 1, 0, 1, 1, 1, 1, 0, 1, 1, 1, 1),
		glyph(1, 0, 1, 1, 1, 1, 1, 1, 0, 1, 0, 0, 1),
		glyph(1, 1, 1, 1, 0, 1, 1, 1, 0, 1, 1, 1, 1),
		glyph(1, 1, 1, 1, 0, 1, 1, 1, 1, 1, 1, 1, 1),
		glyph(1, 1, 1, 0, 1, 0, 0, 1, 0, 1, 0, 0, 1),
		glyph(1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1),
		glyph(1, 1, 1, 1, 1, 1, 1, 1, 0, 1, 1, 1, 1),
	},
	Spacing: 4,
}

func glyph(on ...int) []bool {
	g := make([]bool, len(on))
	for i, v := range on {
		g[i] = v != 0
	}
	return g
}

// Validate checks that every digit has a flag per segment and that both
// digits fit a grid of cols x rows tiles.
func (f *Font) Validate(cols, rows int) error {
	if len(f.Segments) == 0 {
		return errors.New("oled: font has no segments")
	}
	for i, g := range f.Digits {
		if len(g) != len(f.Segments) {
			return fmt.Errorf("oled: digit %d has %d segments, want %d", i, len(g), len(f.Segments))
		}
	}
	for i, s := range f.Segments {
		if s.X-f.Spacing < 0 || s.X >= cols || s.Y < 0 || s.Y >= rows {
			return fmt.Errorf("oled: segment %d at (%d, %d) is off the %dx%d tile grid", i, s.X, s.Y, cols, rows)
		}
	}
	return nil
}

// DisplayScore draws the last two decimal digits of score as solid tiles.
// Leading zeros are drawn.
//
// Only lit segments are drawn: the area is expected to be cleared by the
// caller beforehand.
func (d *Dev) DisplayScore(score int) error {
	if score < 0 {
		return fmt.Errorf("%w: score %d", ErrOutOfRange, score)
	}
	tens := d.font.Digits[(score/10)%10]
	ones := d.font.Digits[score%10]
	for i, s := range d.font.Segments {
		if tens[i] {
			if err := d.DrawBlock(s.X, s.Y, 0, 0, Solid); err != nil {
				return err
			}
		}
		if ones[i] {
			if err := d.DrawBlock(s.X-d.font.Spacing, s.Y, 0, 0, Solid); err != nil {
				return err
			}
		}
	}
	return nil
}
