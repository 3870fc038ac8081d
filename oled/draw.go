// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package oled

import (
	"bytes"
	"fmt"

	"github.com/GermanBionicSystems/oled85/ssd1306"
)

const (
	// TileSize is the width of a tile in columns. A tile is one page high.
	TileSize = 8
	// GridDot is the pattern of the dot marking the center of an empty tile.
	GridDot = 0x10
	// Solid lights all 8 pixels of a column.
	Solid = 0xff
)

// gridColumn is the column of the grid dot inside a tile.
const gridColumn = TileSize / 2

// FillScreen sets every byte of the display to b.
func (d *Dev) FillScreen(b byte) error {
	if err := d.setWindow(ssd1306.Full(&d.geo)); err != nil {
		return err
	}
	frame := bytes.Repeat([]byte{b}, d.geo.W*d.geo.Pages())
	if err := d.send(len(frame), d.geo.W, func(i int) byte { return frame[i] }); err != nil {
		d.shown = nil
		return err
	}
	d.remember(frame)
	return nil
}

// DrawBlock fills tile (x, y) with pattern, leaving offStart columns
// untouched on its left and offStop on its right.
//
// The window spans columns x*8+offStart to x*8+7-offStop, so the offsets
// must leave at least one column: offStart+offStop is at most 7.
//
// 8 bytes are streamed even when the offsets narrow the window, unless
// Opts.ExactBlockFill was set.
func (d *Dev) DrawBlock(x, y, offStart, offStop int, pattern byte) error {
	if err := d.checkTile(x, y); err != nil {
		return err
	}
	if offStart < 0 || offStop < 0 || offStart+offStop >= TileSize {
		return fmt.Errorf("%w: block offsets %d+%d", ErrOutOfRange, offStart, offStop)
	}
	w := tileWindow(x, y)
	w.Col0 += offStart
	w.Col1 -= offStop
	if err := d.setWindow(w); err != nil {
		return err
	}
	n := TileSize
	if d.exact {
		n = w.Cols()
	}
	return d.data(n, n, func(int) byte { return pattern })
}

// RemoveBlock clears tile (x, y) and puts its grid dot back.
func (d *Dev) RemoveBlock(x, y int) error {
	if err := d.DrawBlock(x, y, 0, 0, 0x00); err != nil {
		return err
	}
	col := x*TileSize + gridColumn
	if err := d.SetColumns(col, col); err != nil {
		return err
	}
	return d.SendData(GridDot)
}

// DrawGrid draws the dot grid, one dot in the middle of every tile.
func (d *Dev) DrawGrid() error {
	for y := 0; y < d.geo.Pages(); y++ {
		for x := 0; x < d.geo.W/TileSize; x++ {
			if err := d.DrawBlock(x, y, gridColumn, TileSize-1-gridColumn, GridDot); err != nil {
				return err
			}
		}
	}
	return nil
}

// BlinkScreen flashes the display times times by leaving the resting display
// mode and coming back to it, waiting Opts.BlinkDelay after each change.
//
// It blocks for 2*times*Opts.BlinkDelay.
func (d *Dev) BlinkScreen(times int) error {
	if times < 0 {
		return fmt.Errorf("%w: blink count %d", ErrOutOfRange, times)
	}
	rest := d.inverted
	for i := 0; i < times; i++ {
		if err := d.Invert(!rest); err != nil {
			return err
		}
		d.sleep(d.blink)
		if err := d.Invert(rest); err != nil {
			return err
		}
		d.sleep(d.blink)
	}
	return nil
}

// RevealBlank returns how many leading bytes DrawImage blanks when asked to,
// for a display w pixels wide: the two top pages and 9 columns of the third.
func RevealBlank(w int) int {
	return 2*w + 9
}

// DrawImage sends a full frame. img holds one byte per column per page, pages
// top to bottom, least significant bit on top.
//
// When blankHalf is set the first RevealBlank bytes are sent as 0 instead,
// which games use for a wipe effect.
func (d *Dev) DrawImage(img []byte, blankHalf bool) error {
	full := ssd1306.Full(&d.geo)
	if len(img) != full.Size() {
		return fmt.Errorf("%w: invalid pixel stream length; expected %d bytes, got %d bytes", ErrOutOfRange, full.Size(), len(img))
	}
	if err := d.setWindow(full); err != nil {
		return err
	}
	frame := append([]byte(nil), img...)
	if blankHalf {
		for i := 0; i < RevealBlank(d.geo.W) && i < len(frame); i++ {
			frame[i] = 0x00
		}
	}
	if err := d.send(len(frame), d.geo.W, func(i int) byte { return frame[i] }); err != nil {
		d.shown = nil
		return err
	}
	d.remember(frame)
	return nil
}

func (d *Dev) checkTile(x, y int) error {
	if x < 0 || x >= d.geo.W/TileSize || y < 0 || y >= d.geo.Pages() {
		return fmt.Errorf("%w: tile (%d, %d)", ErrOutOfRange, x, y)
	}
	return nil
}

// tileWindow returns the full window of tile (x, y).
func tileWindow(x, y int) ssd1306.Window {
	return ssd1306.Window{Col0: x * TileSize, Col1: x*TileSize + TileSize - 1, Page0: y, Page1: y}
}
