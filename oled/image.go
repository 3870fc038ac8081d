// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package oled

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"

	"periph.io/x/devices/v3/ssd1306/image1bit"

	"github.com/GermanBionicSystems/oled85/ssd1306"
)

// ColorModel implements display.Drawer.
//
// It is a one bit color model, as implemented by image1bit.Bit.
func (d *Dev) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds implements display.Drawer. Min is guaranteed to be {0, 0}.
func (d *Dev) Bounds() image.Rectangle {
	return image.Rect(0, 0, d.geo.W, d.geo.H)
}

// Draw implements display.Drawer.
//
// It draws synchronously and only sends the smallest window covering the
// pixels that changed since the last frame sent. Content drawn with the tile
// primitives since then makes the next Draw send the full frame, overwriting
// it.
func (d *Dev) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	rect := d.Bounds()
	// Double buffering.
	if d.next == nil {
		d.next = image1bit.NewVerticalLSB(rect)
	}
	if img, ok := src.(*image1bit.VerticalLSB); ok && r == rect && img.Rect == rect && sp.X == 0 && sp.Y == 0 {
		// Exact size, full frame, image1bit encoding: fast path!
		copy(d.next.Pix, img.Pix)
	} else {
		draw.Src.Draw(d.next, r, src, sp)
	}
	return d.drawInternal(d.next.Pix)
}

// changed returns the smallest window holding every byte of next that
// differs from what the display is known to show. ok is false when nothing
// changed.
func (d *Dev) changed(next []byte) (w ssd1306.Window, ok bool) {
	full := ssd1306.Full(&d.geo)
	if d.shown == nil {
		return full, true
	}
	pageSize := full.Cols()
	startPage, endPage := 0, full.Pages()
	for ; startPage < endPage; startPage++ {
		x := pageSize * startPage
		if !bytes.Equal(d.shown[x:x+pageSize], next[x:x+pageSize]) {
			break
		}
	}
	if startPage == endPage {
		return w, false
	}
	for ; endPage > startPage; endPage-- {
		x := pageSize * (endPage - 1)
		if !bytes.Equal(d.shown[x:x+pageSize], next[x:x+pageSize]) {
			break
		}
	}
	startCol, endCol := 0, pageSize
	for ; startCol < endCol && d.sameColumn(next, startCol, startPage, endPage); startCol++ {
	}
	for ; endCol > startCol && d.sameColumn(next, endCol-1, startPage, endPage); endCol-- {
	}
	return ssd1306.Window{Col0: startCol, Col1: endCol - 1, Page0: startPage, Page1: endPage - 1}, true
}

func (d *Dev) sameColumn(next []byte, col, startPage, endPage int) bool {
	for p := startPage; p < endPage; p++ {
		x := p*d.geo.W + col
		if d.shown[x] != next[x] {
			return false
		}
	}
	return true
}

// drawInternal sends the part of next that changed, one data transaction per
// page.
func (d *Dev) drawInternal(next []byte) error {
	w, ok := d.changed(next)
	if !ok {
		return nil
	}
	if err := d.setWindow(w); err != nil {
		return err
	}
	cols := w.Cols()
	err := d.send(w.Size(), cols, func(i int) byte {
		return next[(w.Page0+i/cols)*d.geo.W+w.Col0+i%cols]
	})
	if err != nil {
		d.shown = nil
		return err
	}
	d.remember(next)
	return nil
}

// remember records frame as the display content.
func (d *Dev) remember(frame []byte) {
	if d.shown == nil {
		d.shown = make([]byte, len(frame))
	}
	copy(d.shown, frame)
}
