// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package oled

import (
	"fmt"

	"github.com/GermanBionicSystems/oled85/ssd1306"
)

// Window returns the window the controller was last told to write into.
func (d *Dev) Window() ssd1306.Window {
	return d.win
}

// SetColumns selects the columns start to stop, inclusive, for the following
// data bytes.
func (d *Dev) SetColumns(start, stop int) error {
	if start < 0 || start > stop || stop >= d.geo.W {
		return fmt.Errorf("%w: columns %d-%d on a %d pixels wide display", ErrOutOfRange, start, stop, d.geo.W)
	}
	if err := d.SendCommands(d.cmds.ColumnAddr, byte(start), byte(stop)); err != nil {
		return err
	}
	d.win.Col0, d.win.Col1 = start, stop
	return nil
}

// SetPages selects the pages start to stop, inclusive, for the following
// data bytes.
func (d *Dev) SetPages(start, stop int) error {
	if start < 0 || start > stop || stop >= d.geo.Pages() {
		return fmt.Errorf("%w: pages %d-%d on a %d pages display", ErrOutOfRange, start, stop, d.geo.Pages())
	}
	if err := d.SendCommands(d.cmds.PageAddr, byte(start), byte(stop)); err != nil {
		return err
	}
	d.win.Page0, d.win.Page1 = start, stop
	return nil
}

// setWindow selects w, pages first.
func (d *Dev) setWindow(w ssd1306.Window) error {
	if err := d.SetPages(w.Page0, w.Page1); err != nil {
		return err
	}
	return d.SetColumns(w.Col0, w.Col1)
}
