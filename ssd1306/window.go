// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306

import "fmt"

// Window is the GDDRAM rectangle selected by the column and page address
// commands. Bounds are inclusive, like the command arguments.
//
// Data bytes fill the window left to right, then top to bottom, wrapping back
// to its first cell once the last one was written.
type Window struct {
	Col0, Col1   int
	Page0, Page1 int
}

// Full returns the window covering the whole panel.
func Full(opts *Opts) Window {
	return Window{Col0: 0, Col1: opts.W - 1, Page0: 0, Page1: opts.Pages() - 1}
}

// Cols returns the window width in columns.
func (w Window) Cols() int {
	return w.Col1 - w.Col0 + 1
}

// Pages returns the window height in pages.
func (w Window) Pages() int {
	return w.Page1 - w.Page0 + 1
}

// Size returns the number of bytes needed to fill the window once.
func (w Window) Size() int {
	return w.Cols() * w.Pages()
}

func (w Window) String() string {
	return fmt.Sprintf("cols %d-%d pages %d-%d", w.Col0, w.Col1, w.Page0, w.Page1)
}
