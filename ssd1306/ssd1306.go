// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306

// https://cdn-shop.adafruit.com/datasheets/SSD1306.pdf
//
// Page numbers below refer to this datasheet.

import (
	"fmt"
)

const (
	_CHARGEPUMP          = 0x8D
	_COLUMNADDR          = 0x21
	_COMSCANDEC          = 0xC8
	_COMSCANINC          = 0xC0
	_DEACTIVATE_SCROLL   = 0x2E
	_DISPLAYALLON_RESUME = 0xA4
	_DISPLAYOFF          = 0xAE
	_DISPLAYON           = 0xAF
	_INVERTDISPLAY       = 0xA7
	_MEMORYMODE          = 0x20
	_NORMALDISPLAY       = 0xA6
	_PAGEADDR            = 0x22
	_SEGREMAP            = 0xA0
	_SETCOMPINS          = 0xDA
	_SETCONTRAST         = 0x81
	_SETDISPLAYCLOCKDIV  = 0xD5
	_SETDISPLAYOFFSET    = 0xD3
	_SETMULTIPLEX        = 0xA8
	_SETPRECHARGE        = 0xD9
	_SETSEGMENTREMAP     = 0xA1
	_SETSTARTLINE        = 0x40
	_SETVCOMDETECT       = 0xDB
)

// Control bytes leading every I²C transaction.
const (
	i2cCmd  = 0x00 // I²C transaction has stream of command bytes
	i2cData = 0x40 // I²C transaction has stream of data bytes
)

// DefaultOpts is the recommended default options.
var DefaultOpts = Opts{
	W:                128,
	H:                64,
	Sequential:       false,
	MirrorVertical:   false,
	MirrorHorizontal: false,
	SwapTopBottom:    false,
}

// Opts defines the panel geometry and wiring.
type Opts struct {
	W int
	H int
	// Sequential corresponds to the Sequential/Alternative COM pin configuration
	// in the OLED panel hardware. Try toggling this if half the rows appear to be
	// missing on your display. Particularly on 32 pixel height displays.
	Sequential bool
	// MirrorVertical corresponds to the COM remap configuration in the OLED panel
	// hardware. Try toggling this if the display is flipped vertically.
	MirrorVertical bool
	// MirrorHorizontal corresponds to the SEG remap configuration in the OLED panel
	// hardware. Try toggling this if the display is flipped horizontally.
	MirrorHorizontal bool
	// SwapTopBottom corresponds to the Left/Right remap COM pin configuration in
	// the OLED panel hardware. Try toggling this if the top and bottom halves of
	// your display are swapped.
	SwapTopBottom bool
}

// Validate checks the geometry against what the controller can address.
func (o *Opts) Validate() error {
	if o.W < 8 || o.W > 128 || o.W&7 != 0 {
		return fmt.Errorf("ssd1306: invalid width %d", o.W)
	}
	if o.H < 8 || o.H > 64 || o.H&7 != 0 {
		return fmt.Errorf("ssd1306: invalid height %d", o.H)
	}
	return nil
}

// Pages returns the number of 8 pixel high bands.
func (o *Opts) Pages() int {
	return o.H / 8
}

// CommandSet is the set of control bytes and opcodes a driver needs to talk
// to a controller. Drivers take it as a value so another controller of the
// family can be swapped in.
type CommandSet struct {
	// Command and Data are the control bytes that start a transaction.
	Command byte
	Data    byte

	ColumnAddr byte
	PageAddr   byte
	Normal     byte
	Invert     byte
	DisplayOff byte
	DisplayOn  byte
	Contrast   byte

	// Init is sent once as a command stream when the display is brought up.
	// It must leave the controller in horizontal addressing mode.
	Init []byte
}

// SSD1306 returns the command set for a SSD1306 panel of the given geometry.
func SSD1306(opts *Opts) CommandSet {
	if opts == nil {
		opts = &DefaultOpts
	}
	return CommandSet{
		Command:    i2cCmd,
		Data:       i2cData,
		ColumnAddr: _COLUMNADDR,
		PageAddr:   _PAGEADDR,
		Normal:     _NORMALDISPLAY,
		Invert:     _INVERTDISPLAY,
		DisplayOff: _DISPLAYOFF,
		DisplayOn:  _DISPLAYON,
		Contrast:   _SETCONTRAST,
		Init:       InitSequence(opts),
	}
}

// InitSequence returns the command stream that fully resets the controller.
//
// Page 64 has the full recommended flow. Page 28 lists all the commands.
func InitSequence(opts *Opts) []byte {
	// Set COM output scan direction; C0 means normal; C8 means reversed
	comScan := byte(_COMSCANDEC)
	if opts.MirrorVertical {
		comScan = _COMSCANINC
	}
	// See page 40.
	columnAddr := byte(_SETSEGMENTREMAP)
	if opts.MirrorHorizontal {
		columnAddr = _SEGREMAP
	}
	// See page 40.
	hwLayout := byte(0x02)
	if !opts.Sequential {
		hwLayout |= 0x10
	}
	if opts.SwapTopBottom {
		hwLayout |= 0x20
	}
	return []byte{
		_DISPLAYOFF,
		_SETDISPLAYCLOCKDIV, 0x80, // Power on reset value
		_SETMULTIPLEX, byte(opts.H - 1),
		_SETDISPLAYOFFSET, 0x00,
		_SETSTARTLINE,
		_CHARGEPUMP, 0x14, // Enable charge pump regulator; page 62
		_MEMORYMODE, 0x00, // Horizontal addressing, the window auto-advances
		columnAddr,
		comScan,
		_SETCOMPINS, hwLayout,
		_SETCONTRAST, 0xCF,
		_SETPRECHARGE, 0xF1,
		_SETVCOMDETECT, 0x40, // page 32
		_DEACTIVATE_SCROLL,
		_DISPLAYALLON_RESUME, // Use GDDRAM content
		_NORMALDISPLAY,
		_COLUMNADDR, 0, byte(opts.W - 1),
		_PAGEADDR, 0, byte(opts.Pages() - 1),
		_DISPLAYON,
	}
}

// ArgCount returns how many argument bytes follow op in a command stream.
//
// Opcodes that encode their argument in the low bits, like set start line,
// report 0.
func ArgCount(op byte) int {
	switch op {
	case _COLUMNADDR, _PAGEADDR:
		return 2
	case _CHARGEPUMP, _MEMORYMODE, _SETCOMPINS, _SETCONTRAST, _SETDISPLAYCLOCKDIV,
		_SETDISPLAYOFFSET, _SETMULTIPLEX, _SETPRECHARGE, _SETVCOMDETECT:
		return 1
	case 0x26, 0x27: // Horizontal scroll setup; page 28
		return 6
	case 0x29, 0x2A: // Vertical and horizontal scroll setup; page 29
		return 5
	case 0xA3: // Vertical scroll area; page 30
		return 2
	default:
		return 0
	}
}
