// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package oled

import (
	"errors"
	"fmt"
	"time"

	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/devices/v3/ssd1306/image1bit"

	"github.com/GermanBionicSystems/oled85/ssd1306"
	"github.com/GermanBionicSystems/oled85/twi"
)

var (
	// ErrOutOfRange is wrapped by errors reporting coordinates, sizes or
	// counts outside what the display accepts.
	ErrOutOfRange = errors.New("oled: out of range")
	// ErrTransport is wrapped by errors reporting a transport that rejected
	// a byte even in a freshly opened transaction.
	ErrTransport = errors.New("oled: transport rejected byte")
)

// DefaultOpts is the recommended default options.
var DefaultOpts = Opts{
	Addr:       0x3c,
	Controller: ssd1306.DefaultOpts,
	Inverted:   true,
	BlinkDelay: 200 * time.Millisecond,
}

// Opts defines the options for the device.
type Opts struct {
	// The I2C address of the display.
	Addr uint16
	// Controller is the panel geometry. The zero value selects 128x64.
	Controller ssd1306.Opts
	// Commands overrides the controller command table. nil selects the
	// SSD1306 table built for Controller.
	Commands *ssd1306.CommandSet
	// Font overrides the score glyphs. nil selects SevenSegment.
	Font *Font
	// Bus configures the transport built by NewI2C. nil selects
	// twi.DefaultOpts.
	Bus *twi.Opts
	// Inverted is the resting display mode set by Initialize and returned
	// to after BlinkScreen.
	Inverted bool
	// ExactBlockFill makes DrawBlock stream exactly as many bytes as its
	// window is wide. By default 8 bytes are streamed whatever the window
	// width, the extra bytes wrapping around inside the window.
	ExactBlockFill bool
	// BlinkDelay is the settle time after each BlinkScreen transition. 0
	// selects 200ms.
	BlinkDelay time.Duration
}

// Dev is an open handle to the display controller.
type Dev struct {
	t    twi.Transport
	addr uint16
	cmds ssd1306.CommandSet
	geo  ssd1306.Opts
	font *Font

	exact bool
	blink time.Duration
	sleep func(time.Duration)

	// Mutable
	win      ssd1306.Window
	inverted bool
	halted   bool
	// next is lazy initialized on first Draw().
	next *image1bit.VerticalLSB
	// shown is the display content when known, nil otherwise.
	shown []byte
}

// NewI2C returns a Dev that talks to the display over an I²C bus.
func NewI2C(b i2c.Bus, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	busOpts := opts.Bus
	if busOpts == nil {
		busOpts = &twi.DefaultOpts
	}
	t, err := twi.New(b, busOpts)
	if err != nil {
		return nil, err
	}
	return New(t, opts)
}

// New returns a Dev that talks to the display over t and initializes the
// display.
func New(t twi.Transport, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	geo := opts.Controller
	if geo.W == 0 && geo.H == 0 {
		geo = ssd1306.DefaultOpts
	}
	if err := geo.Validate(); err != nil {
		return nil, err
	}
	f := opts.Font
	if f == nil {
		f = &SevenSegment
	}
	if err := f.Validate(geo.W/TileSize, geo.Pages()); err != nil {
		return nil, err
	}
	d := &Dev{
		t:        t,
		addr:     opts.Addr,
		geo:      geo,
		font:     f,
		exact:    opts.ExactBlockFill,
		blink:    opts.BlinkDelay,
		sleep:    time.Sleep,
		inverted: opts.Inverted,
	}
	if d.addr == 0 {
		d.addr = DefaultOpts.Addr
	}
	if d.blink == 0 {
		d.blink = DefaultOpts.BlinkDelay
	}
	if opts.Commands != nil {
		d.cmds = *opts.Commands
	} else {
		d.cmds = ssd1306.SSD1306(&geo)
	}
	if err := d.Initialize(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("oled.Dev{%v, 0x%02x, %dx%d}", d.t, d.addr, d.geo.W, d.geo.H)
}

// Initialize sends the controller init table, clears the screen and selects
// the resting display mode.
func (d *Dev) Initialize() error {
	if err := d.SendCommands(d.cmds.Init...); err != nil {
		return err
	}
	// The init table leaves the full window selected.
	d.win = ssd1306.Full(&d.geo)
	if err := d.FillScreen(0x00); err != nil {
		return err
	}
	return d.Invert(d.inverted)
}

// Invert the display (black on white vs white on black).
func (d *Dev) Invert(blackOnWhite bool) error {
	op := d.cmds.Normal
	if blackOnWhite {
		op = d.cmds.Invert
	}
	if err := d.SendCommands(op); err != nil {
		return err
	}
	d.inverted = blackOnWhite
	return nil
}

// SetContrast changes the screen contrast.
func (d *Dev) SetContrast(level byte) error {
	return d.SendCommands(d.cmds.Contrast, level)
}

// Halt turns off the display.
//
// Sending any other command afterward reenables the display.
func (d *Dev) Halt() error {
	d.halted = false
	err := d.SendCommands(d.cmds.DisplayOff)
	if err == nil {
		d.halted = true
	}
	return err
}

// SendCommands sends cmds to the controller as one command stream.
func (d *Dev) SendCommands(cmds ...byte) error {
	if d.halted {
		// Transparently enable the display.
		cmds = append([]byte{d.cmds.DisplayOn}, cmds...)
		d.halted = false
	}
	return d.stream(d.cmds.Command, len(cmds), len(cmds), func(i int) byte { return cmds[i] })
}

// SendData streams data into the current window as one data stream.
func (d *Dev) SendData(data ...byte) error {
	return d.data(len(data), len(data), func(i int) byte { return data[i] })
}

var _ display.Drawer = &Dev{}
