// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package ssd1306sim emulates a SSD1306 controller behind a twi.Transport.
//
// It decodes the command and data streams a driver sends, keeps a model of the
// controller memory, address window and write cursor, and can print the
// resulting frame to a terminal. Useful to test drivers without a panel, or
// while you are waiting for your super nice OLED to come by mail.
package ssd1306sim

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"os"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/GermanBionicSystems/oled85/ssd1306"
	"github.com/GermanBionicSystems/oled85/twi"
)

// Opts represents the options available for the emulator.
type Opts struct {
	// Addr is the address the controller answers to. 0 selects 0x3c.
	Addr uint16
	// Controller is the panel geometry. The zero value selects 128x64.
	Controller ssd1306.Opts
	// Commands overrides the command table used to decode the streams.
	Commands *ssd1306.CommandSet
	// BufferSize bounds the number of bytes in a transaction, like a real
	// transmit buffer. 0 means unbounded.
	BufferSize int
	// RejectEvery rejects every Nth byte queued behind the control byte of a
	// transaction, as if the buffer was full at that point. 0 disables it.
	RejectEvery int
	// Palette is used by Render. nil selects ansi256.Default.
	Palette *ansi256.Palette

	_ struct{}
}

// Tx is a transaction received by the emulator.
type Tx struct {
	Addr  uint16
	Bytes []byte
}

// Sim is an emulated controller.
type Sim struct {
	addr    uint16
	geo     ssd1306.Opts
	cmds    ssd1306.CommandSet
	size    int
	every   int
	palette ansi256.Palette

	// Bus side.
	open     bool
	cur      []byte
	curAddr  uint16
	queued   int
	rejected int
	txs      []Tx

	// Controller side.
	pending   []byte
	need      int
	win       ssd1306.Window
	col, page int
	ram       []byte
	inverted  bool
	on        bool
	contrast  byte
	dataBytes int

	buf bytes.Buffer
}

// New returns an emulated controller in its power on state: display off,
// full window selected and memory cleared.
func New(opts *Opts) *Sim {
	if opts == nil {
		opts = &Opts{}
	}
	geo := opts.Controller
	if geo.W == 0 && geo.H == 0 {
		geo = ssd1306.DefaultOpts
	}
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	s := &Sim{
		addr:     opts.Addr,
		geo:      geo,
		size:     opts.BufferSize,
		every:    opts.RejectEvery,
		palette:  *p,
		win:      ssd1306.Full(&geo),
		ram:      make([]byte, geo.W*geo.Pages()),
		contrast: 0x7f,
	}
	if s.addr == 0 {
		s.addr = 0x3c
	}
	if opts.Commands != nil {
		s.cmds = *opts.Commands
	} else {
		s.cmds = ssd1306.SSD1306(&geo)
	}
	return s
}

func (s *Sim) String() string {
	return fmt.Sprintf("ssd1306sim.Sim{%dx%d}", s.geo.W, s.geo.H)
}

// Begin implements twi.Transport.
func (s *Sim) Begin(addr uint16) {
	s.open = true
	s.curAddr = addr
	s.cur = s.cur[:0]
}

// Queue implements twi.Transport.
func (s *Sim) Queue(b byte) bool {
	if !s.open || (s.size > 0 && len(s.cur) >= s.size) {
		s.rejected++
		return false
	}
	if s.every > 0 && len(s.cur) > 0 {
		s.queued++
		if s.queued%s.every == 0 {
			s.rejected++
			return false
		}
	}
	s.cur = append(s.cur, b)
	return true
}

// End implements twi.Transport.
//
// Transactions to another address are recorded but not decoded.
func (s *Sim) End() error {
	if !s.open {
		return twi.ErrNoTransaction
	}
	s.open = false
	if len(s.cur) == 0 {
		return nil
	}
	tx := Tx{Addr: s.curAddr, Bytes: append([]byte(nil), s.cur...)}
	s.txs = append(s.txs, tx)
	if tx.Addr != s.addr {
		return nil
	}
	switch tx.Bytes[0] {
	case s.cmds.Command:
		for _, b := range tx.Bytes[1:] {
			s.command(b)
		}
	case s.cmds.Data:
		for _, b := range tx.Bytes[1:] {
			s.write(b)
		}
	default:
		return fmt.Errorf("ssd1306sim: unknown control byte 0x%02x", tx.Bytes[0])
	}
	return nil
}

// command feeds one byte of a command stream. Arguments may arrive in a later
// transaction than their opcode.
func (s *Sim) command(b byte) {
	if s.need == 0 {
		s.pending = append(s.pending[:0], b)
		s.need = ssd1306.ArgCount(b)
	} else {
		s.pending = append(s.pending, b)
		s.need--
	}
	if s.need == 0 {
		s.execute(s.pending[0], s.pending[1:])
	}
}

func (s *Sim) execute(op byte, args []byte) {
	switch {
	case (op == s.cmds.ColumnAddr || op == s.cmds.PageAddr) && len(args) < 2:
		// A custom table whose opcodes ArgCount does not know.
		return
	case op == s.cmds.Contrast && len(args) < 1:
		return
	}
	switch op {
	case s.cmds.ColumnAddr:
		s.win.Col0, s.win.Col1 = clamp(int(args[0]), s.geo.W-1), clamp(int(args[1]), s.geo.W-1)
		s.col = s.win.Col0
	case s.cmds.PageAddr:
		s.win.Page0, s.win.Page1 = clamp(int(args[0]), s.geo.Pages()-1), clamp(int(args[1]), s.geo.Pages()-1)
		s.page = s.win.Page0
	case s.cmds.Normal:
		s.inverted = false
	case s.cmds.Invert:
		s.inverted = true
	case s.cmds.DisplayOff:
		s.on = false
	case s.cmds.DisplayOn:
		s.on = true
	case s.cmds.Contrast:
		s.contrast = args[0]
	}
}

// write stores a data byte at the cursor and advances it in horizontal
// addressing mode.
func (s *Sim) write(b byte) {
	s.ram[s.page*s.geo.W+s.col] = b
	s.dataBytes++
	s.col++
	if s.col > s.win.Col1 {
		s.col = s.win.Col0
		s.page++
		if s.page > s.win.Page1 {
			s.page = s.win.Page0
		}
	}
}

func clamp(v, max int) int {
	if v > max {
		return max
	}
	return v
}

// Window returns the address window last selected.
func (s *Sim) Window() ssd1306.Window {
	return s.win
}

// Cursor returns the column and page the next data byte goes to.
func (s *Sim) Cursor() (col, page int) {
	return s.col, s.page
}

// Inverted reports whether the display shows black on white.
func (s *Sim) Inverted() bool {
	return s.inverted
}

// On reports whether the display is turned on.
func (s *Sim) On() bool {
	return s.on
}

// Contrast returns the last contrast level set.
func (s *Sim) Contrast() byte {
	return s.contrast
}

// RAM returns a copy of the controller memory, one byte per column per page.
func (s *Sim) RAM() []byte {
	return append([]byte(nil), s.ram...)
}

// Transactions returns every non empty transaction received so far.
func (s *Sim) Transactions() []Tx {
	return append([]Tx(nil), s.txs...)
}

// DataBytes returns the number of data bytes written to memory so far.
func (s *Sim) DataBytes() int {
	return s.dataBytes
}

// Rejected returns the number of Queue calls that were refused.
func (s *Sim) Rejected() int {
	return s.rejected
}

// Reset forgets the recorded transactions and counters, keeping the
// controller state.
func (s *Sim) Reset() {
	s.txs = nil
	s.dataBytes = 0
	s.rejected = 0
	s.queued = 0
}

// Pixel reports whether the pixel at (x, y) is lit, taking inversion into
// account.
func (s *Sim) Pixel(x, y int) bool {
	on := s.ram[(y/8)*s.geo.W+x]&(1<<uint(y&7)) != 0
	return on != s.inverted
}

// Render writes the frame to w, one text line per pixel row. With ansi set,
// pixels are printed as colored blocks, otherwise as '#' and '.'.
func (s *Sim) Render(w io.Writer, ansi bool) error {
	// This code is designed to minimize the amount of memory allocated per call.
	s.buf.Reset()
	lit := color.NRGBA{255, 255, 255, 255}
	dark := color.NRGBA{0, 0, 0, 255}
	for y := 0; y < s.geo.H; y++ {
		for x := 0; x < s.geo.W; x++ {
			switch {
			case !ansi && s.Pixel(x, y):
				_ = s.buf.WriteByte('#')
			case !ansi:
				_ = s.buf.WriteByte('.')
			case s.Pixel(x, y):
				_, _ = io.WriteString(&s.buf, s.palette.Block(lit))
			default:
				_, _ = io.WriteString(&s.buf, s.palette.Block(dark))
			}
		}
		if ansi {
			_, _ = s.buf.WriteString("\033[0m")
		}
		_ = s.buf.WriteByte('\n')
	}
	_, err := s.buf.WriteTo(w)
	return err
}

// Print renders the frame on stdout, with colors when stdout is a terminal.
func (s *Sim) Print() error {
	return s.Render(Terminal(), ANSI())
}

// Terminal returns a writer to stdout that understands ANSI color codes on
// every platform.
func Terminal() io.Writer {
	return colorable.NewColorableStdout()
}

// ANSI reports whether stdout is a terminal able to show colors.
func ANSI() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

var _ twi.Transport = &Sim{}
var _ fmt.Stringer = &Sim{}
