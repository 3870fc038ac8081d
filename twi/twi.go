// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package twi implements a transaction oriented two-wire transport on top of
// an I²C bus.
//
// Small microcontroller I²C stacks do not stream bytes to the wire as they
// are queued: they accumulate them in a fixed size buffer and ship the whole
// buffer when the transaction ends. Queuing a byte into a full buffer fails
// and the caller is expected to end the transaction and open a new one. Bus
// reproduces this behavior on a periph i2c.Bus so drivers written against it
// behave the same on a Raspberry Pi as on a tiny AVR.
package twi

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

// Transport is the byte level interface used by display drivers.
//
// Queue returns false when the byte was not accepted, either because the
// transaction buffer is full or because no transaction is open. End
// transmits everything queued since Begin.
type Transport interface {
	Begin(addr uint16)
	Queue(b byte) bool
	End() error
}

// ErrNoTransaction is returned by End when no transaction was begun.
var ErrNoTransaction = errors.New("twi: no transaction in progress")

// DefaultOpts is the recommended default options.
//
// The buffer size matches the USI master found on ATtiny parts, minus the
// slot used for the address byte.
var DefaultOpts = Opts{
	BufferSize: 16,
	Speed:      400 * physic.KiloHertz,
}

// Opts defines the options for the transport.
type Opts struct {
	// BufferSize is the maximum number of bytes in one transaction. It must
	// be at least 2 so a control byte and one payload byte fit.
	BufferSize int
	// Speed is the bus clock to request. 0 leaves the bus speed untouched.
	Speed physic.Frequency
}

// Stats counts the traffic sent over a Bus.
type Stats struct {
	Transactions int
	Bytes        int
	Rejected     int
}

// Bus is a Transport that buffers each transaction and sends it as a single
// I²C write.
type Bus struct {
	b     i2c.Bus
	size  int
	addr  uint16
	buf   []byte
	open  bool
	stats Stats
}

// New returns a Bus that sends transactions over b.
func New(b i2c.Bus, opts *Opts) (*Bus, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	if opts.BufferSize < 2 {
		return nil, fmt.Errorf("twi: invalid buffer size %d", opts.BufferSize)
	}
	if opts.Speed != 0 {
		if err := b.SetSpeed(opts.Speed); err != nil {
			return nil, fmt.Errorf("twi: %w", err)
		}
	}
	return &Bus{b: b, size: opts.BufferSize, buf: make([]byte, 0, opts.BufferSize)}, nil
}

func (t *Bus) String() string {
	return fmt.Sprintf("twi.Bus{%s, %d}", t.b, t.size)
}

// Begin implements Transport.
//
// Bytes queued in a transaction that was never ended are discarded.
func (t *Bus) Begin(addr uint16) {
	t.addr = addr
	t.buf = t.buf[:0]
	t.open = true
}

// Queue implements Transport.
func (t *Bus) Queue(b byte) bool {
	if !t.open || len(t.buf) >= t.size {
		t.stats.Rejected++
		return false
	}
	t.buf = append(t.buf, b)
	return true
}

// End implements Transport.
func (t *Bus) End() error {
	if !t.open {
		return ErrNoTransaction
	}
	t.open = false
	if len(t.buf) == 0 {
		return nil
	}
	w := make([]byte, len(t.buf))
	copy(w, t.buf)
	t.buf = t.buf[:0]
	if err := t.b.Tx(t.addr, w, nil); err != nil {
		return fmt.Errorf("twi: write to 0x%02x failed: %w", t.addr, err)
	}
	t.stats.Transactions++
	t.stats.Bytes += len(w)
	return nil
}

// Stats returns the traffic counters since the Bus was created.
func (t *Bus) Stats() Stats {
	return t.stats
}

var _ Transport = &Bus{}
