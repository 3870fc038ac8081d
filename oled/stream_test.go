// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package oled

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/GermanBionicSystems/oled85/ssd1306"
	"github.com/GermanBionicSystems/oled85/ssd1306/ssd1306sim"
	"github.com/GermanBionicSystems/oled85/twi"
)

// recorder is a transport that keeps every transaction and rejects every
// Nth byte queued behind a control byte.
type recorder struct {
	every  int
	n      int
	open   bool
	cur    []byte
	txs    [][]byte
	endErr error
}

func (r *recorder) Begin(uint16) {
	r.open = true
	r.cur = nil
}

func (r *recorder) Queue(b byte) bool {
	if !r.open {
		return false
	}
	if r.every > 0 && len(r.cur) > 0 {
		r.n++
		if r.n%r.every == 0 {
			return false
		}
	}
	r.cur = append(r.cur, b)
	return true
}

func (r *recorder) End() error {
	if r.endErr != nil {
		return r.endErr
	}
	r.open = false
	r.txs = append(r.txs, r.cur)
	return nil
}

// rawDev returns a Dev that was never initialized.
func rawDev(r *recorder) *Dev {
	return &Dev{t: r, addr: addr, cmds: ssd1306.SSD1306(nil), geo: ssd1306.DefaultOpts}
}

func TestStreamRetry(t *testing.T) {
	r := &recorder{every: 3}
	d := rawDev(r)
	src := []byte{0xa0, 0xa1, 0xa2, 0xa3, 0xa4}
	if err := d.stream(0x40, len(src), len(src), func(i int) byte { return src[i] }); err != nil {
		t.Fatal(err)
	}
	// The rejected byte opens the next transaction.
	want := [][]byte{
		{0x40, 0xa0, 0xa1},
		{0x40, 0xa2, 0xa3},
		{0x40, 0xa4},
	}
	if diff := cmp.Diff(r.txs, want); diff != "" {
		t.Errorf("transactions difference (-got +want):\n%s", diff)
	}
}

func TestStreamNeverDropsOrReorders(t *testing.T) {
	const n = 1024
	src := make([]byte, n)
	for i := range src {
		src[i] = byte(i*7 + i/256)
	}
	for _, every := range []int{0, 2, 3, 5, 7, 16, 127, 1000} {
		t.Run(fmt.Sprintf("every %d", every), func(t *testing.T) {
			r := &recorder{every: every}
			d := rawDev(r)
			if err := d.stream(0x40, n, 128, func(i int) byte { return src[i] }); err != nil {
				t.Fatal(err)
			}
			var got []byte
			for _, tx := range r.txs {
				if len(tx) == 0 || tx[0] != 0x40 {
					t.Fatalf("malformed transaction %#v", tx)
				}
				got = append(got, tx[1:]...)
			}
			if diff := cmp.Diff(got, src); diff != "" {
				t.Errorf("stream difference (-got +want):\n%s", diff)
			}
			if every == 0 && len(r.txs) != n/128 {
				t.Errorf("%d transactions, want one per page", len(r.txs))
			}
		})
	}
}

func TestStreamEmpty(t *testing.T) {
	r := &recorder{}
	if err := rawDev(r).stream(0x40, 0, 0, nil); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(r.txs, [][]byte{}, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("transactions difference (-got +want):\n%s", diff)
	}
}

func TestStreamTransportTooSmall(t *testing.T) {
	r := &recorder{every: 1}
	err := rawDev(r).stream(0x40, 2, 2, func(int) byte { return 0xff })
	if !errors.Is(err, ErrTransport) {
		t.Errorf("stream() = %v, want %v", err, ErrTransport)
	}
	if r.open {
		t.Error("transaction left open")
	}
}

func TestStreamEndsRejectedTransaction(t *testing.T) {
	s := ssd1306sim.New(&ssd1306sim.Opts{RejectEvery: 1})
	d := &Dev{t: s, addr: addr, cmds: ssd1306.SSD1306(nil), geo: ssd1306.DefaultOpts}
	if err := d.SendData(1, 2); !errors.Is(err, ErrTransport) {
		t.Fatalf("SendData() = %v, want %v", err, ErrTransport)
	}
	if err := s.End(); !errors.Is(err, twi.ErrNoTransaction) {
		t.Errorf("End() = %v, want %v", err, twi.ErrNoTransaction)
	}
}

func TestStreamControlByteRejected(t *testing.T) {
	c := &closedTransport{}
	d := &Dev{t: c, cmds: ssd1306.SSD1306(nil)}
	if err := d.SendData(1); !errors.Is(err, ErrTransport) {
		t.Errorf("SendData() = %v, want %v", err, ErrTransport)
	}
	if c.ends != 1 {
		t.Errorf("End() called %d times, want 1", c.ends)
	}
}

func TestStreamEndError(t *testing.T) {
	nack := errors.New("nack")
	r := &recorder{endErr: nack}
	if err := rawDev(r).FillScreen(0); !errors.Is(err, nack) {
		t.Errorf("FillScreen() = %v, want %v", err, nack)
	}
}

func TestSendCommands(t *testing.T) {
	r := &recorder{}
	d := rawDev(r)
	if err := d.SendCommands(0x81, 0x7f); err != nil {
		t.Fatal(err)
	}
	if err := d.SendCommands(); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(r.txs, [][]byte{{0x00, 0x81, 0x7f}}); diff != "" {
		t.Errorf("transactions difference (-got +want):\n%s", diff)
	}
}

// closedTransport refuses every byte.
type closedTransport struct {
	ends int
}

func (*closedTransport) Begin(uint16)    {}
func (*closedTransport) Queue(byte) bool { return false }

func (c *closedTransport) End() error {
	c.ends++
	return nil
}
