// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package oled

import "fmt"

// data streams n data bytes into the current window, perTx bytes per
// transaction. The display content is unknown afterward.
func (d *Dev) data(n, perTx int, src func(i int) byte) error {
	d.shown = nil
	return d.send(n, perTx, src)
}

// send is data for callers that track the display content themselves.
func (d *Dev) send(n, perTx int, src func(i int) byte) error {
	if d.halted {
		if err := d.SendCommands(); err != nil {
			return err
		}
	}
	return d.stream(d.cmds.Data, n, perTx, src)
}

// stream sends the n bytes returned by src, each transaction led by prefix.
//
// A new transaction is opened every perTx bytes. When the transport rejects a
// byte because its buffer is full, the transaction is ended and the same
// byte is queued again in a new one, so the controller sees one contiguous
// stream.
func (d *Dev) stream(prefix byte, n, perTx int, src func(i int) byte) error {
	if n == 0 {
		return nil
	}
	if perTx <= 0 {
		perTx = n
	}
	for i := 0; i < n; i++ {
		if i%perTx == 0 {
			if i != 0 {
				if err := d.t.End(); err != nil {
					return err
				}
			}
			if err := d.begin(prefix); err != nil {
				return err
			}
		}
		b := src(i)
		if d.t.Queue(b) {
			continue
		}
		if err := d.t.End(); err != nil {
			return err
		}
		if err := d.begin(prefix); err != nil {
			return err
		}
		if !d.t.Queue(b) {
			_ = d.t.End()
			return fmt.Errorf("%w: byte %d of %d", ErrTransport, i, n)
		}
	}
	return d.t.End()
}

func (d *Dev) begin(prefix byte) error {
	d.t.Begin(d.addr)
	if !d.t.Queue(prefix) {
		_ = d.t.End()
		return fmt.Errorf("%w: control byte 0x%02x", ErrTransport, prefix)
	}
	return nil
}
