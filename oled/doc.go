// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package oled drives a 128x64 monochrome OLED through a tile oriented API
// tailored for small games: solid 8x8 blocks, a background dot grid, full
// screen bitmaps, a blink effect and a seven segment score made of blocks.
//
// Every drawing call selects a column and page window on the controller and
// then streams the pixel bytes. The controller advances its write cursor on
// its own, so the driver never sends per byte coordinates.
//
// The bus is transaction oriented: bytes are queued into a small buffer and
// shipped when the transaction ends. When the buffer is full the driver ends
// the transaction, opens a new one and queues the same byte again, so long
// streams never lose or reorder a byte.
//
// # Tiles
//
// The canvas is split in a 16x8 grid of tiles. Tile (x, y) covers pixel
// columns x*8 to x*8+7 of page y.
//
// # Contract violations
//
// Coordinates outside the canvas or the tile grid, negative scores and image
// buffers of the wrong size are reported as errors wrapping ErrOutOfRange.
// Nothing is sent to the controller in that case.
//
// Calls must not be made concurrently on one Dev.
package oled
