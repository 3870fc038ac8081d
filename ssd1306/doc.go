// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package ssd1306 describes the command set of the SSD1306 monochrome OLED
// controller.
//
// It does not talk to the hardware. It builds the control bytes, addressing
// opcodes and initialization stream a driver sends, so the driver can be
// handed a different table for another controller of the family.
//
// The GDDRAM is organized as 8 pages, each covering an horizontal band of 8
// pixels high (1 byte) for 128 bytes. The init stream selects horizontal
// addressing mode: after each data byte the column advances, wrapping to the
// window start column and the next page at the end of the window.
//
// # Datasheets
//
// https://cdn-shop.adafruit.com/datasheets/SSD1306.pdf
//
// "DM-OLED096-624": https://drive.google.com/file/d/0B5lkVYnewKTGaEVENlYwbDkxSGM/view
package ssd1306
