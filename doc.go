// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package oled85 is a container for the tile based 128x64 OLED driver and the
// packages it is built from.
//
// The driver itself lives in package oled. Package twi carries bytes to the
// controller, package ssd1306 holds the controller command tables and
// package ssd1306sim emulates the controller for tests and terminal previews.
package oled85
