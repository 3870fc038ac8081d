// Copyright 2018 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306_test

import (
	"fmt"

	"github.com/GermanBionicSystems/oled85/ssd1306"
)

func Example() {
	opts := ssd1306.DefaultOpts
	opts.H = 32
	opts.Sequential = true
	if err := opts.Validate(); err != nil {
		fmt.Println(err)
		return
	}
	cmds := ssd1306.SSD1306(&opts)
	fmt.Printf("column window opcode: %#x\n", cmds.ColumnAddr)
	fmt.Printf("page window opcode: %#x\n", cmds.PageAddr)
	fmt.Printf("pages: %d\n", opts.Pages())
	// Output:
	// column window opcode: 0x21
	// page window opcode: 0x22
	// pages: 4
}
