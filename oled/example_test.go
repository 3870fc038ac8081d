// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package oled_test

import (
	"fmt"
	"image"
	"log"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/devices/v3/ssd1306/image1bit"
	"periph.io/x/host/v3"

	"github.com/GermanBionicSystems/oled85/oled"
	"github.com/GermanBionicSystems/oled85/ssd1306/ssd1306sim"
)

func Example() {
	// Make sure periph is initialized.
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}
	// Use i2creg I²C bus registry to find the first available I²C bus.
	b, err := i2creg.Open("")
	if err != nil {
		log.Fatal(err)
	}
	defer b.Close()

	dev, err := oled.NewI2C(b, &oled.DefaultOpts)
	if err != nil {
		log.Fatalf("failed to initialize display: %v", err)
	}
	fmt.Printf("device=%s\n", dev)

	if err := dev.DrawGrid(); err != nil {
		log.Fatal(err)
	}
	if err := dev.DrawBlock(2, 3, 0, 0, oled.Solid); err != nil {
		log.Fatal(err)
	}
	if err := dev.RemoveBlock(2, 3); err != nil {
		log.Fatal(err)
	}
	if err := dev.DisplayScore(42); err != nil {
		log.Fatal(err)
	}
	if err := dev.BlinkScreen(3); err != nil {
		log.Fatal(err)
	}
	_ = dev.Halt()
}

func ExampleDev_DisplayScore() {
	// The emulator stands in for the panel.
	sim := ssd1306sim.New(nil)
	dev, err := oled.New(sim, nil)
	if err != nil {
		log.Fatal(err)
	}
	if err := dev.DisplayScore(42); err != nil {
		log.Fatal(err)
	}
	fmt.Println(dev.Window())
	// Output: cols 8-15 pages 1-1
}

func ExampleDev_Draw() {
	sim := ssd1306sim.New(nil)
	dev, err := oled.New(sim, nil)
	if err != nil {
		log.Fatal(err)
	}
	// Draw on it.
	img := image1bit.NewVerticalLSB(dev.Bounds())
	f := basicfont.Face7x13
	drawer := font.Drawer{
		Dst:  img,
		Src:  &image.Uniform{C: image1bit.On},
		Face: f,
		Dot:  fixed.P(0, img.Bounds().Dy()-1-f.Descent),
	}
	drawer.DrawString("GAME OVER")
	if err := dev.Draw(dev.Bounds(), img, image.Point{}); err != nil {
		log.Fatal(err)
	}
	w := dev.Window()
	fmt.Printf("pages %d-%d\n", w.Page0, w.Page1)

	// Drawing the same frame again sends nothing.
	sim.Reset()
	if err := dev.Draw(dev.Bounds(), img, image.Point{}); err != nil {
		log.Fatal(err)
	}
	fmt.Println(len(sim.Transactions()))
	// Output:
	// pages 6-7
	// 0
}
