// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package main plays a short game over sequence on a 128x64 OLED: dot grid,
// a few blocks, a score, a bitmap revealed with a wipe and a blink.
//
// Run it with -sim to print the frames in the terminal instead of driving a
// panel.
//
// Hardware Setup:
//
//	Display    Raspberry Pi
//	GND        GND
//	VCC        3.3V
//	SCL        GPIO3 (I2C1 SCL)
//	SDA        GPIO2 (I2C1 SDA)
package main

import (
	"flag"
	"fmt"
	"image"
	"image/draw"
	"log"
	"time"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/devices/v3/ssd1306/image1bit"
	"periph.io/x/host/v3"

	"github.com/GermanBionicSystems/oled85/oled"
	"github.com/GermanBionicSystems/oled85/ssd1306/ssd1306sim"
	"github.com/GermanBionicSystems/oled85/twi"
)

var (
	busName = flag.String("bus", "", "I²C bus name (empty for default)")
	addr    = flag.Uint("addr", 0x3c, "I²C address of the display")
	bufSize = flag.Int("buffer", twi.DefaultOpts.BufferSize, "Bytes per bus transaction")
	score   = flag.Int("score", 42, "Score to show")
	blinks  = flag.Int("blinks", 3, "Number of blinks at the end")
	sim     = flag.Bool("sim", false, "Render to the terminal instead of a panel")
	text    = flag.String("text", "GAME OVER", "Caption of the final bitmap")
)

func main() {
	flag.Parse()

	opts := oled.DefaultOpts
	opts.Addr = uint16(*addr)
	opts.Bus = &twi.Opts{BufferSize: *bufSize, Speed: twi.DefaultOpts.Speed}

	var dev *oled.Dev
	var screen *ssd1306sim.Sim
	if *sim {
		screen = ssd1306sim.New(&ssd1306sim.Opts{Addr: opts.Addr, BufferSize: *bufSize})
		d, err := oled.New(screen, &opts)
		if err != nil {
			log.Fatalf("Failed to initialize emulator: %v", err)
		}
		dev = d
	} else {
		// Make sure periph is initialized.
		if _, err := host.Init(); err != nil {
			log.Fatalf("Failed to initialize periph.io: %v", err)
		}
		b, err := i2creg.Open(*busName)
		if err != nil {
			log.Fatalf("Failed to open I²C bus: %v", err)
		}
		defer b.Close()
		d, err := oled.NewI2C(b, &opts)
		if err != nil {
			log.Fatalf("Failed to initialize display: %v", err)
		}
		dev = d
	}
	fmt.Printf("device=%s\n", dev)

	show := func(step string) {
		if screen == nil {
			time.Sleep(time.Second)
			return
		}
		fmt.Printf("-- %s\n", step)
		if err := screen.Print(); err != nil {
			log.Fatal(err)
		}
	}

	if err := dev.DrawGrid(); err != nil {
		log.Fatal(err)
	}
	show("grid")

	for x := 8; x < 16; x++ {
		if err := dev.DrawBlock(x, 6, 0, 0, oled.Solid); err != nil {
			log.Fatal(err)
		}
	}
	if err := dev.RemoveBlock(11, 6); err != nil {
		log.Fatal(err)
	}
	show("blocks")

	if err := dev.FillScreen(0x00); err != nil {
		log.Fatal(err)
	}
	if err := dev.DisplayScore(*score); err != nil {
		log.Fatal(err)
	}
	show("score")

	img, err := caption(dev.Bounds(), *text)
	if err != nil {
		log.Fatal(err)
	}
	frame := image1bit.NewVerticalLSB(dev.Bounds())
	draw.Src.Draw(frame, frame.Rect, img, image.Point{})
	if err := dev.DrawImage(frame.Pix, true); err != nil {
		log.Fatal(err)
	}
	show("wipe")
	if err := dev.Draw(frame.Rect, frame, image.Point{}); err != nil {
		log.Fatal(err)
	}
	show("bitmap")

	if err := dev.BlinkScreen(*blinks); err != nil {
		log.Fatal(err)
	}
	if err := dev.Halt(); err != nil {
		log.Fatal(err)
	}
}

// caption renders s centered in a frame of size r.
func caption(r image.Rectangle, s string) (image.Image, error) {
	w, h := r.Dx(), r.Dy()
	dc := gg.NewContext(w, h)
	dc.SetRGB(0, 0, 0)
	dc.Clear()
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	dc.SetFontFace(truetype.NewFace(f, &truetype.Options{Size: 16}))
	dc.SetRGB(1, 1, 1)
	padding := 4.0
	dc.DrawRoundedRectangle(padding, padding, float64(w)-2*padding, float64(h)-2*padding, 6)
	dc.Stroke()
	dc.DrawStringAnchored(s, float64(w)/2, float64(h)/2, 0.5, 0.5)
	return dc.Image(), nil
}
