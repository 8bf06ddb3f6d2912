/*
   Copyright Foilscan.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// bdgr-compress round-trips 8-bit greyscale PNGs through the bdgr codec and
// reports the resulting bits-per-pixel, verifying that decode reproduces
// the source exactly.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/foilscan/bdgr"
)

var flagVerify bool

func init() {
	flag.BoolVar(&flagVerify, "verify", true, "decode after encoding and compare against the source")
}

func main() {
	flag.Parse()
	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: bdgr-compress [-verify] image.png [image.png ...]")
		os.Exit(2)
	}
	for _, path := range flag.Args() {
		if err := compress(path); err != nil {
			log.Fatal(err)
		}
	}
}

// compress reads a greyscale PNG at path, encodes it with bdgr, and prints
// a summary line in the tradition of the original reference tool's report.
func compress(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("bdgr-compress: %w", err)
	}
	defer f.Close()

	samples, w, h, err := readGreyscalePNG(f)
	if err != nil {
		return fmt.Errorf("bdgr-compress: %s: %w", path, err)
	}

	out := make([]byte, bdgr.MaxOutputSize(w, h))
	n, err := bdgr.Encode(samples, w, h, out)
	if err != nil {
		return fmt.Errorf("bdgr-compress: %s: encode: %w", path, err)
	}
	stream := out[:n]

	if flagVerify {
		decoded := make([]byte, len(samples))
		if _, err := bdgr.Decode(stream, decoded, w, h); err != nil {
			return fmt.Errorf("bdgr-compress: %s: decode: %w", path, err)
		}
		for i := range samples {
			if decoded[i] != samples[i] {
				return fmt.Errorf("bdgr-compress: %s: round trip mismatch at sample %d", path, i)
			}
		}
	}

	wh := int(w) * int(h)
	bpp := float64(n*8) / float64(wh)
	percent := 100.0 * float64(n) / float64(wh)
	fmt.Printf("%s\t%dx%d\t%d->%d bytes\t%.3f bpp\t%.1f%%\n",
		filepath.Base(path), w, h, wh, n, bpp, percent)

	return nil
}

// readGreyscalePNG decodes f as a PNG and flattens it to a single
// 8-bit sample per pixel, in raster order. Color images are rejected: this
// codec only covers single-channel greyscale input.
func readGreyscalePNG(f *os.File) (samples []byte, w, h uint16, err error) {
	img, err := png.Decode(f)
	if err != nil {
		return nil, 0, 0, err
	}
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || width > 65535 || height <= 0 || height > 65535 {
		return nil, 0, 0, fmt.Errorf("dimensions %dx%d out of range", width, height)
	}

	gray, ok := img.(*image.Gray)
	if !ok {
		return nil, 0, 0, fmt.Errorf("not an 8-bit greyscale image (decoded as %T); convert with -type=grayscale first", img)
	}

	out := make([]byte, width*height)
	for y := range height {
		copy(out[y*width:(y+1)*width], gray.Pix[y*gray.Stride:y*gray.Stride+width])
	}
	return out, uint16(width), uint16(height), nil
}
