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

// Package bdgr implements a lossless codec for 8-bit greyscale raster
// images: a left-neighbour predictor feeding an adaptive Rice/Golomb
// entropy coder, packed least-significant-bit-first into 64-bit words.
package bdgr

import (
	"fmt"

	"github.com/foilscan/bdgr/internal/bdgr"
)

// Geometry is the width/height pair recorded in a stream's header.
type Geometry struct {
	Width  uint16
	Height uint16
}

// headerBytes is the fixed size of the 32-bit geometry header, padded to
// one 64-bit word.
const headerBytes = 8

// MaxOutputSize returns a safe upper bound on the number of bytes Encode
// may write for an image of the given dimensions: the header word plus
// 4 bytes per sample (escape-heavy input costs at most 20 bits, or 2.5
// bytes, per sample; 4 leaves headroom), rounded up to a multiple of 8.
func MaxOutputSize(w, h uint16) int {
	n := int(w) * int(h)
	size := headerBytes + 4*n
	if rem := size % 8; rem != 0 {
		size += 8 - rem
	}
	return size
}

// Encode compresses samples, a w*h array of 8-bit greyscale values in
// raster order, into output, returning the number of bytes written.
// output must be at least MaxOutputSize(w, h) bytes long.
func Encode(samples []byte, w, h uint16, output []byte) (int, error) {
	if w == 0 || h == 0 {
		return 0, fmt.Errorf("bdgr: w=%d h=%d: %w", w, h, ErrGeometry)
	}
	n := int(w) * int(h)
	if len(samples) != n {
		return 0, fmt.Errorf("bdgr: samples has %d bytes, want %d (w*h): %w", len(samples), n, ErrGeometry)
	}
	if need := MaxOutputSize(w, h); len(output) < need {
		return 0, fmt.Errorf("bdgr: output has %d bytes, need %d: %w", len(output), need, ErrBufferSize)
	}

	out := bdgr.NewWriter(output)
	out.PushBits(uint32(w), 16)
	out.PushBits(uint32(h), 16)

	k := uint(bdgr.StartK)
	var prediction byte
	for _, sample := range samples {
		delta := bdgr.Delta(sample, prediction)
		rice := bdgr.ToRice(delta)
		k = uint(bdgr.EncodeRice(&out, rice, k))
		prediction = sample
	}
	return out.Flush(), nil
}

// Header reads only the first 32 bits of stream — the geometry recorded
// by Encode — without validating or consuming the rest.
func Header(stream []byte) (Geometry, error) {
	if len(stream) < headerBytes {
		return Geometry{}, fmt.Errorf("bdgr: stream has %d bytes, need at least %d for a header: %w", len(stream), headerBytes, ErrTruncated)
	}
	in := bdgr.NewReader(stream)
	w := in.PullBits(16)
	h := in.PullBits(16)
	return Geometry{Width: uint16(w), Height: uint16(h)}, nil
}

// Decode reverses Encode, reconstructing w*h samples into output. stream
// must be a multiple of 8 bytes and its header must match w, h exactly;
// callers that don't already know an image's dimensions should read them
// with Header first.
func Decode(stream []byte, output []byte, w, h uint16) (int, error) {
	if w == 0 || h == 0 {
		return 0, fmt.Errorf("bdgr: w=%d h=%d: %w", w, h, ErrGeometry)
	}
	if len(stream) < headerBytes || len(stream)%8 != 0 {
		return 0, fmt.Errorf("bdgr: stream has %d bytes, want a non-zero multiple of 8: %w", len(stream), ErrTruncated)
	}
	n := int(w) * int(h)
	if len(output) < n {
		return 0, fmt.Errorf("bdgr: output has %d bytes, need %d (w*h): %w", len(output), n, ErrBufferSize)
	}

	geom, err := Header(stream)
	if err != nil {
		return 0, err
	}
	if geom.Width != w || geom.Height != h {
		return 0, fmt.Errorf("bdgr: stream header is %dx%d, caller passed %dx%d: %w", geom.Width, geom.Height, w, h, ErrShapeMismatch)
	}

	in := bdgr.NewReader(stream)
	_ = in.PullBits(16)
	_ = in.PullBits(16)

	k := uint(bdgr.StartK)
	var prediction byte
	for i := range n {
		rice, nextK := bdgr.DecodeRice(&in, k)
		k = uint(nextK)
		delta := bdgr.FromRice(rice)
		prediction = bdgr.Reconstruct(prediction, delta)
		output[i] = prediction
	}
	return n, nil
}
