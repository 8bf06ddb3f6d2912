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

package bdgr

import (
	"bytes"
	"testing"
)

// addMinimalSeeds adds a handful of small, hand-crafted images to the fuzz
// corpus, covering the shapes most likely to expose off-by-one errors in
// geometry handling.
func addMinimalSeeds(f *testing.F) {
	f.Add(uint16(1), uint16(1), []byte{0})
	f.Add(uint16(2), uint16(1), []byte{0, 255})
	f.Add(uint16(1), uint16(2), []byte{255, 0})
	f.Add(uint16(3), uint16(3), []byte{0, 1, 2, 3, 4, 5, 6, 7, 8})
}

// FuzzRoundTrip feeds arbitrary (w, h, samples) triples through Encode and
// Decode, asserting the output always matches the input whenever Encode
// accepts the call. Ported from the pack's convention of fuzzing the
// round trip of a self-contained codec rather than only the decoder.
func FuzzRoundTrip(f *testing.F) {
	addMinimalSeeds(f)

	f.Fuzz(func(t *testing.T, w, h uint16, samples []byte) {
		if w == 0 || h == 0 {
			return
		}
		n := int(w) * int(h)
		if n == 0 || n > 1<<20 {
			return
		}
		if len(samples) < n {
			return
		}
		samples = samples[:n]

		out := make([]byte, MaxOutputSize(w, h))
		written, err := Encode(samples, w, h, out)
		if err != nil {
			t.Fatalf("Encode: %v", err)
		}
		stream := out[:written]

		geom, err := Header(stream)
		if err != nil {
			t.Fatalf("Header: %v", err)
		}
		if geom.Width != w || geom.Height != h {
			t.Fatalf("Header() = %+v, want {%d %d}", geom, w, h)
		}

		got := make([]byte, n)
		if _, err := Decode(stream, got, w, h); err != nil {
			t.Fatalf("Decode: %v", err)
		}
		if !bytes.Equal(got, samples) {
			t.Fatalf("round trip mismatch for %dx%d", w, h)
		}
	})
}
