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

import "testing"

func TestPushPullBits(t *testing.T) {
	buf := make([]byte, 344) // 300 values * 9 bits = 2700 bits = 43 words
	w := NewWriter(buf)
	var want []uint32
	for v := uint32(0); v < 300; v++ {
		want = append(want, v&0x1FF)
		w.PushBits(v&0x1FF, 9)
	}
	n := w.Flush()

	r := NewReader(buf[:n])
	for _, g := range want {
		got := r.PullBits(9)
		if got != g {
			t.Fatalf("PullBits() = %d, want %d", got, g)
		}
	}
}

func TestPushPullUnary(t *testing.T) {
	buf := make([]byte, 2520) // 19900 zeros + 200 ones = 20100 bits = 315 words
	w := NewWriter(buf)
	var want []int
	for q := 0; q < 200; q++ {
		want = append(want, q)
		w.PushUnary(q)
	}
	n := w.Flush()

	r := NewReader(buf[:n])
	for _, g := range want {
		got := r.PullUnary()
		if got != g {
			t.Fatalf("PullUnary() = %d, want %d", got, g)
		}
	}
}

func TestPushPullBitsMixedWidths(t *testing.T) {
	buf := make([]byte, 64)
	w := NewWriter(buf)
	widths := []uint{1, 3, 7, 16, 8, 2, 5}
	values := []uint32{1, 5, 100, 0xABCD, 0xFF, 3, 17}
	for i := range widths {
		w.PushBits(values[i], widths[i])
	}
	n := w.Flush()

	r := NewReader(buf[:n])
	for i := range widths {
		got := r.PullBits(widths[i])
		want := values[i] & (1<<widths[i] - 1)
		if got != want {
			t.Fatalf("PullBits(%d) = %#x, want %#x", widths[i], got, want)
		}
	}
}

func TestHeaderWidthHeightFields(t *testing.T) {
	buf := make([]byte, 8)
	w := NewWriter(buf)
	w.PushBits(640, 16)
	w.PushBits(480, 16)
	w.Flush()

	r := NewReader(buf)
	if got := r.PullBits(16); got != 640 {
		t.Errorf("width = %d, want 640", got)
	}
	if got := r.PullBits(16); got != 480 {
		t.Errorf("height = %d, want 480", got)
	}
}
