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

// Package bdgr implements the left-neighbour predictor and adaptive
// Rice/Golomb entropy coder shared by the encoder and decoder.
// Ported from bdgr.h (bdgr_encode/bdgr_decode reference implementation).
package bdgr

// CutOff is the maximum unary quotient before a codeword falls back to the
// escape form (cut_off zero bits, a one terminator, then the raw 8-bit
// symbol). Frozen: changing it desynchronizes any stream encoded under the
// current constants.
const CutOff = 11

// StartK is the Rice parameter a fresh encode/decode call begins with,
// before the first symbol has adapted it.
const StartK = 7

// k4rice is K4RICE from the stream contract: the next Rice parameter to use
// after emitting a given rice value, precomputed as
//
//	bits := 0
//	for 1<<bits < rice { bits++ }
//	if bits > 1 { bits-- }
//
// with k4rice[0] = 0. Hard-coded rather than computed at init so the table
// is a plain data dependency, matching the original C source's static const
// array.
var k4rice = [256]uint8{
	0, 0, 1, 1, 1, 2, 2, 2, 2, 3, 3, 3, 3, 3, 3, 3,
	3, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4,
	4, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6,
	6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6,
	6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6,
	6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6,
	6, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7,
	7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7,
	7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7,
	7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7,
	7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7,
	7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7,
	7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7,
	7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7,
}

// NextK returns the Rice parameter to use for the symbol following one
// that decoded/encoded to the given rice value.
func NextK(rice uint8) uint8 {
	return k4rice[rice]
}
