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

import "errors"

var (
	// ErrGeometry reports a width or height outside [1, 65535], or a
	// samples slice whose length is not w*h.
	ErrGeometry = errors.New("bdgr: width/height out of range")

	// ErrBufferSize reports an output buffer too small for the call.
	ErrBufferSize = errors.New("bdgr: output buffer too small")

	// ErrShapeMismatch reports a (w, h) pair that disagrees with the
	// geometry recorded in a stream's header.
	ErrShapeMismatch = errors.New("bdgr: stream geometry does not match w, h")

	// ErrTruncated reports a stream shorter than the 8-byte header word, or
	// (from Decode) a stream whose length is not a multiple of 8 bytes. A
	// stream cut short inside its codeword data is not detected.
	ErrTruncated = errors.New("bdgr: stream shorter than its declared length")
)
