//go:build bdgrdebug

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

import "fmt"

// assert panics with msg when cond is false. Only compiled in under the
// bdgrdebug build tag — see assert_release.go for the release no-op.
// Mirrors bdgr.h's implore/swear macros, which expand to assert() under
// DEBUG and to nothing otherwise: the per-symbol hot loop must not pay for
// bounds/invariant checks in a release build.
func assert(cond bool, msg string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("bdgr: assertion failed: "+msg, args...))
	}
}
