// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import (
	"github.com/go-crypt/x/blake2b"
)

// HashContent returns a size-byte BLAKE2b digest of text.
// Used for chunk IDs (8 bytes) and cache keys (16 bytes).
func HashContent(text string, size int) []byte {
	h, _ := blake2b.New(size, nil)
	h.Write([]byte(text))
	return h.Sum(nil)
}
