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


// Package index defines the vector index abstraction for regulo.
//
// The index stores embedded document chunks together with their source
// file, heading and entity metadata, and answers nearest-neighbour
// queries by cosine distance. Implementations live in subpackages; the
// default backend is BadgerDB.
//
// Public constructors in backend packages return the Index interface
// so callers never couple to a specific store:
//
//	idx, err := badger.OpenIndex("/path/to/db")
//
// Use the in-memory variant in tests:
//
//	idx, err := badger.NewMemoryIndex()
//
// All implementations must be safe for concurrent use.
package index
