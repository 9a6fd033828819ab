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


// Package ingest builds the vector index from regulation documents.
//
// A document passes through four stages: conversion to text blocks,
// chunking, entity extraction, and embedding. Embedding runs on a
// worker pool since it dominates ingestion time. The package also
// provides a filesystem watcher that reingests documents as they
// change on disk.
package ingest
