// Package retrieve implements hybrid chunk retrieval.
//
// A query is embedded and matched against the vector index, then the
// candidates are reranked with a blend of vector similarity and entity
// overlap, scaled by a per-document authority multiplier. The top
// results feed the answer engine.
package retrieve
