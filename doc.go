// Package regulo is a retrieval augmented question answering engine
// for Turkish university regulation documents.
//
// Documents are chunked, tagged with extracted entities and embedded
// into a local vector index. Queries are gated by intent, matched
// against verified answers, and otherwise answered by an LLM grounded
// in the highest ranked chunks. The Assistant type wires the pieces
// together; the subpackages can also be used individually.
package regulo
