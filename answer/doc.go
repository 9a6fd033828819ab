// Package answer orchestrates the question answering pipeline.
//
// The engine short-circuits cheap stages first (blank query, cached
// result, verified FAQ), gates the rest behind intent classification,
// and only then pays for retrieval and generation. Grounded answers
// are cached for replay; template answers are not.
package answer
