// Package pipeline orchestrates one aggregation run end to end: source list
// in, concurrent fetch, cache-checked sequential parse, ordered merge, and
// artifact publication under a run lock.
//
// Failure policy follows the layer taxonomy: fetch and document problems
// degrade to smaller output, a missing source list or an empty merge are
// reported as calm operational conditions, and only artifact publication
// failures are terminal. Nothing is retried.
package pipeline
