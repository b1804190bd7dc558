// Package guide owns the aggregation domain: the channel/programme model, the
// per-document parser with its admission rules, the content-addressed parse
// cache, and the merge fold that unions per-source results into one
// aggregate.
//
// The design degrades instead of failing: blank or malformed documents parse
// to empty results, individual elements that violate the admission rules are
// skipped and logged, and only a completely empty merge is surfaced to the
// caller (by the pipeline, as its empty-result condition).
package guide
