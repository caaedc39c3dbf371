// Package ngramidx provides an embedded fuzzy string-matching index for Go.
//
// Terms are indexed by their constituent character n-grams and queried by
// n-gram overlap, ranked with the Dice coefficient. The index is built once
// and then immutable; a finalized index is safe for unsynchronized concurrent
// queries.
//
// # Quick Start
//
//	builder, _ := ngramidx.NewBuilder[int](3)
//	builder.Insert("music", 0)
//	builder.Insert("school", 1)
//	idx := builder.Build()
//
//	q, _ := idx.MakeQueryVector("shol")
//	for match := range idx.Find(q) {
//	    fmt.Println(match.ID, match.Score)
//	}
//
// # Query Modes
//
// Find enumerates every indexed term sharing at least one n-gram with the
// query. FindFast prunes query n-grams whose document frequency meets a
// threshold before enumeration, trading possible false negatives for bounded
// cost on large vocabularies. FindWeighted and FindWeightedFast additionally
// skew the Dice denominator between query and candidate, which rewards
// prefix-style matches when the query is shorter than the indexed terms.
//
// # Persistence
//
// A finalized index serializes to a self-describing container (see the
// persistence package) and can be stored on any blobstore.Store backend:
//
//	_ = idx.SaveToStore(ctx, store, "main.ngx")
//	idx, _ = ngramidx.NewFromStore[int](ctx, store, "main.ngx")
package ngramidx
