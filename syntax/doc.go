// Package syntax defines the typed, immutable syntax tree the preview engine
// observes: nodes with a kind and a half-open byte range [From, To).
//
// Trees are snapshots. A new tree is built for every document version and
// nothing here is mutated after construction.
package syntax
