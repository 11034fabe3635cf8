// Package graph provides the mutable target that reversible editing
// commands act on: an ordered sequence of nodes and an ordered sequence of
// edges, with insertion order preserved and duplicates permitted.
//
// All structural edits are unconditional. Adding never checks uniqueness;
// removing deletes every element equal to the argument and treats an absent
// value as a no-op. Removal by equality means that if two structurally
// identical nodes or edges exist, removing one value removes all copies.
//
// # Exclusive Access
//
// Many commands may hold independent references to the same graph, so the
// single-writer discipline is checked at runtime rather than by the type
// system. Each mutating call holds an exclusive guard for its duration and
// a reentrant mutating call panics with ErrExclusiveAccess. The guard does
// not serialize callers the way a mutex would; it exists to turn a broken
// calling contract into an immediate, loud failure.
package graph
