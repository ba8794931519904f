// Package broadphase tracks the set of overlapping body pairs produced by
// broad-phase collision detection.
//
// The central type is [Manager], a pair manager in the style described by
// Pierre Terdiman (www.codercorner.com/SAP.pdf): overlapping pairs live in a
// dense, gap-free array indexed by a chained hash table whose bucket count is
// always a power of two.
//
//   - [Manager.AddPair]: idempotent insert, O(1) amortized
//   - [Manager.RemovePair]: remove with swap-with-last compaction, O(1) amortized
//   - [Manager.FindPair]: chained lookup, O(1) amortized
//   - [Manager.Each]: forward iteration over the dense pair store
//
// Pairs are canonicalized so the body with the smaller identifier always
// comes first; (A,B) and (B,A) name the same pair. Asking any operation about
// a body paired with itself is a caller bug and panics.
//
// # Thread Safety
//
// Manager instances are NOT thread-safe and are meant to be driven from a
// single collision-detection update pass per simulation step. They are not
// reentrant either: calling a mutating method from inside a pair listener is
// undefined.
package broadphase
