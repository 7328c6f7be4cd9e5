// Package memomat is a small linear-algebra playground for memoized matrix
// inversion — a square matrix that caches its own inverse and recomputes it
// only when the underlying value changes.
//
// 🚀 What is memomat?
//
//	A compact library that puts two cache designs side by side:
//		• cachemat.ExternallyCached — value + cache with public get/set accessors;
//		  a free orchestration function is trusted to compute-then-store correctly
//		• cachemat.SelfCaching — the cache lives behind a single accessor;
//		  external code can never inject an inconsistent inverse
//		• matrix/      — Dense float64 core: product, identity, comparisons
//		• matrix/ops/  — LU decomposition and column-wise inversion with a
//		  tolerance knob for near-singular pivots
//		• harness/     — a strategy-parameterized verifier exercising both
//		  designs through the same factory/invert function pair
//
// ✨ Why two designs?
//
//   - The externally cached variant is deliberately under-constrained: its
//     SetCachedInverse accepts any candidate without validation. It exists to
//     demonstrate the failure mode, not to be fixed.
//   - The self-caching variant closes that hole: whenever its cache is
//     present, it is the inverse of the current value. The invariant is
//     enforced inside the object and survives any caller behavior.
//
// Instances are not safe for concurrent use; serialize access externally if
// you must share one across goroutines.
//
//	go get github.com/katalvlaran/memomat
package memomat
