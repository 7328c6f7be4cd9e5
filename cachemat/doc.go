// Package cachemat provides square matrices that memoize their own inverse,
// recomputing it only when the underlying value changes. It deliberately
// ships two structurally parallel designs so the invariant-preservation
// difference between them can be studied and tested.
//
// The two designs:
//
//   - ExternallyCached holds a value and a cached inverse and exposes
//     independent accessors for BOTH: SetValue/Value and
//     SetCachedInverse/CachedInverse. A free function,
//     ComputeOrFetchInverse, is trusted to orchestrate check-compute-store.
//     SetCachedInverse performs NO validation — any caller can poison the
//     cache and the orchestration function cannot detect it. This is the
//     documented defect of the design, preserved on purpose; do not "fix" it.
//
//   - SelfCaching exposes mutation and read of the value, and a single
//     Inverse accessor that internally performs check-compute-store. No
//     method writes the cached inverse from outside, so the cache invariant
//     (whenever present, the cache is the inverse of the current value)
//     holds for every possible caller behavior.
//
// Shared contract:
//
//   - SetValue replaces the value and clears the cached inverse in the same
//     call; there is no observable state with a new value and a stale cache.
//   - Each instance exclusively owns its value and cache: constructors and
//     SetValue copy inbound matrices, accessors return deep clones.
//   - The inversion routine is a pluggable Inverter (default ops.Inverse);
//     extra ops.Option parameters given to Inverse/ComputeOrFetchInverse are
//     passed through to it unchanged.
//   - A singular or non-square value surfaces as the inverter's error,
//     propagated unchanged. No retry; the cache stays absent on failure.
//
// Error handling (sentinel errors):
//
//   - ErrNilObject — a nil *ExternallyCached was passed to
//     ComputeOrFetchInverse.
//   - ops.ErrSingular, matrix.ErrNonSquare — propagated from the default
//     inverter.
//
// Observability:
//
//   - WithDebugLog attaches an apex/log logger announcing recomputation and
//     cache hits at debug level. Disabled by default and not part of the
//     behavioral contract.
//
// Thread safety:
//
//   - Instances are NOT safe for concurrent use. Two goroutines racing
//     through the check-compute-store sequence lose updates or compute
//     twice; serialize externally (e.g. a mutex) if an instance must be
//     shared.
package cachemat
