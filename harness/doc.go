// Package harness exercises any caching-matrix design through two strategy
// functions — a Factory building a subject from an initial value, and an
// InvertFunc obtaining the inverse from a subject — and verifies the
// identity-reconstruction properties both designs must satisfy.
//
// Checks performed:
//
//   - VerifyExact: fixed 2×2 fixtures whose inverses are exactly
//     representable (dyadic entries), three consecutive invert calls each;
//     value×inverse and inverse×value must equal the identity matrix exactly
//     every time, and repeated calls must return an equal result. Each
//     fixture ends with a SetValue replacement: the next inverse must match
//     the new value, never the previous epoch's cache.
//   - VerifyApprox: seeded random diagonally dominant n×n matrices (6×6 by
//     default), two invert calls per trial with a tolerance option passed
//     through to the inversion routine; value×inverse must match the
//     identity within an absolute per-entry tolerance.
//
// The harness never inspects the subject's cache directly — caching is
// observed through result equality and, in the designs' own test suites,
// through counting inverters. Both memomat designs pass identically; the
// harness exists so any future design can be held to the same contract.
package harness
