// Package hmm implements discrete-output Hidden Markov Models: scoring,
// decoding, training and sampling over a finite hidden-state set and a
// finite output alphabet.
//
// 🚀 What is hmm?
//
//	A Model bundles {states, outputs, π, A, B} and exposes four operations:
//		• Evaluate — Forward algorithm, total likelihood of a sequence
//		• Viterbi  — most probable hidden-state path (+ its probability)
//		• Learn    — Baum-Welch (EM) reestimation of A and B in place
//		• Generate — synthetic sequences via inverse-CDF sampling
//
// Conventions:
//
//   - States are indices in [0, states); symbols are indices in
//     [0, outputs). Sequences are plain []int of length T ≥ 1.
//   - π (initial distribution), the rows of A (transition) and the rows of
//     B (emission) should each sum to 1. This is the caller's
//     responsibility; it is documented, not enforced.
//   - All per-call tables (α, β, δ, ψ, η, γ) are scratch state: allocated
//     fresh per invocation, owned exclusively by that call, discarded on
//     return. Calls are synchronous; a Model may not be shared with a
//     concurrent Learn.
//   - Randomness is never ambient: Generate takes an injectable
//     *rand.Rand and is fully deterministic under a fixed source.
//
// Numeric domain:
//
// Probabilities are kept plain (non-log, non-rescaled), matching the
// classical recurrences. Products of many sub-1 terms underflow to zero
// for long sequences; this is a known limitation of the algorithm family
// as implemented here. Callers targeting long sequences should segment
// their data or apply log-space/scaled variants externally.
package hmm
