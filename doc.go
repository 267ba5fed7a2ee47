// Package markov is your in-memory toolkit for discrete-output Hidden
// Markov Models — from the dense numeric buffer up to decoding, scoring,
// training and sampling.
//
// 🚀 What is markov?
//
//	A modern, deterministic library that brings together:
//		• Dense buffers: row-major 2-D float64 storage with safe access & folds
//		• Scoring: the Forward algorithm and total sequence likelihood
//		• Decoding: the Viterbi algorithm with explicit tie-break rules
//		• Training: Baum-Welch (EM) reestimation with a bounded budget
//		• Sampling: synthetic sequences from an injectable random source
//
// ✨ Why choose markov?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – sentinel errors, no panics at the public surface
//   - Deterministic – fixed traversal orders, injectable randomness
//   - Documented edge cases – tie-breaks, degenerate denominators, T=1
//
// Under the hood, everything is organized under two subpackages:
//
//	matrix/ — dense row-major 2-D buffer: bounds-checked access, maps, folds
//	hmm/    — Model bundle + Forward, Backward, Viterbi, Baum-Welch, sampler
//
// Quick ASCII example:
//
//	    π ──▶ q0 ──▶ q1 ──▶ q2        hidden states (A drives the arrows)
//	           │      │      │
//	           ▼      ▼      ▼
//	          o0     o1     o2        observed symbols (B drives the emissions)
//
//	the model explains an observed symbol row through a hidden state walk.
//
// Probabilities are kept in the plain (non-log) domain, matching the
// classical textbook recurrences; see hmm package docs for the underflow
// caveat on long sequences.
//
//	go get github.com/katalvlaran/markov
package markov
