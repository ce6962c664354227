// Package levenshtein computes Levenshtein distance between strings,
// recovers explicit edit scripts, converts between per-character edit
// operations and block-level opcodes, applies (possibly partial) edit
// scripts, and synthesizes approximate median strings from a weighted
// multiset of inputs. It also measures similarity between sequences and
// sets of strings by solving an assignment problem over pairwise ratios.
//
// Every entry point that reads string contents comes in two flavors: a
// narrow variant operating on Go strings (one symbol per byte) and a
// wide variant operating on []rune (one symbol per Unicode code point).
// Functions that work only on positions (opcode conversion, checking,
// inversion, matching blocks) have a single form. The distance kernel,
// edit-script engine and median code are one generic engine shared by
// both flavors; the sequence and set comparisons are written once per
// flavor.
//
// The package is a pure, synchronous library: no goroutines, no shared
// mutable state, no I/O. Every call is self-contained.
package levenshtein
