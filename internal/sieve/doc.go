// Package sieve classifies the integers 1..N as unit, prime or composite
// using an incremental sieve: each candidate is trial-divided by the primes
// already discovered, in ascending order.
//
// The package is pure computation. It knows nothing about consoles, colors
// or layout; callers receive each classification through a visit callback
// and decide how to present it (see package render).
//
// # Ordering
//
// The early exit in Scan relies on the prime set being iterated in
// ascending order. Set maintains that order on every insert, so a divisor
// is never skipped: every composite i has a prime factor p with p*p <= i,
// and that factor is reached before the exit condition triggers.
package sieve
