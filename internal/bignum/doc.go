// Package bignum implements limb-based arbitrary-precision integer, unsigned
// integer, and floating-point arithmetic backing Ouros's LongInt object kind,
// which models Python's unbounded int type.
package bignum
