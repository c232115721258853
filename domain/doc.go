// SPDX-License-Identifier: MIT

// Package domain is the value-domain registry shared by every layer of the
// module.
//
// What
//
//   - Scalar: the closed set of eleven value domains (bool, int8..int64,
//     uint8..uint64, float32, float64) expressed as a generic constraint.
//   - Kind: a runtime identifier for each domain, used at the engine boundary
//     where values and containers are type-erased.
//   - Value: the engine's native scalar representation (kind tag + 64-bit
//     payload) with checked Encode/Decode and C-like Cast between kinds.
//   - Index: the engine's native index width and safe narrowing helpers.
//
// Why
//
//	Operator families are written once, generically, and instantiated per
//	domain by the compiler. A domain outside the closed set is a compile-time
//	error, never a runtime one.
//
// Truth predicate
//
//	Truthy reports whether a value counts as "true" when a container is used
//	as a value mask: false/zero is falsy, everything else (NaN included) is
//	truthy.
package domain
