// SPDX-License-Identifier: MIT

// Package transform defines Value, a rigid transform that may depend on a
// scalar time, and its variants:
//
//   - Static:      a fixed matrix; At(t) returns it for every t.
//   - TimeVarying: a user function; At(t) returns fn(t).
//   - Sampled:     timestamped position+orientation samples, linearly
//     interpolated in position and slerped in orientation.
//
// Validation
//
//	Validate(policy) returns the value to store on an edge. Static values
//	are checked once, up front. Time-varying values may be defined over an
//	unbounded domain, so their check is deferred: the returned value runs
//	rigid.Check on every sample it produces. Sampled values check every
//	stored sample once.
//
// Evaluation must be pure: At never mutates shared state, and two calls with
// the same time return the same matrix.
//
// New time semantics are added by implementing Value; the graph only ever
// calls At and Validate.
package transform
