// Package frame provides the immutable tabular data model: a row Index,
// a named Column of values, and a Table of same-indexed columns.
//
// This package is the foundational layer. All other internal packages
// import frame; frame imports nothing internal. Every value is immutable
// after construction: operations return fresh values and derived entities
// own copies of their backing slices, so concurrent read access needs no
// locking.
//
// Key design constraints:
//   - Label is a sealed union; the core never inspects value types beyond
//     matching it
//   - An Index has exactly one of three representations (explicit list,
//     arithmetic range, fused pair), modeled as a sum type rather than
//     flag fields
//   - Index equality is structural over the label sequence, independent
//     of representation, and Hash is consistent with it
package frame
