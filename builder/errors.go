// SPDX-License-Identifier: MIT
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers branch with
//     errors.Is.
//   - Sentinels are never wrapped with formatted strings at definition
//     site; implementations attach context via %w.
//   - Runtime code never panics; validation panics are confined to
//     option constructors (WithX...).
package builder

import "errors"

// ErrNodeCountRange indicates the requested node count n lies outside
// [MinNodeCount, MaxNodeCount].
// Usage: if errors.Is(err, builder.ErrNodeCountRange) { ... }.
var ErrNodeCountRange = errors.New("builder: node count out of range")

// ErrEdgeCountRange indicates the requested edge count m lies outside
// [MinEdgeCount, MaxEdgeCount].
// Usage: if errors.Is(err, builder.ErrEdgeCountRange) { ... }.
var ErrEdgeCountRange = errors.New("builder: edge count out of range")
