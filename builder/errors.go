// SPDX-License-Identifier: MIT
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context is attached with %w at the failure site.
//   • Option constructors panic on nil arguments; Build never panics on
//     data, it returns one of these sentinels.

package builder

import "errors"

// ErrOptionViolation indicates an invalid option value or an incompatible
// combination of options (e.g. a custom predicate with StrategyBucketed).
var ErrOptionViolation = errors.New("builder: invalid option supplied")

// ErrDuplicateNodeID indicates the ID scheme produced the same vertex ID for
// two different record indices, which would break the index ↔ node bijection.
var ErrDuplicateNodeID = errors.New("builder: duplicate node id")

// ErrEmptyNodeID indicates the ID scheme produced an empty vertex ID.
var ErrEmptyNodeID = errors.New("builder: empty node id")

// ErrInsertEdge indicates the graph rejected an edge produced by the scan.
var ErrInsertEdge = errors.New("builder: edge insertion failed")
