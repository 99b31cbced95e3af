// SPDX-License-Identifier: MIT

package survey

// PeerInfluenceTolerance is the largest absolute peer influence difference
// for which two records may still be connected.
const PeerInfluenceTolerance = 2

// Predicate decides whether two distinct records are linked.
// Implementations must be pure and symmetric; the builder relies on both.
type Predicate func(a, b Record) bool

// Connect reports whether a and b are similar:
//
//	|a.PeerInfluence - b.PeerInfluence| <= PeerInfluenceTolerance
//	a.AgeGroup == b.AgeGroup
//	a.SocioeconomicStatus == b.SocioeconomicStatus
//
// The numeric test runs first because it is the cheapest rejection.
// Complexity: O(1) plus the cost of two string comparisons.
func Connect(a, b Record) bool {
	return WithinTolerance(a.PeerInfluence, b.PeerInfluence) &&
		a.AgeGroup == b.AgeGroup &&
		a.SocioeconomicStatus == b.SocioeconomicStatus
}

// WithinTolerance reports whether two peer influence scores are close enough
// to be connected.
func WithinTolerance(p, q int) bool {
	d := p - q
	if d < 0 {
		d = -d
	}

	return d <= PeerInfluenceTolerance
}

// Ensure Connect satisfies Predicate at compile time.
var _ Predicate = Connect
