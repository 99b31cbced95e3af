// SPDX-License-Identifier: MIT

package survey

// Record is one survey respondent.
//
// Records are values and are treated as immutable once loaded. The position
// of a Record inside the loaded slice is its canonical index (0..N-1); every
// downstream structure refers to respondents by that index.
type Record struct {
	// PeerInfluence is the integer peer influence score.
	PeerInfluence int

	// AgeGroup is a categorical label such as "10-14".
	AgeGroup string

	// SocioeconomicStatus is a categorical label such as "Low".
	SocioeconomicStatus string

	// SmokingPrevalence is the real-valued smoking score.
	SmokingPrevalence float64

	// DrugExperimentation is the real-valued drug experimentation score.
	DrugExperimentation float64
}

// BucketKey is the categorical projection of a Record. Two records can only
// be connected when their keys are equal.
type BucketKey struct {
	AgeGroup            string
	SocioeconomicStatus string
}

// BucketKey returns the (AgeGroup, SocioeconomicStatus) pair of r.
// Complexity: O(1).
func (r Record) BucketKey() BucketKey {
	return BucketKey{AgeGroup: r.AgeGroup, SocioeconomicStatus: r.SocioeconomicStatus}
}
