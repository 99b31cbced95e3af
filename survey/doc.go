// SPDX-License-Identifier: MIT

// Package survey defines the per-individual attribute tuple loaded from a
// youth survey and the similarity rule that decides whether two respondents
// are linked in the peer network.
//
// What
//
//   - Record: one respondent (peer influence score, age group, socioeconomic
//     status, smoking prevalence, drug experimentation).
//   - Connect: the canonical Predicate. Two records are similar iff their
//     peer influence scores differ by at most PeerInfluenceTolerance and both
//     categorical labels match exactly.
//   - BucketKey: the categorical part of the rule, used by builders that
//     group records before comparing peer influence.
//
// Determinism
//
//	Connect is pure and symmetric: Connect(a,b) == Connect(b,a) for all a, b.
//	It has no error path; every Record is well-typed by construction.
//
// Complexity
//
//   - Connect: O(len(AgeGroup) + len(SocioeconomicStatus)) for the string
//     comparisons, O(1) extra space.
package survey
