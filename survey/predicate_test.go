package survey_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/peernet/survey"
)

// respondent is a compact constructor for test records.
func respondent(peer int, age, ses string) survey.Record {
	return survey.Record{PeerInfluence: peer, AgeGroup: age, SocioeconomicStatus: ses}
}

func TestConnect_Scenarios(t *testing.T) {
	cases := []struct {
		name string
		a, b survey.Record
		want bool
	}{
		{"adjacent scores same groups", respondent(7, "10-14", "Low"), respondent(8, "10-14", "Low"), true},
		{"equal scores", respondent(5, "15-19", "High"), respondent(5, "15-19", "High"), true},
		{"difference at tolerance", respondent(1, "10-14", "Low"), respondent(3, "10-14", "Low"), true},
		{"difference above tolerance", respondent(1, "10-14", "Low"), respondent(4, "10-14", "Low"), false},
		{"negative difference above tolerance", respondent(9, "10-14", "Low"), respondent(6, "10-14", "Low"), false},
		{"age group mismatch", respondent(7, "10-14", "Low"), respondent(7, "15-19", "Low"), false},
		{"status mismatch", respondent(7, "10-14", "Low"), respondent(7, "10-14", "Middle"), false},
		{"labels are case sensitive", respondent(7, "10-14", "Low"), respondent(7, "10-14", "low"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, survey.Connect(tc.a, tc.b))
		})
	}
}

// TestConnect_Symmetric checks Connect(a,b) == Connect(b,a) over random pairs.
func TestConnect_Symmetric(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	ages := []string{"10-14", "15-19", "20-24"}
	statuses := []string{"Low", "Middle", "High"}
	gen := func() survey.Record {
		return survey.Record{
			PeerInfluence:       r.Intn(11),
			AgeGroup:            ages[r.Intn(len(ages))],
			SocioeconomicStatus: statuses[r.Intn(len(statuses))],
			SmokingPrevalence:   r.Float64() * 100,
			DrugExperimentation: r.Float64() * 100,
		}
	}
	for i := 0; i < 2000; i++ {
		a, b := gen(), gen()
		assert.Equal(t, survey.Connect(a, b), survey.Connect(b, a), "pair %+v / %+v", a, b)
	}
}

func TestConnect_IgnoresBehaviorFields(t *testing.T) {
	a := survey.Record{PeerInfluence: 4, AgeGroup: "10-14", SocioeconomicStatus: "Low", SmokingPrevalence: 1}
	b := survey.Record{PeerInfluence: 4, AgeGroup: "10-14", SocioeconomicStatus: "Low", DrugExperimentation: 99}
	assert.True(t, survey.Connect(a, b))
}

func TestRecord_BucketKey(t *testing.T) {
	a := respondent(1, "10-14", "Low")
	b := respondent(9, "10-14", "Low")
	c := respondent(1, "10-14", "High")

	assert.Equal(t, a.BucketKey(), b.BucketKey())
	assert.NotEqual(t, a.BucketKey(), c.BucketKey())
	assert.Equal(t, survey.BucketKey{AgeGroup: "10-14", SocioeconomicStatus: "Low"}, a.BucketKey())
}

func TestWithinTolerance(t *testing.T) {
	assert.True(t, survey.WithinTolerance(0, survey.PeerInfluenceTolerance))
	assert.True(t, survey.WithinTolerance(survey.PeerInfluenceTolerance, 0))
	assert.False(t, survey.WithinTolerance(0, survey.PeerInfluenceTolerance+1))
	assert.True(t, survey.WithinTolerance(-1, 1))
}
