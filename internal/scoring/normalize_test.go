package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_StrictPath(t *testing.T) {
	raw := `Here is my evaluation:
{
  "totalScore": 4400,
  "breakdown": {
    "communicationSkills": 900,
    "contentQuality": 880,
    "engagement": 870,
    "professionalism": 890,
    "leadership": 860
  },
  "feedback": "Strong performance overall.",
  "strengths": ["clear articulation"],
  "improvements": ["ask more questions"],
  "speakerAnalyzed": "Speaker 1"
}
By the way, some would say this is 2000 out of 5000.`

	rec := Normalize(raw, TranscriptProfile)

	assert.Equal(t, 4400, rec.TotalScore, "strict path must win over the out-of-5000 phrase")
	assert.Equal(t, "A", rec.Grade)
	assert.Equal(t, 900, rec.Breakdown["communicationSkills"])
	assert.Equal(t, "Strong performance overall.", rec.Feedback)
	assert.Equal(t, []string{"clear articulation"}, rec.Strengths)
	assert.Equal(t, "Speaker 1", rec.SpeakerAnalyzed)
	assert.False(t, rec.Degraded)
}

func TestNormalize_StrictPathRecomputesGrade(t *testing.T) {
	// The model claims grade A for a C-range score. The local thresholds win.
	raw := `{"totalScore": 3100, "breakdown": {}, "feedback": "ok", "grade": "A"}`

	rec := Normalize(raw, TranscriptProfile)

	assert.Equal(t, 3100, rec.TotalScore)
	assert.Equal(t, "C", rec.Grade)
}

func TestNormalize_StrictPathClampsBreakdown(t *testing.T) {
	raw := `{
  "totalScore": 9999,
  "breakdown": {"contentQuality": 2500, "communication": -50},
  "feedback": "inflated"
}`

	rec := Normalize(raw, AnswerProfile)

	assert.Equal(t, 5000, rec.TotalScore)
	assert.Equal(t, "A", rec.Grade)
	assert.Equal(t, 1500, rec.Breakdown["contentQuality"], "clamped to category max")
	assert.Equal(t, 0, rec.Breakdown["communication"], "negative clamped to zero")
}

func TestNormalize_FirstParseableBlockWins(t *testing.T) {
	raw := `{"not json` + "\n" +
		`{"broken": }` + "\n" +
		`{"totalScore": 4200, "feedback": "second block parses"}` + "\n" +
		`{"totalScore": 1000, "feedback": "ignored"}`

	rec := Normalize(raw, TranscriptProfile)

	assert.Equal(t, 4200, rec.TotalScore)
	assert.Equal(t, "second block parses", rec.Feedback)
}

func TestNormalize_BlockWithoutTotalScoreIsSkipped(t *testing.T) {
	raw := `{"feedback": "no score here"} Your score is 3600 out of 5000`

	rec := Normalize(raw, TranscriptProfile)

	assert.Equal(t, 3600, rec.TotalScore)
	assert.True(t, rec.Degraded)
}

func TestNormalize_FallbackProportionality(t *testing.T) {
	rec := Normalize("Your score is 4000 out of 5000", TranscriptProfile)

	require.True(t, rec.Degraded)
	assert.Equal(t, 4000, rec.TotalScore)
	assert.Equal(t, "A", rec.Grade)
	for _, c := range TranscriptProfile.Categories {
		assert.Equal(t, 800, rec.Breakdown[c.Name], "category %s", c.Name)
	}
}

func TestNormalize_FallbackAnswerProfileWeights(t *testing.T) {
	rec := Normalize("I would rate this 4000/5000.", AnswerProfile)

	assert.Equal(t, 4000, rec.TotalScore)
	assert.Equal(t, 1200, rec.Breakdown["contentQuality"])
	assert.Equal(t, 800, rec.Breakdown["communication"])
	assert.Equal(t, 800, rec.Breakdown["depth"])
	assert.Equal(t, 600, rec.Breakdown["professionalism"])
	assert.Equal(t, 600, rec.Breakdown["impact"])
}

func TestNormalize_DefaultOnTotalFailure(t *testing.T) {
	rec := Normalize("The model rambled and gave no usable score.", TranscriptProfile)

	assert.Equal(t, 3000, rec.TotalScore)
	assert.Equal(t, "C", rec.Grade)
	assert.Equal(t, "The model rambled and gave no usable score.", rec.Feedback)
	assert.Equal(t, []string{"Analysis provided in feedback"}, rec.Strengths)
	assert.Equal(t, []string{"See detailed feedback for improvement areas"}, rec.Improvements)
	assert.Equal(t, "Primary speaker in transcript", rec.SpeakerAnalyzed)
}

func TestNormalize_FallbackPreservesRawFeedback(t *testing.T) {
	raw := "Great answer. Scored 4100 out of 5000. Keep practicing STAR structure."

	rec := Normalize(raw, AnswerProfile)

	assert.Equal(t, 4100, rec.TotalScore)
	assert.Equal(t, raw, rec.Feedback, "no information is lost in degraded mode")
	assert.Equal(t, "Response analyzed - see detailed feedback", rec.OverallAssessment)
}

func TestNormalize_NeverPartial(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"no score anywhere",
		"{",
		"}{",
		`{"totalScore": "not a number"}`,
		`{"totalScore": 3200`,
		strings.Repeat("{}", 1000),
		"score: -100 / 5000",
		"99999 out of 5000",
		"unbalanced \"quote { in string }",
	}

	for _, profile := range []Profile{AnswerProfile, TranscriptProfile} {
		for _, in := range inputs {
			rec := Normalize(in, profile)

			assert.GreaterOrEqual(t, rec.TotalScore, 0, "input %q", in)
			assert.LessOrEqual(t, rec.TotalScore, MaxScore, "input %q", in)
			assert.NotEmpty(t, rec.Grade, "input %q", in)
			assert.NotEmpty(t, rec.Strengths, "input %q", in)
			assert.NotEmpty(t, rec.Improvements, "input %q", in)
			require.Len(t, rec.Breakdown, len(profile.Categories), "input %q", in)
			for _, c := range profile.Categories {
				assert.GreaterOrEqual(t, rec.Breakdown[c.Name], 0, "input %q category %s", in, c.Name)
				assert.LessOrEqual(t, rec.Breakdown[c.Name], c.Max, "input %q category %s", in, c.Name)
			}
		}
	}
}

func TestNormalize_ClampCeiling(t *testing.T) {
	rec := Normalize("An easy 99999 / 5000 from me.", TranscriptProfile)

	assert.Equal(t, 5000, rec.TotalScore)
	assert.Equal(t, "A", rec.Grade)
	for _, c := range TranscriptProfile.Categories {
		assert.LessOrEqual(t, rec.Breakdown[c.Name], c.Max)
	}
}

func TestJSONBlocks(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"single", `x {"a":1} y`, []string{`{"a":1}`}},
		{"nested", `{"a":{"b":2}}`, []string{`{"a":{"b":2}}`}},
		{"two blocks", `{"a":1} and {"b":2}`, []string{`{"a":1}`, `{"b":2}`}},
		{"brace in string", `{"a":"}"}`, []string{`{"a":"}"}`}},
		{"escaped quote", `{"a":"\"}"}`, []string{`{"a":"\"}"}`}},
		{"unbalanced", `{"a":1`, nil},
		{"none", "plain text", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, jsonBlocks(tt.in))
		})
	}
}

func TestGradeFor(t *testing.T) {
	tests := []struct {
		total int
		want  string
	}{
		{4200, "A"},
		{3600, "B"},
		{3100, "C"},
		{2600, "D"},
		{1000, "F"},
		{4000, "A"},
		{3500, "B"},
		{3000, "C"},
		{2500, "D"},
		{2499, "F"},
		{0, "F"},
		{5000, "A"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, GradeFor(tt.total), "total %d", tt.total)
	}
}
