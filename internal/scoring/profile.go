package scoring

// MaxScore is the total point budget every profile distributes.
const MaxScore = 5000

// Category is one scored dimension and its maximum sub-score.
type Category struct {
	Name string
	Max  int
}

// Profile is a fixed table of categories whose maxima sum to MaxScore.
// Profiles are defined at configuration time and never mutated.
type Profile struct {
	Name       string
	Categories []Category
}

// Max returns the maximum sub-score for a category, or false if the
// category is not part of the profile.
func (p Profile) Max(name string) (int, bool) {
	for _, c := range p.Categories {
		if c.Name == name {
			return c.Max, true
		}
	}
	return 0, false
}

// AnswerProfile scores a structured question+answer pair.
var AnswerProfile = Profile{
	Name: "answer",
	Categories: []Category{
		{Name: "contentQuality", Max: 1500},
		{Name: "communication", Max: 1000},
		{Name: "depth", Max: 1000},
		{Name: "professionalism", Max: 750},
		{Name: "impact", Max: 750},
	},
}

// TranscriptProfile scores a freeform speech transcript.
var TranscriptProfile = Profile{
	Name: "transcript",
	Categories: []Category{
		{Name: "communicationSkills", Max: 1000},
		{Name: "contentQuality", Max: 1000},
		{Name: "engagement", Max: 1000},
		{Name: "professionalism", Max: 1000},
		{Name: "leadership", Max: 1000},
	},
}

// GradeFor maps a total score to a letter grade. Thresholds are inclusive
// lower bounds. The grade is always derived locally from the clamped total,
// never taken from model output.
func GradeFor(total int) string {
	switch {
	case total >= 4000:
		return "A"
	case total >= 3500:
		return "B"
	case total >= 3000:
		return "C"
	case total >= 2500:
		return "D"
	default:
		return "F"
	}
}
