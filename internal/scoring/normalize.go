package scoring

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
)

// scorePattern matches "<number> / 5000" or "<number> out of 5000".
var scorePattern = regexp.MustCompile(`(?i)(\d+)\s*(?:/\s*5000|out of 5000)`)

// parsedScore is the shape the model is asked to produce. TotalScore is a
// pointer so presence can be distinguished from zero.
type parsedScore struct {
	TotalScore          *float64           `json:"totalScore"`
	Breakdown           map[string]float64 `json:"breakdown"`
	Feedback            string             `json:"feedback"`
	Strengths           []string           `json:"strengths"`
	Improvements        []string           `json:"improvements"`
	KeyPointsCovered    []string           `json:"keyPointsCovered"`
	MissedOpportunities []string           `json:"missedOpportunities"`
	OverallAssessment   string             `json:"overallAssessment"`
	SpeakerAnalyzed     string             `json:"speakerAnalyzed"`
}

// Normalize turns raw model output into a guaranteed-shape ScoreRecord.
// It never fails: the strict JSON path is tried first, then the regex
// fallback, then hard defaults. The grade is always recomputed locally from
// the clamped total, even when the model supplied one.
func Normalize(raw string, profile Profile) ScoreRecord {
	if rec, ok := strictParse(raw, profile); ok {
		return finalize(rec, profile)
	}
	return finalize(fallbackParse(raw, profile), profile)
}

// strictParse tries each balanced {...} block in order and uses the first
// one that parses and carries a numeric totalScore.
func strictParse(raw string, profile Profile) (ScoreRecord, bool) {
	for _, block := range jsonBlocks(raw) {
		var p parsedScore
		if err := json.Unmarshal([]byte(block), &p); err != nil {
			continue
		}
		if p.TotalScore == nil {
			continue
		}

		breakdown := make(map[string]int, len(profile.Categories))
		for _, c := range profile.Categories {
			breakdown[c.Name] = int(math.Round(p.Breakdown[c.Name]))
		}

		return ScoreRecord{
			TotalScore:          int(math.Round(*p.TotalScore)),
			Breakdown:           breakdown,
			Feedback:            p.Feedback,
			Strengths:           orEmpty(p.Strengths),
			Improvements:        orEmpty(p.Improvements),
			KeyPointsCovered:    p.KeyPointsCovered,
			MissedOpportunities: p.MissedOpportunities,
			OverallAssessment:   p.OverallAssessment,
			SpeakerAnalyzed:     p.SpeakerAnalyzed,
		}, true
	}
	return ScoreRecord{}, false
}

// fallbackParse synthesizes a record when no parseable JSON block exists.
// The score comes from a "<n> out of 5000" phrase, defaulting to 3000, and
// the breakdown is distributed in proportion to each category's weight.
// The full raw text is preserved as feedback so nothing is lost, and the
// list fields carry explicit degraded-mode markers rather than empty lists.
func fallbackParse(raw string, profile Profile) ScoreRecord {
	total := 3000
	if m := scorePattern.FindStringSubmatch(raw); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			total = n
		}
	}

	breakdown := make(map[string]int, len(profile.Categories))
	for _, c := range profile.Categories {
		breakdown[c.Name] = int(math.Round(float64(total) * float64(c.Max) / float64(MaxScore)))
	}

	rec := ScoreRecord{
		TotalScore:   total,
		Breakdown:    breakdown,
		Feedback:     raw,
		Strengths:    []string{"Analysis provided in feedback"},
		Improvements: []string{"See detailed feedback for improvement areas"},
		Degraded:     true,
	}

	switch profile.Name {
	case "answer":
		rec.KeyPointsCovered = []string{"Analysis provided in feedback"}
		rec.MissedOpportunities = []string{"See detailed feedback"}
		rec.OverallAssessment = "Response analyzed - see detailed feedback"
	case "transcript":
		rec.SpeakerAnalyzed = "Primary speaker in transcript"
	}

	return rec
}

// finalize clamps the total to [0, MaxScore] and each breakdown entry to
// its category maximum, then derives the grade from the clamped total.
func finalize(rec ScoreRecord, profile Profile) ScoreRecord {
	rec.TotalScore = clamp(rec.TotalScore, 0, MaxScore)
	for _, c := range profile.Categories {
		rec.Breakdown[c.Name] = clamp(rec.Breakdown[c.Name], 0, c.Max)
	}
	rec.Grade = GradeFor(rec.TotalScore)
	return rec
}

// jsonBlocks returns the balanced top-level {...} substrings of s in order
// of appearance, respecting string literals and escapes.
func jsonBlocks(s string) []string {
	var blocks []string
	depth := 0
	start := -1
	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
		ch := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			if depth > 0 {
				inString = true
			}
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			if depth > 0 {
				depth--
				if depth == 0 {
					blocks = append(blocks, s[start:i+1])
				}
			}
		}
	}
	return blocks
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
