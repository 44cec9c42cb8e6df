// Package questions serves the stock interview question catalog. The
// catalog is static configuration data, held in memory.
package questions

import (
	"math/rand"
	"strings"
)

type Question struct {
	ID             int      `json:"id"`
	Question       string   `json:"question"`
	Category       string   `json:"category"`
	ExpectedPoints []string `json:"expectedPoints"`
}

var stock = []Question{
	{
		ID:             1,
		Question:       "Tell me about yourself and your background.",
		Category:       "Introduction",
		ExpectedPoints: []string{"Professional background", "Key achievements", "Current role/goals", "Personal motivation"},
	},
	{
		ID:             2,
		Question:       "Describe a challenging project you worked on and how you overcame the obstacles.",
		Category:       "Problem Solving",
		ExpectedPoints: []string{"Clear problem identification", "Solution approach", "Implementation steps", "Results achieved"},
	},
	{
		ID:             3,
		Question:       "How do you handle working under pressure and tight deadlines?",
		Category:       "Stress Management",
		ExpectedPoints: []string{"Specific strategies", "Prioritization methods", "Time management", "Examples of success"},
	},
	{
		ID:             4,
		Question:       "Describe a time when you had to work with a difficult team member. How did you handle it?",
		Category:       "Teamwork",
		ExpectedPoints: []string{"Conflict resolution", "Communication skills", "Empathy", "Professional approach"},
	},
	{
		ID:             5,
		Question:       "What are your greatest strengths and how do they apply to this role?",
		Category:       "Self-Assessment",
		ExpectedPoints: []string{"Self-awareness", "Relevant skills", "Specific examples", "Role alignment"},
	},
	{
		ID:             6,
		Question:       "Tell me about a time you had to learn something completely new. How did you approach it?",
		Category:       "Learning Ability",
		ExpectedPoints: []string{"Learning strategy", "Resourcefulness", "Persistence", "Application of knowledge"},
	},
	{
		ID:             7,
		Question:       "How do you prioritize tasks when everything seems urgent?",
		Category:       "Time Management",
		ExpectedPoints: []string{"Decision-making process", "Criteria for prioritization", "Communication with stakeholders", "Practical examples"},
	},
	{
		ID:             8,
		Question:       "Describe a situation where you had to give difficult feedback to someone.",
		Category:       "Leadership",
		ExpectedPoints: []string{"Preparation approach", "Delivery method", "Empathy and respect", "Follow-up actions"},
	},
	{
		ID:             9,
		Question:       "What motivates you in your work, and how do you stay engaged during routine tasks?",
		Category:       "Motivation",
		ExpectedPoints: []string{"Intrinsic motivation", "Goal alignment", "Engagement strategies", "Personal drive"},
	},
	{
		ID:             10,
		Question:       "Where do you see yourself in 5 years, and how does this opportunity align with your goals?",
		Category:       "Future Vision",
		ExpectedPoints: []string{"Clear vision", "Realistic goals", "Career planning", "Role relevance"},
	},
}

// All returns a copy of the full catalog.
func All() []Question {
	out := make([]Question, len(stock))
	copy(out, stock)
	return out
}

// Categories returns the distinct categories in catalog order.
func Categories() []string {
	seen := make(map[string]bool, len(stock))
	var out []string
	for _, q := range stock {
		if !seen[q.Category] {
			seen[q.Category] = true
			out = append(out, q.Category)
		}
	}
	return out
}

// ByID returns the question with the given id, or false.
func ByID(id int) (Question, bool) {
	for _, q := range stock {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// Select filters by category substring (case-insensitive), then takes a
// subset of count questions, shuffled when random is set.
func Select(count int, category string, random bool) []Question {
	qs := All()

	if category != "" {
		filtered := qs[:0]
		for _, q := range qs {
			if strings.Contains(strings.ToLower(q.Category), strings.ToLower(category)) {
				filtered = append(filtered, q)
			}
		}
		qs = filtered
	}

	if count <= 0 || count > len(qs) {
		count = len(qs)
	}

	if random {
		rand.Shuffle(len(qs), func(i, j int) {
			qs[i], qs[j] = qs[j], qs[i]
		})
	}

	return qs[:count]
}
