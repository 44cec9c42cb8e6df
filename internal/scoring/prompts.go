package scoring

import (
	"fmt"
	"strings"
)

// Category descriptions shown to the model under each scoring criterion.
// Keyed by profile name, then category name.
var categoryGuidance = map[string]map[string][]string{
	"answer": {
		"contentQuality": {
			"Directly answers the question asked",
			"Provides specific examples and details",
			"Demonstrates knowledge and understanding",
			"Includes relevant experience or insights",
		},
		"communication": {
			"Clear and articulate expression",
			"Logical structure and flow",
			"Appropriate vocabulary and tone",
			"Easy to follow and understand",
		},
		"depth": {
			"Thoroughly addresses all aspects of the question",
			"Provides sufficient detail and context",
			"Shows depth of thinking and analysis",
			"Covers expected key points",
		},
		"professionalism": {
			"Professional tone and language",
			"Confidence in delivery",
			"Appropriate length (not too brief or verbose)",
			"Maintains focus on the question",
		},
		"impact": {
			"Memorable and engaging response",
			"Shows personality and authenticity",
			"Demonstrates problem-solving ability",
			"Creates positive impression",
		},
	},
	"transcript": {
		"communicationSkills": {
			"Clarity of speech and expression",
			"Use of appropriate vocabulary",
			"Ability to articulate thoughts clearly",
		},
		"contentQuality": {
			"Depth of knowledge demonstrated",
			"Relevance of information shared",
			"Quality of insights provided",
		},
		"engagement": {
			"Active participation in conversation",
			"Asking thoughtful questions",
			"Responding appropriately to others",
		},
		"professionalism": {
			"Professional tone and language",
			"Respect for others in conversation",
			"Meeting etiquette and conduct",
		},
		"leadership": {
			"Taking initiative in discussions",
			"Providing direction or solutions",
			"Demonstrating leadership qualities",
		},
	},
}

// BuildAnswerPrompt constructs the scoring instruction for a question+answer
// pair. Same inputs always produce the same prompt string.
func BuildAnswerPrompt(profile Profile, question, answer string, expectedPoints []string) string {
	points := "Evaluate based on question content and delivery quality"
	if len(expectedPoints) > 0 {
		points = strings.Join(expectedPoints, ", ")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Please analyze this interview question and answer, then calculate a comprehensive score out of %d points based on the following criteria:\n\n", MaxScore)
	fmt.Fprintf(&b, "**Question Asked:**\n%s\n\n", question)
	fmt.Fprintf(&b, "**Expected Key Points (if any):**\n%s\n\n", points)
	fmt.Fprintf(&b, "**Candidate's Answer:**\n%s\n\n", answer)
	b.WriteString(criteriaSection(profile))
	b.WriteString(`**Instructions:**
- Provide a numerical score out of 5000
- Break down the score by each category
- Provide specific feedback with examples from the answer
- Highlight what was done well
- Suggest specific improvements
- Rate the overall interview performance

`)
	b.WriteString(schemaSection(profile, answerSchemaFields))
	return b.String()
}

// BuildTranscriptPrompt constructs the scoring instruction for a freeform
// transcript. Same input always produces the same prompt string.
func BuildTranscriptPrompt(profile Profile, transcript string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Please analyze this transcript and calculate a comprehensive score out of %d points for the person speaking based on the following criteria:\n\n", MaxScore)
	b.WriteString(criteriaSection(profile))
	b.WriteString(`**Instructions:**
- Provide a numerical score out of 5000
- Break down the score by each category
- Provide specific examples from the transcript
- Include constructive feedback for improvement
- If multiple speakers, focus on the primary/main speaker or specify which speaker you're scoring

`)
	fmt.Fprintf(&b, "**Transcript:**\n%s\n\n", transcript)
	b.WriteString(schemaSection(profile, transcriptSchemaFields))
	return b.String()
}

func criteriaSection(profile Profile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**Scoring Criteria (Total: %d points):**\n\n", MaxScore)
	for i, c := range profile.Categories {
		fmt.Fprintf(&b, "%d. **%s (%d points)**\n", i+1, c.Name, c.Max)
		for _, line := range categoryGuidance[profile.Name][c.Name] {
			fmt.Fprintf(&b, "   - %s\n", line)
		}
		b.WriteString("\n")
	}
	return b.String()
}

var answerSchemaFields = []string{
	`"feedback": "Detailed feedback with specific examples from the answer"`,
	`"strengths": ["List of specific strengths demonstrated"]`,
	`"improvements": ["List of specific areas for improvement"]`,
	`"keyPointsCovered": ["Which expected points were addressed"]`,
	`"missedOpportunities": ["What could have been added or improved"]`,
	`"overallAssessment": "Brief overall assessment of the response"`,
	`"grade": "[Letter grade A-F based on performance]"`,
}

var transcriptSchemaFields = []string{
	`"feedback": "Detailed feedback with specific examples"`,
	`"strengths": ["List of key strengths"]`,
	`"improvements": ["List of areas for improvement"]`,
	`"speakerAnalyzed": "Which speaker was primarily analyzed"`,
}

// schemaSection emits a literal example of the required response shape so
// the strict-parse path has a realistic chance of succeeding.
func schemaSection(profile Profile, fields []string) string {
	var b strings.Builder
	b.WriteString("**Please respond in this exact JSON format:**\n{\n")
	fmt.Fprintf(&b, "  \"totalScore\": [number out of %d],\n", MaxScore)
	b.WriteString("  \"breakdown\": {\n")
	for i, c := range profile.Categories {
		sep := ","
		if i == len(profile.Categories)-1 {
			sep = ""
		}
		fmt.Fprintf(&b, "    \"%s\": [score out of %d]%s\n", c.Name, c.Max, sep)
	}
	b.WriteString("  },\n")
	for i, f := range fields {
		sep := ","
		if i == len(fields)-1 {
			sep = ""
		}
		fmt.Fprintf(&b, "  %s%s\n", f, sep)
	}
	b.WriteString("}\n")
	return b.String()
}
