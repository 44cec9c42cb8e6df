package scoring

// ScoreRecord is the guaranteed-shape result of scoring a submission.
// Every field is populated regardless of how well the model cooperated.
type ScoreRecord struct {
	TotalScore          int            `json:"totalScore"`
	Breakdown           map[string]int `json:"breakdown"`
	Feedback            string         `json:"feedback"`
	Strengths           []string       `json:"strengths"`
	Improvements        []string       `json:"improvements"`
	KeyPointsCovered    []string       `json:"keyPointsCovered,omitempty"`
	MissedOpportunities []string       `json:"missedOpportunities,omitempty"`
	OverallAssessment   string         `json:"overallAssessment,omitempty"`
	SpeakerAnalyzed     string         `json:"speakerAnalyzed,omitempty"`
	Grade               string         `json:"grade"`

	// Degraded marks fallback-path extraction. Observability only, never
	// surfaced to the caller as a failure.
	Degraded bool `json:"-"`
}

// AnswerRequest scores a structured question+answer pair.
type AnswerRequest struct {
	Question       string   `json:"question"`
	Answer         string   `json:"answer"`
	ExpectedPoints []string `json:"expectedPoints,omitempty"`
	QuestionID     int      `json:"questionId,omitempty"`
	Username       string   `json:"username,omitempty"`
}

// TranscriptRequest scores a freeform transcript.
type TranscriptRequest struct {
	Transcript string `json:"transcript"`
	Username   string `json:"username,omitempty"`
}

// AnswerResult is the answer-mode response payload: the score record plus
// echoes of the input for client convenience.
type AnswerResult struct {
	ScoreRecord
	Question             string `json:"question"`
	Answer               string `json:"answer"`
	QuestionID           int    `json:"questionId,omitempty"`
	Username             string `json:"username,omitempty"`
	LeaderboardSubmitted bool   `json:"leaderboardSubmitted"`
	Timestamp            string `json:"timestamp"`
}

// TranscriptResult is the transcript-mode response payload.
type TranscriptResult struct {
	ScoreRecord
	Username             string `json:"username,omitempty"`
	LeaderboardSubmitted bool   `json:"leaderboardSubmitted"`
	Timestamp            string `json:"timestamp"`
}
