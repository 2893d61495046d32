package model

// QuestionResponse is one user-submitted answer. Question identity is
// denormalized on purpose: a stored response stays self-describing even if
// the catalog changes later. Keyed by QuestionID within a submission;
// re-answering replaces the prior response.
type QuestionResponse struct {
	SectionID       int     `json:"section_id"`
	SectionTitle    string  `json:"section_title"`
	QuestionID      int     `json:"question_id"`
	QuestionText    string  `json:"question_text"`
	QuestionType    string  `json:"question_type"`
	SelectedOption  *string `json:"selected_option"`
	AnswerText      *string `json:"answer_text"`
	ElaborationText *string `json:"elaboration_text"`
}

// UserDemographics holds optional self-reported profile fields. All fields
// are optional; absence is an empty struct, never an error.
type UserDemographics struct {
	Age                   string `json:"age,omitempty"`
	Gender                string `json:"gender,omitempty"`
	SexualOrientation     string `json:"sexualOrientation,omitempty"`
	Race                  string `json:"race,omitempty"`
	RelationshipStatus    string `json:"relationshipStatus,omitempty"`
	PreviousRelationships string `json:"previousRelationships,omitempty"`
	RelationshipGoals     string `json:"relationshipGoals,omitempty"`
	AdditionalInfo        string `json:"additionalInfo,omitempty"`
}

// AnalysisInput is the read-only submission snapshot handed to the prompt
// constructor once an assessment pass completes.
type AnalysisInput struct {
	UserID              string             `json:"userId"`
	CompletionTimestamp string             `json:"completionTimestamp"`
	Demographics        UserDemographics   `json:"demographics"`
	Responses           []QuestionResponse `json:"responses"`
}

// AnalysisResult is the outcome of one analysis invocation. Either Analysis
// carries the full markdown report, or Error names the terminal failure.
// TokensUsed and ProcessingTime are observational telemetry only.
type AnalysisResult struct {
	Success          bool   `json:"success"`
	Analysis         string `json:"analysis,omitempty"`
	Error            string `json:"error,omitempty"`
	TokensUsed       int    `json:"tokensUsed,omitempty"`
	ProcessingTimeMs int64  `json:"processingTime,omitempty"`
}

func StringPtr(s string) *string {
	return &s
}
