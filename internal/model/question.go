package model

// QuestionType tags how a question is answered and which validation rule
// applies to it.
type QuestionType string

const (
	MultipleChoice         QuestionType = "multiple_choice"
	FreeText               QuestionType = "free_text"
	YesNoComment           QuestionType = "yes_no_comment"
	MultipleChoicePlusText QuestionType = "multiple_choice_plus_text"
)

// Question is one immutable catalog entry. The catalog is fixed at process
// start; questions are never authored or mutated at runtime.
type Question struct {
	ID           int          `json:"id"`
	SectionID    int          `json:"sectionId"`
	SectionTitle string       `json:"sectionTitle"`
	QuestionText string       `json:"questionText"`
	QuestionType QuestionType `json:"questionType"`
	Options      []string     `json:"options,omitempty"`
	OrderIndex   int          `json:"orderIndex"`
	IsRequired   bool         `json:"isRequired"`
}

// Section groups ten questions around one psychological theme.
type Section struct {
	ID            int    `json:"id"`
	Title         string `json:"title"`
	QuestionCount int    `json:"questionCount"`
}
