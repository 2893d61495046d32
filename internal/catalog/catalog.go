// Package catalog holds the fixed "What Kind of Partner Am I?" question set:
// 5 sections of 10 questions each, IDs 1..50. The table is defined once at
// process start and only read accessors are exposed.
package catalog

import "relationship_mojo_backend/internal/model"

const (
	TotalSections       = 5
	QuestionsPerSection = 10
)

var sections = []model.Section{
	{ID: 1, Title: "Attachment Style", QuestionCount: QuestionsPerSection},
	{ID: 2, Title: "Communication & Conflict Resolution", QuestionCount: QuestionsPerSection},
	{ID: 3, Title: "Emotional Intelligence", QuestionCount: QuestionsPerSection},
	{ID: 4, Title: "Love Language & Expressions of Affection", QuestionCount: QuestionsPerSection},
	{ID: 5, Title: "Values, Goals & Commitment Level", QuestionCount: QuestionsPerSection},
}

// Sections returns the ordered section list.
func Sections() []model.Section {
	out := make([]model.Section, len(sections))
	copy(out, sections)
	return out
}

// SectionByID returns the section definition, or nil for an unknown id.
func SectionByID(sectionID int) *model.Section {
	for _, s := range sections {
		if s.ID == sectionID {
			sec := s
			return &sec
		}
	}
	return nil
}

// QuestionsBySection returns the questions of one section ordered by
// OrderIndex. Unknown sections yield an empty slice.
func QuestionsBySection(sectionID int) []model.Question {
	var out []model.Question
	for _, q := range questions {
		if q.SectionID == sectionID {
			out = append(out, q)
		}
	}
	return out
}

// QuestionByID looks a question up by its global id, or nil if absent.
func QuestionByID(questionID int) *model.Question {
	for _, q := range questions {
		if q.ID == questionID {
			question := q
			return &question
		}
	}
	return nil
}

// TotalQuestions returns the size of the catalog.
func TotalQuestions() int {
	return len(questions)
}

// SectionQuestionCount returns how many questions a section holds.
func SectionQuestionCount(sectionID int) int {
	return len(QuestionsBySection(sectionID))
}
