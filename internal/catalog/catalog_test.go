package catalog

import (
	"testing"

	"relationship_mojo_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogShape(t *testing.T) {
	sections := Sections()
	require.Len(t, sections, TotalSections)

	for _, s := range sections {
		qs := QuestionsBySection(s.ID)
		assert.Len(t, qs, QuestionsPerSection, "section %d", s.ID)
		assert.Equal(t, QuestionsPerSection, s.QuestionCount)
	}

	assert.Equal(t, 50, TotalQuestions())
}

func TestQuestionIDsAreSequentialAndUnique(t *testing.T) {
	seen := make(map[int]bool)
	for sectionID := 1; sectionID <= TotalSections; sectionID++ {
		for i, q := range QuestionsBySection(sectionID) {
			assert.False(t, seen[q.ID], "duplicate question id %d", q.ID)
			seen[q.ID] = true

			assert.Equal(t, sectionID, q.SectionID)
			assert.Equal(t, i+1, q.OrderIndex)

			// IDs run 1..50 across sections in order.
			expectedID := (sectionID-1)*QuestionsPerSection + i + 1
			assert.Equal(t, expectedID, q.ID)
		}
	}
	assert.Len(t, seen, 50)
}

func TestQuestionByID(t *testing.T) {
	q := QuestionByID(1)
	require.NotNil(t, q)
	assert.Equal(t, model.MultipleChoice, q.QuestionType)
	assert.NotEmpty(t, q.Options)

	assert.Nil(t, QuestionByID(0))
	assert.Nil(t, QuestionByID(51))
}

func TestSectionByID(t *testing.T) {
	s := SectionByID(1)
	require.NotNil(t, s)
	assert.Equal(t, "Attachment Style", s.Title)

	assert.Nil(t, SectionByID(0))
	assert.Nil(t, SectionByID(6))
}

func TestEveryQuestionHasText(t *testing.T) {
	for id := 1; id <= TotalQuestions(); id++ {
		q := QuestionByID(id)
		require.NotNil(t, q, "question %d missing", id)
		assert.NotEmpty(t, q.QuestionText)
		assert.NotEmpty(t, q.SectionTitle)
		assert.True(t, q.IsRequired)

		switch q.QuestionType {
		case model.MultipleChoice, model.MultipleChoicePlusText:
			assert.NotEmpty(t, q.Options, "question %d should carry options", id)
		}
	}
}
