package service

import (
	"strings"
	"testing"

	"relationship_mojo_backend/internal/model"
	"relationship_mojo_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleInput() model.AnalysisInput {
	return model.AnalysisInput{
		UserID:              "user-42",
		CompletionTimestamp: "2026-01-15T10:30:00Z",
		Demographics: model.UserDemographics{
			Age:                "25-34",
			RelationshipStatus: "single",
		},
		Responses: []model.QuestionResponse{
			{
				SectionID:      1,
				SectionTitle:   "Attachment Style",
				QuestionID:     1,
				QuestionText:   "When you start developing feelings for someone, what's your typical first instinct?",
				QuestionType:   "multiple_choice",
				SelectedOption: model.StringPtr("Excitement about the possibilities"),
			},
			{
				SectionID:    1,
				SectionTitle: "Attachment Style",
				QuestionID:   2,
				QuestionText: "Describe a time you felt secure in a relationship.",
				QuestionType: "free_text",
				AnswerText:   model.StringPtr("When we could be apart without worry."),
			},
		},
	}
}

func TestConstructAnalysisPromptIsDeterministic(t *testing.T) {
	input := sampleInput()

	first, err := ConstructAnalysisPrompt(input)
	require.NoError(t, err)
	second, err := ConstructAnalysisPrompt(input)
	require.NoError(t, err)

	assert.Equal(t, first, second, "same submission must yield a byte-identical prompt")
}

func TestConstructAnalysisPromptContainsAllResponses(t *testing.T) {
	input := sampleInput()
	prompt, err := ConstructAnalysisPrompt(input)
	require.NoError(t, err)

	for _, r := range input.Responses {
		assert.Contains(t, prompt, r.QuestionText)
	}
	assert.Contains(t, prompt, "Excitement about the possibilities")
	assert.Contains(t, prompt, "When we could be apart without worry.")
	assert.Contains(t, prompt, `"userId": "user-42"`)
	assert.Contains(t, prompt, `"completionTimestamp": "2026-01-15T10:30:00Z"`)
}

func TestConstructAnalysisPromptStructure(t *testing.T) {
	prompt, err := ConstructAnalysisPrompt(sampleInput())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(prompt, "You are Relationship Mojo"))
	assert.Contains(t, prompt, "THEORETICAL FRAMEWORK & KNOWLEDGE BASE")
	assert.Contains(t, prompt, "# Your Personalized Partner Profile")
	assert.Contains(t, prompt, "## Recommendations")

	// The serialized submission sits between preamble and protocol body.
	payloadStart := strings.Index(prompt, "{")
	bodyStart := strings.Index(prompt, "THEORETICAL FRAMEWORK")
	require.Greater(t, payloadStart, 0)
	assert.Less(t, payloadStart, bodyStart)
}

func TestConstructAnalysisPromptEmptyResponses(t *testing.T) {
	input := sampleInput()
	input.Responses = nil

	_, err := ConstructAnalysisPrompt(input)
	assert.ErrorIs(t, err, util.ErrNoResponses)
}

func TestConstructAnalysisPromptNilOptionalFields(t *testing.T) {
	input := sampleInput()
	input.Responses[0].AnswerText = nil
	input.Responses[0].ElaborationText = nil

	prompt, err := ConstructAnalysisPrompt(input)
	require.NoError(t, err)
	assert.Contains(t, prompt, `"answer_text": null`)
}

func TestSanitizeResponsesTrimsAndDrops(t *testing.T) {
	in := []model.QuestionResponse{
		{QuestionID: 1, AnswerText: model.StringPtr("  padded  ")},
		{QuestionID: 2, AnswerText: model.StringPtr("   ")},
		{QuestionID: 3, ElaborationText: model.StringPtr("\tkept\n")},
	}

	out := SanitizeResponses(in)
	require.Len(t, out, 3)
	assert.Equal(t, "padded", *out[0].AnswerText)
	assert.Nil(t, out[1].AnswerText)
	assert.Equal(t, "kept", *out[2].ElaborationText)

	// Input is left untouched.
	assert.Equal(t, "  padded  ", *in[0].AnswerText)
}
