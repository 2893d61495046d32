package service

import (
	"testing"

	"relationship_mojo_backend/internal/catalog"
	"relationship_mojo_backend/internal/model"
	"relationship_mojo_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsResponseCompleteMultipleChoice(t *testing.T) {
	resp := model.QuestionResponse{}
	assert.False(t, IsResponseComplete(model.MultipleChoice, resp))

	resp.SelectedOption = model.StringPtr("")
	assert.False(t, IsResponseComplete(model.MultipleChoice, resp))

	resp.SelectedOption = model.StringPtr("Some option")
	assert.True(t, IsResponseComplete(model.MultipleChoice, resp))
}

func TestIsResponseCompleteFreeText(t *testing.T) {
	resp := model.QuestionResponse{}
	assert.False(t, IsResponseComplete(model.FreeText, resp))

	resp.AnswerText = model.StringPtr("   ")
	assert.False(t, IsResponseComplete(model.FreeText, resp), "whitespace-only text is not an answer")

	resp.AnswerText = model.StringPtr("I value honesty above all.")
	assert.True(t, IsResponseComplete(model.FreeText, resp))
}

func TestIsResponseCompleteYesNoComment(t *testing.T) {
	resp := model.QuestionResponse{}
	assert.False(t, IsResponseComplete(model.YesNoComment, resp))

	resp.SelectedOption = model.StringPtr("maybe")
	assert.False(t, IsResponseComplete(model.YesNoComment, resp))

	resp.SelectedOption = model.StringPtr("yes")
	assert.True(t, IsResponseComplete(model.YesNoComment, resp))

	resp.SelectedOption = model.StringPtr("no")
	assert.True(t, IsResponseComplete(model.YesNoComment, resp))

	// Comment stays optional either way.
	resp.ElaborationText = model.StringPtr("because it matters")
	assert.True(t, IsResponseComplete(model.YesNoComment, resp))
}

func TestIsResponseCompleteMultipleChoicePlusText(t *testing.T) {
	resp := model.QuestionResponse{}
	assert.False(t, IsResponseComplete(model.MultipleChoicePlusText, resp))

	resp.SelectedOption = model.StringPtr("Quality time")
	assert.True(t, IsResponseComplete(model.MultipleChoicePlusText, resp))

	// "other" demands a non-empty elaboration.
	resp.SelectedOption = model.StringPtr(OtherOption)
	resp.ElaborationText = nil
	assert.False(t, IsResponseComplete(model.MultipleChoicePlusText, resp))

	resp.ElaborationText = model.StringPtr("  ")
	assert.False(t, IsResponseComplete(model.MultipleChoicePlusText, resp))

	resp.ElaborationText = model.StringPtr("handwritten letters")
	assert.True(t, IsResponseComplete(model.MultipleChoicePlusText, resp))
}

func TestIsResponseCompleteUnknownType(t *testing.T) {
	resp := model.QuestionResponse{SelectedOption: model.StringPtr("x")}
	assert.False(t, IsResponseComplete(model.QuestionType("mystery"), resp))
}

func TestValidateResponseRequiredGate(t *testing.T) {
	q := catalog.QuestionByID(1)
	require.NotNil(t, q)
	require.Equal(t, model.MultipleChoice, q.QuestionType)

	err := ValidateResponse(q, model.QuestionResponse{QuestionID: q.ID})
	assert.ErrorIs(t, err, util.ErrIncompleteAnswer)

	err = ValidateResponse(q, model.QuestionResponse{
		QuestionID:     q.ID,
		SelectedOption: model.StringPtr(q.Options[0]),
	})
	assert.NoError(t, err)
}

func TestValidateResponseOptionMembership(t *testing.T) {
	q := catalog.QuestionByID(1)
	require.NotNil(t, q)

	err := ValidateResponse(q, model.QuestionResponse{
		QuestionID:     q.ID,
		SelectedOption: model.StringPtr("an option the question never offered"),
	})
	assert.ErrorIs(t, err, util.ErrIncompleteAnswer)
}

func TestValidateResponseOptionalQuestionPasses(t *testing.T) {
	q := &model.Question{
		ID:           999,
		QuestionType: model.FreeText,
		IsRequired:   false,
	}
	assert.NoError(t, ValidateResponse(q, model.QuestionResponse{QuestionID: 999}))
}
