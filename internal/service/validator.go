package service

import (
	"strings"

	"relationship_mojo_backend/internal/model"
	"relationship_mojo_backend/internal/util"
)

// OtherOption is the sentinel choice that requires an elaboration on
// multiple_choice_plus_text questions.
const OtherOption = "other"

func optionValue(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func trimmedValue(p *string) string {
	if p == nil {
		return ""
	}
	return strings.TrimSpace(*p)
}

// IsResponseComplete decides whether a candidate answer is submittable for
// its question type. Validation is a binary gate; there are no warning-only
// states.
func IsResponseComplete(questionType model.QuestionType, resp model.QuestionResponse) bool {
	switch questionType {
	case model.MultipleChoice:
		return optionValue(resp.SelectedOption) != ""
	case model.FreeText:
		return trimmedValue(resp.AnswerText) != ""
	case model.YesNoComment:
		selected := optionValue(resp.SelectedOption)
		return selected == "yes" || selected == "no"
	case model.MultipleChoicePlusText:
		selected := optionValue(resp.SelectedOption)
		if selected == "" {
			return false
		}
		if selected == OtherOption && trimmedValue(resp.ElaborationText) == "" {
			return false
		}
		return true
	default:
		return false
	}
}

// ValidateResponse gates a response against its catalog question: required
// questions must be complete, and a discrete choice must be one of the
// question's options. Failures surface as ErrIncompleteAnswer, the single
// user-facing "this question is required" message.
func ValidateResponse(q *model.Question, resp model.QuestionResponse) error {
	if !q.IsRequired {
		return nil
	}

	if !IsResponseComplete(q.QuestionType, resp) {
		return util.ErrIncompleteAnswer
	}

	// Option membership only applies to questions that carry an option list.
	if q.QuestionType == model.MultipleChoice {
		selected := optionValue(resp.SelectedOption)
		for _, opt := range q.Options {
			if opt == selected {
				return nil
			}
		}
		return util.ErrIncompleteAnswer
	}

	return nil
}
