package service

import (
	"context"
	"testing"

	"relationship_mojo_backend/internal/config"
	"relationship_mojo_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionOnlyService() *AssessmentService {
	cfg := &config.Config{}
	cfg.Assessment.AutoAdvanceDelayMs = 0
	cfg.Cache.AnalysisTTLHours = 24
	return NewAssessmentService(nil, nil, nil, cfg)
}

func TestSessionIsPerSubject(t *testing.T) {
	s := newSessionOnlyService()

	alice := s.Session("user-1")
	bob := s.Session("user-2")
	assert.NotSame(t, alice, bob)

	// Same subject gets the same navigator back.
	assert.Same(t, alice, s.Session("user-1"))
}

func TestSubmitAnswerAdvancesOwnSessionOnly(t *testing.T) {
	s := newSessionOnlyService()

	progress, err := s.SubmitAnswer("user-1", answerFor(t, 1))
	require.NoError(t, err)
	assert.Equal(t, 1, progress.QuestionIndex)

	other := s.Progress("user-2")
	assert.Equal(t, 0, other.QuestionIndex)
}

func TestSubmitAnswerValidationFailureKeepsPosition(t *testing.T) {
	s := newSessionOnlyService()

	bad := answerFor(t, 1)
	bad.SelectedOption = nil
	progress, err := s.SubmitAnswer("user-1", bad)
	assert.ErrorIs(t, err, util.ErrIncompleteAnswer)
	assert.Equal(t, 0, progress.QuestionIndex)
}

func TestNavigateDirections(t *testing.T) {
	s := newSessionOnlyService()

	progress := s.Navigate("user-1", "next")
	assert.Equal(t, 1, progress.QuestionIndex)

	progress = s.Navigate("user-1", "previous")
	assert.Equal(t, 0, progress.QuestionIndex)
}

func TestResetSessionStartsOver(t *testing.T) {
	s := newSessionOnlyService()

	_, err := s.SubmitAnswer("user-1", answerFor(t, 1))
	require.NoError(t, err)
	require.Equal(t, 1, s.Progress("user-1").QuestionIndex)

	s.ResetSession("user-1")
	fresh := s.Progress("user-1")
	assert.Equal(t, 1, fresh.SectionID)
	assert.Equal(t, 0, fresh.QuestionIndex)
	assert.Empty(t, s.Session("user-1").Responses())
}

func TestFinalizeWithoutResponses(t *testing.T) {
	s := newSessionOnlyService()

	_, err := s.Finalize(context.Background(), "user-1", sampleInput().Demographics)
	assert.ErrorIs(t, err, util.ErrNoResponses)
}

func TestSectionQuestions(t *testing.T) {
	s := newSessionOnlyService()

	section, questions, err := s.SectionQuestions(3)
	require.NoError(t, err)
	assert.Equal(t, "Emotional Intelligence", section.Title)
	assert.Len(t, questions, 10)

	_, _, err = s.SectionQuestions(99)
	assert.ErrorIs(t, err, util.ErrSectionNotFound)
}
