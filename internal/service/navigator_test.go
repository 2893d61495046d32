package service

import (
	"sync"
	"testing"
	"time"

	"relationship_mojo_backend/internal/catalog"
	"relationship_mojo_backend/internal/model"
	"relationship_mojo_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func answerFor(t *testing.T, questionID int) model.QuestionResponse {
	t.Helper()
	q := catalog.QuestionByID(questionID)
	require.NotNil(t, q, "question %d", questionID)

	resp := model.QuestionResponse{
		SectionID:    q.SectionID,
		SectionTitle: q.SectionTitle,
		QuestionID:   q.ID,
		QuestionText: q.QuestionText,
		QuestionType: string(q.QuestionType),
	}
	switch q.QuestionType {
	case model.MultipleChoice, model.MultipleChoicePlusText:
		resp.SelectedOption = model.StringPtr(q.Options[0])
	case model.FreeText:
		resp.AnswerText = model.StringPtr("a thoughtful answer")
	case model.YesNoComment:
		resp.SelectedOption = model.StringPtr("yes")
	}
	return resp
}

func TestNavigatorStartsAtFirstQuestion(t *testing.T) {
	n := NewNavigator(0, nil)
	state := n.State()
	assert.Equal(t, 1, state.SectionID)
	assert.Equal(t, 0, state.QuestionIndex)
	assert.False(t, state.Complete)

	q := n.CurrentQuestion()
	require.NotNil(t, q)
	assert.Equal(t, 1, q.ID)
}

func TestNavigatorNextCrossesSectionBoundary(t *testing.T) {
	n := NewNavigator(0, nil)
	for i := 0; i < 9; i++ {
		n.Next()
	}
	state := n.State()
	assert.Equal(t, 1, state.SectionID)
	assert.Equal(t, 9, state.QuestionIndex)

	state = n.Next()
	assert.Equal(t, 2, state.SectionID)
	assert.Equal(t, 0, state.QuestionIndex)
	assert.False(t, state.Complete)
}

func TestNavigatorPreviousCrossesSectionBoundary(t *testing.T) {
	n := NewNavigator(0, nil)
	for i := 0; i < 10; i++ {
		n.Next()
	}
	require.Equal(t, 2, n.State().SectionID)

	state := n.Previous()
	assert.Equal(t, 1, state.SectionID)
	assert.Equal(t, 9, state.QuestionIndex)
}

func TestNavigatorPreviousAtStartIsNoop(t *testing.T) {
	n := NewNavigator(0, nil)
	state := n.Previous()
	assert.Equal(t, 1, state.SectionID)
	assert.Equal(t, 0, state.QuestionIndex)
}

func TestNavigatorCompletesAfterLastQuestion(t *testing.T) {
	var (
		mu       sync.Mutex
		snapshot []model.QuestionResponse
		called   int
	)
	n := NewNavigator(0, func(responses []model.QuestionResponse) {
		mu.Lock()
		defer mu.Unlock()
		called++
		snapshot = responses
	})

	// Walk to the last question of the last section.
	for i := 0; i < catalog.TotalQuestions()-1; i++ {
		n.Next()
	}
	state := n.State()
	require.Equal(t, 5, state.SectionID)
	require.Equal(t, 9, state.QuestionIndex)
	require.False(t, state.Complete)

	// Answer it so the completion snapshot is not empty.
	_, err := n.Answer(answerFor(t, 50))
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, called)
	require.Len(t, snapshot, 1)
	assert.Equal(t, 50, snapshot[0].QuestionID)

	final := n.State()
	assert.True(t, final.Complete)

	// Terminal state is absorbing.
	assert.True(t, n.Next().Complete)
	assert.True(t, n.Previous().Complete)
	assert.Nil(t, n.CurrentQuestion())
}

func TestNavigatorAnswerRejectsUnknownQuestion(t *testing.T) {
	n := NewNavigator(0, nil)
	_, err := n.Answer(model.QuestionResponse{QuestionID: 9999})
	assert.ErrorIs(t, err, util.ErrQuestionNotFound)
}

func TestNavigatorAnswerRejectsIncomplete(t *testing.T) {
	n := NewNavigator(0, nil)
	_, err := n.Answer(model.QuestionResponse{QuestionID: 1})
	assert.ErrorIs(t, err, util.ErrIncompleteAnswer)

	// Rejected answers neither advance nor get recorded.
	assert.Equal(t, 0, n.State().QuestionIndex)
	assert.Empty(t, n.Responses())
}

func TestNavigatorAnswerAfterCompleteIsRejected(t *testing.T) {
	n := NewNavigator(0, nil)
	for i := 0; i < catalog.TotalQuestions(); i++ {
		n.Next()
	}
	require.True(t, n.State().Complete)

	_, err := n.Answer(answerFor(t, 1))
	assert.ErrorIs(t, err, util.ErrSessionComplete)
}

func TestNavigatorUpsertKeepsFirstPositionLatestValue(t *testing.T) {
	n := NewNavigator(time.Hour, nil) // long delay so nothing auto-advances

	first := answerFor(t, 1)
	_, err := n.Answer(first)
	require.NoError(t, err)

	second := answerFor(t, 2)
	_, err = n.Answer(second)
	require.NoError(t, err)

	q1 := catalog.QuestionByID(1)
	revised := answerFor(t, 1)
	revised.SelectedOption = model.StringPtr(q1.Options[1])
	_, err = n.Answer(revised)
	require.NoError(t, err)

	responses := n.Responses()
	require.Len(t, responses, 2)
	assert.Equal(t, 1, responses[0].QuestionID)
	assert.Equal(t, q1.Options[1], *responses[0].SelectedOption)
	assert.Equal(t, 2, responses[1].QuestionID)
}

func TestNavigatorZeroDelayAdvancesSynchronously(t *testing.T) {
	n := NewNavigator(0, nil)
	state, err := n.Answer(answerFor(t, 1))
	require.NoError(t, err)
	assert.Equal(t, 1, state.QuestionIndex)
}

func TestNavigatorAutoAdvanceFires(t *testing.T) {
	n := NewNavigator(10*time.Millisecond, nil)
	state, err := n.Answer(answerFor(t, 1))
	require.NoError(t, err)
	assert.Equal(t, 0, state.QuestionIndex, "advance is deferred")

	assert.Eventually(t, func() bool {
		return n.State().QuestionIndex == 1
	}, time.Second, 5*time.Millisecond)
}

func TestNavigatorExplicitNavigationCancelsAutoAdvance(t *testing.T) {
	n := NewNavigator(50*time.Millisecond, nil)
	_, err := n.Answer(answerFor(t, 1))
	require.NoError(t, err)

	// Jump ahead before the timer lands; the stale advance must not stack.
	state := n.Next()
	require.Equal(t, 1, state.QuestionIndex)

	time.Sleep(120 * time.Millisecond)
	assert.Equal(t, 1, n.State().QuestionIndex)
}

func TestNavigatorProgressValues(t *testing.T) {
	n := NewNavigator(0, nil)

	p := n.Progress()
	assert.Equal(t, 1, p.SectionID)
	assert.Equal(t, 10, p.SectionLength)
	assert.Equal(t, 5, p.TotalSections)
	assert.InDelta(t, 10.0, p.QuestionProgressPct, 1e-9)
	assert.InDelta(t, 2.0, p.OverallProgressPct, 1e-9)

	// End of section 1: overall hits exactly 20%.
	for i := 0; i < 9; i++ {
		n.Next()
	}
	p = n.Progress()
	assert.InDelta(t, 100.0, p.QuestionProgressPct, 1e-9)
	assert.InDelta(t, 20.0, p.OverallProgressPct, 1e-9)

	// First question of section 2.
	n.Next()
	p = n.Progress()
	assert.InDelta(t, 10.0, p.QuestionProgressPct, 1e-9)
	assert.InDelta(t, 22.0, p.OverallProgressPct, 1e-9)
}

func TestNavigatorProgressAtLastQuestion(t *testing.T) {
	n := NewNavigator(0, nil)
	for i := 0; i < catalog.TotalQuestions()-1; i++ {
		n.Next()
	}
	p := n.Progress()
	require.Equal(t, 5, p.SectionID)
	require.Equal(t, 9, p.QuestionIndex)
	assert.False(t, p.Complete)

	// With the linear formula the last question already reads 100; the
	// Complete flag is what distinguishes it from the terminal state.
	assert.InDelta(t, 100.0, p.QuestionProgressPct, 1e-9)
	assert.InDelta(t, 100.0, p.OverallProgressPct, 1e-9)
}

func TestNavigatorProgressPinnedAtCompletion(t *testing.T) {
	n := NewNavigator(0, nil)
	for i := 0; i < catalog.TotalQuestions(); i++ {
		n.Next()
	}
	p := n.Progress()
	assert.True(t, p.Complete)
	assert.Equal(t, 100.0, p.QuestionProgressPct)
	assert.Equal(t, 100.0, p.OverallProgressPct)
}

func TestNavigatorResponsesSnapshotIsCopied(t *testing.T) {
	n := NewNavigator(time.Hour, nil)
	_, err := n.Answer(answerFor(t, 1))
	require.NoError(t, err)

	snap := n.Responses()
	snap[0].QuestionID = 42

	assert.Equal(t, 1, n.Responses()[0].QuestionID)
}
