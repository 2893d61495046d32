package service

import (
	"sync"
	"time"

	"relationship_mojo_backend/internal/catalog"
	"relationship_mojo_backend/internal/model"
	"relationship_mojo_backend/internal/util"
)

// NavigatorState is the current position in the questionnaire. Complete is
// terminal: it is only reached via Next from the last question of the last
// section.
type NavigatorState struct {
	SectionID     int  `json:"sectionId"`
	QuestionIndex int  `json:"questionIndex"`
	Complete      bool `json:"complete"`
}

// Progress mirrors what the questionnaire UI renders. Percentages are raw
// floats; rounding happens at display time only.
type Progress struct {
	SectionID           int     `json:"sectionId"`
	QuestionIndex       int     `json:"questionIndex"`
	SectionLength       int     `json:"sectionLength"`
	TotalSections       int     `json:"totalSections"`
	QuestionProgressPct float64 `json:"questionProgressPct"`
	OverallProgressPct  float64 `json:"overallProgressPct"`
	Complete            bool    `json:"complete"`
}

// Navigator walks one user session through the questionnaire. It owns the
// in-progress response collection: answers are upserted by question id in
// insertion order, and a submitted answer auto-advances after a short delay
// unless an explicit navigation lands first. The mutex is needed because
// the auto-advance timer fires on its own goroutine.
type Navigator struct {
	mu         sync.Mutex
	state      NavigatorState
	responses  []model.QuestionResponse
	delay      time.Duration
	timer      *time.Timer
	generation uint64
	onComplete func([]model.QuestionResponse)
}

// NewNavigator starts at section 1, question 0. onComplete receives the
// accumulated response snapshot when the terminal state is reached; it may
// be nil. A zero delay makes Answer advance synchronously.
func NewNavigator(autoAdvanceDelay time.Duration, onComplete func([]model.QuestionResponse)) *Navigator {
	return &Navigator{
		state:      NavigatorState{SectionID: 1, QuestionIndex: 0},
		delay:      autoAdvanceDelay,
		onComplete: onComplete,
	}
}

// cancelPendingLocked invalidates any scheduled auto-advance. Explicit
// navigation always wins over a timer that has not fired yet.
func (n *Navigator) cancelPendingLocked() {
	n.generation++
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
}

// nextLocked applies the Next transition and reports whether the terminal
// state was entered by this call.
func (n *Navigator) nextLocked() bool {
	if n.state.Complete {
		return false
	}

	sectionLength := catalog.SectionQuestionCount(n.state.SectionID)
	if n.state.QuestionIndex < sectionLength-1 {
		n.state.QuestionIndex++
		return false
	}
	if n.state.SectionID < catalog.TotalSections {
		n.state.SectionID++
		n.state.QuestionIndex = 0
		return false
	}
	n.state.Complete = true
	return true
}

func (n *Navigator) previousLocked() {
	if n.state.Complete {
		return
	}

	if n.state.QuestionIndex > 0 {
		n.state.QuestionIndex--
		return
	}
	if n.state.SectionID > 1 {
		n.state.SectionID--
		n.state.QuestionIndex = catalog.SectionQuestionCount(n.state.SectionID) - 1
	}
	// At (1, 0) Previous is a no-op: there is nothing before the first
	// question.
}

func (n *Navigator) finishLocked() ([]model.QuestionResponse, func([]model.QuestionResponse)) {
	return n.snapshotLocked(), n.onComplete
}

// Next advances one question, crossing section boundaries, and enters the
// terminal state after the last question of the last section.
func (n *Navigator) Next() NavigatorState {
	n.mu.Lock()
	n.cancelPendingLocked()
	completed := n.nextLocked()
	state := n.state
	var snapshot []model.QuestionResponse
	var cb func([]model.QuestionResponse)
	if completed {
		snapshot, cb = n.finishLocked()
	}
	n.mu.Unlock()

	if completed && cb != nil {
		cb(snapshot)
	}
	return state
}

// Previous retreats one question, crossing section boundaries backwards.
// Before the first question it is a defined no-op, never an error.
func (n *Navigator) Previous() NavigatorState {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.cancelPendingLocked()
	n.previousLocked()
	return n.state
}

// Answer validates resp against its catalog question, upserts it into the
// working collection (first-occurrence position, latest value), and
// schedules the auto-advance. Returns the state as of submission; the
// advance itself lands when the delay elapses, unless explicit navigation
// cancels it first.
func (n *Navigator) Answer(resp model.QuestionResponse) (NavigatorState, error) {
	q := catalog.QuestionByID(resp.QuestionID)
	if q == nil {
		return n.State(), util.ErrQuestionNotFound
	}
	if err := ValidateResponse(q, resp); err != nil {
		return n.State(), err
	}

	n.mu.Lock()
	if n.state.Complete {
		n.mu.Unlock()
		return NavigatorState{SectionID: n.state.SectionID, QuestionIndex: n.state.QuestionIndex, Complete: true}, util.ErrSessionComplete
	}

	n.upsertLocked(resp)
	n.cancelPendingLocked()

	if n.delay <= 0 {
		completed := n.nextLocked()
		state := n.state
		var snapshot []model.QuestionResponse
		var cb func([]model.QuestionResponse)
		if completed {
			snapshot, cb = n.finishLocked()
		}
		n.mu.Unlock()
		if completed && cb != nil {
			cb(snapshot)
		}
		return state, nil
	}

	gen := n.generation
	n.timer = time.AfterFunc(n.delay, func() {
		n.autoAdvance(gen)
	})
	state := n.state
	n.mu.Unlock()
	return state, nil
}

// autoAdvance is the timer body. A stale generation means the user already
// navigated away; the advance must not fire on top of that.
func (n *Navigator) autoAdvance(gen uint64) {
	n.mu.Lock()
	if gen != n.generation {
		n.mu.Unlock()
		return
	}
	n.timer = nil
	completed := n.nextLocked()
	var snapshot []model.QuestionResponse
	var cb func([]model.QuestionResponse)
	if completed {
		snapshot, cb = n.finishLocked()
	}
	n.mu.Unlock()

	if completed && cb != nil {
		cb(snapshot)
	}
}

func (n *Navigator) upsertLocked(resp model.QuestionResponse) {
	for i := range n.responses {
		if n.responses[i].QuestionID == resp.QuestionID {
			n.responses[i] = resp
			return
		}
	}
	n.responses = append(n.responses, resp)
}

func (n *Navigator) snapshotLocked() []model.QuestionResponse {
	out := make([]model.QuestionResponse, len(n.responses))
	copy(out, n.responses)
	return out
}

// State returns the current position.
func (n *Navigator) State() NavigatorState {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.state
}

// Responses returns a snapshot of the working collection in submission
// order.
func (n *Navigator) Responses() []model.QuestionResponse {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.snapshotLocked()
}

// CurrentQuestion returns the question at the current position, or nil in
// the terminal state.
func (n *Navigator) CurrentQuestion() *model.Question {
	n.mu.Lock()
	state := n.state
	n.mu.Unlock()

	if state.Complete {
		return nil
	}
	qs := catalog.QuestionsBySection(state.SectionID)
	if state.QuestionIndex < 0 || state.QuestionIndex >= len(qs) {
		return nil
	}
	q := qs[state.QuestionIndex]
	return &q
}

// Progress computes the UI progress values:
//
//	questionProgressPct = (questionIndex + 1) / sectionLength * 100
//	overallProgressPct  = (sectionId - 1) / totalSections * 100 + questionProgressPct / totalSections
//
// In the terminal state both are pinned to 100.
func (n *Navigator) Progress() Progress {
	n.mu.Lock()
	state := n.state
	n.mu.Unlock()

	p := Progress{
		SectionID:     state.SectionID,
		QuestionIndex: state.QuestionIndex,
		TotalSections: catalog.TotalSections,
		Complete:      state.Complete,
	}

	if state.Complete {
		p.QuestionProgressPct = 100
		p.OverallProgressPct = 100
		return p
	}

	sectionLength := catalog.SectionQuestionCount(state.SectionID)
	p.SectionLength = sectionLength
	p.QuestionProgressPct = float64(state.QuestionIndex+1) / float64(sectionLength) * 100
	p.OverallProgressPct = float64(state.SectionID-1)/float64(catalog.TotalSections)*100 +
		p.QuestionProgressPct/float64(catalog.TotalSections)
	return p
}
