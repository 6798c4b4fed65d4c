package flow

import "nutrivida-service/internal/app/models"

// NavEvent is a navigation input from the respondent.
type NavEvent string

const (
	EventNext     NavEvent = "next"
	EventPrevious NavEvent = "previous"
	EventSubmit   NavEvent = "submit"
)

// NavState is the full navigation state: the current step index and whether
// the attempt has been submitted. Submitted is terminal.
type NavState struct {
	Index     int
	Submitted bool
}

// Transition is the pure step state machine over the visible question
// sequence. Rules:
//   - Previous from step 0 is a no-op; otherwise it always moves back,
//     even when the current question is required and unanswered.
//   - Next requires the current step's guard (not required, or answered)
//     and does not advance past the last step.
//   - Submit only fires from the last step with its guard passing; it marks
//     the state submitted. Persistence is the caller's concern.
//
// The incoming index is clamped first, since an earlier answer change can
// shrink the visible set underneath the current position.
func Transition(state NavState, event NavEvent, visible []models.Question, responses ResponseSet) NavState {
	if state.Submitted || len(visible) == 0 {
		return state
	}
	state = ClampIndex(state, len(visible))

	switch event {
	case EventPrevious:
		if state.Index > 0 {
			state.Index--
		}
	case EventNext:
		if !canProceed(visible[state.Index], responses) {
			return state
		}
		if state.Index < len(visible)-1 {
			state.Index++
		}
	case EventSubmit:
		if state.Index == len(visible)-1 && canProceed(visible[state.Index], responses) {
			state.Submitted = true
		}
	}
	return state
}

// ClampIndex forces the index into [0, visibleCount-1] deterministically.
func ClampIndex(state NavState, visibleCount int) NavState {
	if visibleCount <= 0 {
		state.Index = 0
		return state
	}
	if state.Index >= visibleCount {
		state.Index = visibleCount - 1
	}
	if state.Index < 0 {
		state.Index = 0
	}
	return state
}

// ReadyToSubmit reports whether the state sits on the last visible step with
// its guard satisfied, i.e. a Submit event would succeed.
func ReadyToSubmit(state NavState, visible []models.Question, responses ResponseSet) bool {
	if state.Submitted || len(visible) == 0 {
		return false
	}
	state = ClampIndex(state, len(visible))
	return state.Index == len(visible)-1 && canProceed(visible[state.Index], responses)
}

func canProceed(question models.Question, responses ResponseSet) bool {
	return !question.Required || responses.Has(question.ID)
}

// Navigator is the single stateful wrapper over the pure engine: it holds the
// question list, the response accumulator, and the navigation state for one
// respondent session.
type Navigator struct {
	questions []models.Question
	responses ResponseSet
	state     NavState
}

func NewNavigator(questions []models.Question, responses ResponseSet) *Navigator {
	if responses == nil {
		responses = make(ResponseSet)
	}
	return &Navigator{questions: questions, responses: responses}
}

// Visible recomputes the visible set from the current responses.
func (n *Navigator) Visible() []models.Question {
	return VisibleQuestions(n.questions, n.responses)
}

// Current returns the question at the (clamped) current step, or nil when
// nothing is visible.
func (n *Navigator) Current() *models.Question {
	visible := n.Visible()
	if len(visible) == 0 {
		return nil
	}
	state := ClampIndex(n.state, len(visible))
	return &visible[state.Index]
}

func (n *Navigator) State() NavState {
	return ClampIndex(n.state, len(n.Visible()))
}

func (n *Navigator) Responses() ResponseSet {
	return n.responses
}

// Answer records a response through the accumulator and re-clamps navigation,
// since changing an earlier answer may hide the current question.
func (n *Navigator) Answer(questionID string, values []string, freeText string) {
	for i := range n.questions {
		if n.questions[i].ID == questionID {
			n.responses.SetAnswer(&n.questions[i], values, freeText)
			break
		}
	}
	n.state = ClampIndex(n.state, len(n.Visible()))
}

// Apply feeds one navigation event through the transition function.
func (n *Navigator) Apply(event NavEvent) NavState {
	n.state = Transition(n.state, event, n.Visible(), n.responses)
	return n.state
}

func (n *Navigator) ReadyToSubmit() bool {
	return ReadyToSubmit(n.state, n.Visible(), n.responses)
}
