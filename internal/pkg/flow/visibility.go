package flow

import (
	"sort"

	"nutrivida-service/internal/app/models"
)

// VisibleQuestions computes the ordered subset of questions that should be
// presented given the current responses. A question with no conditional is
// always included. A conditional question is included only while the question
// it references holds an answer matching one of the required values; an
// unanswered prerequisite hides it.
//
// Conditionals may only point backwards in display order. A rule referencing
// the question itself, a later question, or an unknown ID is ignored and the
// question treated as unconditional, so a malformed questionnaire degrades to
// showing everything rather than hiding questions forever.
//
// The result is freshly computed on every call; callers must not cache it
// across answer mutations.
func VisibleQuestions(questions []models.Question, responses ResponseSet) []models.Question {
	ordered := make([]models.Question, len(questions))
	copy(ordered, questions)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Order < ordered[j].Order
	})

	orderByID := make(map[string]int, len(ordered))
	for _, question := range ordered {
		orderByID[question.ID] = question.Order
	}

	visible := make([]models.Question, 0, len(ordered))
	for _, question := range ordered {
		if conditionApplies(question, orderByID) {
			if !conditionMet(question.Conditional, responses) {
				continue
			}
		}
		visible = append(visible, question)
	}
	return visible
}

func conditionApplies(question models.Question, orderByID map[string]int) bool {
	cond := question.Conditional
	if cond == nil {
		return false
	}
	refOrder, ok := orderByID[cond.QuestionID]
	if !ok {
		return false
	}
	return refOrder < question.Order
}

func conditionMet(cond *models.Conditional, responses ResponseSet) bool {
	answer, answered := responses.Get(cond.QuestionID)
	if !answered {
		return false
	}
	for _, got := range answer.Values {
		for _, want := range cond.Values {
			if got == want {
				return true
			}
		}
	}
	return false
}

// FirstUnansweredRequired returns the first visible question that is required
// but holds no answer, or nil when the set is complete.
func FirstUnansweredRequired(visible []models.Question, responses ResponseSet) *models.Question {
	for i := range visible {
		if visible[i].Required && !responses.Has(visible[i].ID) {
			return &visible[i]
		}
	}
	return nil
}
