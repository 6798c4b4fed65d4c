// Package flow implements the questionnaire answering engine: response
// accumulation, conditional visibility, step navigation, and scoring. All
// logic is pure over (questions, responses) so the delivery layer only
// renders state and dispatches events.
package flow

import (
	"nutrivida-service/internal/app/models"
	"nutrivida-service/internal/pkg/constvars"
)

// ResponseSet maps question ID to the respondent's current answer. It is the
// in-memory accumulator for one attempt; operations are total and replace,
// never merge.
type ResponseSet map[string]models.Answer

func NewResponseSet(answers []models.Answer) ResponseSet {
	rs := make(ResponseSet, len(answers))
	for _, answer := range answers {
		rs[answer.QuestionID] = answer
	}
	return rs
}

// SetAnswer stores the answer for a question, replacing any previous one.
// Point values are resolved against the question's options at answer time:
// multiple-choice answers sum the weights of every selected option, all other
// types resolve the single selected value.
func (rs ResponseSet) SetAnswer(question *models.Question, values []string, freeText string) {
	answer := models.Answer{
		QuestionID: question.ID,
		Values:     values,
		FreeText:   freeText,
	}
	switch question.Type {
	case constvars.QuestionTypeText:
		// free text carries no points
	case constvars.QuestionTypeMultipleChoice:
		for _, value := range values {
			answer.Points += question.PointsForOption(value)
		}
	default:
		if len(values) > 0 {
			answer.Points = question.PointsForOption(values[0])
		}
	}
	rs[question.ID] = answer
}

// Clear removes the stored answer for a question, if any.
func (rs ResponseSet) Clear(questionID string) {
	delete(rs, questionID)
}

// Get returns the current answer and whether the question has been answered.
// A stored answer with no values and no free text counts as unanswered.
func (rs ResponseSet) Get(questionID string) (models.Answer, bool) {
	answer, ok := rs[questionID]
	if !ok {
		return models.Answer{}, false
	}
	if len(answer.Values) == 0 && answer.FreeText == "" {
		return answer, false
	}
	return answer, true
}

// Has reports whether the question holds a non-empty answer.
func (rs ResponseSet) Has(questionID string) bool {
	_, ok := rs.Get(questionID)
	return ok
}

// Answers flattens the set back into a slice ordered by the given questions,
// which is how attempts persist them.
func (rs ResponseSet) Answers(questions []models.Question) []models.Answer {
	answers := make([]models.Answer, 0, len(rs))
	for i := range questions {
		if answer, ok := rs[questions[i].ID]; ok {
			answers = append(answers, answer)
		}
	}
	return answers
}
