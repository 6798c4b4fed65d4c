package flow

import (
	"testing"

	"nutrivida-service/internal/app/models"
	"nutrivida-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
)

func conditionalOn(questionID string, values ...string) *models.Conditional {
	return &models.Conditional{QuestionID: questionID, Values: values}
}

func questionIDs(questions []models.Question) []string {
	ids := make([]string, len(questions))
	for i, q := range questions {
		ids[i] = q.ID
	}
	return ids
}

func TestVisibleQuestions(t *testing.T) {
	q1 := singleChoice("q1", 1, true, models.Option{Value: "yes"}, models.Option{Value: "no"})
	q2 := singleChoice("q2", 2, true, models.Option{Value: "a"}, models.Option{Value: "b"})
	q2.Conditional = conditionalOn("q1", "yes")
	q3 := singleChoice("q3", 3, false, models.Option{Value: "x"})
	questions := []models.Question{q1, q2, q3}

	t.Run("Unconditional Questions Always Included", func(t *testing.T) {
		assert.Equal(t, []string{"q1", "q3"}, questionIDs(VisibleQuestions(questions, make(ResponseSet))))
	})

	t.Run("Dependent Question Appears When Prerequisite Matches", func(t *testing.T) {
		rs := make(ResponseSet)
		rs.SetAnswer(&q1, []string{"yes"}, "")
		assert.Equal(t, []string{"q1", "q2", "q3"}, questionIDs(VisibleQuestions(questions, rs)))
	})

	t.Run("Dependent Question Hidden When Prerequisite Differs", func(t *testing.T) {
		rs := make(ResponseSet)
		rs.SetAnswer(&q1, []string{"no"}, "")
		assert.Equal(t, []string{"q1", "q3"}, questionIDs(VisibleQuestions(questions, rs)))
	})

	t.Run("Unanswering Prerequisite Hides Dependent Again", func(t *testing.T) {
		rs := make(ResponseSet)
		rs.SetAnswer(&q1, []string{"yes"}, "")
		rs.Clear("q1")
		assert.Equal(t, []string{"q1", "q3"}, questionIDs(VisibleQuestions(questions, rs)))
	})

	t.Run("Value Set Membership", func(t *testing.T) {
		dependent := singleChoice("q4", 4, false, models.Option{Value: "z"})
		dependent.Conditional = conditionalOn("q1", "yes", "sometimes")
		extended := append([]models.Question{}, questions...)
		extended = append(extended, dependent)

		rs := make(ResponseSet)
		rs.SetAnswer(&q1, []string{"sometimes"}, "")
		assert.Contains(t, questionIDs(VisibleQuestions(extended, rs)), "q4")
	})

	t.Run("Order Ascending Regardless Of Input Order", func(t *testing.T) {
		shuffled := []models.Question{q3, q1}
		assert.Equal(t, []string{"q1", "q3"}, questionIDs(VisibleQuestions(shuffled, make(ResponseSet))))
	})

	t.Run("Forward Reference Is Ignored", func(t *testing.T) {
		// conditional pointing at a later question is malformed and must
		// degrade to unconditional, not hide the question forever
		bad := singleChoice("q0", 0, false, models.Option{Value: "v"})
		bad.Conditional = conditionalOn("q3", "x")
		assert.Contains(t, questionIDs(VisibleQuestions(append([]models.Question{bad}, questions...), make(ResponseSet))), "q0")
	})

	t.Run("Self Reference Is Ignored", func(t *testing.T) {
		cyclic := singleChoice("q9", 9, false, models.Option{Value: "v"})
		cyclic.Conditional = conditionalOn("q9", "v")
		assert.Contains(t, questionIDs(VisibleQuestions([]models.Question{cyclic}, make(ResponseSet))), "q9")
	})
}

func TestVisibleQuestions_MultiValuePrerequisite(t *testing.T) {
	trigger := models.Question{
		ID:    "symptoms",
		Order: 1,
		Type:  constvars.QuestionTypeMultipleChoice,
		Options: []models.Option{
			{Value: "bloating"}, {Value: "cramps"}, {Value: "none"},
		},
	}
	followUp := singleChoice("frequency", 2, true, models.Option{Value: "daily"})
	followUp.Conditional = conditionalOn("symptoms", "bloating")
	questions := []models.Question{trigger, followUp}

	rs := make(ResponseSet)
	rs.SetAnswer(&trigger, []string{"cramps", "bloating"}, "")
	assert.Contains(t, questionIDs(VisibleQuestions(questions, rs)), "frequency")

	rs.SetAnswer(&trigger, []string{"none"}, "")
	assert.NotContains(t, questionIDs(VisibleQuestions(questions, rs)), "frequency")
}

func TestFirstUnansweredRequired(t *testing.T) {
	q1 := singleChoice("q1", 1, true, models.Option{Value: "yes"})
	q2 := singleChoice("q2", 2, false, models.Option{Value: "a"})
	q3 := singleChoice("q3", 3, true, models.Option{Value: "x"})
	visible := []models.Question{q1, q2, q3}

	t.Run("Names First Unmet Question", func(t *testing.T) {
		rs := make(ResponseSet)
		rs.SetAnswer(&q1, []string{"yes"}, "")
		unmet := FirstUnansweredRequired(visible, rs)
		assert.NotNil(t, unmet)
		assert.Equal(t, "q3", unmet.ID)
	})

	t.Run("Nil When Complete", func(t *testing.T) {
		rs := make(ResponseSet)
		rs.SetAnswer(&q1, []string{"yes"}, "")
		rs.SetAnswer(&q3, []string{"x"}, "")
		assert.Nil(t, FirstUnansweredRequired(visible, rs))
	})

	t.Run("Optional Questions Never Block", func(t *testing.T) {
		rs := make(ResponseSet)
		rs.SetAnswer(&q1, []string{"yes"}, "")
		rs.SetAnswer(&q3, []string{"x"}, "")
		assert.Nil(t, FirstUnansweredRequired(visible, rs), "q2 is optional and unanswered")
	})
}
