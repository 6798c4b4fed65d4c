package flow

import (
	"testing"

	"nutrivida-service/internal/app/models"
	"nutrivida-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func singleChoice(id string, order int, required bool, options ...models.Option) models.Question {
	return models.Question{
		ID:       id,
		Order:    order,
		Type:     constvars.QuestionTypeSingleChoice,
		Required: required,
		Options:  options,
	}
}

func TestResponseSet_SetAnswer(t *testing.T) {
	question := singleChoice("q1", 1, true,
		models.Option{Value: "yes", Points: intPtr(2)},
		models.Option{Value: "no", Points: intPtr(0)},
	)

	t.Run("Resolves Points From Matching Option", func(t *testing.T) {
		rs := make(ResponseSet)
		rs.SetAnswer(&question, []string{"yes"}, "")

		answer, answered := rs.Get("q1")
		assert.True(t, answered)
		assert.Equal(t, 2, answer.Points)
	})

	t.Run("Idempotent", func(t *testing.T) {
		rs := make(ResponseSet)
		rs.SetAnswer(&question, []string{"yes"}, "")
		once := rs["q1"]

		rs.SetAnswer(&question, []string{"yes"}, "")
		assert.Equal(t, once, rs["q1"], "repeating the same answer must not change state")
	})

	t.Run("Replaces Instead Of Merging", func(t *testing.T) {
		rs := make(ResponseSet)
		rs.SetAnswer(&question, []string{"yes"}, "")
		rs.SetAnswer(&question, []string{"no"}, "")

		answer, _ := rs.Get("q1")
		assert.Equal(t, []string{"no"}, answer.Values)
		assert.Equal(t, 0, answer.Points)
	})

	t.Run("Multiple Choice Sums Per Option Points", func(t *testing.T) {
		multi := models.Question{
			ID:    "q2",
			Order: 2,
			Type:  constvars.QuestionTypeMultipleChoice,
			Options: []models.Option{
				{Value: "bloating", Points: intPtr(1)},
				{Value: "cramps", Points: intPtr(2)},
				{Value: "nausea", Points: intPtr(3)},
			},
		}
		rs := make(ResponseSet)
		rs.SetAnswer(&multi, []string{"bloating", "nausea"}, "")

		answer, _ := rs.Get("q2")
		assert.Equal(t, 4, answer.Points)
	})

	t.Run("Falls Back To Question Level Points", func(t *testing.T) {
		fallback := models.Question{
			ID:     "q3",
			Order:  3,
			Type:   constvars.QuestionTypeYesNo,
			Points: intPtr(5),
			Options: []models.Option{
				{Value: "yes"},
				{Value: "no"},
			},
		}
		rs := make(ResponseSet)
		rs.SetAnswer(&fallback, []string{"yes"}, "")

		answer, _ := rs.Get("q3")
		assert.Equal(t, 5, answer.Points)
	})

	t.Run("Free Text Carries No Points", func(t *testing.T) {
		text := models.Question{ID: "q4", Order: 4, Type: constvars.QuestionTypeText}
		rs := make(ResponseSet)
		rs.SetAnswer(&text, nil, "mostly after dairy")

		answer, answered := rs.Get("q4")
		assert.True(t, answered)
		assert.Equal(t, 0, answer.Points)
	})
}

func TestResponseSet_ClearAndGet(t *testing.T) {
	question := singleChoice("q1", 1, true, models.Option{Value: "yes"})
	rs := make(ResponseSet)

	_, answered := rs.Get("q1")
	assert.False(t, answered, "unanswered question must read as unanswered")

	rs.SetAnswer(&question, []string{"yes"}, "")
	assert.True(t, rs.Has("q1"))

	rs.Clear("q1")
	assert.False(t, rs.Has("q1"))

	// clearing twice is a no-op, operations are total
	rs.Clear("q1")
	assert.False(t, rs.Has("q1"))
}

func TestResponseSet_EmptyValuesReadAsUnanswered(t *testing.T) {
	question := singleChoice("q1", 1, true, models.Option{Value: "yes"})
	rs := make(ResponseSet)
	rs.SetAnswer(&question, nil, "")

	assert.False(t, rs.Has("q1"))
}
