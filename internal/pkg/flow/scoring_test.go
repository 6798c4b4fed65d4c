package flow

import (
	"fmt"
	"testing"

	"nutrivida-service/internal/app/models"
	"nutrivida-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
)

func TestScore_SumMode(t *testing.T) {
	points := []int{2, 3, 0, 5}
	questions := make([]models.Question, len(points))
	rs := make(ResponseSet)
	for i, p := range points {
		questions[i] = singleChoice(fmt.Sprintf("q%d", i+1), i+1, false,
			models.Option{Value: "v", Points: intPtr(p)},
		)
		rs.SetAnswer(&questions[i], []string{"v"}, "")
	}

	rule := models.ScoringRule{
		Mode: constvars.ScoringModeSum,
		Bands: []models.ScoreBand{
			{Min: 0, Max: 7, Label: "mild", Title: "Mild"},
			{Min: 8, Max: 14, Label: "moderate", Title: "Moderate"},
			{Min: 15, Max: 100, Label: "severe", Title: "Severe"},
		},
	}

	t.Run("Sums Resolved Points", func(t *testing.T) {
		score, classification := Score(questions, rs, rule)
		assert.Equal(t, 10, score)
		assert.NotNil(t, classification)
		assert.Equal(t, "moderate", classification.Label)
	})

	t.Run("Unanswered Questions Contribute Zero", func(t *testing.T) {
		partial := make(ResponseSet)
		partial.SetAnswer(&questions[0], []string{"v"}, "")
		partial.SetAnswer(&questions[3], []string{"v"}, "")

		score, classification := Score(questions, partial, rule)
		assert.Equal(t, 7, score)
		assert.Equal(t, "mild", classification.Label)
	})

	t.Run("No Matching Band Yields Nil Classification", func(t *testing.T) {
		gapped := models.ScoringRule{
			Mode:  constvars.ScoringModeSum,
			Bands: []models.ScoreBand{{Min: 0, Max: 5, Label: "low"}},
		}
		score, classification := Score(questions, rs, gapped)
		assert.Equal(t, 10, score)
		assert.Nil(t, classification, "an uncovered score must surface as nil, not a misleading band")
	})

	t.Run("Deterministic", func(t *testing.T) {
		firstScore, firstBand := Score(questions, rs, rule)
		secondScore, secondBand := Score(questions, rs, rule)
		assert.Equal(t, firstScore, secondScore)
		assert.Equal(t, firstBand, secondBand)
	})
}

func TestScore_SumMode_ExcludesHiddenAnswers(t *testing.T) {
	q1 := singleChoice("q1", 1, true,
		models.Option{Value: "yes", Points: intPtr(0)},
		models.Option{Value: "no", Points: intPtr(0)},
	)
	q2 := singleChoice("q2", 2, false, models.Option{Value: "a", Points: intPtr(9)})
	q2.Conditional = conditionalOn("q1", "yes")
	questions := []models.Question{q1, q2}

	rs := make(ResponseSet)
	rs.SetAnswer(&q1, []string{"yes"}, "")
	rs.SetAnswer(&q2, []string{"a"}, "")

	rule := models.ScoringRule{
		Mode:  constvars.ScoringModeSum,
		Bands: []models.ScoreBand{{Min: 0, Max: 100, Label: "any"}},
	}

	score, _ := Score(questions, rs, rule)
	assert.Equal(t, 9, score)

	// flipping q1 hides q2; its stale answer must drop out of the score
	rs.SetAnswer(&q1, []string{"no"}, "")
	score, _ = Score(questions, rs, rule)
	assert.Equal(t, 0, score)
}

func TestScore_ThresholdMode(t *testing.T) {
	above := &models.ScoreBand{Label: "above_threshold", Title: "Likely intolerant"}
	below := &models.ScoreBand{Label: "below_threshold", Title: "Unlikely intolerant"}

	questions := make([]models.Question, 7)
	rs := make(ResponseSet)
	for i := range questions {
		questions[i] = models.Question{
			ID:    fmt.Sprintf("q%d", i+1),
			Order: i + 1,
			Type:  constvars.QuestionTypeYesNo,
			Options: []models.Option{
				{Value: "yes"}, {Value: "no"},
			},
		}
		value := "no"
		if i < 4 {
			value = "yes"
		}
		rs.SetAnswer(&questions[i], []string{value}, "")
	}

	rule := models.ScoringRule{
		Mode:      constvars.ScoringModeThreshold,
		Threshold: 3,
		AboveBand: above,
		BelowBand: below,
	}

	t.Run("Counts Default Yes Token", func(t *testing.T) {
		score, classification := Score(questions, rs, rule)
		assert.Equal(t, 4, score)
		assert.Equal(t, "above_threshold", classification.Label)
	})

	t.Run("At Or Below Threshold Picks Below Band", func(t *testing.T) {
		tight := rule
		tight.Threshold = 4
		score, classification := Score(questions, rs, tight)
		assert.Equal(t, 4, score)
		assert.Equal(t, "below_threshold", classification.Label, "count must strictly exceed the threshold")
	})

	t.Run("Custom Counted Value", func(t *testing.T) {
		custom := rule
		custom.CountedValue = "no"
		score, _ := Score(questions, rs, custom)
		assert.Equal(t, 3, score)
	})
}
