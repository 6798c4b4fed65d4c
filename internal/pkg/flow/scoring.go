package flow

import (
	"nutrivida-service/internal/app/models"
	"nutrivida-service/internal/pkg/constvars"
)

// Score collapses the responses into a score and classification under the
// given rule. Only questions in the final visible set contribute, so answers
// to questions hidden by a later upstream change never leak into the score.
//
// Sum mode returns the first band whose inclusive range contains the score;
// when no band matches the classification is nil and stays nil, never a
// made-up default. Threshold mode counts answers equal to the configured
// token (default "yes") and picks the above band when the count exceeds the
// threshold, the below band otherwise.
func Score(questions []models.Question, responses ResponseSet, rule models.ScoringRule) (int, *models.ScoreBand) {
	visible := VisibleQuestions(questions, responses)

	switch rule.Mode {
	case constvars.ScoringModeThreshold:
		counted := rule.CountedValue
		if counted == "" {
			counted = constvars.ThresholdDefaultCountedValue
		}
		score := 0
		for _, question := range visible {
			answer, answered := responses.Get(question.ID)
			if !answered {
				continue
			}
			for _, value := range answer.Values {
				if value == counted {
					score++
					break
				}
			}
		}
		if score > rule.Threshold {
			return score, rule.AboveBand
		}
		return score, rule.BelowBand

	default: // sum
		score := 0
		for _, question := range visible {
			if answer, answered := responses.Get(question.ID); answered {
				score += answer.Points
			}
		}
		return score, bandForScore(rule.Bands, score)
	}
}

func bandForScore(bands []models.ScoreBand, score int) *models.ScoreBand {
	for i := range bands {
		if score >= bands[i].Min && score <= bands[i].Max {
			return &bands[i]
		}
	}
	return nil
}
