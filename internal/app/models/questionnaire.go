package models

// Option is one selectable answer for a choice-type question. Points may be
// carried here or fall back to the question-level points.
type Option struct {
	Value          string `json:"value" bson:"value"`
	Label          string `json:"label" bson:"label"`
	Points         *int   `json:"points,omitempty" bson:"points,omitempty"`
	AllowsFreeText bool   `json:"allowsFreeText,omitempty" bson:"allowsFreeText,omitempty"`
}

// Conditional makes a question visible only when the referenced question is
// answered with one of the given values. The referenced question must come
// earlier in the display order; rules pointing forward are ignored.
type Conditional struct {
	QuestionID string   `json:"questionId" bson:"questionId"`
	Values     []string `json:"values" bson:"values"`
}

type Question struct {
	ID          string       `json:"id" bson:"id"`
	Order       int          `json:"order" bson:"order"`
	Prompt      string       `json:"prompt" bson:"prompt"`
	Type        string       `json:"type" bson:"type"`
	Options     []Option     `json:"options,omitempty" bson:"options,omitempty"`
	Required    bool         `json:"required" bson:"required"`
	ImageURL    string       `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	Conditional *Conditional `json:"conditional,omitempty" bson:"conditional,omitempty"`
	Points      *int         `json:"points,omitempty" bson:"points,omitempty"`
}

// OptionByValue returns the option carrying the given value token, or nil.
func (q *Question) OptionByValue(value string) *Option {
	for i := range q.Options {
		if q.Options[i].Value == value {
			return &q.Options[i]
		}
	}
	return nil
}

// PointsForOption resolves the point weight of a selected option: the option's
// own weight when present, otherwise the question-level fallback.
func (q *Question) PointsForOption(value string) int {
	if opt := q.OptionByValue(value); opt != nil && opt.Points != nil {
		return *opt.Points
	}
	if q.Points != nil {
		return *q.Points
	}
	return 0
}

// ScoreBand maps an inclusive score range to a named classification.
type ScoreBand struct {
	Min         int    `json:"min" bson:"min"`
	Max         int    `json:"max" bson:"max"`
	Label       string `json:"label" bson:"label"`
	Title       string `json:"title" bson:"title"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	Color       string `json:"color,omitempty" bson:"color,omitempty"`
}

// ScoringRule selects how an attempt's responses collapse into a score.
// Mode "sum" uses Bands; mode "threshold" counts CountedValue answers against
// Threshold and picks AboveBand or BelowBand.
type ScoringRule struct {
	Mode         string      `json:"mode" bson:"mode"`
	Bands        []ScoreBand `json:"bands,omitempty" bson:"bands,omitempty"`
	CountedValue string      `json:"countedValue,omitempty" bson:"countedValue,omitempty"`
	Threshold    int         `json:"threshold,omitempty" bson:"threshold,omitempty"`
	AboveBand    *ScoreBand  `json:"aboveBand,omitempty" bson:"aboveBand,omitempty"`
	BelowBand    *ScoreBand  `json:"belowBand,omitempty" bson:"belowBand,omitempty"`
}

type Questionnaire struct {
	ID          string      `json:"id" bson:"_id,omitempty"`
	Name        string      `json:"name" bson:"name"`
	Category    string      `json:"category" bson:"category"`
	Description string      `json:"description,omitempty" bson:"description,omitempty"`
	Active      bool        `json:"active" bson:"active"`
	Questions   []Question  `json:"questions" bson:"questions"`
	Scoring     ScoringRule `json:"scoring" bson:"scoring"`
	TimeModel   `bson:",inline"`
}

// QuestionByID looks a question up by identifier; nil when absent.
func (q *Questionnaire) QuestionByID(questionID string) *Question {
	for i := range q.Questions {
		if q.Questions[i].ID == questionID {
			return &q.Questions[i]
		}
	}
	return nil
}
