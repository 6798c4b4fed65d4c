package models

import "time"

// Answer is one stored response within an attempt. Values always travel as a
// slice; single-choice answers use exactly one element.
type Answer struct {
	QuestionID string   `json:"questionId" bson:"questionId"`
	Values     []string `json:"values" bson:"values"`
	FreeText   string   `json:"freeText,omitempty" bson:"freeText,omitempty"`
	Points     int      `json:"points" bson:"points"`
}

// Result is persisted exactly once, when an attempt completes.
type Result struct {
	Score          int        `json:"score" bson:"score"`
	Classification *ScoreBand `json:"classification,omitempty" bson:"classification,omitempty"`
}

// Attempt links a patient to a questionnaire instance and carries its
// lifecycle: pending -> in_progress -> completed. Completed is terminal.
type Attempt struct {
	ID              string     `json:"id" bson:"_id,omitempty"`
	QuestionnaireID string     `json:"questionnaireId" bson:"questionnaireId"`
	PatientID       string     `json:"patientId" bson:"patientId"`
	Status          string     `json:"status" bson:"status"`
	Answers         []Answer   `json:"answers" bson:"answers"`
	Result          *Result    `json:"result,omitempty" bson:"result,omitempty"`
	StaffNotes      string     `json:"staffNotes,omitempty" bson:"staffNotes,omitempty"`
	DueDate         *time.Time `json:"dueDate,omitempty" bson:"dueDate,omitempty"`
	AssignedAt      time.Time  `json:"assignedAt" bson:"assignedAt"`
	StartedAt       *time.Time `json:"startedAt,omitempty" bson:"startedAt,omitempty"`
	CompletedAt     *time.Time `json:"completedAt,omitempty" bson:"completedAt,omitempty"`
	TimeModel       `bson:",inline"`
}
