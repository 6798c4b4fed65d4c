package models

import "time"

type Appointment struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	PatientID    string    `json:"patientId" bson:"patientId"`
	Practitioner string    `json:"practitioner" bson:"practitioner"`
	Location     string    `json:"location" bson:"location"`
	ScheduledAt  time.Time `json:"scheduledAt" bson:"scheduledAt"`
	Status       string    `json:"status" bson:"status"`
	Notes        string    `json:"notes,omitempty" bson:"notes,omitempty"`
	TimeModel    `bson:",inline"`
}
