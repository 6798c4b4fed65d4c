package models

// Tolerance marks for the FODMAP reintroduction checklist.
const (
	FodmapToleranceUnknown    = "unknown"
	FodmapToleranceTolerated  = "tolerated"
	FodmapToleranceModerate   = "moderate"
	FodmapToleranceIntolerant = "intolerant"
)

// FodmapEntry records one patient's tolerance mark for one food item.
type FodmapEntry struct {
	ID        string `json:"id" bson:"_id,omitempty"`
	PatientID string `json:"patientId" bson:"patientId"`
	Food      string `json:"food" bson:"food"`
	Group     string `json:"group" bson:"group"`
	Tolerance string `json:"tolerance" bson:"tolerance"`
	Notes     string `json:"notes,omitempty" bson:"notes,omitempty"`
	TimeModel `bson:",inline"`
}
