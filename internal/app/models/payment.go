package models

// PaymentRequest logs every MB WAY initiation so support can reconcile with
// the provider's dashboard. Status mirrors the provider's lifecycle.
type PaymentRequest struct {
	ID          string `json:"id" bson:"_id,omitempty"`
	PatientID   string `json:"patientId" bson:"patientId"`
	Reference   string `json:"reference" bson:"reference"`
	Phone       string `json:"phone" bson:"phone"`
	AmountCents int    `json:"amountCents" bson:"amountCents"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	Status      string `json:"status" bson:"status"`
	TimeModel   `bson:",inline"`
}
