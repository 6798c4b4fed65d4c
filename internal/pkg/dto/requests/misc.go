package requests

type SaveFodmapTolerance struct {
	Food      string `json:"food" validate:"required"`
	Group     string `json:"group" validate:"required"`
	Tolerance string `json:"tolerance" validate:"required,oneof=unknown tolerated moderate intolerant"`
	Notes     string `json:"notes,omitempty" validate:"max=1000"`
}

type InitiateMbwayPayment struct {
	Phone       string `json:"phone" validate:"required,e164"`
	AmountCents int    `json:"amount_cents" validate:"required,gt=0"`
	Description string `json:"description,omitempty" validate:"max=200"`
}

type ChatMessage struct {
	Message string `json:"message" validate:"required,max=4000"`
}

type EmailPayload struct {
	ReceiverEmail string `json:"receiver_email"`
	Subject       string `json:"subject"`
	Body          string `json:"body"`
	HTML          bool   `json:"html"`
}
