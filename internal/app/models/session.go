package models

// Session is the payload stored in redis under the session ID carried by the
// JWT. Everything the delivery layer needs about the caller lives here.
type Session struct {
	UserID   string `json:"userId"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
}
