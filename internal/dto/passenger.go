package dto

// PassengerProfile is the wire shape of /user/passengers/{id}.
// GET omits unknown fields; the client reads a missing key as "".
type PassengerProfile struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Mobile      string `json:"mobile"`
	DateOfBirth string `json:"dateOfBirth"` // "YYYY-MM-DD"
	AadharCard  string `json:"aadharCard"`
	MiniBio     string `json:"miniBio"`
}

// PassengerUpdateResponse ตอบกลับจาก PUT /user/passengers/{id}
type PassengerUpdateResponse struct {
	User    PassengerProfile `json:"user"`
	Message string           `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
