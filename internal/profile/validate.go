package profile

import "regexp"

var (
	namePattern   = regexp.MustCompile(`^[a-zA-Z]+$`)
	mobilePattern = regexp.MustCompile(`^[789]\d{9}$`)
)

// Validation messages shown inline under each field.
const (
	MsgFirstNameRequired = "First Name is required"
	MsgFirstNameLetters  = "First Name must be a string"
	MsgLastNameRequired  = "Last Name is required"
	MsgLastNameLetters   = "Last Name must be a string"
	MsgMobileRequired    = "Mobile is required"
	MsgMobileFormat      = "Mobile must be 10 digits and start with 7, 8, or 9"
)

// Errors maps a field name to its validation message. Empty means valid.
type Errors map[string]string

// Has reports whether field carries an error
func (e Errors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// ValidateFields checks first name, last name and mobile. Every failing field is reported.
func ValidateFields(f Fields) Errors {
	errs := Errors{}

	if f.FirstName == "" {
		errs[FieldFirstName] = MsgFirstNameRequired
	} else if !namePattern.MatchString(f.FirstName) {
		errs[FieldFirstName] = MsgFirstNameLetters
	}

	if f.LastName == "" {
		errs[FieldLastName] = MsgLastNameRequired
	} else if !namePattern.MatchString(f.LastName) {
		errs[FieldLastName] = MsgLastNameLetters
	}

	if f.Mobile == "" {
		errs[FieldMobile] = MsgMobileRequired
	} else if !mobilePattern.MatchString(f.Mobile) {
		errs[FieldMobile] = MsgMobileFormat
	}

	return errs
}
