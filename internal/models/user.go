package models

// CurrentUser is the signed-in user carried by the auth token
type CurrentUser struct {
	ID        string `json:"user_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// SignedIn reports whether the user carries an id
func (u CurrentUser) SignedIn() bool {
	return u.ID != ""
}
