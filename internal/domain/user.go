package domain

// User mirrors the subset of the users table this backend reads and writes.
// The row is owned by the auth subsystem; deletion is the only mutation here.
type User struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	ProfileImage *string `json:"profile_image,omitempty"` // storage key, nil when unset
	CreatedOn    string  `json:"created_on"`
}
