package models

// createdAtLayout renders timestamps as day-month-year hour:minute,
// the format the frontend expects in the createdAt field.
const createdAtLayout = "02-01-2006 15:04"

// PublicUser is the client-facing projection of a [User]. It carries
// everything the frontend needs and deliberately omits PasswordHash.
// Constructed at the response boundary, never stored.
type PublicUser struct {
	// ID is the user's unique identifier, serialized as a UUID string.
	ID string `json:"id"`

	// Username is the user's public handle.
	Username string `json:"username"`

	// Email is the user's e-mail address.
	Email string `json:"email"`

	// CreatedAt is the formatted creation timestamp.
	CreatedAt string `json:"createdAt"`
}

// NewPublicUser projects a persisted [User] into its client-facing view.
func NewPublicUser(user User) PublicUser {
	return PublicUser{
		ID:        user.ID.String(),
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt.Format(createdAtLayout),
	}
}

// ErrorResponse is the JSON body returned for every failed request.
// Message is the only field clients may rely on.
type ErrorResponse struct {
	Message string `json:"message"`
}
