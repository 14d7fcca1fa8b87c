package response

import "movietime/internal/data/entity"

// UserProjection is the minimal identity record returned after login. It
// never carries the password hash.
type UserProjection struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type AuthResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	User    *UserProjection `json:"user,omitempty"`
}

func UserToProjection(user *entity.User) *UserProjection {
	return &UserProjection{
		ID:    user.ID.String(),
		Name:  user.Name,
		Email: user.Email,
	}
}
