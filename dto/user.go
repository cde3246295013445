package dto

// UpdateUserRequest carries a partial patch; only provided fields are changed
type UpdateUserRequest struct {
	Email    *string `json:"email"`
	Name     *string `json:"name"`
	Role     *string `json:"role"`
	Password *string `json:"password"`
}
