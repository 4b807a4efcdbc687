package dto

// RegisterCollegeRequest represents the insertable college shape
type RegisterCollegeRequest struct {
	Code     string `json:"code" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Location string `json:"location" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateCollegeRequest represents a partial college update.
// Nil fields are left untouched.
type UpdateCollegeRequest struct {
	Code     *string `json:"code"`
	Name     *string `json:"name"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Location *string `json:"location"`
	Password *string `json:"password"`
}
