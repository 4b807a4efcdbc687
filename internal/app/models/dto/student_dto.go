package dto

// RegisterStudentRequest represents the insertable student shape
type RegisterStudentRequest struct {
	RegNumber   string `json:"regNumber" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	CollegeName string `json:"collegeName" binding:"required"`
	Location    string `json:"location" binding:"required"`
	Password    string `json:"password" binding:"required"`
}

// UpdateStudentRequest represents a partial student update.
// Nil fields are left untouched.
type UpdateStudentRequest struct {
	RegNumber   *string `json:"regNumber"`
	Name        *string `json:"name"`
	Email       *string `json:"email" binding:"omitempty,email"`
	CollegeName *string `json:"collegeName"`
	Location    *string `json:"location"`
	Password    *string `json:"password"`
}
