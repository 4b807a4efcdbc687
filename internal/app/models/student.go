package models

// Student defines the student model based on the 'students' table
type Student struct {
	ID          int64  `json:"id" db:"id" example:"1"`                               // Unique identifier for the student record
	RegNumber   string `json:"regNumber" db:"reg_number" example:"REG2024001"`       // Registration number, functions as login username
	Name        string `json:"name" db:"name" example:"Jane Doe"`                    // Student's full name
	Email       string `json:"email" db:"email" example:"jane@university.edu"`       // Student's email address
	CollegeName string `json:"collegeName" db:"college_name" example:"MIT"`          // Name of the student's college
	Location    string `json:"location" db:"location" example:"Cambridge, MA"`       // Student's location
	Password    string `json:"-" db:"password"`                                      // Hashed password (excluded from JSON)
}
