package models

// College defines the college model based on the 'colleges' table
type College struct {
	ID       int64  `json:"id" db:"id" example:"1"`                          // Unique identifier for the college record
	Code     string `json:"code" db:"code" example:"MIT2024"`                // University code, functions as login username
	Name     string `json:"name" db:"name" example:"MIT"`                    // College name
	Email    string `json:"email" db:"email" example:"admin@mit.edu"`        // College contact email
	Location string `json:"location" db:"location" example:"Cambridge, MA"`  // College location
	Password string `json:"-" db:"password"`                                 // Hashed password (excluded from JSON)
}
