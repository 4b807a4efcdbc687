package dto

// CreateEventRequest represents the insertable event shape
type CreateEventRequest struct {
	Title            string  `json:"title" binding:"required"`
	Description      string  `json:"description" binding:"required"`
	Type             string  `json:"type" binding:"required"`
	Mode             string  `json:"mode" binding:"required"`
	StartDate        string  `json:"startDate" binding:"required"`
	EndDate          *string `json:"endDate"`
	StartTime        string  `json:"startTime" binding:"required"`
	EndTime          *string `json:"endTime"`
	Venue            string  `json:"venue" binding:"required"`
	Address          *string `json:"address"`
	RegistrationLink string  `json:"registrationLink" binding:"required"`
	ImageURL         *string `json:"imageUrl"`
	VideoURL         *string `json:"videoUrl"`
	CollegeID        int64   `json:"collegeId" binding:"required"`
}

// UpdateEventRequest represents a partial event update.
// Nil fields are left untouched.
type UpdateEventRequest struct {
	Title            *string `json:"title"`
	Description      *string `json:"description"`
	Type             *string `json:"type"`
	Mode             *string `json:"mode"`
	StartDate        *string `json:"startDate"`
	EndDate          *string `json:"endDate"`
	StartTime        *string `json:"startTime"`
	EndTime          *string `json:"endTime"`
	Venue            *string `json:"venue"`
	Address          *string `json:"address"`
	RegistrationLink *string `json:"registrationLink"`
	ImageURL         *string `json:"imageUrl"`
	VideoURL         *string `json:"videoUrl"`
}

// EventFilter carries the optional query parameters of the event listing
// endpoint. Search selects the substring-search path in the repository;
// the remaining predicates narrow the result in-process.
type EventFilter struct {
	Search   string
	Type     string
	Mode     string
	Location string
}
