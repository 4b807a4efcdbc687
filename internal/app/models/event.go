package models

import "time"

// Event types offered in the UI dropdowns. The API accepts any string;
// these sets are not enforced at the storage layer.
const (
	EventTypeWorkshop    = "workshop"
	EventTypeConference  = "conference"
	EventTypeSymposium   = "symposium"
	EventTypeCultural    = "cultural"
	EventTypeSeminar     = "seminar"
	EventTypeCompetition = "competition"
	EventTypeHackathon   = "hackathon"
	EventTypeSports      = "sports"
	EventTypeSocial      = "social"
	EventTypeCareer      = "career"
)

// Event delivery modes
const (
	EventModeOnline  = "online"
	EventModeOffline = "offline"
	EventModeHybrid  = "hybrid"
)

// Event defines the event model based on the 'events' table.
// Date and time fields are stored as text, matching the persisted schema.
type Event struct {
	ID               int64     `json:"id" db:"id" example:"1"`
	Title            string    `json:"title" db:"title" example:"AI Workshop"`
	Description      string    `json:"description" db:"description"`
	Type             string    `json:"type" db:"type" example:"workshop"`
	Mode             string    `json:"mode" db:"mode" example:"hybrid"`
	StartDate        string    `json:"startDate" db:"start_date" example:"2024-06-01"`
	EndDate          *string   `json:"endDate" db:"end_date"`
	StartTime        string    `json:"startTime" db:"start_time" example:"10:00"`
	EndTime          *string   `json:"endTime" db:"end_time"`
	Venue            string    `json:"venue" db:"venue" example:"Lab 1"`
	Address          *string   `json:"address" db:"address"`
	RegistrationLink string    `json:"registrationLink" db:"registration_link"`
	ImageURL         *string   `json:"imageUrl" db:"image_url"`
	VideoURL         *string   `json:"videoUrl" db:"video_url"`
	CollegeID        int64     `json:"collegeId" db:"college_id" example:"1"`
	CreatedAt        time.Time `json:"createdAt" db:"created_at"`
}
