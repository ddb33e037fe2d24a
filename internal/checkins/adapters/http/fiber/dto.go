package fiber

import "time"

type CreateCheckInRequest struct {
	PhotoURL  string   `json:"photo_url" example:"https://cdn.example.com/summit.jpg"`
	Latitude  *float64 `json:"latitude,omitempty" example:"46.5586"`
	Longitude *float64 `json:"longitude,omitempty" example:"8.5612"`
	Timestamp int64    `json:"timestamp,omitempty" example:"1714557600"`
}

type LocationResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type CheckInResponse struct {
	ID            string            `json:"id"`
	UserID        string            `json:"user_id"`
	Timestamp     *time.Time        `json:"timestamp,omitempty"`
	PhotoURL      string            `json:"photo_url"`
	Location      *LocationResponse `json:"location,omitempty"`
	DateLabel     string            `json:"date_label" example:"May 1, 2024 10:00 AM"`
	LocationLabel string            `json:"location_label" example:"46.56, 8.56"`
}

type TimelineResponse struct {
	CheckIns []CheckInResponse `json:"checkins"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_checkin"`
	Message string `json:"message" example:"photourl is required"`
}
