package fiber

// CreateEventRequest represents event creation payload
// @Description Event creation DTO
type CreateEventRequest struct {
	Screen     string         `json:"screen" example:"Home"`
	Event      string         `json:"event" example:"view"`
	Timestamp  int64          `json:"timestamp" example:"1715342340"`
	DurationMs *float64       `json:"duration_ms,omitempty" example:"1500"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

type CreateEventResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type BulkCreateEventsRequest struct {
	Events []CreateEventRequest `json:"events"`
}

type BulkCreateEventsResponse struct {
	Created    int `json:"created"`
	Duplicates int `json:"duplicates"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_event"`
	Message string `json:"message" example:"Event payload is invalid"`
}
