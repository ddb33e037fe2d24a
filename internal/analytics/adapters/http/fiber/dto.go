package fiber

type ScreenDurationResponse struct {
	Screen      string `json:"screen" example:"Home"`
	AvgDuration int64  `json:"avg_duration" example:"150"`
}

type EventTypeResponse struct {
	Name  string `json:"name" example:"view"`
	Value int64  `json:"value" example:"2"`
}

type DailyCountResponse struct {
	Date  string `json:"date" example:"2024-05-01"`
	Count int64  `json:"count" example:"12"`
}

type DashboardResponse struct {
	Screen          string                   `json:"screen" example:"all"`
	Range           string                   `json:"range" example:"30"`
	TotalEvents     int                      `json:"total_events"`
	Screens         []string                 `json:"screens"`
	AverageDuration []ScreenDurationResponse `json:"average_duration"`
	EventTypes      []EventTypeResponse      `json:"event_types"`
	Daily           []DailyCountResponse     `json:"daily"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_time_range"`
	Message string `json:"message" example:"invalid time range"`
}
