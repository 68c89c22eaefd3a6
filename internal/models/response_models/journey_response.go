package response_models

// JourneyResponse is the journey header shown above its conflict report.
// Dates are RFC3339 in the schedule zone, "" when unset.
type JourneyResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Location  string `json:"location"`
}
