package request_models

type SaveLegRequest struct {
	FromActivityID  string `json:"from_activity_id" binding:"required,uuid"`
	Mode            string `json:"mode" binding:"required,oneof=drive rideshare taxi transit bike walk ferry flight"`
	DurationMinutes *int   `json:"duration_minutes" binding:"omitempty,min=0,max=2880"`
	DistanceMeters  *int   `json:"distance_meters" binding:"omitempty,min=0"`
}
