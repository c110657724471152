package request

type BookEventRequest struct {
	EventID string `json:"event_id" validate:"required,uuid"`
}
