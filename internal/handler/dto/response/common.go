package response

import "hotel-booking/internal/usecase/queries"

// Envelope is the success body shared by every JSON endpoint
type Envelope struct {
	Success    bool              `json:"success"`
	StatusCode int               `json:"statusCode"`
	Message    string            `json:"message,omitempty"`
	Meta       *queries.PageMeta `json:"meta,omitempty"`
	Data       any               `json:"data"`
}

func OK(status int, message string, data any) Envelope {
	return Envelope{Success: true, StatusCode: status, Message: message, Data: data}
}

func Paged(status int, message string, meta queries.PageMeta, data any) Envelope {
	return Envelope{Success: true, StatusCode: status, Message: message, Meta: &meta, Data: data}
}
