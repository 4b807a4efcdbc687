package dto

// MessageResponse is the body for confirmation and error responses.
// Errors carry a plain message, no structured error codes.
type MessageResponse struct {
	Message string `json:"message"`
}

// NewMessageResponse creates a message body
func NewMessageResponse(message string) MessageResponse {
	return MessageResponse{Message: message}
}
