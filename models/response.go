package models

// ErrorResponse is a generic error response structure for API
type ErrorResponse struct {
	Message string `json:"message" example:"Error message describing the issue"`
}

// ReceiveResponse is the fixed success payload returned by the receiver
// endpoint. It is identical whether or not a comment was delivered.
type ReceiveResponse struct {
	Status  string `json:"status" example:"success"`
	Message string `json:"message" example:"Results received and processed"`
}

// ReceiveSuccess returns the canonical success payload.
func ReceiveSuccess() ReceiveResponse {
	return ReceiveResponse{Status: "success", Message: "Results received and processed"}
}
