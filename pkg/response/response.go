package response

// Response is the envelope every endpoint answers with. Success responses
// carry either data or a human-readable message; failures carry a message
// only, so internal error detail never reaches the client.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// OK wraps data in a success envelope
func OK(data interface{}) Response {
	return Response{
		Success: true,
		Data:    data,
	}
}

// Message wraps a confirmation text in a success envelope
func Message(msg string) Response {
	return Response{
		Success: true,
		Message: msg,
	}
}

// Error wraps an error message in a failure envelope
func Error(msg string) Response {
	return Response{
		Success: false,
		Message: msg,
	}
}
