package dto

// Envelope is the uniform response body: {success, data?, error?}.
// Every endpoint wraps its payload in this shape.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// SuccessEnvelope wraps a payload for a successful response.
func SuccessEnvelope(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

// ErrorEnvelope wraps a user-facing error message.
func ErrorEnvelope(message string) Envelope {
	return Envelope{Success: false, Error: message}
}
