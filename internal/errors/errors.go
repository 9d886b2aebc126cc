package errors

// StatusResponse is the body shape of the auth endpoints: a success flag and
// a user-facing message. Login failures use it with a 200 status.
type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorResponse is the body shape of the quiz endpoints on failure.
type ErrorResponse struct {
	Error string `json:"error"`
}
