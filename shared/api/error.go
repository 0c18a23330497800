package api

// ValidationErrorResponse is the body of every 400 response.
type ValidationErrorResponse struct {
	Error string `json:"error"`
}
