package api

// Request DTOs

// CreateThreadRequest is validated after the image reached the uploads dir;
// Image holds the local filename at that point.
type CreateThreadRequest struct {
	Content string `json:"content" validate:"required,max=1000"`
	Image   string `json:"image"`
}

// Empty strings mean "leave unchanged".
type UpdateThreadRequest struct {
	Content string `json:"content" validate:"omitempty,max=1000"`
	Image   string `json:"image" validate:"omitempty,url"`
}
