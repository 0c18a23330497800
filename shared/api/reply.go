package api

type CreateReplyRequest struct {
	Content  string `json:"content" validate:"required,max=1000"`
	Image    string `json:"image" validate:"omitempty,url"`
	ThreadId int64  `json:"thread_id" validate:"required,gt=0"`
}
