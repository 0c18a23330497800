package api

type CreateLikeRequest struct {
	ThreadId int64 `json:"thread_id" validate:"required,gt=0"`
}
