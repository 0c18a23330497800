package api

type CreateFollowRequest struct {
	FollowedUserId int64 `json:"followed_user_id" validate:"required,gt=0"`
}
