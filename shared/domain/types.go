package domain

type (
	UserId   = int64
	ThreadId = int64
	ReplyId  = int64
	Email    = string
	Password = string
)
