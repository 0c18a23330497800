package domain

import "time"

type Reply struct {
	Id        ReplyId   `gorm:"primaryKey" json:"id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Image     string    `json:"image"`
	UserId    UserId    `gorm:"not null;index" json:"user_id"`
	User      *User     `gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	ThreadId  ThreadId  `gorm:"not null;index" json:"thread_id"`
	CreatedAt time.Time `json:"created_at"`
}

type ReplyCreationData struct {
	Content  string
	Image    string
	ThreadId ThreadId
	UserId   UserId
}
