package domain

import "time"

// A user likes a thread at most once.
type Like struct {
	Id        int64     `gorm:"primaryKey" json:"id"`
	UserId    UserId    `gorm:"not null;uniqueIndex:idx_likes_user_thread" json:"user_id"`
	User      *User     `gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE" json:"-"`
	ThreadId  ThreadId  `gorm:"not null;uniqueIndex:idx_likes_user_thread;index" json:"thread_id"`
	CreatedAt time.Time `json:"created_at"`
}
