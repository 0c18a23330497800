package domain

import "time"

// Thread is a user-authored post. RepliesCount and LikesCount are computed
// at read time and never stored.
type Thread struct {
	Id        ThreadId  `gorm:"primaryKey" json:"id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Image     string    `json:"image"`
	UserId    UserId    `gorm:"not null;index" json:"user_id"`
	User      *User     `gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Replies []Reply `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Likes   []Like  `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	RepliesCount int `gorm:"->;-:migration" json:"replies_count"`
	LikesCount   int `gorm:"->;-:migration" json:"likes_count"`
}

// Image holds the local upload filename until the image host returns a public URL.
type ThreadCreationData struct {
	Content string
	Image   string
	UserId  UserId
}

// Empty fields mean "no change".
type ThreadUpdateData struct {
	Id      ThreadId
	Content string
	Image   string
	UserId  UserId
}
