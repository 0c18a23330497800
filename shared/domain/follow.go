package domain

import "time"

// Follow links the following user to the user being followed.
type Follow struct {
	Id              int64     `gorm:"primaryKey" json:"id"`
	FollowingUserId UserId    `gorm:"not null;uniqueIndex:idx_follows_pair" json:"following_user_id"`
	FollowingUser   *User     `gorm:"foreignKey:FollowingUserId;constraint:OnDelete:CASCADE" json:"-"`
	FollowedUserId  UserId    `gorm:"not null;uniqueIndex:idx_follows_pair;index" json:"followed_user_id"`
	FollowedUser    *User     `gorm:"foreignKey:FollowedUserId;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt       time.Time `json:"created_at"`
}

type FollowType string

const (
	Followers  FollowType = "followers"
	Followings FollowType = "followings"
)

// FollowEntry is a user listed on a follows page.
type FollowEntry struct {
	User       `gorm:"embedded"`
	IsFollowed bool `json:"is_followed"`
}
