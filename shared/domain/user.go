package domain

import "time"

type User struct {
	Id           UserId    `gorm:"primaryKey" json:"id"`
	FullName     string    `gorm:"not null" json:"full_name"`
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`
	Email        Email     `gorm:"uniqueIndex;not null" json:"email"`
	PassHash     string    `gorm:"column:password;not null" json:"-"`
	PhotoProfile string    `json:"photo_profile"`
	Bio          string    `json:"bio"`
	CreatedAt    time.Time `json:"created_at"`
}

// to iterate thru layers: handler -> service -> storage
type Credentials struct {
	Email    Email
	Password Password
}

type RegistrationData struct {
	FullName string
	Username string
	Email    Email
	Password Password
}
