package models

import (
	"time"
)

// DefaultPicture is used when registration supplies no picture.
const DefaultPicture = "/static/dp.png"

// User defines the user model based on the 'users' table. The password field
// holds the bcrypt digest and is excluded from every JSON rendering.
type User struct {
	ID             int64     `json:"id" db:"id" example:"1"`
	Username       string    `json:"username" db:"username" example:"jdoe"` // Unique, lowercased at write time
	Email          string    `json:"email" db:"email" example:"jdoe@my.uni.edu"`
	Password       string    `json:"-" db:"password"` // bcrypt digest (excluded from JSON)
	FirstName      string    `json:"firstName" db:"first_name" example:"John"`
	LastName       string    `json:"lastName" db:"last_name" example:"Doe"`
	Faculty        string    `json:"faculty" db:"faculty" example:"Science"`
	Department     string    `json:"department" db:"department" example:"Computing"`
	Programme      string    `json:"programme" db:"programme" example:"Computer Science"`
	GraduatingYear int       `json:"graduatingYear" db:"graduating_year" example:"2026"`
	Picture        string    `json:"picture" db:"picture" example:"/static/dp.png"`
	Biography      string    `json:"biography" db:"biography"`
	FeaturedWorks  string    `json:"featuredWorks" db:"featured_works"`
	Facebook       string    `json:"facebook" db:"sm_facebook"`
	Twitter        string    `json:"twitter" db:"sm_twitter"`
	Instagram      string    `json:"instagram" db:"sm_instagram"`
	LinkedIn       string    `json:"linkedin" db:"sm_linkedin"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at" example:"2024-01-02T15:30:00Z"`
}
