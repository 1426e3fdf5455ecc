package dto

import "github.com/emre/unifolio/internal/app/models"

// UpdateBiographyRequest carries a full-replace biography edit.
type UpdateBiographyRequest struct {
	Biography string `form:"biography" json:"biography"`
}

// UpdateFeaturedWorksRequest carries a full-replace featured-works edit.
type UpdateFeaturedWorksRequest struct {
	FeaturedWorks string `form:"featuredworks" json:"featuredworks"`
}

// UserResponse is the public rendering of a user record. The credential
// digest is never part of it.
type UserResponse struct {
	ID             int64  `json:"id"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Faculty        string `json:"faculty"`
	Department     string `json:"department"`
	Programme      string `json:"programme"`
	GraduatingYear int    `json:"graduatingYear"`
	Picture        string `json:"picture"`
	Biography      string `json:"biography"`
	FeaturedWorks  string `json:"featuredWorks"`
	Facebook       string `json:"facebook"`
	Twitter        string `json:"twitter"`
	Instagram      string `json:"instagram"`
	LinkedIn       string `json:"linkedin"`
}

// NewUserResponse maps a user model to its public rendering.
func NewUserResponse(u *models.User) *UserResponse {
	return &UserResponse{
		ID:             u.ID,
		Username:       u.Username,
		Email:          u.Email,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		Faculty:        u.Faculty,
		Department:     u.Department,
		Programme:      u.Programme,
		GraduatingYear: u.GraduatingYear,
		Picture:        u.Picture,
		Biography:      u.Biography,
		FeaturedWorks:  u.FeaturedWorks,
		Facebook:       u.Facebook,
		Twitter:        u.Twitter,
		Instagram:      u.Instagram,
		LinkedIn:       u.LinkedIn,
	}
}

// NewUserResponseList maps a slice of user models.
func NewUserResponseList(users []*models.User) []*UserResponse {
	out := make([]*UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u))
	}
	return out
}
