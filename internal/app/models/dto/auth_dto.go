package dto

// RegisterRequest carries the registration form. Field names mirror the
// public registration form; binding rules are deliberately conservative.
type RegisterRequest struct {
	Username       string `form:"username" json:"username" binding:"required,max=64"`
	Password       string `form:"password" json:"password" binding:"required,min=8"`
	Email          string `form:"email" json:"email" binding:"required,email"`
	FirstName      string `form:"firstname" json:"firstname" binding:"required"`
	LastName       string `form:"lastname" json:"lastname" binding:"required"`
	Faculty        string `form:"faculty" json:"faculty" binding:"required"`
	Department     string `form:"department" json:"department" binding:"required"`
	Programme      string `form:"programme" json:"programme" binding:"required"`
	GraduatingYear int    `form:"year" json:"year" binding:"required,min=1900,max=2100"`
	Picture        string `form:"picture" json:"picture"`
	Facebook       string `form:"facebook" json:"facebook"`
	Twitter        string `form:"twitter" json:"twitter"`
	Instagram      string `form:"instagram" json:"instagram"`
	LinkedIn       string `form:"linkedin" json:"linkedin"`
}

// LoginRequest carries the login form credentials.
type LoginRequest struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}
