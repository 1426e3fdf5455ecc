package models

// Programme is one row of the read-only programme catalogue. The three fields
// form a faculty > department > programme hierarchy; duplicate rows are
// expected (one row per concrete offering). Users carry free-text copies of
// these values, not references.
type Programme struct {
	ID         int64  `json:"id" db:"id"`
	Faculty    string `json:"faculty" db:"faculty"`
	Department string `json:"department" db:"department"`
	Programme  string `json:"programme" db:"programme"`
}
