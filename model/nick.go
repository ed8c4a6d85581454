package model

// Nick is a display name attached to a user. A user may accumulate several
// rows; lookups return the oldest one.
type Nick struct {
	ID     int64  `json:"id"`
	UserID int64  `json:"userId"`
	Nick   string `json:"nick"`
}
