package entities

import (
	"time"
)

// Word is a single vocabulary entry.
//
// Tags keep the exact order and multiplicity the client submitted;
// DateLearned defaults to the submission date when the client omits it.
type Word struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Word        string     `gorm:"size:256;not null;index" json:"word"`
	Definition  string     `gorm:"type:text;not null" json:"definition"`
	Example     *string    `gorm:"type:text" json:"example"`
	Tags        StringList `gorm:"type:text" json:"tags"`
	DateLearned Date       `gorm:"index" json:"dateLearned"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;size:100;not null" json:"username"`
	Password  string    `gorm:"size:256;not null" json:"-"` // stored as provided, hidden from JSON
	CreatedAt time.Time `json:"createdAt"`
}
