package model

import (
	"strconv"
	"time"
)

// Thinker represents a historical person in the network
type Thinker struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	BirthYear *int      `json:"birth_year,omitempty"`
	DeathYear *int      `json:"death_year,omitempty"`
	Metadata  Metadata  `json:"metadata,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Lifespan formats the birth and death year, e.g. "1724-1804" or "1889-".
// It returns an empty string if the birth year is unknown.
func (t Thinker) Lifespan() string {
	if t.BirthYear == nil {
		return ""
	}
	if t.DeathYear == nil {
		return strconv.Itoa(*t.BirthYear) + "-"
	}
	return strconv.Itoa(*t.BirthYear) + "-" + strconv.Itoa(*t.DeathYear)
}
