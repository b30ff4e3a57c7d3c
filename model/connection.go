package model

import (
	"fmt"
	"time"
)

// ConnectionType represents the kind of relationship between two thinkers
type ConnectionType string

const (
	ConnectionTypeInfluenced  ConnectionType = "influenced"
	ConnectionTypeCritiqued   ConnectionType = "critiqued"
	ConnectionTypeBuiltUpon   ConnectionType = "built_upon"
	ConnectionTypeSynthesized ConnectionType = "synthesized"
)

// AllConnectionTypes returns every connection type in display order
func AllConnectionTypes() []ConnectionType {
	return []ConnectionType{
		ConnectionTypeInfluenced,
		ConnectionTypeCritiqued,
		ConnectionTypeBuiltUpon,
		ConnectionTypeSynthesized,
	}
}

// Valid reports whether the connection type is one of the known types
func (c ConnectionType) Valid() bool {
	for _, t := range AllConnectionTypes() {
		if c == t {
			return true
		}
	}
	return false
}

// ParseConnectionType parses a connection type, accepting "built-upon" as alias of "built_upon".
func ParseConnectionType(s string) (ConnectionType, error) {
	if s == "built-upon" {
		return ConnectionTypeBuiltUpon, nil
	}
	c := ConnectionType(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown connection type %q", s)
	}
	return c, nil
}

// Connection represents a directed, typed relationship between two thinkers
type Connection struct {
	ID             string         `json:"id"`
	FromThinkerID  string         `json:"from_thinker_id"`
	ToThinkerID    string         `json:"to_thinker_id"`
	ConnectionType ConnectionType `json:"connection_type"`
	Strength       *int           `json:"strength,omitempty"` // 1..5
	Bidirectional  *bool          `json:"bidirectional,omitempty"`
	Name           *string        `json:"name,omitempty"`
	Metadata       Metadata       `json:"metadata,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
}

// IsBidirectional returns the bidirectional flag, false if unset
func (c Connection) IsBidirectional() bool {
	return c.Bidirectional != nil && *c.Bidirectional
}

// IsSelfLoop reports whether both endpoints are the same thinker
func (c Connection) IsSelfLoop() bool {
	return c.FromThinkerID == c.ToThinkerID
}
