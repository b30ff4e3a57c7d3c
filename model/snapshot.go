package model

import (
	"encoding/hex"
	"hash/fnv"
	"sort"
)

// Snapshot is a point-in-time copy of all thinkers and connections.
// Engines only read snapshots, they never mutate them.
type Snapshot struct {
	Thinkers    []Thinker    `json:"thinkers"`
	Connections []Connection `json:"connections"`
}

// ThinkerNames maps thinker ids to display names
func (s *Snapshot) ThinkerNames() map[string]string {
	names := make(map[string]string, len(s.Thinkers))
	for _, t := range s.Thinkers {
		names[t.ID] = t.Name
	}
	return names
}

// Fingerprint returns a stable hash over everything the engines read.
// Two snapshots with the same thinkers and connections in any order share a fingerprint.
func (s *Snapshot) Fingerprint() string {
	thinkers := make([]string, 0, len(s.Thinkers))
	for _, t := range s.Thinkers {
		thinkers = append(thinkers, t.ID+"\x1f"+t.Name)
	}
	sort.Strings(thinkers)

	connections := make([]string, 0, len(s.Connections))
	for _, c := range s.Connections {
		connections = append(connections, c.ID+"\x1f"+c.FromThinkerID+"\x1f"+c.ToThinkerID+"\x1f"+string(c.ConnectionType))
	}
	sort.Strings(connections)

	h := fnv.New64a()
	for _, t := range thinkers {
		h.Write([]byte(t))
		h.Write([]byte{0})
	}
	h.Write([]byte{1})
	for _, c := range connections {
		h.Write([]byte(c))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}
