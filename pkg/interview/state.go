package interview

import "strings"

// LearnedData caches the names the admin has taught so far. The catalog
// tables are the source of truth; this cache only drives prompts and input
// validation between turns.
type LearnedData struct {
	Rooms           []string            `json:"rooms,omitempty"`
	FurnitureByRoom map[string][]string `json:"furniture_by_room,omitempty"`
}

// State is the full per-session interview state, serialized as one JSON blob
// in the session row and rewritten once per chat turn.
type State struct {
	Step             Step        `json:"step"`
	Learned          LearnedData `json:"learned_data"`
	CurrentRoom      string      `json:"current_room,omitempty"`
	CurrentFurniture string      `json:"current_furniture,omitempty"`
}

// NewState returns the state a freshly started session carries.
func NewState() State {
	return State{Step: StepWelcome}
}

// matchRoom resolves input against the learned rooms case-insensitively and
// returns the canonical stored name.
func (s State) matchRoom(input string) (string, bool) {
	for _, room := range s.Learned.Rooms {
		if strings.EqualFold(room, input) {
			return room, true
		}
	}
	return "", false
}

// matchFurniture requires an exact match against the current room's furniture
// list. Rooms match loosely, furniture does not; both behaviors are pinned by
// tests.
func (s State) matchFurniture(input string) (string, bool) {
	for _, f := range s.Learned.FurnitureByRoom[s.CurrentRoom] {
		if f == input {
			return f, true
		}
	}
	return "", false
}

// remainingRooms is recomputed each time from the full room list minus the
// room being left. No visited set is persisted, so a room detailed earlier can
// reappear here after further detours.
func (s State) remainingRooms() []string {
	remaining := make([]string, 0, len(s.Learned.Rooms))
	for _, room := range s.Learned.Rooms {
		if room != s.CurrentRoom {
			remaining = append(remaining, room)
		}
	}
	return remaining
}

// splitList parses a comma-separated answer: entries are trimmed and
// empty-after-trim entries dropped. Order and duplicates are preserved.
func splitList(input string) []string {
	parts := strings.Split(input, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}
