package interview

// Step identifies where the interview currently is. Stored as a plain string
// inside the serialized session state so rows stay readable in SQL.
type Step string

const (
	StepWelcome            Step = "welcome"
	StepRoomSelection      Step = "room_selection"
	StepFurnitureTypes     Step = "furniture_types"
	StepFurnitureSelection Step = "furniture_selection"
	StepFurnitureDetails   Step = "furniture_details"
	StepNextAction         Step = "next_action"
	StepFinishConfirmation Step = "finish_confirmation"
)

// Valid reports whether s is one of the known steps. Used when decoding
// persisted session data.
func (s Step) Valid() bool {
	switch s {
	case StepWelcome, StepRoomSelection, StepFurnitureTypes,
		StepFurnitureSelection, StepFurnitureDetails,
		StepNextAction, StepFinishConfirmation:
		return true
	}
	return false
}
