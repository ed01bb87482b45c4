// Package interview implements the scripted wizard that walks an admin
// through teaching the furniture catalog: rooms, furniture types per room,
// then free-text product descriptions.
//
// Advance is a pure function. It never touches storage; catalog persistence
// is returned declaratively as CatalogWrites for the caller to apply in the
// same transaction as the session update.
package interview

import (
	"fmt"
	"strings"
)

// Outcome is the result of one chat turn.
type Outcome struct {
	Reply    string
	State    State
	Writes   []CatalogWrite
	Complete bool
}

// Advance processes one admin message against the current state. Invalid
// input never fails the turn; the reply re-prompts and the step stays put.
func Advance(s State, input string) Outcome {
	switch s.Step {
	case StepWelcome:
		return advanceWelcome(s, input)
	case StepRoomSelection:
		return advanceRoomSelection(s, input)
	case StepFurnitureTypes:
		return advanceFurnitureTypes(s, input)
	case StepFurnitureSelection:
		return advanceFurnitureSelection(s, input)
	case StepFurnitureDetails:
		return advanceFurnitureDetails(s, input)
	case StepNextAction:
		return advanceNextAction(s, input)
	case StepFinishConfirmation:
		return advanceFinishConfirmation(s, input)
	default:
		// Unknown step in a stored row; restart the walk rather than wedge
		// the session.
		s.Step = StepWelcome
		return Outcome{Reply: Greeting(), State: s}
	}
}

func advanceWelcome(s State, input string) Outcome {
	rooms := splitList(input)
	if len(rooms) == 0 {
		return Outcome{
			Reply: "Please provide at least one room. Example: Living Room, Bedroom, Dining Room",
			State: s,
		}
	}

	writes := make([]CatalogWrite, 0, len(rooms))
	for _, room := range rooms {
		writes = append(writes, ensureRoom(room))
	}

	s.Learned.Rooms = rooms
	s.Step = StepRoomSelection

	reply := fmt.Sprintf(`Great! I've noted that you furnish: %s

Now let's explore each room. Which room should we start with?

Please type the room name: %s`, strings.Join(rooms, ", "), strings.Join(rooms, ", "))

	return Outcome{Reply: reply, State: s, Writes: writes}
}

func advanceRoomSelection(s State, input string) Outcome {
	room, ok := s.matchRoom(strings.TrimSpace(input))
	if !ok {
		reply := fmt.Sprintf("I don't see '%s' in your room list. Please choose from: %s",
			strings.TrimSpace(input), strings.Join(s.Learned.Rooms, ", "))
		return Outcome{Reply: reply, State: s}
	}

	s.CurrentRoom = room
	s.Step = StepFurnitureTypes

	reply := fmt.Sprintf(`Perfect! Let's explore %s.

What types of furniture do you offer for the %s?
(e.g., for Living Room: Sofa, TV Unit, Center Table, Bookshelf)

Please list furniture types separated by commas:`, room, room)

	return Outcome{Reply: reply, State: s}
}

func advanceFurnitureTypes(s State, input string) Outcome {
	furniture := splitList(input)
	if len(furniture) == 0 {
		return Outcome{Reply: "Please provide at least one furniture type.", State: s}
	}

	writes := make([]CatalogWrite, 0, len(furniture))
	for _, f := range furniture {
		writes = append(writes, ensureFurnitureType(s.CurrentRoom, f))
	}

	if s.Learned.FurnitureByRoom == nil {
		s.Learned.FurnitureByRoom = make(map[string][]string)
	}
	s.Learned.FurnitureByRoom[s.CurrentRoom] = furniture
	s.Step = StepFurnitureSelection

	reply := fmt.Sprintf(`Excellent! For %s, you offer: %s

Now let's detail each furniture type. Which one should we start with?

Type the furniture name: %s`, s.CurrentRoom, strings.Join(furniture, ", "), strings.Join(furniture, ", "))

	return Outcome{Reply: reply, State: s, Writes: writes}
}

func advanceFurnitureSelection(s State, input string) Outcome {
	furniture, ok := s.matchFurniture(strings.TrimSpace(input))
	if !ok {
		reply := fmt.Sprintf("I don't see '%s' in your list for %s. Please choose from: %s",
			strings.TrimSpace(input), s.CurrentRoom,
			strings.Join(s.Learned.FurnitureByRoom[s.CurrentRoom], ", "))
		return Outcome{Reply: reply, State: s}
	}

	s.CurrentFurniture = furniture
	s.Step = StepFurnitureDetails

	reply := fmt.Sprintf(`Let's detail %s for %s.

Please describe this furniture item. Include:
1. Available sizes/variants (e.g., 2-seater, 3-seater, king size, queen size)
2. Material options (e.g., fabric, leather, wood types)
3. Color options
4. Any special features or add-ons
5. Price range
6. Delivery time

Example: "3-seater fabric sofas available in 5 colors (grey, blue, beige, maroon, black) with optional storage. Price: 25,000-45,000. Delivery: 3-4 weeks."

Please describe your %s:`, furniture, s.CurrentRoom, furniture)

	return Outcome{Reply: reply, State: s}
}

func advanceFurnitureDetails(s State, input string) Outcome {
	write := appendProductConfig(s.CurrentRoom, s.CurrentFurniture, input)

	s.Step = StepNextAction

	reply := fmt.Sprintf(`Great! I've saved details for %s in %s.

What would you like to do next?
1. Detail another furniture type in %s
2. Move to another room
3. Finish interview

Type your choice (1, 2, or 3):`, s.CurrentFurniture, s.CurrentRoom, s.CurrentRoom)

	return Outcome{Reply: reply, State: s, Writes: []CatalogWrite{write}}
}

func advanceNextAction(s State, input string) Outcome {
	switch strings.TrimSpace(input) {
	case "1":
		s.CurrentFurniture = ""
		s.Step = StepFurnitureSelection
		reply := fmt.Sprintf(`Which other furniture in %s would you like to detail?

Available: %s

Type the furniture name:`, s.CurrentRoom, strings.Join(s.Learned.FurnitureByRoom[s.CurrentRoom], ", "))
		return Outcome{Reply: reply, State: s}

	case "2":
		remaining := s.remainingRooms()
		if len(remaining) == 0 {
			s.Step = StepFinishConfirmation
			return Outcome{Reply: "You've covered all rooms! Would you like to finish? (yes/no)", State: s}
		}
		s.CurrentRoom = ""
		s.CurrentFurniture = ""
		s.Step = StepRoomSelection
		reply := fmt.Sprintf(`Which room would you like to explore next?

Available rooms: %s

Type the room name:`, strings.Join(remaining, ", "))
		return Outcome{Reply: reply, State: s}

	case "3":
		s.Step = StepFinishConfirmation
		return Outcome{Reply: "Are you sure you want to finish the interview? (yes/no)", State: s}

	default:
		return Outcome{Reply: "Please choose 1, 2, or 3.", State: s}
	}
}

func advanceFinishConfirmation(s State, input string) Outcome {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "yes", "y", "finish":
		reply := fmt.Sprintf(`Interview Complete!

Here's what I learned about your company:
%s

Your furniture knowledge has been saved to the database.
Customers can now use this information through the customer chat.

Thank you for teaching me!`, Summary(s.Learned))
		return Outcome{Reply: reply, State: s, Complete: true}
	}

	s.Step = StepNextAction
	reply := `Let's continue. What would you like to do next?
1. Detail another furniture
2. Move to another room
3. Finish interview`
	return Outcome{Reply: reply, State: s}
}

// Greeting is the opening message sent when a session starts.
func Greeting() string {
	return `Hello! I'm Ella, your furniture teaching assistant.

I'll help you teach me about all the furniture your company offers.
Let's start with the basics:

What rooms do you furnish? (e.g., Living Room, Bedroom, Dining Room, Office)

Please list them separated by commas.`
}

// Progress renders the per-step progress label shown above the chat form.
func Progress(s State) string {
	switch s.Step {
	case StepWelcome:
		return "Step 1: Teaching me about rooms"
	case StepRoomSelection:
		return "Step 2: Selecting a room to explore"
	case StepFurnitureTypes:
		room := s.CurrentRoom
		if room == "" {
			room = "a room"
		}
		return fmt.Sprintf("Step 3: Listing furniture for %s", room)
	case StepFurnitureSelection:
		room := s.CurrentRoom
		if room == "" {
			room = "current room"
		}
		return fmt.Sprintf("Step 4: Selecting furniture in %s to detail", room)
	case StepFurnitureDetails:
		furniture := s.CurrentFurniture
		if furniture == "" {
			furniture = "selected furniture"
		}
		return fmt.Sprintf("Step 5: Detailing %s", furniture)
	case StepNextAction:
		return "Step 6: Choosing next action"
	case StepFinishConfirmation:
		return "Final step: Completing interview"
	}
	return "Teaching in progress..."
}
