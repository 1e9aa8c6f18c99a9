package gui

import "fmt"

// ID identifies an input event.
type ID int

const (
	Up ID = iota
	Down
	Left
	Right
	Select
	Back
	Click
	Help
)

var idNames = [...]string{"Up", "Down", "Left", "Right", "Select", "Back", "Click", "Help"}

func (id ID) String() string {
	if id < 0 || int(id) >= len(idNames) {
		return fmt.Sprintf("ID(%d)", int(id))
	}
	return idNames[id]
}

// Event is an input event. X and Y are only meaningful for Click.
type Event struct {
	ID   ID
	X, Y int
}

func (e Event) String() string {
	if e.ID == Click {
		return fmt.Sprintf("Click(%d,%d)", e.X, e.Y)
	}
	return e.ID.String()
}
