package components

import (
	cfg "github.com/automoto/isoterrain/config"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputXbox
	InputPlayStation
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current         [cfg.ActionCount]bool // Current frame's Pressed state
	Previous        [cfg.ActionCount]bool // Previous frame's Pressed state
	LastInputMethod InputMethod           // Most recently used input method

	// Characters typed this frame, in keyboard layout order
	Chars []rune
}

// TakeChars returns this frame's characters and empties the buffer so a
// character is handled once.
func (d *InputData) TakeChars() []rune {
	chars := d.Chars
	d.Chars = d.Chars[:0]
	return chars
}

var Input = donburi.NewComponentType[InputData]()
