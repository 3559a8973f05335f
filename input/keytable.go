package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps terminal keys to pilot actions
type KeyTable struct {
	// Special keys (arrows, control keys)
	SpecialKeys map[tcell.Key]Action

	// Rune bindings, matched case-insensitively
	Runes map[rune]Action
}

// DefaultKeyTable returns the default flight bindings
// W/S thrust, A/D coarse yaw, arrows vertical and fine yaw
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Action{
			tcell.KeyUp:     ActionVerticalPlus,
			tcell.KeyDown:   ActionVerticalMinus,
			tcell.KeyLeft:   ActionYawFineMinus,
			tcell.KeyRight:  ActionYawFinePlus,
			tcell.KeyCtrlC:  ActionQuit,
			tcell.KeyEscape: ActionQuit,
		},
		Runes: map[rune]Action{
			'w': ActionForwardPlus,
			's': ActionForwardMinus,
			'a': ActionYawMinus,
			'd': ActionYawPlus,
			'b': ActionBrake,
			'v': ActionAutopilotToggle,
			't': ActionTargetPick,
			'q': ActionQuit,
		},
	}
}

// Lookup resolves a key event to an action, ActionNone when unbound
func (kt *KeyTable) Lookup(ev *tcell.EventKey) Action {
	if ev == nil {
		return ActionNone
	}
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		return kt.Runes[r]
	}
	return kt.SpecialKeys[ev.Key()]
}
