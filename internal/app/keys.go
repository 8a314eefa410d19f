package app

import (
	"github.com/gdamore/tcell/v2"

	"github.com/arliss/portfolio/internal/app/states"
)

// translateKey maps a key press to an input event. quit is true for q and Ctrl-C.
func translateKey(ev *tcell.EventKey) (in states.InputEvent, ok bool, quit bool) {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return in, false, true
	case tcell.KeyEscape:
		return states.InputEvent{Action: states.ActionBack}, true, false
	case tcell.KeyTab, tcell.KeyRight:
		return states.InputEvent{Action: states.ActionNextSection}, true, false
	case tcell.KeyBacktab, tcell.KeyLeft:
		return states.InputEvent{Action: states.ActionPrevSection}, true, false
	case tcell.KeyDown:
		return states.InputEvent{Action: states.ActionSelectNext}, true, false
	case tcell.KeyUp:
		return states.InputEvent{Action: states.ActionSelectPrev}, true, false
	case tcell.KeyEnter:
		return states.InputEvent{Action: states.ActionOpen}, true, false
	case tcell.KeyRune:
	default:
		return in, false, false
	}

	switch r := ev.Rune(); r {
	case 'q':
		return in, false, true
	case 'l':
		return states.InputEvent{Action: states.ActionNextSection}, true, false
	case 'h':
		return states.InputEvent{Action: states.ActionPrevSection}, true, false
	case 'j':
		return states.InputEvent{Action: states.ActionSelectNext}, true, false
	case 'k':
		return states.InputEvent{Action: states.ActionSelectPrev}, true, false
	case 't':
		return states.InputEvent{Action: states.ActionSwitchTab}, true, false
	case 'm':
		return states.InputEvent{Action: states.ActionToggleMenu}, true, false
	case '1', '2', '3', '4':
		return states.InputEvent{Action: states.ActionJumpSection, Index: int(r - '1')}, true, false
	}
	return in, false, false
}
