package states

// Action is a host-independent input command.
type Action int

const (
	ActionNone Action = iota
	ActionNextSection
	ActionPrevSection
	ActionJumpSection // Index selects the section
	ActionSelectNext
	ActionSelectPrev
	ActionOpen
	ActionBack
	ActionToggleMenu
	ActionSwitchTab
)

// InputEvent is delivered to State.HandleInput.
type InputEvent struct {
	Action Action
	Index  int
}
