package states

import (
	"go.uber.org/zap"

	"github.com/arliss/portfolio/internal/content"
	"github.com/arliss/portfolio/internal/logger"
	"github.com/arliss/portfolio/internal/palette"
)

// LandingStateConfig contains configuration for the landing state.
type LandingStateConfig struct {
	Profile   content.Profile
	Collected *palette.Collected
}

// Dialog is an open design pattern dialog.
type Dialog struct {
	Pattern content.Pattern
	Tab     content.PatternTab
}

// LandingState is the main view shown after the preloader.
type LandingState struct {
	config  LandingStateConfig
	manager *Manager
	theme   palette.Theme

	section  content.Section
	drawer   bool
	selected int
	dialog   *Dialog
	patterns []content.Pattern
}

// NewLandingState creates a new landing state.
func NewLandingState(cfg LandingStateConfig, manager *Manager) *LandingState {
	if cfg.Collected == nil {
		cfg.Collected = palette.NewCollected(0)
	}
	return &LandingState{
		config:   cfg,
		manager:  manager,
		theme:    palette.DeriveTheme(cfg.Collected),
		section:  content.SectionAbout,
		patterns: content.Patterns(),
	}
}

// Enter is called when entering this state.
func (s *LandingState) Enter() error {
	logger.Info("entering LandingState", zap.Strings("colors", colorStrings(s.config.Collected.Colors())))
	return nil
}

// Exit is called when leaving this state.
func (s *LandingState) Exit() error {
	return nil
}

// Update is called every frame.
func (s *LandingState) Update(dt float64) error {
	return nil
}

// HandleInput processes navigation, drawer and dialog input.
func (s *LandingState) HandleInput(event interface{}) error {
	ev, ok := event.(InputEvent)
	if !ok {
		return nil
	}

	if s.dialog != nil {
		switch ev.Action {
		case ActionBack:
			s.dialog = nil
		case ActionSwitchTab, ActionNextSection, ActionPrevSection:
			s.dialog.Tab = s.dialog.Tab.Toggle()
		}
		return nil
	}

	switch ev.Action {
	case ActionToggleMenu:
		s.drawer = !s.drawer
	case ActionBack:
		s.drawer = false
	case ActionNextSection:
		s.setSection(s.section.Next())
	case ActionPrevSection:
		s.setSection(s.section.Prev())
	case ActionJumpSection:
		if ev.Index >= 0 && ev.Index < len(content.Sections) {
			s.setSection(content.Sections[ev.Index])
		}
	case ActionSelectNext:
		if s.section == content.SectionDesigns && s.selected < len(s.patterns)-1 {
			s.selected++
		}
	case ActionSelectPrev:
		if s.section == content.SectionDesigns && s.selected > 0 {
			s.selected--
		}
	case ActionOpen:
		if s.section == content.SectionDesigns && len(s.patterns) > 0 {
			s.dialog = &Dialog{Pattern: s.patterns[s.selected], Tab: content.TabExample}
			logger.Debug("pattern dialog opened", zap.String("pattern", s.dialog.Pattern.ID))
		}
	}
	return nil
}

func (s *LandingState) setSection(sec content.Section) {
	s.section = sec
	s.drawer = false
}

// Profile returns the person shown.
func (s *LandingState) Profile() content.Profile {
	return s.config.Profile
}

// Theme returns the colors derived from the preloader run.
func (s *LandingState) Theme() palette.Theme {
	return s.theme
}

// LetterColor returns the color of the i-th title letter.
func (s *LandingState) LetterColor(i int) palette.Color {
	return s.config.Collected.Cycle(i, palette.Black)
}

// CornerColor returns collected color i, or black.
func (s *LandingState) CornerColor(i int) palette.Color {
	return s.config.Collected.At(i, palette.Black)
}

// Section returns the active section.
func (s *LandingState) Section() content.Section {
	return s.section
}

// DrawerOpen reports whether the navigation drawer is open.
func (s *LandingState) DrawerOpen() bool {
	return s.drawer
}

// Patterns returns the designs gallery.
func (s *LandingState) Patterns() []content.Pattern {
	return s.patterns
}

// Selected returns the highlighted pattern index.
func (s *LandingState) Selected() int {
	return s.selected
}

// Dialog returns the open dialog, or nil.
func (s *LandingState) Dialog() *Dialog {
	return s.dialog
}

func colorStrings(colors []palette.Color) []string {
	out := make([]string, len(colors))
	for i, c := range colors {
		out[i] = string(c)
	}
	return out
}
