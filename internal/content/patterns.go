package content

// Pattern is a design pattern card in the designs gallery.
type Pattern struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Code        string `json:"code"`
	Example     string `json:"example"`
}

// PatternTab selects the dialog panel.
type PatternTab int

const (
	TabExample PatternTab = iota
	TabCode
)

// Title returns the tab label.
func (t PatternTab) Title() string {
	if t == TabCode {
		return "Code"
	}
	return "Example"
}

// Toggle switches to the other tab.
func (t PatternTab) Toggle() PatternTab {
	if t == TabCode {
		return TabExample
	}
	return TabCode
}

var patterns = []Pattern{
	{
		ID:          "observer",
		Title:       "Observer",
		Description: "Subjects notify registered listeners when something changes.",
		Code: `type Listener interface {
	OnColorGenerated(c Color)
	OnComplete()
}

func (s *Sequencer) step() {
	c := RandomColor()
	s.listener.OnColorGenerated(c)
}`,
		Example: "The preloader announces every swatch; the landing view listens and keeps the first nine.",
	},
	{
		ID:          "state",
		Title:       "State",
		Description: "An object changes behavior when its internal state changes.",
		Code: `type State interface {
	Enter() error
	Exit() error
	Update(dt float64) error
}

manager.Change(NewLandingState(colors))`,
		Example: "Preloader, landing and dialog are states; the manager swaps them between frames.",
	},
	{
		ID:          "strategy",
		Title:       "Strategy",
		Description: "Interchangeable algorithms behind a common interface.",
		Code: `type Source interface {
	IntN(n int) int
}

RandomColorFrom(rand.New(rand.NewPCG(seed, seed)))`,
		Example: "Random colors come from a pluggable source: the shared generator, or a seeded one for replays.",
	},
	{
		ID:          "debounce",
		Title:       "Debounce",
		Description: "Collapse a burst of calls into one, after things settle.",
		Code: `d := NewDebouncer(sched, 100*time.Millisecond, relayout)
for range resizes {
	d.Trigger()
}`,
		Example: "Dragging the terminal edge fires dozens of resize events; layout runs once.",
	},
}

// Patterns returns the designs gallery.
func Patterns() []Pattern {
	out := make([]Pattern, len(patterns))
	copy(out, patterns)
	return out
}

// PatternByID looks a pattern up by its ID.
func PatternByID(id string) (Pattern, bool) {
	for _, p := range patterns {
		if p.ID == id {
			return p, true
		}
	}
	return Pattern{}, false
}
