// Package content holds the static copy shown on the landing view.
package content

import "github.com/arliss/portfolio/internal/config"

// Section is a top-level navigation entry.
type Section int

const (
	SectionAbout Section = iota
	SectionDesigns
	SectionProjects
	SectionSocials
)

// Sections lists navigation entries in display order.
var Sections = []Section{SectionAbout, SectionDesigns, SectionProjects, SectionSocials}

// Title returns the navigation label.
func (s Section) Title() string {
	switch s {
	case SectionAbout:
		return "ABOUT ME"
	case SectionDesigns:
		return "DESIGNS"
	case SectionProjects:
		return "PROJECTS"
	case SectionSocials:
		return "SOCIALS"
	default:
		return ""
	}
}

// Anchor returns the in-page link target used by the web host.
func (s Section) Anchor() string {
	switch s {
	case SectionDesigns:
		return "designs"
	case SectionProjects:
		return "projects"
	case SectionSocials:
		return "socials"
	default:
		return "about"
	}
}

// Next returns the following section, wrapping around.
func (s Section) Next() Section {
	return Sections[(int(s)+1)%len(Sections)]
}

// Prev returns the preceding section, wrapping around.
func (s Section) Prev() Section {
	return Sections[(int(s)+len(Sections)-1)%len(Sections)]
}

// Social is a named external profile link.
type Social struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Profile is the person the portfolio belongs to.
type Profile struct {
	Name    string   `json:"name"`
	Role    string   `json:"role"`
	Tagline string   `json:"tagline"`
	Socials []Social `json:"socials"`
}

// ProfileFrom converts the configured profile.
func ProfileFrom(cfg config.ProfileConfig) Profile {
	p := Profile{
		Name:    cfg.Name,
		Role:    cfg.Role,
		Tagline: cfg.Tagline,
	}
	for _, s := range cfg.Socials {
		p.Socials = append(p.Socials, Social{Name: s.Name, URL: s.URL})
	}
	return p
}

// Project is an entry in the projects section.
type Project struct {
	Name    string   `json:"name"`
	Summary string   `json:"summary"`
	Stack   []string `json:"stack"`
}

// Projects returns the projects section.
func Projects() []Project {
	return []Project{
		{
			Name:    "portfolio",
			Summary: "This site: a color-cycling preloader in front of a magazine-style landing page, served to browsers and terminals.",
			Stack:   []string{"Go", "tcell", "gin"},
		},
		{
			Name:    "swatch",
			Summary: "Palette explorer that picks readable text colors for arbitrary backgrounds.",
			Stack:   []string{"Go", "lipgloss"},
		},
		{
			Name:    "design-notes",
			Summary: "Worked examples of classic design patterns with runnable snippets.",
			Stack:   []string{"Go"},
		},
	}
}
