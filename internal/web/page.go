package web

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arliss/portfolio/internal/content"
)

//go:embed templates/index.html
var templates embed.FS

// pageTemplate is the name the landing page is registered under.
const pageTemplate = "index.html"

type sectionLink struct {
	Title  string
	Anchor string
}

type pageData struct {
	Profile  content.Profile
	Letters  []string
	Sections []sectionLink
	Patterns []content.Pattern
	Projects []content.Project
}

func parsePage() (*template.Template, error) {
	return template.ParseFS(templates, "templates/index.html")
}

func handleIndex(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		data := pageData{
			Profile:  s.profile,
			Patterns: content.Patterns(),
			Projects: content.Projects(),
		}
		for _, r := range s.profile.Name {
			data.Letters = append(data.Letters, string(r))
		}
		for _, sec := range content.Sections {
			data.Sections = append(data.Sections, sectionLink{Title: sec.Title(), Anchor: sec.Anchor()})
		}

		c.HTML(http.StatusOK, pageTemplate, data)
	}
}
