package web

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/arliss/portfolio/internal/content"
	"github.com/arliss/portfolio/internal/palette"
	"github.com/arliss/portfolio/internal/preloader"
)

// ColorResponse - a color with its readable foreground
type ColorResponse struct {
	Color     string  `json:"color"`
	Contrast  string  `json:"contrast"`
	Luminance float64 `json:"luminance"`
	Valid     bool    `json:"valid"`
}

// PatternSummary - a response item for the /api/v1/patterns endpoint
type PatternSummary struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

func colorResponse(c palette.Color) ColorResponse {
	l, ok := palette.Luminance(c)
	return ColorResponse{
		Color:     string(c),
		Contrast:  string(palette.Contrast(c)),
		Luminance: l,
		Valid:     ok,
	}
}

func handleHealthCheck() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// handleRandomColors returns n random colors, 1 <= n <= 9.
func handleRandomColors() gin.HandlerFunc {
	return func(c *gin.Context) {
		n, err := strconv.Atoi(c.DefaultQuery("n", "1"))
		if err != nil || n < 1 || n > preloader.Steps {
			c.JSON(http.StatusBadRequest, gin.H{"error": "n must be an integer between 1 and 9"})
			return
		}
		colors := make([]ColorResponse, n)
		for i := range colors {
			colors[i] = colorResponse(palette.RandomColor())
		}
		c.JSON(http.StatusOK, colors)
	}
}

// handleContrast reports the foreground for ?color=. Malformed colors get black, as everywhere.
func handleContrast() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := c.GetQuery("color")
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing color"})
			return
		}
		col := palette.Color(raw)
		if parsed, ok := palette.Parse(raw); ok {
			col = parsed
		}
		c.JSON(http.StatusOK, colorResponse(col))
	}
}

func handlePatternList() gin.HandlerFunc {
	return func(c *gin.Context) {
		patterns := content.Patterns()
		out := make([]PatternSummary, len(patterns))
		for i, p := range patterns {
			out[i] = PatternSummary{ID: p.ID, Title: p.Title, Description: p.Description}
		}
		c.JSON(http.StatusOK, out)
	}
}

func handlePattern() gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := content.PatternByID(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "pattern not found"})
			return
		}
		c.JSON(http.StatusOK, p)
	}
}
