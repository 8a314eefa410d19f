package web

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arliss/portfolio/internal/palette"
	"github.com/arliss/portfolio/internal/preloader"
)

// Event names on the preloader stream.
const (
	eventColor    = "color"
	eventCommit   = "commit"
	eventComplete = "complete"
)

// ColorEvent announces a generated color.
type ColorEvent struct {
	Color    string  `json:"color"`
	Contrast string  `json:"contrast"`
	Step     int     `json:"step"`
	Progress float64 `json:"progress"`
}

// CompleteEvent ends the stream with the theme derived from the run.
type CompleteEvent struct {
	Target string            `json:"target"`
	Colors []string          `json:"colors"`
	Vars   map[string]string `json:"vars"`
}

// CommitEvent carries a newly painted state.
type CommitEvent struct {
	Step       int     `json:"step"`
	Background string  `json:"background"`
	Foreground string  `json:"foreground"`
	Progress   float64 `json:"progress"`
}

type streamEvent struct {
	name string
	data any
}

// handlePreloaderStream runs a fresh sequencer per request and forwards its events as SSE.
// The sequencer stops when the client goes away.
func handlePreloaderStream(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "text/event-stream")
		c.Writer.Header().Set("Cache-Control", "no-cache")
		c.Writer.Header().Set("Connection", "keep-alive")
		c.Status(http.StatusOK)
		c.Writer.Flush()

		// Large enough for a whole run so callbacks never block the loop.
		events := make(chan streamEvent, 2*preloader.Steps+4)
		loop := preloader.NewLoop()
		collected := palette.NewCollected(preloader.Steps)

		var seq *preloader.Sequencer
		seq = preloader.New(loop, preloader.Funcs{
			ColorGenerated: func(col palette.Color) {
				collected.Add(col)
				st := seq.State()
				events <- streamEvent{eventColor, ColorEvent{
					Color:    string(col),
					Contrast: string(palette.Contrast(col)),
					Step:     st.Step,
					Progress: seq.Progress(),
				}}
			},
			StateChange: func(st preloader.State) {
				events <- streamEvent{eventCommit, CommitEvent{
					Step:       st.Step,
					Background: string(st.Background),
					Foreground: string(st.Foreground),
					Progress:   preloader.ProgressFor(st.Step),
				}}
			},
			Complete: func() {
				ev := CompleteEvent{Target: string(s.config.Target()), Vars: collected.CSSVars()}
				for _, col := range collected.Colors() {
					ev.Colors = append(ev.Colors, string(col))
				}
				events <- streamEvent{eventComplete, ev}
			},
		}, preloader.OptionsFrom(s.config))

		runCtx, cancel := context.WithCancel(context.Background())
		ran := make(chan struct{})
		go func() {
			defer close(ran)
			_ = loop.Run(runCtx)
		}()
		defer func() {
			cancel()
			<-ran
		}()

		loop.Post(seq.Start)
		ctx := c.Request.Context()
		for {
			select {
			case ev := <-events:
				c.SSEvent(ev.name, ev.data)
				c.Writer.Flush()
				if ev.name == eventComplete {
					return
				}
			case <-ctx.Done():
				loop.Do(seq.Stop)
				s.log.Debug("preloader stream closed by client")
				return
			}
		}
	}
}
