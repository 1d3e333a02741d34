// Package term draws a wildfire run in a terminal and drives it from the
// keyboard.
package term

import (
	"fmt"
	"time"

	"wildfire/internal/core"
	"wildfire/internal/sims/wildfire"

	"github.com/gdamore/tcell/v2"
)

// Sim is the part of the engine the viewer needs.
type Sim interface {
	Step() bool
	Reset(seed int64) error
	Snapshot() wildfire.Snapshot
	CurrentWindDirection() wildfire.Direction
	StepCount() int
}

// Options tunes the interactive loop.
type Options struct {
	// TPS is the number of simulation ticks per second.
	TPS int
	// ExitOnEnd returns from Run as soon as nothing is burning.
	ExitOnEnd bool
}

const (
	headerRows    = 3
	frameInterval = 33 * time.Millisecond
)

var styles = buildStyles()

func buildStyles() [wildfire.StateNonFlammable + 1]tcell.Style {
	var out [wildfire.StateNonFlammable + 1]tcell.Style
	for i := range out {
		c := wildfire.StateColor(wildfire.State(i))
		out[i] = tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
	}
	return out
}

// StyleFor returns the terminal style of a cell state.
func StyleFor(s wildfire.State) tcell.Style {
	if int(s) >= len(styles) {
		return tcell.StyleDefault
	}
	return styles[s]
}

type action int

const (
	actionNone action = iota
	actionQuit
	actionTogglePause
	actionStepOnce
	actionReset
)

func keyAction(key tcell.Key, r rune) action {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actionQuit
	case tcell.KeyRune:
		switch r {
		case 'q':
			return actionQuit
		case ' ':
			return actionTogglePause
		case 'n':
			return actionStepOnce
		case 'r':
			return actionReset
		}
	}
	return actionNone
}

// Run steps sim at opts.TPS and redraws it until the user quits, or until the
// fire is out when opts.ExitOnEnd is set. The sim must already hold its seed
// fire. Run never calls Fini on the screen.
func Run(screen tcell.Screen, sim Sim, opts Options) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	pacer := core.NewFixedStep(opts.TPS)
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	burning := true
	paused := false
	status := ""
	Draw(screen, sim, burning, paused, status)

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				switch keyAction(ev.Key(), ev.Rune()) {
				case actionQuit:
					return nil
				case actionTogglePause:
					paused = !paused
				case actionStepOnce:
					if burning {
						burning = sim.Step()
					}
				case actionReset:
					status = ""
					if err := sim.Reset(0); err != nil {
						status = err.Error()
						burning = false
					} else {
						burning = true
					}
				}
			}
		case <-ticker.C:
			if burning && !paused && pacer.ShouldStep() {
				burning = sim.Step()
			}
		}
		Draw(screen, sim, burning, paused, status)
		if !burning && opts.ExitOnEnd {
			return nil
		}
	}
}

// Draw renders the header and the grid, one cell per two columns. The header
// is three rows: step and wind, status, key help.
func Draw(screen tcell.Screen, sim Sim, burning, paused bool, status string) {
	screen.Clear()
	snap := sim.Snapshot()
	wind := sim.CurrentWindDirection()

	header := fmt.Sprintf("Step %d  Wind: %s %s  Burning: %d", sim.StepCount(), wind, wind.Arrow(), snap.Count(wildfire.StateBurning))
	drawText(screen, 0, 0, tcell.StyleDefault, header)
	drawText(screen, 0, 1, tcell.StyleDefault.Bold(true), statusLine(burning, paused, status))
	drawText(screen, 0, 2, tcell.StyleDefault.Dim(true), "space pause  n step  r restart  q quit")

	for row := 0; row < snap.Rows; row++ {
		for col := 0; col < snap.Cols; col++ {
			s := snap.At(row, col)
			screen.SetContent(col*2, row+headerRows, wildfire.Glyph(s), nil, StyleFor(s))
		}
	}
	screen.Show()
}

func statusLine(burning, paused bool, status string) string {
	switch {
	case status != "":
		return status
	case !burning:
		return "End of simulation"
	case paused:
		return "[paused]"
	}
	return ""
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
