package hud

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/skyport/component"
	"github.com/lixenwraith/skyport/engine"
	"github.com/lixenwraith/skyport/input"
	"github.com/lixenwraith/skyport/parameter"
	"github.com/lixenwraith/skyport/status"
)

const fuelBarWidth = 20

// diagPrefixes selects the metrics shown on the diagnostics row
var diagPrefixes = []string{"engine.", "movement.", "docking.", "service.", "target."}

var (
	styleDefault = tcell.StyleDefault
	styleTitle   = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleLow     = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleOK      = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleBusy    = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleDim     = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// HUD draws flight indicators and feeds key presses into the action buffer
type HUD struct {
	screen     tcell.Screen
	keys       *input.KeyTable
	actions    *input.State
	indicators *engine.IndicatorResource
	stats      *status.Registry
}

// NewScreen creates and initializes the terminal screen
func NewScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}
	screen.SetStyle(styleDefault)
	screen.HideCursor()
	return screen, nil
}

// New creates a HUD over an initialized screen
// stats may be nil, which hides the diagnostics row
func New(screen tcell.Screen, keys *input.KeyTable, actions *input.State, indicators *engine.IndicatorResource, stats *status.Registry) *HUD {
	return &HUD{
		screen:     screen,
		keys:       keys,
		actions:    actions,
		indicators: indicators,
		stats:      stats,
	}
}

// PollInput forwards key presses until quit is pressed or the screen is finalized
// Returns true when the pilot asked to quit
func (h *HUD) PollInput() bool {
	for {
		ev := h.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return false
		case *tcell.EventKey:
			switch a := h.keys.Lookup(ev); a {
			case input.ActionQuit:
				return true
			case input.ActionNone:
			default:
				h.actions.Press(a)
			}
		case *tcell.EventResize:
			h.screen.Sync()
		}
	}
}

// RenderLoop redraws at interval until ctx is cancelled
func (h *HUD) RenderLoop(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			h.Draw()
		}
	}
}

// Draw renders the latest indicator snapshot
func (h *HUD) Draw() {
	snap := h.indicators.Snapshot()
	h.screen.Clear()

	row := 0
	line := func(style tcell.Style, format string, args ...any) {
		drawText(h.screen, 0, row, style, fmt.Sprintf(format, args...))
		row++
	}

	line(styleTitle, "SKYPORT  tick %d  craft #%d  %s  %s",
		snap.Tick, snap.Craft, strings.ToUpper(snap.Mode.String()), strings.ToUpper(snap.Service.String()))

	fuelStyle := styleOK
	lowTag := ""
	if snap.FuelLow {
		fuelStyle, lowTag = styleLow, "  LOW"
	}
	line(fuelStyle, "Fuel   %s %7.1f (%5.1f%%)%s", fuelBar(snap.FuelPercent), snap.Fuel, snap.FuelPercent*100, lowTag)
	line(styleDefault, "Speed  %7.1f", snap.Speed)
	line(styleDefault, "Pos    %7.1f %7.1f %7.1f", snap.Position[0], snap.Position[1], snap.Position[2])

	if snap.HasTarget {
		line(styleDefault, "Target #%d  dist %7.1f  vert %+7.1f  bearing %+6.1f°",
			snap.Target, snap.HorizontalDistance, snap.VerticalOffset, snap.Bearing*180/math.Pi)
	} else {
		line(styleDim, "Target none")
	}

	drawText(h.screen, 0, row, styleDefault, "Docks  ")
	for i, d := range snap.Docks {
		r, style := '○', styleOK
		if d.Busy {
			r, style = '●', styleBusy
		}
		h.screen.SetContent(7+i, row, r, nil, style)
	}
	row += 2

	line(styleDim, "W/S thrust  Up/Down vertical  A/D yaw  Left/Right fine yaw  B brake  V autopilot  T pick  Q quit")
	if h.stats != nil {
		line(styleDim, "Diag   %s", status.Line(h.stats.Snapshot(diagPrefixes...)))
	}

	if snap.Service == component.ServiceActive {
		line(styleBusy, "Docked: refuelling")
	}
	if snap.Notice != "" && snap.Tick-snap.NoticeTick < parameter.NoticeTicks {
		line(styleTitle, "%s", snap.Notice)
	}
	h.screen.Show()
}

// fuelBar renders percent as a fixed-width gauge
func fuelBar(percent float64) string {
	filled := int(math.Round(percent * fuelBarWidth))
	filled = max(0, min(fuelBarWidth, filled))
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", fuelBarWidth-filled) + "]"
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
