// Package cli holds what the rceplot and rceparams commands share: environment
// settings, logger construction and the mapping from errors to exit status.
package cli

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"gonum.org/v1/plot/vg"

	"github.com/ankurk017/RCE-1D-Emanuel/rceplot"
)

// Settings are read from the environment.
type Settings struct {
	Display        string  `env:"DISPLAY"`
	WaylandDisplay string  `env:"WAYLAND_DISPLAY"`
	LogLevel       string  `env:"RCE_LOG_LEVEL" envDefault:"info"`
	PlotDPI        int     `env:"RCE_PLOT_DPI" envDefault:"200"`
	PlotWidth      float64 `env:"RCE_PLOT_WIDTH" envDefault:"6.4"`  //inches
	PlotHeight     float64 `env:"RCE_PLOT_HEIGHT" envDefault:"4.8"` //inches
	//Viewer runs once per figure. rceplot waits for it only as long as it
	//runs, so a viewer that blocks until its window is closed (eog, feh)
	//keeps rceplot open while the figures are up. xdg-open returns at once.
	Viewer string `env:"RCE_VIEWER" envDefault:"xdg-open"`
}

// LoadSettings parses the settings from environ, or from the process environment
// if environ is nil.
func LoadSettings(environ map[string]string) (*Settings, error) {
	s := new(Settings)
	if err := env.ParseWithOptions(s, env.Options{Environment: environ}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if s.PlotDPI <= 0 {
		return nil, errors.New("RCE_PLOT_DPI must be positive")
	}
	if s.PlotWidth <= 0 || s.PlotHeight <= 0 {
		return nil, errors.New("RCE_PLOT_WIDTH and RCE_PLOT_HEIGHT must be positive")
	}
	return s, nil
}

// Resolver returns the display-based rendering mode resolver for s.
func (s *Settings) Resolver() rceplot.DisplayResolver {
	return rceplot.DisplayResolver{Display: s.Display, WaylandDisplay: s.WaylandDisplay}
}

// Style returns the figure size and resolution of s.
func (s *Settings) Style() rceplot.Style {
	return rceplot.Style{
		Width:  vg.Length(s.PlotWidth) * vg.Inch,
		Height: vg.Length(s.PlotHeight) * vg.Inch,
		DPI:    s.PlotDPI,
	}
}
