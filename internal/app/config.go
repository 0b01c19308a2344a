package app

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config represents the runtime parameters of the simulator. Environment
// variables seed the defaults; command-line flags bound with Bind win.
type Config struct {
	Scale   int  `env:"VGALIFE_SCALE" envDefault:"1"`
	TPS     int  `env:"VGALIFE_TPS" envDefault:"60"`
	ClockHz int  `env:"VGALIFE_CLOCK_HZ" envDefault:"24000000"`
	HUD     bool `env:"VGALIFE_HUD" envDefault:"true"`
}

// NewConfig returns a Config populated from defaults and the environment.
func NewConfig() (*Config, error) {
	c := &Config{}
	if err := env.Parse(c); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return c, nil
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Scale, "scale", c.Scale, "window scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frame updates per second")
	fs.IntVar(&c.ClockHz, "clock", c.ClockHz, "simulated pixel clock in Hz")
	fs.BoolVar(&c.HUD, "hud", c.HUD, "show the status panel")
}
