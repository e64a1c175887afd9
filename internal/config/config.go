// Package config provides YAML-based game configuration loading for the
// torsnake arcade.
package config

import (
	"fmt"

	"github.com/aklyuchev/torsnake/internal/core"
)

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Grid   GridConfig  `yaml:"grid"`
	Speed  SpeedConfig `yaml:"speed"`
	Colors ColorConfig `yaml:"colors"`
}

// GridConfig defines the board dimensions in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SpeedConfig defines the tick-rate control values.
// Speed is the number of simulation ticks per second; each speed input
// event adjusts it by Delta within [Min, Max].
type SpeedConfig struct {
	Initial int `yaml:"initial"`
	Min     int `yaml:"min"`
	Max     int `yaml:"max"`
	Delta   int `yaml:"delta"`
}

// ColorConfig defines the palette by color name (see core.ParseColor).
type ColorConfig struct {
	Snake  string `yaml:"snake"`
	Apple  string `yaml:"apple"`
	Poison string `yaml:"poison"`
	Border string `yaml:"border"`
}

// Validate checks that the configuration is playable.
func (c SnakeConfig) Validate() error {
	if c.Grid.Width < 4 || c.Grid.Height < 4 {
		return fmt.Errorf("config: grid must be at least 4x4, got %dx%d", c.Grid.Width, c.Grid.Height)
	}
	if c.Speed.Min < 1 {
		return fmt.Errorf("config: minimum speed must be positive, got %d", c.Speed.Min)
	}
	if c.Speed.Max < c.Speed.Min {
		return fmt.Errorf("config: max speed %d below min speed %d", c.Speed.Max, c.Speed.Min)
	}
	if c.Speed.Initial < c.Speed.Min || c.Speed.Initial > c.Speed.Max {
		return fmt.Errorf("config: initial speed %d outside [%d, %d]", c.Speed.Initial, c.Speed.Min, c.Speed.Max)
	}
	if c.Speed.Delta < 1 {
		return fmt.Errorf("config: speed delta must be positive, got %d", c.Speed.Delta)
	}
	for _, name := range []string{c.Colors.Snake, c.Colors.Apple, c.Colors.Poison, c.Colors.Border} {
		if _, err := core.ParseColor(name); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	return nil
}
