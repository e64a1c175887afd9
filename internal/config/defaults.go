package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Width:  32,
			Height: 24,
		},
		Speed: SpeedConfig{
			Initial: 10,
			Min:     1,
			Max:     60,
			Delta:   1,
		},
		Colors: ColorConfig{
			Snake:  "bright_blue",
			Apple:  "bright_green",
			Poison: "bright_red",
			Border: "cyan",
		},
	}
}
