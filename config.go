package gifmanip

import (
	"fmt"
	"image/color"
	"io"
	"io/ioutil"
	"os"

	"gopkg.in/yaml.v2"
)

// Variant holds the settings of one kind of animation.
type Variant struct {
	Canvas Canvas `yaml:"canvas"`
	Speed  int    `yaml:"speed"` // Milliseconds per frame
	Warn   int    `yaml:"warn"`  // Sources smaller than this get a warning
}

// Config is the user-tunable part of every animation. It is usually read
// from a yaml file laid over DefaultConfig, eg:
//
//	background: "#000000"
//	strobe:
//	  speed: 60
//	colors:
//	  pink: "#ff69b4"
type Config struct {
	Background string            `yaml:"background"`
	Spin       Variant           `yaml:"spin"`
	Flip       Variant           `yaml:"flip"`
	FineSpin   Variant           `yaml:"finespin"`
	Strobe     Variant           `yaml:"strobe"`
	Colors     map[string]string `yaml:"colors"`
}

// DefaultConfig reproduces the classic 512x512 emoji settings and the
// 120x120 fine spin.
func DefaultConfig() Config {
	emoji := Variant{
		Canvas: Canvas{Width: 512, Height: 512},
		Speed:  100,
		Warn:   512,
	}
	return Config{
		Background: "#000000",
		Spin:       emoji,
		Flip:       emoji,
		FineSpin: Variant{
			Canvas: Canvas{Width: 120, Height: 120, Percent: 0.4},
			Speed:  50,
			Warn:   80,
		},
		Strobe: emoji,
	}
}

// LoadConfig lays the yaml document in r over DefaultConfig.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// validate parses every color up front so a typo is reported on load rather
// than when the color is first asked for.
func (cfg Config) validate() error {
	seen := make(map[string]string, len(cfg.Colors))
	for k, v := range cfg.Colors {
		name := colorName(k)
		if other, ok := seen[name]; ok {
			return fmt.Errorf("colors: %q and %q are the same name: %w", other, k, ErrColor)
		}
		seen[name] = k
		if _, err := parseHex(v); err != nil {
			return fmt.Errorf("colors: %s: %w", k, err)
		}
	}
	if _, err := cfg.BackgroundColor(); err != nil {
		return fmt.Errorf("background: %w", err)
	}
	return nil
}

// ReadConfigFile loads the config at path. An empty path yields
// DefaultConfig.
func ReadConfigFile(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return DefaultConfig(), err
	}
	defer f.Close()
	return LoadConfig(f)
}

func (cfg Config) BackgroundColor() (color.Color, error) {
	if cfg.Background == "" {
		return color.Black, nil
	}
	return ParseColor(cfg.Background, cfg.Colors)
}

// StrobeColor resolves a flash color by name or hex value, including the
// extra colors of the config.
func (cfg Config) StrobeColor(name string) (color.Color, error) {
	return ParseColor(name, cfg.Colors)
}
