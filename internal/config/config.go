// Package config loads the YAML file describing expansion jobs and the
// preview server.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"tilesystem/internal/autotile"
	"tilesystem/internal/pixel"
)

// DefaultPath is the configuration file looked up when none is given.
const DefaultPath = "tilesystem.yaml"

const (
	defaultAddr     = ":2222"
	defaultHostKey  = "host_key"
	defaultLogLevel = "info"
)

// Config is the root of tilesystem.yaml.
type Config struct {
	LogLevel string `yaml:"log_level"`
	Jobs     []Job  `yaml:"jobs"`
	Server   Server `yaml:"server"`
}

// Job describes one autotile expansion.
type Job struct {
	Name       string `yaml:"name"`
	Source     string `yaml:"source"`
	Layout     string `yaml:"layout"`
	TileWidth  int    `yaml:"tile_width"`
	TileHeight int    `yaml:"tile_height"`
	InnerJoins bool   `yaml:"inner_joins"`
	Border     int    `yaml:"border"`
	ClampEdges bool   `yaml:"clamp_edges"`
	Output     string `yaml:"output"`
	// ColorKey is "#RRGGBB"; matching source pixels load as transparent.
	ColorKey string `yaml:"color_key"`
}

// Server configures the SSH preview server.
type Server struct {
	Addr    string `yaml:"addr"`
	HostKey string `yaml:"host_key"`
	// Map is a painted grid JSON file or a directory of them.
	Map string `yaml:"map"`
	// Jobs names the jobs whose atlases are built at startup. Empty means
	// every job.
	Jobs []string `yaml:"jobs"`
}

// FieldError reports an invalid configuration value.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return "config: invalid " + e.Field + ": " + e.Reason
}

// Load reads and validates a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML, applies defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns a configuration with no jobs and default server settings.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
	if c.Server.Addr == "" {
		c.Server.Addr = defaultAddr
	}
	if c.Server.HostKey == "" {
		c.Server.HostKey = defaultHostKey
	}
	for i := range c.Jobs {
		j := &c.Jobs[i]
		if j.Layout == "" {
			j.Layout = autotile.Basic.String()
		}
		if j.TileHeight == 0 {
			j.TileHeight = j.TileWidth
		}
		if j.Output == "" && j.Name != "" {
			j.Output = j.Name + ".png"
		}
	}
}

// Validate checks every field that cannot be clamped.
func (c *Config) Validate() error {
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return &FieldError{Field: "log_level", Reason: err.Error()}
	}
	names := make(map[string]bool, len(c.Jobs))
	for i, j := range c.Jobs {
		prefix := fmt.Sprintf("jobs[%d].", i)
		if err := j.Validate(); err != nil {
			var fe *FieldError
			if errors.As(err, &fe) {
				return &FieldError{Field: prefix + fe.Field, Reason: fe.Reason}
			}
			return err
		}
		if names[j.Name] {
			return &FieldError{Field: prefix + "name", Reason: fmt.Sprintf("duplicate job %q", j.Name)}
		}
		names[j.Name] = true
	}
	for i, name := range c.Server.Jobs {
		if !names[name] {
			return &FieldError{Field: fmt.Sprintf("server.jobs[%d]", i), Reason: fmt.Sprintf("unknown job %q", name)}
		}
	}
	return nil
}

// Validate checks a single job.
func (j Job) Validate() error {
	if j.Name == "" {
		return &FieldError{Field: "name", Reason: "must not be empty"}
	}
	if j.Source == "" {
		return &FieldError{Field: "source", Reason: "must not be empty"}
	}
	if _, err := autotile.ParseLayout(j.Layout); err != nil {
		return &FieldError{Field: "layout", Reason: "must be basic or extended"}
	}
	if j.TileWidth <= 0 || j.TileHeight <= 0 {
		return &FieldError{Field: "tile_width", Reason: "tile size must be positive"}
	}
	if j.TileWidth%2 != 0 || j.TileHeight%2 != 0 {
		return &FieldError{Field: "tile_width", Reason: "tile size must be even"}
	}
	if _, err := j.Key(); err != nil {
		return &FieldError{Field: "color_key", Reason: err.Error()}
	}
	return nil
}

// Options converts the job into expander options.
func (j Job) Options() autotile.Options {
	return autotile.Options{
		TileWidth:  j.TileWidth,
		TileHeight: j.TileHeight,
		InnerJoins: j.InnerJoins,
		BorderSize: j.Border,
		ClampEdges: j.ClampEdges,
	}
}

// LoadOptions returns the PNG load options for the job's source.
func (j Job) LoadOptions() (pixel.LoadOptions, error) {
	key, err := j.Key()
	if err != nil {
		return pixel.LoadOptions{}, err
	}
	return pixel.LoadOptions{ColorKey: key}, nil
}

// Key parses ColorKey. An empty key returns nil.
func (j Job) Key() (*pixel.Color, error) {
	if j.ColorKey == "" {
		return nil, nil
	}
	c, err := ParseColor(j.ColorKey)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Job returns the job with the given name.
func (c *Config) Job(name string) (Job, bool) {
	for _, j := range c.Jobs {
		if j.Name == name {
			return j, true
		}
	}
	return Job{}, false
}

// ServerJobs returns the jobs the preview server should build.
func (c *Config) ServerJobs() []Job {
	if len(c.Server.Jobs) == 0 {
		return c.Jobs
	}
	out := make([]Job, 0, len(c.Server.Jobs))
	for _, name := range c.Server.Jobs {
		if j, ok := c.Job(name); ok {
			out = append(out, j)
		}
	}
	return out
}

// ParseColor parses "#RRGGBB" or "RRGGBB" into an opaque colour.
func ParseColor(s string) (pixel.Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return pixel.Color{}, fmt.Errorf("color %q: want #RRGGBB", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return pixel.Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	return pixel.RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// ParseLevel maps debug, info, warn and error to slog levels.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("unknown log level %q", s)
	}
	return l, nil
}

// Level returns the configured log level. Invalid values fall back to info.
func (c *Config) Level() slog.Level {
	l, err := ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return l
}
