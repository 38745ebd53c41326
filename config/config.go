// Package config loads game settings from defaults, an optional TOML file and
// AIRHOCKEY_* environment variables
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/lixenwraith/air-hockey/constant"
	"github.com/lixenwraith/air-hockey/core"
	"github.com/lixenwraith/air-hockey/physics"
)

// EnvPrefix is prepended to upper-cased keys, e.g. AIRHOCKEY_GAME_DIFFICULTY
const EnvPrefix = "AIRHOCKEY"

// Config is the full runtime configuration
type Config struct {
	Table   TableConfig   `mapstructure:"table"`
	Physics PhysicsConfig `mapstructure:"physics"`
	Game    GameConfig    `mapstructure:"game"`
	Audio   AudioConfig   `mapstructure:"audio"`
	Log     LogConfig     `mapstructure:"log"`
}

// TableConfig mirrors core.Table in table units
type TableConfig struct {
	Width         float64 `mapstructure:"width"`
	Height        float64 `mapstructure:"height"`
	WallThickness float64 `mapstructure:"wall_thickness"`
	GoalWidth     float64 `mapstructure:"goal_width"`
	GoalHeight    float64 `mapstructure:"goal_height"`
	PaddleRadius  float64 `mapstructure:"paddle_radius"`
	PuckRadius    float64 `mapstructure:"puck_radius"`
}

type PhysicsConfig struct {
	// CollisionModel is "push" or "specular"
	CollisionModel string `mapstructure:"collision_model"`
}

type GameConfig struct {
	Difficulty   string        `mapstructure:"difficulty"`
	TickInterval time.Duration `mapstructure:"tick_interval"`
	// Seed drives serve randomization; 0 picks a time-based seed
	Seed uint64 `mapstructure:"seed"`
}

type AudioConfig struct {
	Enabled      bool    `mapstructure:"enabled"`
	Music        bool    `mapstructure:"music"`
	MasterVolume float64 `mapstructure:"master_volume"`
	SampleRate   int     `mapstructure:"sample_rate"`
}

type LogConfig struct {
	// Debug enables file logging; logs are discarded otherwise
	Debug bool   `mapstructure:"debug"`
	Level string `mapstructure:"level"`
	Dir   string `mapstructure:"dir"`
}

// SetDefaults registers every key so env overrides work without a file
func SetDefaults(v *viper.Viper) {
	v.SetDefault("table.width", constant.DefaultTableWidth)
	v.SetDefault("table.height", constant.DefaultTableHeight)
	v.SetDefault("table.wall_thickness", constant.DefaultWallThickness)
	v.SetDefault("table.goal_width", constant.DefaultGoalWidth)
	v.SetDefault("table.goal_height", constant.DefaultGoalHeight)
	v.SetDefault("table.paddle_radius", constant.DefaultPaddleRadius)
	v.SetDefault("table.puck_radius", constant.DefaultPuckRadius)

	v.SetDefault("physics.collision_model", constant.CollisionModelPush)

	v.SetDefault("game.difficulty", core.DifficultyHard.String())
	v.SetDefault("game.tick_interval", constant.TickInterval)
	v.SetDefault("game.seed", 0)

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.music", true)
	v.SetDefault("audio.master_volume", 0.5)
	v.SetDefault("audio.sample_rate", 44100)

	v.SetDefault("log.debug", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.dir", constant.LogDir)
}

// Load reads configuration into v and decodes it
// An empty path searches ./air-hockey.toml; a missing default file is not an error
func Load(v *viper.Viper, path string) (*Config, error) {
	SetDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("air-hockey")
		v.SetConfigType("toml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that would otherwise fail deep inside the game
func (c *Config) Validate() error {
	if err := c.CoreTable().Validate(); err != nil {
		return fmt.Errorf("config table: %w", err)
	}
	if _, err := c.DifficultyLevel(); err != nil {
		return fmt.Errorf("config game.difficulty: %w", err)
	}
	if _, err := physics.NewResolver(c.Physics.CollisionModel); err != nil {
		return fmt.Errorf("config physics.collision_model: %w", err)
	}
	if c.Game.TickInterval <= 0 {
		return fmt.Errorf("config game.tick_interval must be positive, got %v", c.Game.TickInterval)
	}
	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 {
		return fmt.Errorf("config audio.master_volume %v outside [0,1]", c.Audio.MasterVolume)
	}
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("config audio.sample_rate must be positive, got %d", c.Audio.SampleRate)
	}
	return nil
}

// CoreTable converts table settings into simulation geometry
func (c *Config) CoreTable() core.Table {
	return core.Table{
		Width:         c.Table.Width,
		Height:        c.Table.Height,
		WallThickness: c.Table.WallThickness,
		GoalWidth:     c.Table.GoalWidth,
		GoalHeight:    c.Table.GoalHeight,
		PaddleRadius:  c.Table.PaddleRadius,
		PuckRadius:    c.Table.PuckRadius,
	}
}

// DifficultyLevel parses the configured starting difficulty
func (c *Config) DifficultyLevel() (core.Difficulty, error) {
	return core.ParseDifficulty(c.Game.Difficulty)
}

// Resolver builds the configured collision strategy
func (c *Config) Resolver() (physics.CollisionResolver, error) {
	return physics.NewResolver(c.Physics.CollisionModel)
}
