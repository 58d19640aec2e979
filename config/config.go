// Package config loads the TOML configuration with viper
// Every value has a default from the parameter package; SKATE_* environment variables
// override file values, e.g. SKATE_TRICK_BASE_POP_FORCE=6
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/lixenwraith/vi-skate/audio"
	"github.com/lixenwraith/vi-skate/camera"
	"github.com/lixenwraith/vi-skate/engine"
	"github.com/lixenwraith/vi-skate/input"
	"github.com/lixenwraith/vi-skate/locomotion"
	"github.com/lixenwraith/vi-skate/parameter"
	"github.com/lixenwraith/vi-skate/trick"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// EnvPrefix is the environment override prefix
const EnvPrefix = "SKATE"

// DefaultFileName is searched in the working directory when no path is given
const DefaultFileName = "skate"

// AudioSection holds audio settings
type AudioSection struct {
	Enabled      bool               `mapstructure:"enabled"`
	SampleRate   int                `mapstructure:"sample_rate"`
	MasterVolume float64            `mapstructure:"master_volume"`
	Volumes      map[string]float64 `mapstructure:"volumes"` // per cue: pop, catch, bail
}

// InputSection holds input binding settings
type InputSection struct {
	ReleaseTimeout time.Duration `mapstructure:"release_timeout"`
}

// ViewSection holds terminal view scale
type ViewSection struct {
	CellsPerUnitX float64 `mapstructure:"cells_per_unit_x"`
	CellsPerUnitZ float64 `mapstructure:"cells_per_unit_z"`
}

// LogSection holds logging settings
type LogSection struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"` // empty uses the command default
}

// Config is the full application configuration
type Config struct {
	Engine     engine.Settings   `mapstructure:"engine"`
	Locomotion locomotion.Params `mapstructure:"locomotion"`
	Trick      trick.Params      `mapstructure:"trick"`
	Camera     camera.Params     `mapstructure:"camera"`
	Audio      AudioSection      `mapstructure:"audio"`
	Input      InputSection      `mapstructure:"input"`
	View       ViewSection       `mapstructure:"view"`
	Keys       map[string]string `mapstructure:"keys"` // key name -> action name overrides
	Log        LogSection        `mapstructure:"log"`

	// Source is the config file used, empty when running on defaults
	Source string `mapstructure:"-"`
}

// Load reads configuration from path and applies defaults and environment overrides
// An empty path searches for skate.toml in the working directory and runs on defaults
// when none exists; an explicit path must exist
func Load(path string) (*Config, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		v.SetConfigName(DefaultFileName)
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	cfg.Source = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the configuration with every default applied
func Default() *Config {
	v := viper.New()
	SetDefaults(v)
	cfg := &Config{}
	// Defaults always decode
	_ = v.Unmarshal(cfg)
	return cfg
}

// SetDefaults registers every key with its default value
func SetDefaults(v *viper.Viper) {
	es := engine.DefaultSettings()
	v.SetDefault("engine.fixed_timestep", es.FixedTimestep)
	v.SetDefault("engine.frame_update_interval", es.FrameUpdateInterval)
	v.SetDefault("engine.max_steps_per_advance", es.MaxStepsPerAdvance)
	v.SetDefault("engine.command_queue_size", es.CommandQueueSize)
	v.SetDefault("engine.gravity", es.Gravity)
	v.SetDefault("engine.ground_height", es.GroundHeight)
	v.SetDefault("engine.board_clear_height", es.BoardClearHeight)
	v.SetDefault("engine.ground_probe_distance", es.GroundProbeDistance)
	v.SetDefault("engine.ground_angular_damping", es.GroundAngularDamping)
	v.SetDefault("engine.inertia_right", es.InertiaRight)
	v.SetDefault("engine.inertia_up", es.InertiaUp)
	v.SetDefault("engine.inertia_forward", es.InertiaForward)
	v.SetDefault("engine.max_angular_speed", es.MaxAngularSpeed)

	lp := locomotion.DefaultParams()
	v.SetDefault("locomotion.push_force", lp.PushForce)
	v.SetDefault("locomotion.max_speed", lp.MaxSpeed)
	v.SetDefault("locomotion.turn_rate", lp.TurnRate)
	v.SetDefault("locomotion.in_place_turn_rate", lp.InPlaceTurnRate)
	v.SetDefault("locomotion.pivot_offset", lp.PivotOffset)
	v.SetDefault("locomotion.lean_angle", lp.LeanAngle)
	v.SetDefault("locomotion.lean_speed", lp.LeanSpeed)
	v.SetDefault("locomotion.ground_friction", lp.GroundFriction)
	v.SetDefault("locomotion.steer_deadzone", lp.SteerDeadzone)
	v.SetDefault("locomotion.moving_threshold", lp.MovingThreshold)

	tp := trick.DefaultParams()
	v.SetDefault("trick.max_charge_time", tp.MaxChargeTime)
	v.SetDefault("trick.base_pop_force", tp.BasePopForce)
	v.SetDefault("trick.pop_offset", tp.PopOffset)
	v.SetDefault("trick.snap_torque", tp.SnapTorque)
	v.SetDefault("trick.spin_torque", tp.SpinTorque)
	v.SetDefault("trick.yaw_charge_threshold", tp.YawChargeThreshold)
	v.SetDefault("trick.flip_torque", tp.FlipTorque)
	v.SetDefault("trick.level_force", tp.LevelForce)
	v.SetDefault("trick.level_impulse_ratio", tp.LevelImpulseRatio)
	v.SetDefault("trick.hold_level_force", tp.HoldLevelForce)
	v.SetDefault("trick.air_damping", tp.AirDamping)
	v.SetDefault("trick.catch_damping", tp.CatchDamping)
	v.SetDefault("trick.catch_linear_damping", tp.CatchLinearDamping)
	v.SetDefault("trick.catch_skill_threshold", tp.CatchSkillThreshold)
	v.SetDefault("trick.min_air_time", tp.MinAirTime)

	cp := camera.DefaultParams()
	v.SetDefault("camera.offset_y", cp.OffsetY)
	v.SetDefault("camera.offset_z", cp.OffsetZ)
	v.SetDefault("camera.smooth_speed", cp.SmoothSpeed)
	v.SetDefault("camera.look_height", cp.LookHeight)
	v.SetDefault("camera.heading_min_speed_sq", cp.HeadingMinSpeedSq)
	v.SetDefault("camera.idle_side_bias", cp.IdleSideBias)

	ac := audio.DefaultAudioConfig()
	v.SetDefault("audio.enabled", ac.Enabled)
	v.SetDefault("audio.sample_rate", ac.SampleRate)
	v.SetDefault("audio.master_volume", ac.MasterVolume)

	v.SetDefault("input.release_timeout", parameter.KeyReleaseTimeout)

	v.SetDefault("view.cells_per_unit_x", parameter.ViewCellsPerUnitX)
	v.SetDefault("view.cells_per_unit_z", parameter.ViewCellsPerUnitZ)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
}

// Validate checks value ranges; every error wraps ErrInvalid
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	e := c.Engine
	check(e.FixedTimestep > 0, "engine.fixed_timestep must be positive, got %v", e.FixedTimestep)
	check(e.FrameUpdateInterval > 0, "engine.frame_update_interval must be positive, got %v", e.FrameUpdateInterval)
	check(e.MaxStepsPerAdvance >= 0, "engine.max_steps_per_advance must not be negative, got %d", e.MaxStepsPerAdvance)
	check(e.CommandQueueSize > 0, "engine.command_queue_size must be positive, got %d", e.CommandQueueSize)
	check(e.InertiaRight >= 0 && e.InertiaUp >= 0 && e.InertiaForward >= 0, "engine inertia must not be negative")
	check(e.GroundAngularDamping >= 0 && e.GroundAngularDamping <= 1, "engine.ground_angular_damping must be in [0,1], got %v", e.GroundAngularDamping)

	l := c.Locomotion
	check(l.MaxSpeed > 0, "locomotion.max_speed must be positive, got %v", l.MaxSpeed)
	check(l.PushForce >= 0, "locomotion.push_force must not be negative, got %v", l.PushForce)
	check(l.GroundFriction >= 0, "locomotion.ground_friction must not be negative, got %v", l.GroundFriction)
	check(l.SteerDeadzone >= 0 && l.SteerDeadzone < 1, "locomotion.steer_deadzone must be in [0,1), got %v", l.SteerDeadzone)

	t := c.Trick
	check(t.MaxChargeTime > 0, "trick.max_charge_time must be positive, got %v", t.MaxChargeTime)
	check(t.BasePopForce > 0, "trick.base_pop_force must be positive, got %v", t.BasePopForce)
	check(t.AirDamping > 0 && t.AirDamping <= 1, "trick.air_damping must be in (0,1], got %v", t.AirDamping)
	check(t.CatchDamping >= 0 && t.CatchDamping <= 1, "trick.catch_damping must be in [0,1], got %v", t.CatchDamping)
	check(t.CatchLinearDamping >= 0 && t.CatchLinearDamping <= 1, "trick.catch_linear_damping must be in [0,1], got %v", t.CatchLinearDamping)
	check(t.CatchSkillThreshold >= -1 && t.CatchSkillThreshold <= 1, "trick.catch_skill_threshold must be in [-1,1], got %v", t.CatchSkillThreshold)
	check(t.MinAirTime >= 0, "trick.min_air_time must not be negative, got %v", t.MinAirTime)

	check(c.Camera.SmoothSpeed >= 0, "camera.smooth_speed must not be negative, got %v", c.Camera.SmoothSpeed)

	check(c.Audio.SampleRate > 0, "audio.sample_rate must be positive, got %d", c.Audio.SampleRate)
	check(c.Audio.MasterVolume >= 0 && c.Audio.MasterVolume <= 1, "audio.master_volume must be in [0,1], got %v", c.Audio.MasterVolume)
	probe := audio.DefaultAudioConfig()
	for name, vol := range c.Audio.Volumes {
		check(probe.SetEffectVolume(name, vol), "audio.volumes: unknown cue %q", name)
	}

	check(c.Input.ReleaseTimeout > 0, "input.release_timeout must be positive, got %v", c.Input.ReleaseTimeout)
	check(c.View.CellsPerUnitX > 0 && c.View.CellsPerUnitZ > 0, "view scale must be positive")

	_, err := zerolog.ParseLevel(strings.ToLower(c.Log.Level))
	check(err == nil, "log.level %q", c.Log.Level)

	if _, err := c.KeyTable(); err != nil {
		errs = append(errs, fmt.Errorf("%w: keys: %w", ErrInvalid, err))
	}

	return errors.Join(errs...)
}

// AudioConfig builds the audio package configuration
func (c *Config) AudioConfig() *audio.AudioConfig {
	ac := audio.DefaultAudioConfig()
	ac.Enabled = c.Audio.Enabled
	ac.SampleRate = c.Audio.SampleRate
	ac.MasterVolume = c.Audio.MasterVolume
	for name, vol := range c.Audio.Volumes {
		ac.SetEffectVolume(name, vol)
	}
	return ac
}

// KeyTable returns the default bindings merged with the [keys] overrides
func (c *Config) KeyTable() (*input.KeyTable, error) {
	base := input.DefaultKeyTable()
	if len(c.Keys) == 0 {
		return base, nil
	}
	override, err := input.ParseKeyMap(c.Keys)
	if err != nil {
		return nil, err
	}
	return input.MergeKeyTable(base, override), nil
}

// LogLevel returns the parsed log level, info when unparsable
func (c *Config) LogLevel() zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(c.Log.Level))
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}
