// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Scene    SceneConfig    `yaml:"scene"`
	Input    InputConfig    `yaml:"input"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// SceneConfig holds paths to the scene definition files.
type SceneConfig struct {
	ShapesPath string `yaml:"shapes_path"` // Tabletop, legs, light
	JointsPath string `yaml:"joints_path"` // Per-leg joint angle limits
}

// InputConfig holds interaction tuning.
type InputConfig struct {
	RotationStep float32 `yaml:"rotation_step"` // Degrees per rotate key press
	ScaleStep    float32 `yaml:"scale_step"`    // Scale factor delta per adjust key press
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      900,
			Height:     640,
			Fullscreen: false,
			VSync:      true,
		},
		Scene: SceneConfig{
			ShapesPath: "shapes.yaml",
			JointsPath: "joints.yaml",
		},
		Input: InputConfig{
			RotationStep: 5.0,
			ScaleStep:    0.1,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
