package config

import "flag"

var (
	flagConfig  = flag.String("config", "", "Path to scene YAML file")
	flagPreset  = flag.String("preset", "", "Named scene preset (fractals, spheres)")
	flagOutput  = flag.String("o", "", "Output STL file path")
	flagFormat  = flag.String("format", "", "Output STL format: binary or text")
	flagPreview = flag.String("preview", "", "Write a PNG preview of the output to this path")
	flagReverse = flag.Bool("reverse", false, "Write triangles last-added first")
	flagMatter  = flag.String("material", "", "Compensate print shrinkage for material: pla or abs")
	flagDebug   = flag.Bool("debug", false, "Enable debug logging")
	flagLogFile = flag.String("log", "", "Also log to this file")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via -config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagPreset != "" {
		cfg.Scene.Preset = *flagPreset
	}
	if *flagOutput != "" {
		cfg.Output.Path = *flagOutput
	}
	if *flagFormat != "" {
		cfg.Output.Format = *flagFormat
	}
	if *flagPreview != "" {
		cfg.Output.Preview = *flagPreview
	}
	if *flagReverse {
		cfg.Output.Reverse = true
	}
	if *flagMatter != "" {
		cfg.Output.Material = *flagMatter
	}
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
}

var flagSaveConfig = flag.String("save-config", "", "Write the effective configuration to this path")

// SaveConfigPath returns the path given with -save-config, if any.
func SaveConfigPath() string {
	return *flagSaveConfig
}
