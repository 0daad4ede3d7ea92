package config

import "flag"

var (
	flagConfig    = flag.String("config", "", "Path to config file")
	flagDebug     = flag.Bool("debug", false, "Enable debug logging")
	flagPrecision = flag.Int("precision", 0, "Decimal places in output")
	flagRadians   = flag.Bool("radians", false, "Print angles in radians")
	flagCompact   = flag.Bool("compact", false, "Single-line comma-separated output")
	flagLogFile   = flag.String("log", "", "Write diagnostics to a log file")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagPrecision > 0 {
		cfg.Output.Precision = *flagPrecision
	}
	if *flagRadians {
		cfg.Output.Unit = "radians"
	}
	if *flagCompact {
		cfg.Output.Compact = true
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
}
