package config

import "flag"

var (
	flagConfig           = flag.String("config", "", "Path to config file")
	flagDebug            = flag.Bool("debug", false, "Enable debug logging")
	flagPlain            = flag.Bool("plain", false, "Print the preloader instead of drawing full-screen")
	flagAddr             = flag.String("addr", "", "HTTP listen address")
	flagSeed             = flag.Uint64("seed", 0, "Seed for the preloader colors (0 = random)")
	flagMute             = flag.Bool("mute", false, "Disable the preloader tick sound")
	flagSound            = flag.Bool("sound", false, "Enable the preloader tick sound")
	flagNotifyWithCommit = flag.Bool("notify-with-commit", false, "Announce colors when they are painted, not when generated")
	flagLogFile          = flag.String("log", "", "Log file path")
	flagWriteConfig      = flag.String("write-config", "", "Write the effective config to this path and exit")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// WriteConfigPath returns the --write-config destination, if any.
func WriteConfigPath() string {
	return *flagWriteConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagPlain {
		cfg.Terminal.Plain = true
	}
	if *flagAddr != "" {
		cfg.Server.Addr = *flagAddr
	}
	if *flagSeed != 0 {
		cfg.Preloader.Seed = *flagSeed
	}
	if *flagSound {
		cfg.Audio.Enabled = true
	}
	if *flagMute {
		cfg.Audio.Enabled = false
	}
	if *flagNotifyWithCommit {
		cfg.Preloader.NotifyBeforeCommit = false
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
}
