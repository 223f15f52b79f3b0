package config

const (
	defaultWorkDir                = "~/.cache/wabbex/work"
	defaultDetectorBinary         = "file"
	defaultDetectorTimeoutSeconds = 10
	defaultManifestName           = "modlist"
	defaultTypeMarker             = "NexusDownloader"
	defaultNexusBaseURL           = "https://www.nexusmods.com"
	defaultLogFormat              = "console"
	defaultLogLevel               = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			WorkDir: defaultWorkDir,
		},
		Detector: Detector{
			Binary:         defaultDetectorBinary,
			TimeoutSeconds: defaultDetectorTimeoutSeconds,
		},
		Modlist: Modlist{
			ManifestName: defaultManifestName,
			TypeMarker:   defaultTypeMarker,
			NexusBaseURL: defaultNexusBaseURL,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
