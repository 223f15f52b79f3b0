package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeDetector()
	c.normalizeModlist()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.WorkDir) == "" {
		c.Paths.WorkDir = defaultWorkDir
	}
	if c.Paths.WorkDir, err = expandPath(c.Paths.WorkDir); err != nil {
		return fmt.Errorf("paths.work_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) != "" {
		if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
			return fmt.Errorf("paths.log_dir: %w", err)
		}
	}
	return nil
}

func (c *Config) normalizeDetector() {
	c.Detector.Binary = strings.TrimSpace(c.Detector.Binary)
	if c.Detector.Binary == "" {
		c.Detector.Binary = defaultDetectorBinary
	}
	if c.Detector.TimeoutSeconds <= 0 {
		c.Detector.TimeoutSeconds = defaultDetectorTimeoutSeconds
	}
}

func (c *Config) normalizeModlist() {
	c.Modlist.ManifestName = strings.TrimSpace(c.Modlist.ManifestName)
	if c.Modlist.ManifestName == "" {
		c.Modlist.ManifestName = defaultManifestName
	}
	c.Modlist.TypeMarker = strings.TrimSpace(c.Modlist.TypeMarker)
	if c.Modlist.TypeMarker == "" {
		c.Modlist.TypeMarker = defaultTypeMarker
	}
	c.Modlist.NexusBaseURL = strings.TrimRight(strings.TrimSpace(c.Modlist.NexusBaseURL), "/")
	if c.Modlist.NexusBaseURL == "" {
		c.Modlist.NexusBaseURL = defaultNexusBaseURL
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
