package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateDetector(); err != nil {
		return err
	}
	if err := c.validateModlist(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateDetector() error {
	if c.Detector.Binary == "" {
		return errors.New("detector.binary must be set")
	}
	if c.Detector.TimeoutSeconds <= 0 {
		return errors.New("detector.timeout_seconds must be positive")
	}
	return nil
}

func (c *Config) validateModlist() error {
	if c.Modlist.ManifestName == "" {
		return errors.New("modlist.manifest_name must be set")
	}
	if strings.ContainsAny(c.Modlist.ManifestName, "/\\") {
		return fmt.Errorf("modlist.manifest_name %q must not contain path separators", c.Modlist.ManifestName)
	}
	if c.Modlist.TypeMarker == "" {
		return errors.New("modlist.type_marker must be set")
	}
	parsed, err := url.Parse(c.Modlist.NexusBaseURL)
	if err != nil {
		return fmt.Errorf("modlist.nexus_base_url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("modlist.nexus_base_url %q must use http or https", c.Modlist.NexusBaseURL)
	}
	if parsed.Host == "" {
		return fmt.Errorf("modlist.nexus_base_url %q is missing a host", c.Modlist.NexusBaseURL)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
