// Package config loads, normalizes, and validates wabbex configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type centralizes every knob the
// CLI needs: the scratch directory for manifest extraction, the external
// file-type detector, the manifest entry name, and the Nexus URL base.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
