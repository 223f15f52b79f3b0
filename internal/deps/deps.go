// Package deps verifies the external binaries wabbex invokes at runtime.
package deps

import (
	"fmt"
	"os/exec"
	"strings"

	"wabbex/internal/config"
)

// Requirement defines an external dependency wabbex relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status reports the availability of a dependency.
type Status struct {
	Name        string
	Command     string
	Description string
	Optional    bool
	Available   bool
	Detail      string
}

// Requirements returns the external tools the extraction pipeline needs.
func Requirements(cfg *config.Config) []Requirement {
	binary := "file"
	if cfg != nil {
		binary = cfg.DetectorBinary()
	}
	return []Requirement{
		{
			Name:        "File type detector",
			Command:     binary,
			Description: "classifies archive and manifest content before parsing",
		},
	}
}

// CheckBinaries evaluates the provided requirements and reports availability.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
			Optional:    req.Optional,
		}
		if cmd == "" {
			status.Available = false
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		if _, err := exec.LookPath(cmd); err != nil {
			status.Available = false
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
			results = append(results, status)
			continue
		}
		status.Available = true
		results = append(results, status)
	}
	return results
}

// CheckRequired returns an error when any non-optional requirement is unavailable.
func CheckRequired(requirements []Requirement) error {
	for _, status := range CheckBinaries(requirements) {
		if status.Optional || status.Available {
			continue
		}
		return fmt.Errorf("missing required tool %s: %s", status.Name, status.Detail)
	}
	return nil
}
