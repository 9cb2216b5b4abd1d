package runner

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/huh"
)

// dangerousPatterns contains patterns for potentially dangerous commands.
var dangerousPatterns = []struct {
	pattern *regexp.Regexp
	name    string
	risk    string
}{
	{
		pattern: regexp.MustCompile(`(?i)\brm\s+(-rf|-r|-fr|\-recursive)\s+/`),
		name:    "Recursive delete",
		risk:    "Will delete all files in the target path",
	},
	{
		pattern: regexp.MustCompile(`(?i)\bdd\s+(if=|of=)/dev/`),
		name:    "Disk overwrite",
		risk:    "Will destroy all data on the target device",
	},
	{
		pattern: regexp.MustCompile(`(?i)\bmkfs\.`),
		name:    "Filesystem creation",
		risk:    "Will create a new filesystem (destroys existing data)",
	},
	{
		pattern: regexp.MustCompile(`(?i)\bshutdown\s+( -h\s+now|-P\s+0|now)`),
		name:    "Immediate shutdown",
		risk:    "Will shut down the system immediately",
	},
	{
		pattern: regexp.MustCompile(`(?i)\bgit\s+push\s+--force`),
		name:    "Force git push",
		risk:    "May overwrite remote history",
	},
	{
		pattern: regexp.MustCompile(`(?i)chmod\s+-R\s+777`),
		name:    "World-writable permissions",
		risk:    "Sets all files to world-writable (security risk)",
	},
}

// CheckDangerous checks if a command is potentially dangerous.
// Returns the danger info if dangerous, nil otherwise.
func CheckDangerous(command string) *DangerInfo {
	cmd := strings.TrimSpace(command)

	for _, p := range dangerousPatterns {
		if p.pattern.MatchString(cmd) {
			return &DangerInfo{
				Name:    p.name,
				Risk:    p.risk,
				Command: cmd,
			}
		}
	}

	return nil
}

// DangerInfo contains information about a dangerous command.
type DangerInfo struct {
	Name    string
	Risk    string
	Command string
}

// Warning returns a formatted warning message.
func (d *DangerInfo) Warning() string {
	return fmt.Sprintf("%s detected\n   Risk: %s\n   Command: %s", d.Name, d.Risk, d.Command)
}

// Confirm prompts the user to confirm execution.
func (d *DangerInfo) Confirm() (bool, error) {
	var confirmed bool

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("%s detected", d.Name)).
				Description(fmt.Sprintf("Risk: %s\n\n%s", d.Risk, d.Command)).
				Affirmative("Run it").
				Negative("Abort").
				Value(&confirmed),
		),
	).Run()
	if err != nil {
		return false, fmt.Errorf("confirm prompt failed: %w", err)
	}

	return confirmed, nil
}
