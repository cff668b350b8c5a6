package contract

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/huangsam/talentview/schema"
)

// Score label constants.
const (
	PerfectValue  = "Perfeito" // exact 5.0
	GreatValue    = "Ótimo"    // >= 4
	RegularValue  = "Regular"  // >= 3
	PoorValue     = "Ruim"     // < 3
	UnscoredValue = "-"        // no score available
)

// Color variables for console output.
var (
	PerfectColor  = color.New(color.FgBlue, color.Bold)  // perfect stands apart from merely great.
	GreatColor    = color.New(color.FgGreen, color.Bold) // great is the healthy signal.
	RegularColor  = color.New(color.FgYellow)            // regular is standard caution, not bold.
	PoorColor     = color.New(color.FgRed, color.Bold)   // poor represents standard danger.
	UnscoredColor = color.New(color.FgHiBlack)           // unscored is neutral, low-priority.
)

// GetPlainLabel returns the plain text label for a score. This is the core
// threshold table used for CSV, JSON, and table printing: evaluated top-down,
// first match wins, with equality at a boundary going to the higher bucket.
func GetPlainLabel(score *float64) string {
	if score == nil {
		return UnscoredValue
	}
	switch s := *score; {
	case s == 5:
		return PerfectValue
	case s >= 4:
		return GreatValue
	case s >= 3:
		return RegularValue
	default:
		return PoorValue
	}
}

// GetColorLabel returns a colored text label for console output (table).
// It uses GetPlainLabel to determine the string, and then applies the
// appropriate color.
func GetColorLabel(score *float64) string {
	text := GetPlainLabel(score)

	switch text {
	case PerfectValue:
		return PerfectColor.Sprint(text)
	case GreatValue:
		return GreatColor.Sprint(text)
	case RegularValue:
		return RegularColor.Sprint(text)
	case PoorValue:
		return PoorColor.Sprint(text)
	default: // "-"
		return UnscoredColor.Sprint(text)
	}
}

// GetStatusColorLabel returns a colored rendering of a collaborator status
// bucket for console output.
func GetStatusColorLabel(status schema.CollaboratorStatus) string {
	switch status {
	case schema.HighStatus:
		return GreatColor.Sprint(string(status))
	case schema.LowStatus:
		return PoorColor.Sprint(string(status))
	default:
		return RegularColor.Sprint(string(status))
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. An empty path means stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// TruncateName truncates a display name to a maximum width with an ellipsis
// suffix. Requires maxWidth > 3 so there is room for the ellipsis and at
// least one character of content.
func TruncateName(name string, maxWidth int) string {
	runes := []rune(name)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return name
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}
