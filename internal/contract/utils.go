package contract

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Aptitude label constants.
const (
	StrongValue = "Strong" // Strong aptitude
	SolidValue  = "Solid"  // Solid aptitude
	FairValue   = "Fair"   // Fair aptitude
	WeakValue   = "Weak"   // Weak aptitude
)

// Color variables for console output.
var (
	StrongColor = color.New(color.FgGreen, color.Bold) // strongColor marks a clear recommendation.
	SolidColor  = color.New(color.FgCyan, color.Bold)  // solidColor marks a dependable fit.
	FairColor   = color.New(color.FgYellow)            // fairColor marks a middling fit, not bold.
	WeakColor   = color.New(color.FgRed)               // weakColor marks a poor fit.
)

// GetPlainLabel returns a plain text label bucketing a 0-100 percent score.
// This is the core logic used for CSV, JSON, and table printing.
func GetPlainLabel(percent int) string {
	switch {
	case percent >= 80:
		return StrongValue
	case percent >= 60:
		return SolidValue
	case percent >= 40:
		return FairValue
	default:
		return WeakValue
	}
}

// GetColorLabel returns a colored text label for console output (table).
// It uses GetPlainLabel to determine the string, and then applies the
// appropriate color.
func GetColorLabel(percent int) string {
	text := GetPlainLabel(percent)

	switch text {
	case StrongValue:
		return StrongColor.Sprint(text)
	case SolidValue:
		return SolidColor.Sprint(text)
	case FairValue:
		return FairColor.Sprint(text)
	default: // "Weak"
		return WeakColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It falls back to os.Stdout when no path is set.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// TruncateName truncates a domain or cluster name to a maximum width with
// an ellipsis suffix. Requires maxWidth > 3 so there is room for both the
// "..." and at least one character of content.
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
	case "yes", "true", "1", "":
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
