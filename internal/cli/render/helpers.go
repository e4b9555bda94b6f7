package render

import (
	"net/url"
	"strings"

	"github.com/fatih/color"
)

var (
	warningStyle = color.New(color.FgYellow)
	errorStyle   = color.New(color.FgRed)
	successStyle = color.New(color.FgGreen)
	headerStyle  = color.New(color.FgCyan, color.Bold)
	faintStyle   = color.New(color.Faint)
)

// FormatWarning formats a warning message with the warning icon
func FormatWarning(message string) string {
	return warningStyle.Sprintf("⚠️  %s", message)
}

// FormatError formats an error message with the error icon
func FormatError(message string) string {
	// Extract just the error message part (after the last colon if it's an error chain)
	parts := strings.Split(message, ": ")
	msg := parts[len(parts)-1]

	// Capitalize first letter
	if len(msg) > 0 {
		msg = strings.ToUpper(msg[:1]) + msg[1:]
	}

	return errorStyle.Sprintf("❌ %s", msg)
}

// FormatSuccess formats a success message with the success icon
func FormatSuccess(message string) string {
	return successStyle.Sprintf("✅ %s", message)
}

// MaskURL hides the path, query and credentials of an endpoint URL, which
// for hosted RPC providers usually carry the access key.
func MaskURL(raw string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return MaskValue(raw)
	}

	masked := u.Scheme + "://" + u.Host
	if (u.Path != "" && u.Path != "/") || u.RawQuery != "" || u.User != nil {
		masked += "/***"
	}
	return masked
}

// MaskValue keeps the first four characters of a secret value
func MaskValue(v string) string {
	runes := []rune(v)
	if len(runes) <= 4 {
		return strings.Repeat("*", len(runes))
	}
	return string(runes[:4]) + strings.Repeat("*", 4)
}
