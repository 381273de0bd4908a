package util

import "strings"

const maxErrorLen = 500

// SanitizeError flattens an error message to a single log-safe line.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	msg = strings.ReplaceAll(msg, "\n", " ")
	msg = strings.ReplaceAll(msg, "\r", " ")
	if len(msg) > maxErrorLen {
		msg = msg[:maxErrorLen]
	}
	return msg
}

// TextPrefix returns at most max runes of text for logging, marking
// truncation with a trailing ellipsis. Full request texts never reach
// the logs.
func TextPrefix(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + "..."
}
