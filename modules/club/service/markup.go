package service

import "strings"

// Suggestions end up in markup-rendered chat messages where a literal hyphen
// conflicts with the markup syntax. Texts are stored escaped and restored to
// their original form whenever a picked subject is persisted or displayed.

func escapeMarkup(text string) string {
	return strings.ReplaceAll(text, "-", `\-`)
}

func unescapeMarkup(text string) string {
	return strings.ReplaceAll(text, `\-`, "-")
}
