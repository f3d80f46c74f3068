package ui

import "strings"

// Theme is the dashboard colour scheme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"

	// DefaultTheme is used when no valid preference is stored.
	DefaultTheme = ThemeLight
	// ThemeCookie holds the preference on the client.
	ThemeCookie = "theme"
)

// ParseTheme returns the theme named by s, or DefaultTheme.
func ParseTheme(s string) Theme {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case ThemeDark:
		return ThemeDark
	case ThemeLight:
		return ThemeLight
	default:
		return DefaultTheme
	}
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}

	return ThemeDark
}

// HTMLClass is the class set on the root element; "dark" enables dark styles.
func (t Theme) HTMLClass() string {
	if t == ThemeDark {
		return "dark"
	}

	return ""
}

func (t Theme) String() string { return string(t) }
