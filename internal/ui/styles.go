package ui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/gubarz/untt/internal/config"
	"github.com/gubarz/untt/internal/filter"
)

// StyleManager holds the styles used for terminal messages
type StyleManager struct {
	ErrorLabel lipgloss.Style
	ErrorText  lipgloss.Style
	Path       lipgloss.Style
}

// DefaultStyles returns a StyleManager with default styles
func DefaultStyles() *StyleManager {
	return &StyleManager{
		ErrorLabel: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		ErrorText:  lipgloss.NewStyle(),
		Path:       lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// PlainStyles returns styles that render text unchanged
func PlainStyles() *StyleManager {
	return &StyleManager{
		ErrorLabel: lipgloss.NewStyle(),
		ErrorText:  lipgloss.NewStyle(),
		Path:       lipgloss.NewStyle(),
	}
}

// LoadFromConfig switches to plain styles when colour is disabled
func (s *StyleManager) LoadFromConfig() {
	if config.GetNoColor() {
		*s = *PlainStyles()
	} else {
		*s = *DefaultStyles()
	}
}

// RenderError formats err as a single "Error: ..." line, highlighting the
// offending path for file errors
func (s *StyleManager) RenderError(err error) string {
	label := s.ErrorLabel.Render("Error:")

	var inErr *filter.InputError
	if errors.As(err, &inErr) {
		return fmt.Sprintf("%s %s %s%s", label, s.ErrorText.Render("reading input"),
			s.Path.Render(inErr.Path), s.ErrorText.Render(": "+inErr.Err.Error()))
	}

	var outErr *filter.OutputError
	if errors.As(err, &outErr) {
		return fmt.Sprintf("%s %s %s%s", label, s.ErrorText.Render("writing output"),
			s.Path.Render(outErr.Path), s.ErrorText.Render(": "+outErr.Err.Error()))
	}

	return label + " " + s.ErrorText.Render(err.Error())
}

// Global style manager instance
var styles = DefaultStyles()

// RefreshStyles updates the global styles from config
func RefreshStyles() {
	styles.LoadFromConfig()
}

// RenderError formats err with the global styles
func RenderError(err error) string {
	return styles.RenderError(err)
}
