package interactive

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/sahilm/fuzzy"
	"github.com/trebuchet-org/forknet/internal/domain"
	"github.com/trebuchet-org/forknet/internal/domain/config"
	"github.com/trebuchet-org/forknet/internal/usecase"
)

// ErrNonInteractive is returned when a prompt would be needed in non-interactive mode
var ErrNonInteractive = errors.New("interactive selection not available in non-interactive mode")

// SelectorAdapter handles interactive selection
type SelectorAdapter struct {
	nonInteractive bool
}

// NewSelectorAdapter creates a new selector adapter
func NewSelectorAdapter(cfg *config.RuntimeConfig) *SelectorAdapter {
	return &SelectorAdapter{nonInteractive: cfg.NonInteractive}
}

// SelectNetwork prompts for one of profiles and returns its name
func (s *SelectorAdapter) SelectNetwork(ctx context.Context, profiles []domain.NetworkProfile) (string, error) {
	if s.nonInteractive {
		return "", ErrNonInteractive
	}
	if len(profiles) == 0 {
		return "", fmt.Errorf("no networks provided for selection")
	}
	if len(profiles) == 1 {
		return profiles[0].Name, nil
	}

	options := formatNetworkOptions(profiles)

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "▸ {{ . | cyan }}",
		Inactive: "  {{ . | faint }}",
		Selected: "✓ {{ . | green }}",
		Help:     color.New(color.FgYellow).Sprint("Use arrow keys to navigate, type to filter, Enter to fork"),
	}

	prompt := promptui.Select{
		Label:     "Select a network to fork",
		Items:     options,
		Templates: templates,
		Size:      len(options),
		Searcher:  createFuzzySearchFunc(searchKeys(profiles)),
	}

	index, _, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("selection cancelled: %w", err)
	}

	return profiles[index].Name, nil
}

// formatNetworkOptions renders "name (family, chain N)" per profile
func formatNetworkOptions(profiles []domain.NetworkProfile) []string {
	options := make([]string, len(profiles))
	for i, p := range profiles {
		name := color.New(color.FgWhite, color.Bold).Sprint(p.Name)
		details := color.New(color.FgBlue).Sprintf("%s, chain %d", p.Family, p.ChainID)
		options[i] = fmt.Sprintf("%s (%s)", name, details)
	}
	return options
}

// searchKeys are the uncoloured strings the prompt filters on
func searchKeys(profiles []domain.NetworkProfile) []string {
	keys := make([]string, len(profiles))
	for i, p := range profiles {
		keys[i] = fmt.Sprintf("%s %s %d", p.Name, p.Family, p.ChainID)
	}
	return keys
}

// createFuzzySearchFunc creates a fuzzy search function for promptui
func createFuzzySearchFunc(items []string) func(input string, index int) bool {
	return func(input string, index int) bool {
		if input == "" {
			return true
		}

		input = strings.ToLower(input)
		item := strings.ToLower(items[index])

		if strings.Contains(item, input) {
			return true
		}

		return len(fuzzy.Find(input, []string{item})) > 0
	}
}

// Ensure the adapter implements the interface
var _ usecase.NetworkSelector = (*SelectorAdapter)(nil)
