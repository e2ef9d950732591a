package summary

import (
	"fmt"
	"math"
	"strings"

	"github.com/bnema/kondo-sampler/internal/application"
	"github.com/bnema/kondo-sampler/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const acceptanceBarWidth = 24

func renderView(summary application.Summary, s styles) string {
	lines := []string{
		s.title.Render("Kondo Metropolis run"),
		s.header.Render(fmt.Sprintf("iterations: %d  policy: %s  seed: %d", summary.Iterations, summary.Policy, summary.Seed)),
	}

	body := []string{
		acceptanceLine(summary, s),
		stateLine("initial:", summary.InitialState, nil, s),
		stateLine("final:", summary.FinalState, &summary.FinalEnergy, s) +
			s.detail.Render(fmt.Sprintf("  beta %.4g", summary.FinalBeta)),
		stateLine("lowest:", summary.LowestState, &summary.LowestEnergy, s),
		keyValue("energy:", fmt.Sprintf("mean %.4g ± %.4g", summary.MeanEnergy, summary.StdDevEnergy), s),
		keyValue("history:", fmt.Sprintf("%d states", summary.HistoryLength), s),
	}

	lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, body...)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func acceptanceLine(summary application.Summary, s styles) string {
	percent := clampPercent(summary.AcceptanceRate * 100)

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.key.Render(fmt.Sprintf("%-9s", "accepted:")),
		" ",
		renderBar(percent, acceptanceBarWidth, s),
		" ",
		s.detail.Render(fmt.Sprintf("%d/%d (%.0f%%)", summary.Accepted, summary.Iterations, percent)),
	)
}

func stateLine(label string, state domain.State, energy *float64, s styles) string {
	line := lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.key.Render(fmt.Sprintf("%-9s", label)),
		" ",
		s.state.Render(state.String()),
	)
	if energy != nil {
		line += s.detail.Render(fmt.Sprintf("  energy %.4g", *energy))
	}

	return line
}

func keyValue(label, value string, s styles) string {
	return s.key.Render(fmt.Sprintf("%-9s", label)) + " " + s.detail.Render(value)
}

func renderBar(percent float64, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	filled := int(math.Round(float64(width) * percent / 100))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}

func clampPercent(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
