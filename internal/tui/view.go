package tui

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/seawolf/internal/model"
	"github.com/kingrea/seawolf/internal/scoring"
	"github.com/kingrea/seawolf/internal/session"
)

var (
	accentColor = lipgloss.Color("#5B8DEF")
	mutedColor  = lipgloss.Color("#888888")
	borderColor = lipgloss.Color("#444444")
	goodColor   = lipgloss.Color("#6BCB77")
	warnColor   = lipgloss.Color("#FFD93D")
	badColor    = lipgloss.Color("#FF6B6B")

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	mutedStyle = lipgloss.NewStyle().Foreground(mutedColor)
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA")).MarginTop(1)
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(0, 1)
)

// View renders the current state to a string.
func (a *App) View() string {
	var content string
	switch a.state {
	case stateMainMenu:
		content = a.mainMenu.View()
	case stateRules:
		content = lipgloss.JoinVertical(lipgloss.Left,
			a.rules.View(),
			hintStyle.Render("↑/↓ scroll    Enter/Esc → back"),
		)
	case statePlaying:
		content = a.renderPlaying()
	case stateResults:
		content = a.renderResults()
	}
	return a.renderFrame(content)
}

func (a *App) contentWidth() int {
	if a.width <= 0 {
		return 96
	}
	return max(40, a.width-4)
}

func (a *App) renderFrame(content string) string {
	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(badColor).
		MarginBottom(1).
		Render("🐺 SEA WOLF")
	body := boxStyle.Width(a.contentWidth()).Render(content)
	sections := []string{header, body}
	if a.state == statePlaying || a.state == stateResults {
		if panel := a.renderJournalPanel(); panel != "" {
			sections = append(sections, panel)
		}
	}
	footer := lipgloss.NewStyle().
		Foreground(mutedColor).
		MarginTop(1).
		Render(a.statusMsg)
	sections = append(sections, footer)
	return strings.Join(sections, "\n")
}

func (a *App) renderJournalPanel() string {
	lines, total := a.logbook.Tail(journalLines)
	if len(lines) == 0 {
		return ""
	}
	name := filepath.Base(a.logbook.Path())
	head := titleStyle.Render(fmt.Sprintf("JOURNAL · %s (%d)", name, total))
	body := lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA")).Render(strings.Join(lines, "\n"))
	return boxStyle.Width(a.contentWidth()).Render(head + "\n" + body)
}

func (a *App) renderPlaying() string {
	view, ok := a.session.View()
	if !ok {
		return "Generating sites..."
	}
	width := a.contentWidth() - 4
	reqWidth := max(30, width/3)
	phaseWidth := max(30, width-reqWidth-2)

	var phase string
	if view.Submitted {
		phase = renderSubmitted(view)
	} else {
		phase = a.renderPhase(view)
	}
	columns := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(reqWidth).Render(renderRequirements(view.Site)),
		"  ",
		lipgloss.NewStyle().Width(phaseWidth).Render(phase),
	)
	return lipgloss.JoinVertical(lipgloss.Left, a.renderTimer(), a.renderSiteChips(), "", columns)
}

func (a *App) renderTimer() string {
	remaining := a.session.Remaining()
	budget := a.session.Budget()
	frac := 0.0
	if budget > 0 {
		frac = float64(remaining) / float64(budget)
	}
	label := fmt.Sprintf("⏱ %s left", formatClock(remaining))
	style := titleStyle
	if remaining < 2*time.Minute {
		style = style.Foreground(badColor)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, style.Render(label), "  ", a.timerBar.ViewAs(frac))
}

func (a *App) renderSiteChips() string {
	results := a.session.Results()
	chips := make([]string, 0, len(results))
	for i, r := range results {
		label := fmt.Sprintf(" Site %d ", i+1)
		style := lipgloss.NewStyle().Padding(0, 1).Foreground(mutedColor)
		switch {
		case r != nil:
			label = fmt.Sprintf(" Site %d ✓ %d ", i+1, r.Score)
			style = style.Foreground(goodColor)
		case i == a.session.SiteIndex():
			label = fmt.Sprintf(" Site %d ▶ ", i+1)
			style = style.Foreground(accentColor).Bold(true)
		}
		if i == a.session.ViewedIndex() {
			style = style.Underline(true)
		}
		chips = append(chips, style.Render(label))
	}
	line := lipgloss.JoinHorizontal(lipgloss.Top, chips...)
	if a.session.ViewedIndex() != a.session.SiteIndex() {
		line += mutedStyle.Render("   viewing a submitted site · ] to move on")
	}
	return line
}

func renderRequirements(site model.Site) string {
	lines := []string{titleStyle.Render(fmt.Sprintf("SITE %d REQUIREMENTS", site.Number))}
	for _, attr := range site.Attributes {
		lines = append(lines, fmt.Sprintf("%-12s %s", attr, site.Ranges[attr]))
	}
	lines = append(lines,
		"",
		lipgloss.NewStyle().Foreground(goodColor).Render("Desired:   "+site.Desired),
		lipgloss.NewStyle().Foreground(badColor).Render("Undesired: "+site.Undesired),
	)
	if len(site.Neutral) > 0 {
		lines = append(lines, mutedStyle.Render("Neutral:   "+strings.Join(site.Neutral, ", ")))
	}
	return strings.Join(lines, "\n")
}

func (a *App) renderPhase(view session.SiteView) string {
	title := titleStyle.Render(strings.ToUpper(view.Phase.FriendlyName()))
	var body, keys string
	switch view.Phase {
	case session.PhaseReview:
		c, _ := view.ReviewCandidate()
		body = fmt.Sprintf("Carry-over %d/%d\n\n%s", view.ReviewIndex+1, len(view.Review), renderCandidate(view.Site, c))
		keys = "k keep for this site    r reject"
	case session.PhaseProfile:
		body = a.renderProfile(view)
		keys = "↑/↓ move    space pick    enter confirm"
	case session.PhaseCategorize:
		c, _ := view.BrowseCandidate()
		body = fmt.Sprintf("Candidate %d/%d\n\n%s\n\n%s",
			view.BrowseIndex+1, len(view.Browse),
			renderCandidate(view.Site, c),
			mutedStyle.Render(fmt.Sprintf("Kept %d · Saved %d · Rejected %d", len(view.Kept), len(view.Saved), len(view.Rejected))),
		)
		keys = "k keep    s save for next site    r reject"
		if view.Index == a.session.SiteCount()-1 {
			keys = "k keep    r reject"
		}
	case session.PhaseProspects:
		var offers []string
		for i, c := range view.RoundOffer {
			offers = append(offers, fmt.Sprintf("%d) %s", i+1, renderCandidate(view.Site, c)))
		}
		body = fmt.Sprintf("Round %d/%d\n\n%s\n\n%s",
			view.Round+1, view.Rounds,
			strings.Join(offers, "\n\n"),
			mutedStyle.Render(fmt.Sprintf("Prospects %d/%d: %s", len(view.Prospects), view.ProspectTarget, strings.Join(model.Names(view.Prospects), ", "))),
		)
		keys = fmt.Sprintf("1-%d pick one", len(view.RoundOffer))
	case session.PhaseTreatment:
		body = a.renderTreatment(view)
		keys = "1-9, 0 toggle    enter submit"
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, "", body, hintStyle.Render(keys+"    [ / ] view sites"))
}

func (a *App) renderProfile(view session.SiteView) string {
	var rows []string
	for i, ch := range view.Site.Characteristics() {
		cursor := "  "
		if i == a.profileCursor {
			cursor = "> "
		}
		mark := "[ ]"
		for _, p := range a.profilePicks {
			if p == ch {
				mark = "[x]"
			}
		}
		rows = append(rows, fmt.Sprintf("%s%s %s", cursor, mark, ch))
	}
	return "Pick two characteristics to keep an eye on.\n\n" + strings.Join(rows, "\n")
}

func (a *App) renderTreatment(view session.SiteView) string {
	var rows []string
	for i, c := range view.Prospects {
		mark := "[ ]"
		if view.Selected(i) {
			mark = "[x]"
		}
		rows = append(rows, fmt.Sprintf("%d %s %s", (i+1)%10, mark, renderCandidate(view.Site, c)))
	}
	preview := a.session.Preview()
	lines := []string{strings.Join(rows, "\n"), ""}
	lines = append(lines, fmt.Sprintf("Selected %d/%d", preview.Count, scoring.TrioSize))
	for _, p := range preview.Attributes {
		style := lipgloss.NewStyle().Foreground(badColor)
		if p.InRange {
			style = style.Foreground(goodColor)
		}
		lines = append(lines, style.Render(fmt.Sprintf("  %-12s avg %.2f (range %s)", p.Attribute, p.Mean, p.Range)))
	}
	if preview.Count > 0 {
		lines = append(lines, fmt.Sprintf("  desired %s · undesired %s", yesNo(preview.HasDesired), yesNo(preview.HasUndesired)))
	}
	return strings.Join(lines, "\n")
}

func renderSubmitted(view session.SiteView) string {
	title := titleStyle.Render(fmt.Sprintf("SITE %d SCORED", view.Site.Number))
	if view.Result == nil {
		return title
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, "", renderResult(*view.Result))
}

func renderResult(r scoring.Result) string {
	lines := []string{lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("Score %d/100", r.Score))}
	if len(r.Trio) > 0 {
		lines = append(lines, mutedStyle.Render("Treatment: "+strings.Join(r.Trio, ", ")))
	}
	for _, l := range r.Lines {
		style := lipgloss.NewStyle().Foreground(goodColor)
		if !l.Met {
			style = style.Foreground(badColor)
		}
		lines = append(lines, style.Render(l.String()))
	}
	return strings.Join(lines, "\n")
}

func renderCandidate(site model.Site, c model.Candidate) string {
	if c.Name == "" {
		return ""
	}
	var values []string
	for _, attr := range site.Attributes {
		v := c.Value(attr)
		style := mutedStyle
		switch scoring.ProximityOf(v, site.Ranges[attr]) {
		case scoring.Inside:
			style = lipgloss.NewStyle().Foreground(goodColor)
		case scoring.Near:
			style = lipgloss.NewStyle().Foreground(warnColor)
		}
		values = append(values, style.Render(fmt.Sprintf("%s %d", attr, v)))
	}
	trait := c.Trait
	switch site.TraitRole(c.Trait) {
	case model.RoleDesired:
		trait = lipgloss.NewStyle().Foreground(goodColor).Render(trait + " ★")
	case model.RoleUndesired:
		trait = lipgloss.NewStyle().Foreground(badColor).Render(trait + " ✗")
	}
	return fmt.Sprintf("%s %s · %s\n   %s", c.Icon, c.Name, trait, strings.Join(values, " · "))
}

func (a *App) renderResults() string {
	sum := a.session.Summary()
	lines := []string{
		titleStyle.Render("EXPEDITION REPORT"),
		"",
		fmt.Sprintf("Total %d/%d · average %.1f · %s", sum.Total, sum.MaxTotal, sum.Average, sum.Grade),
		mutedStyle.Render(fmt.Sprintf("Time used %s · seed %d", formatClock(a.session.Elapsed()), a.session.Seed())),
	}
	if a.session.Expired() {
		lines = append(lines, lipgloss.NewStyle().Foreground(badColor).Render("The clock ran out."))
	}
	for i, r := range a.session.Results() {
		lines = append(lines, "", titleStyle.Render(fmt.Sprintf("Site %d", i+1)))
		if r == nil {
			lines = append(lines, mutedStyle.Render("not scored"))
			continue
		}
		lines = append(lines, renderResult(*r))
	}
	lines = append(lines, hintStyle.Render("Enter → play again    m → menu    q → quit"))
	return strings.Join(lines, "\n")
}

func formatClock(d time.Duration) string {
	d = d.Round(time.Second)
	return fmt.Sprintf("%02d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
