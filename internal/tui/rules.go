package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/kingrea/seawolf/internal/config"
)

const rulesTemplate = `# Sea Wolf

Three coastal sites are contaminated. For each one you assemble a **treatment**:
three microbes whose combined profile matches the site. You have **%d minutes**
for all three sites.

## Each site

1. **Review carry-over**: candidates you saved at the previous site. Keep or reject each one.
2. **Profile**: mark two characteristics to watch. This is a note for yourself only.
3. **Categorize**: %d candidates, one at a time. Keep them for this site, save them for the
   next site, or reject them. Nothing can be saved on the last site.
4. **Prospects**: your first kept candidates, topped up to %d from a starter set. Then %d rounds
   where you pick one of %d candidates to add.
5. **Treatment**: choose exactly three prospects and submit.

## Scoring

Every site starts at **100**. Each unmet condition costs **%d points**:

- the average of each of the site's three attributes must fall inside its target range
- at least one member must carry the **desired** trait
- every member carrying the **undesired** trait costs a penalty of its own

Scores never drop below zero. A submitted site is final.

## Running out of time

When the clock hits zero, any site with three prospects already selected is scored
as it stands. Every other unfinished site scores **0**.

| Average | Grade |
|---|---|
| 80+ | Excellent |
| 60+ | Good |
| 40+ | Needs Improvement |
| below 40 | Below Threshold |
`

func rulesMarkdown(g config.Game) string {
	return fmt.Sprintf(rulesTemplate,
		g.Timer.BudgetSeconds/60,
		g.Pools.Browse,
		g.Pools.ProspectSeed,
		g.Pools.Rounds,
		g.Pools.RoundSize,
		g.Scoring.PenaltyPerUnit,
	)
}

// renderRules renders the rules with glamour, falling back to the raw
// markdown if the renderer cannot be built.
func renderRules(g config.Game, width int) string {
	md := rulesMarkdown(g)
	if width <= 0 {
		width = 80
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}
