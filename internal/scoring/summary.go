package scoring

// Grade bands for the overall average.
const (
	GradeExcellent        = "Excellent"
	GradeGood             = "Good"
	GradeNeedsImprovement = "Needs Improvement"
	GradeBelowThreshold   = "Below Threshold"
)

// Summary aggregates per-site results for the results screen.
type Summary struct {
	Total    int
	MaxTotal int
	Average  float64
	Grade    string
}

// Summarize totals results over sites sites; a missing result counts as 0.
func Summarize(results []*Result, sites int) Summary {
	s := Summary{MaxTotal: 100 * sites}
	for _, r := range results {
		if r != nil {
			s.Total += r.Score
		}
	}
	if sites > 0 {
		s.Average = float64(s.Total) / float64(sites)
	}
	s.Grade = GradeFor(s.Average)
	return s
}

// GradeFor maps an average score to its band.
func GradeFor(avg float64) string {
	switch {
	case avg >= 80:
		return GradeExcellent
	case avg >= 60:
		return GradeGood
	case avg >= 40:
		return GradeNeedsImprovement
	default:
		return GradeBelowThreshold
	}
}
