package session

import (
	"go.uber.org/zap"

	"github.com/kingrea/seawolf/internal/scoring"
)

const incompleteReason = "incomplete: time ran out before a treatment was submitted"

// CheckExpiry force-finalizes the session once the clock has run out. Every
// unsubmitted site with exactly three selected prospects is scored normally;
// the rest score 0 as incomplete. Submitted sites keep their results. It
// reports whether this call performed the finalize; later calls are no-ops.
//
// The embedding application decides how often to call it. Every event calls
// it first.
func (s *Session) CheckExpiry() bool {
	if s.status != StatusPlaying || s.Remaining() > 0 {
		return false
	}
	s.logger.Info("session clock expired", zap.String("session", s.id), zap.Int("active_site", s.active+1))
	s.journal.Warn("Time is up on site %d", s.active+1)
	for _, st := range s.sites {
		if st.submitted() {
			continue
		}
		if st.phase == PhaseTreatment && len(st.final) == scoring.TrioSize {
			if res, err := s.scorer.Evaluate(st.site, st.trio()); err == nil {
				s.record(st, res)
				continue
			}
		}
		s.record(st, scoring.Incomplete(incompleteReason))
	}
	s.finish(true)
	return true
}
