package session

import (
	"errors"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/kingrea/seawolf/internal/model"
	"github.com/kingrea/seawolf/internal/scoring"
)

// enterSite makes site i the active one. Review runs only when the previous
// site saved something for it.
func (s *Session) enterSite(i int) {
	s.active = i
	s.viewed = i
	st := s.sites[i]
	if i > 0 {
		st.review = slices.Clone(s.sites[i-1].saved)
	}
	st.phase = PhaseProfile
	if len(st.review) > 0 {
		st.phase = PhaseReview
	}
}

// live returns the active site if it is in want, else a refusal.
func (s *Session) live(op string, want Phase) (*siteState, error) {
	s.CheckExpiry()
	if s.status != StatusPlaying {
		return nil, s.refuse(op, ReasonWrongStatus, "status is %s", s.status)
	}
	st := s.sites[s.active]
	if st.phase != want {
		return nil, s.refuse(op, ReasonWrongPhase, "site %d is in %s", st.site.Number, st.phase)
	}
	return st, nil
}

// DecideReview keeps or rejects the next carry-over candidate.
func (s *Session) DecideReview(d Decision) error {
	const op = "decide_review"
	st, err := s.live(op, PhaseReview)
	if err != nil {
		return err
	}
	if d != DecisionKeep && d != DecisionReject {
		return s.refuse(op, ReasonInvalidDecision, "%q", d)
	}
	c := st.review[st.reviewCursor]
	if d == DecisionKeep {
		st.kept = append(st.kept, c)
	} else {
		st.rejected = append(st.rejected, c)
	}
	st.reviewCursor++
	s.viewed = s.active
	s.logger.Debug("review decided", zap.String("candidate", c.Name), zap.String("decision", string(d)))
	if st.reviewCursor >= len(st.review) {
		st.phase = PhaseProfile
	}
	return nil
}

// ConfirmProfile records two distinct characteristics of the active site.
// The choice is a planning aid and has no effect on generation or scoring.
func (s *Session) ConfirmProfile(a, b string) error {
	const op = "confirm_profile"
	st, err := s.live(op, PhaseProfile)
	if err != nil {
		return err
	}
	if a == b {
		return s.refuse(op, ReasonProfileChoices, "choose two different characteristics")
	}
	for _, name := range []string{a, b} {
		if !st.site.HasCharacteristic(name) {
			return s.refuse(op, ReasonProfileChoices, "%q is not a characteristic of site %d", name, st.site.Number)
		}
	}
	st.profile = []string{a, b}
	st.phase = PhaseCategorize
	s.viewed = s.active
	if st.browseCursor >= len(st.pool.Browse) {
		s.enterProspects(st)
	}
	return nil
}

// DecideCategorize files the next browsing candidate. Save is unavailable on
// the final site.
func (s *Session) DecideCategorize(d Decision) error {
	const op = "decide_categorize"
	st, err := s.live(op, PhaseCategorize)
	if err != nil {
		return err
	}
	switch d {
	case DecisionKeep, DecisionReject:
	case DecisionSave:
		if s.active == len(s.sites)-1 {
			return s.refuse(op, ReasonSaveOnFinalSite, "site %d is the last site", st.site.Number)
		}
	default:
		return s.refuse(op, ReasonInvalidDecision, "%q", d)
	}
	c := st.pool.Browse[st.browseCursor]
	switch d {
	case DecisionKeep:
		st.kept = append(st.kept, c)
	case DecisionSave:
		st.saved = append(st.saved, c)
	default:
		st.rejected = append(st.rejected, c)
	}
	st.browseCursor++
	s.viewed = s.active
	s.logger.Debug("candidate categorized", zap.String("candidate", c.Name), zap.String("decision", string(d)))
	if st.browseCursor >= len(st.pool.Browse) {
		s.enterProspects(st)
	}
	return nil
}

// enterProspects seeds the prospect pool with up to ProspectSeed unique kept
// candidates in keep order, then tops it up from the starter set.
func (s *Session) enterProspects(st *siteState) {
	seed := s.cfg.Pools.ProspectSeed
	st.prospects = nil
	for _, from := range [][]model.Candidate{st.kept, st.pool.Starter} {
		for _, c := range from {
			if len(st.prospects) >= seed {
				break
			}
			st.addProspect(c)
		}
	}
	st.round = 0
	st.phase = PhaseProspects
	if len(st.pool.Rounds) == 0 {
		st.phase = PhaseTreatment
	}
	s.logger.Debug("prospects seeded",
		zap.Int("site", st.site.Number),
		zap.Int("kept", len(st.kept)),
		zap.Int("prospects", len(st.prospects)),
	)
}

// addProspect appends c unless its name is already present.
func (st *siteState) addProspect(c model.Candidate) bool {
	for _, p := range st.prospects {
		if p.Name == c.Name {
			return false
		}
	}
	st.prospects = append(st.prospects, c)
	return true
}

// PickRound takes candidate i of the current forced-choice round. The round
// is always consumed; the pick joins the pool only when its name is new and
// the pool is below ProspectTarget.
func (s *Session) PickRound(i int) error {
	const op = "pick_round"
	st, err := s.live(op, PhaseProspects)
	if err != nil {
		return err
	}
	offer := st.pool.Rounds[st.round]
	if i < 0 || i >= len(offer) {
		return s.refuse(op, ReasonIndexOutOfRange, "pick %d of %d", i, len(offer))
	}
	added := false
	if len(st.prospects) < s.cfg.Pools.ProspectTarget {
		added = st.addProspect(offer[i])
	}
	st.round++
	s.viewed = s.active
	s.logger.Debug("round picked",
		zap.String("candidate", offer[i].Name),
		zap.Bool("added", added),
		zap.Int("round", st.round),
	)
	if st.round >= len(st.pool.Rounds) {
		st.phase = PhaseTreatment
	}
	return nil
}

// ToggleFinal adds or removes prospect i from the final selection.
func (s *Session) ToggleFinal(i int) error {
	const op = "toggle_final"
	st, err := s.live(op, PhaseTreatment)
	if err != nil {
		return err
	}
	if i < 0 || i >= len(st.prospects) {
		return s.refuse(op, ReasonIndexOutOfRange, "prospect %d of %d", i, len(st.prospects))
	}
	s.viewed = s.active
	if idx := slices.Index(st.final, i); idx >= 0 {
		st.final = slices.Delete(st.final, idx, idx+1)
		return nil
	}
	if len(st.final) >= scoring.TrioSize {
		return s.refuse(op, ReasonSelectionFull, "already %d selected", len(st.final))
	}
	st.final = append(st.final, i)
	slices.Sort(st.final)
	return nil
}

func (st *siteState) trio() []model.Candidate {
	out := make([]model.Candidate, 0, len(st.final))
	for _, i := range st.final {
		out = append(out, st.prospects[i])
	}
	return out
}

// Submit scores the final selection, records it for the rest of the session
// and moves on to the next site or to results.
func (s *Session) Submit() error {
	const op = "submit"
	st, err := s.live(op, PhaseTreatment)
	if err != nil {
		return err
	}
	if len(st.final) != scoring.TrioSize {
		return s.refuse(op, ReasonSelectionIncomplete, "%d of %d selected", len(st.final), scoring.TrioSize)
	}
	res, err := s.scorer.Evaluate(st.site, st.trio())
	if err != nil {
		if errors.Is(err, scoring.ErrMalformedTrio) {
			return s.refuse(op, ReasonMalformedTrio, "%v", err)
		}
		return fmt.Errorf("session: submit: %w", err)
	}
	s.record(st, res)
	if s.active == len(s.sites)-1 {
		s.finish(false)
		return nil
	}
	s.enterSite(s.active + 1)
	return nil
}

func (s *Session) record(st *siteState, res scoring.Result) {
	st.result = &res
	st.phase = PhaseSubmitted
	s.logger.Info("site scored",
		zap.String("session", s.id),
		zap.Int("site", st.site.Number),
		zap.Int("score", res.Score),
		zap.Int("penalty_units", res.PenaltyUnits),
		zap.Bool("incomplete", res.Incomplete),
	)
	if res.Incomplete {
		s.journal.Warn("Site %d scored 0: incomplete", st.site.Number)
		return
	}
	s.journal.Info("Site %d scored %d with %v", st.site.Number, res.Score, res.Trio)
}

func (s *Session) finish(expired bool) {
	s.status = StatusResults
	s.expired = expired
	s.finishedAt = s.clock()
	sum := s.Summary()
	s.logger.Info("session finished",
		zap.String("session", s.id),
		zap.Int("total", sum.Total),
		zap.String("grade", sum.Grade),
		zap.Bool("expired", expired),
	)
	s.journal.Info("Session %s finished: %d/%d (%s)", s.id, sum.Total, sum.MaxTotal, sum.Grade)
}

// ViewSite shows site i without touching play. Only submitted sites and the
// active site may be viewed.
func (s *Session) ViewSite(i int) error {
	const op = "view_site"
	s.CheckExpiry()
	if s.status != StatusPlaying {
		return s.refuse(op, ReasonWrongStatus, "status is %s", s.status)
	}
	if i < 0 || i >= len(s.sites) {
		return s.refuse(op, ReasonIndexOutOfRange, "site %d of %d", i+1, len(s.sites))
	}
	if i != s.active && !s.sites[i].submitted() {
		return s.refuse(op, ReasonSiteNotSubmitted, "site %d", i+1)
	}
	s.viewed = i
	return nil
}

// AdvanceSite moves the view one site forward. The viewed site must be
// submitted and another site must follow it.
func (s *Session) AdvanceSite() error {
	const op = "advance_site"
	s.CheckExpiry()
	if s.status != StatusPlaying {
		return s.refuse(op, ReasonWrongStatus, "status is %s", s.status)
	}
	if !s.sites[s.viewed].submitted() {
		return s.refuse(op, ReasonSiteNotSubmitted, "site %d", s.viewed+1)
	}
	if s.viewed >= len(s.sites)-1 {
		return s.refuse(op, ReasonNoMoreSites, "site %d is the last site", s.viewed+1)
	}
	s.viewed++
	return nil
}
