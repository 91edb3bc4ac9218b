// internal/session/session.go
//
// The game session: one player, three sites, one clock. The session is a
// single-owner value; every event runs to completion before the next one is
// accepted and the expiry check runs first in each of them.

package session

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kingrea/seawolf/internal/config"
	"github.com/kingrea/seawolf/internal/generate"
	"github.com/kingrea/seawolf/internal/model"
	"github.com/kingrea/seawolf/internal/scoring"
)

// Journal receives player-facing milestones. *logbook.Logbook satisfies it.
type Journal interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
}

type nopJournal struct{}

func (nopJournal) Info(string, ...any) {}
func (nopJournal) Warn(string, ...any) {}

// Option customizes a Session.
type Option func(*Session)

// WithClock injects a deterministic clock (primarily for tests).
func WithClock(clock func() time.Time) Option {
	return func(s *Session) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithLogger routes diagnostics to l.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithJournal records milestones in j.
func WithJournal(j Journal) Option {
	return func(s *Session) {
		if j != nil {
			s.journal = j
		}
	}
}

// siteState is the mutable per-site progress.
type siteState struct {
	site  model.Site
	pool  model.Pool
	phase Phase

	review       []model.Candidate
	reviewCursor int
	browseCursor int

	kept     []model.Candidate
	saved    []model.Candidate
	rejected []model.Candidate

	profile   []string
	prospects []model.Candidate
	round     int
	final     []int
	result    *scoring.Result
}

func (st *siteState) submitted() bool { return st.result != nil }

// Session owns all state for one play-through.
type Session struct {
	id      string
	cfg     config.Game
	scorer  scoring.Scorer
	budget  time.Duration
	clock   func() time.Time
	logger  *zap.Logger
	journal Journal
	opts    []Option

	status     Status
	seed       uint64
	startedAt  time.Time
	finishedAt time.Time
	expired    bool

	sites  []*siteState
	active int
	viewed int
}

// New returns a session in the menu state. cfg is expected to be validated.
func New(cfg config.Game, opts ...Option) *Session {
	s := &Session{
		id:      uuid.NewString(),
		cfg:     cfg,
		scorer:  scoring.New(cfg.Scoring.PenaltyPerUnit),
		budget:  time.Duration(cfg.Timer.BudgetSeconds) * time.Second,
		clock:   time.Now,
		logger:  zap.NewNop(),
		journal: nopJournal{},
		opts:    opts,
		status:  StatusMenu,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// ID identifies the session in logs and the journal.
func (s *Session) ID() string { return s.id }

// Seed returns the generation seed; zero until the session starts.
func (s *Session) Seed() uint64 { return s.seed }

// Status returns the top-level state.
func (s *Session) Status() Status { return s.status }

// Budget is the total time allowed for the session.
func (s *Session) Budget() time.Duration { return s.budget }

// Expired reports whether the session ended by running out of time.
func (s *Session) Expired() bool { return s.expired }

// SiteCount returns the number of generated sites.
func (s *Session) SiteCount() int { return len(s.sites) }

// SiteIndex returns the zero-based index of the site in live play.
func (s *Session) SiteIndex() int { return s.active }

// ViewedIndex returns the zero-based index of the site on display.
func (s *Session) ViewedIndex() int { return s.viewed }

// Phase returns the active site's phase, or "" outside of play.
func (s *Session) Phase() Phase {
	if s.status != StatusPlaying || len(s.sites) == 0 {
		return ""
	}
	return s.sites[s.active].phase
}

// Sites returns the generated sites in order.
func (s *Session) Sites() []model.Site {
	out := make([]model.Site, len(s.sites))
	for i, st := range s.sites {
		out[i] = st.site
	}
	return out
}

// Results returns the recorded result per site; nil where none exists yet.
func (s *Session) Results() []*scoring.Result {
	out := make([]*scoring.Result, len(s.sites))
	for i, st := range s.sites {
		if st.result != nil {
			r := *st.result
			out[i] = &r
		}
	}
	return out
}

// Summary totals the recorded results.
func (s *Session) Summary() scoring.Summary {
	return scoring.Summarize(s.Results(), len(s.sites))
}

// Preview computes running averages for the active site's final selection.
func (s *Session) Preview() scoring.Preview {
	if len(s.sites) == 0 {
		return scoring.Preview{}
	}
	st := s.sites[s.active]
	return scoring.PreviewOf(st.site, st.trio())
}

// SiteView is a read-only snapshot of one site's progress.
type SiteView struct {
	Index     int
	Site      model.Site
	Phase     Phase
	Submitted bool

	// Review is the carry-over list from the previous site; ReviewIndex is
	// the next one awaiting a decision.
	Review      []model.Candidate
	ReviewIndex int

	Browse      []model.Candidate
	BrowseIndex int

	Kept     []model.Candidate
	Saved    []model.Candidate
	Rejected []model.Candidate

	Profile        []string
	Prospects      []model.Candidate
	ProspectTarget int
	Round          int
	Rounds         int
	RoundOffer     []model.Candidate
	Final          []int
	Result         *scoring.Result
}

// ReviewCandidate returns the carry-over candidate awaiting a decision.
func (v SiteView) ReviewCandidate() (model.Candidate, bool) {
	if v.Phase != PhaseReview || v.ReviewIndex >= len(v.Review) {
		return model.Candidate{}, false
	}
	return v.Review[v.ReviewIndex], true
}

// BrowseCandidate returns the browsing candidate awaiting a decision.
func (v SiteView) BrowseCandidate() (model.Candidate, bool) {
	if v.Phase != PhaseCategorize || v.BrowseIndex >= len(v.Browse) {
		return model.Candidate{}, false
	}
	return v.Browse[v.BrowseIndex], true
}

// Selected reports whether prospect i is in the final selection.
func (v SiteView) Selected(i int) bool {
	return slices.Contains(v.Final, i)
}

// View returns the site on display.
func (s *Session) View() (SiteView, bool) {
	return s.SiteAt(s.viewed)
}

// Active returns the site in live play.
func (s *Session) Active() (SiteView, bool) {
	return s.SiteAt(s.active)
}

// SiteAt returns a snapshot of site i.
func (s *Session) SiteAt(i int) (SiteView, bool) {
	if i < 0 || i >= len(s.sites) {
		return SiteView{}, false
	}
	st := s.sites[i]
	v := SiteView{
		Index:          i,
		Site:           st.site,
		Phase:          st.phase,
		Submitted:      st.submitted(),
		Review:         slices.Clone(st.review),
		ReviewIndex:    st.reviewCursor,
		Browse:         slices.Clone(st.pool.Browse),
		BrowseIndex:    st.browseCursor,
		Kept:           slices.Clone(st.kept),
		Saved:          slices.Clone(st.saved),
		Rejected:       slices.Clone(st.rejected),
		Profile:        slices.Clone(st.profile),
		Prospects:      slices.Clone(st.prospects),
		ProspectTarget: s.cfg.Pools.ProspectTarget,
		Round:          st.round,
		Rounds:         len(st.pool.Rounds),
		Final:          slices.Clone(st.final),
	}
	if st.phase == PhaseProspects && st.round < len(st.pool.Rounds) {
		v.RoundOffer = slices.Clone(st.pool.Rounds[st.round])
	}
	if st.result != nil {
		r := *st.result
		v.Result = &r
	}
	return v, true
}

// Remaining is the time left on the session clock. It is frozen once the
// session reaches results.
func (s *Session) Remaining() time.Duration {
	return max(0, s.budget-s.Elapsed())
}

// Elapsed is the time spent since the session started.
func (s *Session) Elapsed() time.Duration {
	switch s.status {
	case StatusMenu:
		return 0
	case StatusResults:
		return min(s.finishedAt.Sub(s.startedAt), s.budget)
	default:
		return s.clock().Sub(s.startedAt)
	}
}

// Start generates the world and enters site 1. A nil seed draws a random one.
func (s *Session) Start(seed *uint64) error {
	const op = "start"
	s.CheckExpiry()
	if s.status != StatusMenu {
		return s.refuse(op, ReasonWrongStatus, "status is %s", s.status)
	}
	s.seed = generate.RandomSeed()
	if seed != nil {
		s.seed = *seed
	}
	world := generate.Generate(s.cfg, s.seed, generate.WithLogger(s.logger))
	s.sites = make([]*siteState, len(world.Sites))
	for i := range world.Sites {
		s.sites[i] = &siteState{site: world.Sites[i], pool: world.Pools[i]}
	}
	s.status = StatusPlaying
	s.startedAt = s.clock()
	s.finishedAt = time.Time{}
	s.expired = false
	s.enterSite(0)
	s.logger.Info("session started",
		zap.String("session", s.id),
		zap.Uint64("seed", s.seed),
		zap.Duration("budget", s.budget),
	)
	s.journal.Info("Session started with seed %d (%s)", s.seed, s.id)
	return nil
}

// Reset discards the session and replaces it with a fresh one in the menu state.
func (s *Session) Reset() {
	old := s.id
	*s = *New(s.cfg, s.opts...)
	s.logger.Info("session reset", zap.String("previous", old), zap.String("session", s.id))
	s.journal.Info("Session %s reset", old)
}

func (s *Session) refuse(op string, reason Reason, format string, args ...any) error {
	err := refuse(op, reason, format, args...)
	s.logger.Debug("event refused",
		zap.String("session", s.id),
		zap.String("op", op),
		zap.String("reason", string(reason)),
	)
	s.journal.Warn("%s", err.Error())
	return err
}
