package session

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/kingrea/seawolf/internal/config"
	"github.com/kingrea/seawolf/internal/model"
	"github.com/kingrea/seawolf/internal/scoring"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type recordingJournal struct {
	lines []string
}

func (j *recordingJournal) Info(format string, args ...any) {
	j.lines = append(j.lines, "INFO "+fmt.Sprintf(format, args...))
}

func (j *recordingJournal) Warn(format string, args ...any) {
	j.lines = append(j.lines, "WARN "+fmt.Sprintf(format, args...))
}

func newSession(t *testing.T, opts ...Option) (*Session, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
	all := append([]Option{WithClock(clock.Now)}, opts...)
	return New(config.Default(), all...), clock
}

func started(t *testing.T, seed uint64) (*Session, *fakeClock) {
	t.Helper()
	s, clock := newSession(t)
	require.NoError(t, s.Start(&seed))
	return s, clock
}

func active(t *testing.T, s *Session) SiteView {
	t.Helper()
	v, ok := s.Active()
	require.True(t, ok)
	return v
}

func reviewAll(t *testing.T, s *Session, d Decision) {
	t.Helper()
	for s.Phase() == PhaseReview {
		require.NoError(t, s.DecideReview(d))
	}
}

func profile(t *testing.T, s *Session) {
	t.Helper()
	ch := active(t, s).Site.Characteristics()
	require.NoError(t, s.ConfirmProfile(ch[0], ch[1]))
}

func categorizeAll(t *testing.T, s *Session, decide func(i int) Decision) {
	t.Helper()
	for i := 0; s.Phase() == PhaseCategorize; i++ {
		require.NoError(t, s.DecideCategorize(decide(i)))
	}
}

func pickAllRounds(t *testing.T, s *Session) {
	t.Helper()
	for s.Phase() == PhaseProspects {
		require.NoError(t, s.PickRound(0))
	}
}

func selectFirstThree(t *testing.T, s *Session) {
	t.Helper()
	for i := 0; i < scoring.TrioSize; i++ {
		require.NoError(t, s.ToggleFinal(i))
	}
}

func always(d Decision) func(int) Decision {
	return func(int) Decision { return d }
}

// playSite drives the active site from wherever it is through submission.
func playSite(t *testing.T, s *Session, decide func(int) Decision) {
	t.Helper()
	reviewAll(t, s, DecisionKeep)
	profile(t, s)
	categorizeAll(t, s, decide)
	pickAllRounds(t, s)
	selectFirstThree(t, s)
	require.NoError(t, s.Submit())
}

func requireRefusal(t *testing.T, err error, reason Reason) {
	t.Helper()
	if !IsRefusal(err, reason) {
		t.Fatalf("expected refusal %s, got %v", reason, err)
	}
}

func TestNewSessionStartsInMenu(t *testing.T) {
	s, _ := newSession(t)
	if s.Status() != StatusMenu {
		t.Fatalf("status = %s, want menu", s.Status())
	}
	if _, err := uuid.Parse(s.ID()); err != nil {
		t.Fatalf("session id %q is not a uuid: %v", s.ID(), err)
	}
	if s.Remaining() != 30*time.Minute {
		t.Fatalf("remaining before start = %s", s.Remaining())
	}
	requireRefusal(t, s.DecideReview(DecisionKeep), ReasonWrongStatus)
	requireRefusal(t, s.Submit(), ReasonWrongStatus)
}

func TestStartEntersProfileOnFirstSite(t *testing.T) {
	s, _ := started(t, 42)
	require.Equal(t, StatusPlaying, s.Status())
	require.Equal(t, uint64(42), s.Seed())
	require.Equal(t, 3, s.SiteCount())
	require.Equal(t, PhaseProfile, s.Phase())
	require.Equal(t, 0, s.SiteIndex())
	requireRefusal(t, s.Start(nil), ReasonWrongStatus)
}

func TestStartWithoutSeedDrawsOne(t *testing.T) {
	s, _ := newSession(t)
	require.NoError(t, s.Start(nil))
	require.Len(t, s.Sites(), 3)
}

func TestProfileRequiresTwoDistinctCharacteristics(t *testing.T) {
	s, _ := started(t, 7)
	site := active(t, s).Site
	requireRefusal(t, s.ConfirmProfile(site.Attributes[0], site.Attributes[0]), ReasonProfileChoices)
	requireRefusal(t, s.ConfirmProfile(site.Attributes[0], "Not A Thing"), ReasonProfileChoices)
	requireRefusal(t, s.DecideCategorize(DecisionKeep), ReasonWrongPhase)
	require.Equal(t, PhaseProfile, s.Phase())

	require.NoError(t, s.ConfirmProfile(site.Attributes[1], site.Desired))
	v := active(t, s)
	require.Equal(t, PhaseCategorize, v.Phase)
	if diff := cmp.Diff([]string{site.Attributes[1], site.Desired}, v.Profile); diff != "" {
		t.Fatalf("profile (-want +got):\n%s", diff)
	}
}

func TestProfileChoiceDoesNotAffectPlay(t *testing.T) {
	a, _ := started(t, 99)
	b, _ := started(t, 99)
	site := active(t, a).Site
	require.NoError(t, a.ConfirmProfile(site.Attributes[0], site.Attributes[1]))
	require.NoError(t, b.ConfirmProfile(site.Undesired, site.Attributes[2]))
	categorizeAll(t, a, always(DecisionKeep))
	categorizeAll(t, b, always(DecisionKeep))
	if diff := cmp.Diff(model.Names(active(t, a).Prospects), model.Names(active(t, b).Prospects)); diff != "" {
		t.Fatalf("profile changed the prospects:\n%s", diff)
	}
	if diff := cmp.Diff(a.Sites(), b.Sites()); diff != "" {
		t.Fatalf("profile changed generation:\n%s", diff)
	}
}

func TestCategorizeRoutesBuckets(t *testing.T) {
	s, _ := started(t, 3)
	profile(t, s)
	browse := active(t, s).Browse
	decisions := []Decision{DecisionKeep, DecisionSave, DecisionReject}
	for i := range browse {
		v := active(t, s)
		c, ok := v.BrowseCandidate()
		require.True(t, ok)
		require.Equal(t, browse[i].Name, c.Name, "browse order must be fixed")
		require.NoError(t, s.DecideCategorize(decisions[i%3]))
	}
	v := active(t, s)
	require.Equal(t, PhaseProspects, v.Phase)
	require.Len(t, v.Kept, 4)
	require.Len(t, v.Saved, 3)
	require.Len(t, v.Rejected, 3)
	requireRefusal(t, s.DecideCategorize(Decision("maybe")), ReasonWrongPhase)
}

func TestCategorizeRejectsUnknownDecision(t *testing.T) {
	s, _ := started(t, 3)
	profile(t, s)
	requireRefusal(t, s.DecideCategorize(Decision("maybe")), ReasonInvalidDecision)
	require.Equal(t, 0, active(t, s).BrowseIndex)
}

func TestProspectSeedingWithFewKept(t *testing.T) {
	s, _ := started(t, 11)
	profile(t, s)
	categorizeAll(t, s, func(i int) Decision {
		if i < 2 {
			return DecisionKeep
		}
		return DecisionReject
	})
	v := active(t, s)
	require.Len(t, v.Prospects, 6)
	want := append(model.Names(v.Kept), model.Names(s.sites[0].pool.Starter[:4])...)
	if diff := cmp.Diff(want, model.Names(v.Prospects)); diff != "" {
		t.Fatalf("prospects (-want +got):\n%s", diff)
	}
}

func TestProspectSeedingWithEnoughKeptInjectsNoStarter(t *testing.T) {
	for _, keep := range []int{6, 8, 10} {
		t.Run(fmt.Sprintf("keep%d", keep), func(t *testing.T) {
			s, _ := started(t, 12)
			profile(t, s)
			categorizeAll(t, s, func(i int) Decision {
				if i < keep {
					return DecisionKeep
				}
				return DecisionReject
			})
			v := active(t, s)
			require.Len(t, v.Kept, keep)
			if diff := cmp.Diff(model.Names(v.Kept[:6]), model.Names(v.Prospects)); diff != "" {
				t.Fatalf("prospects must be the first 6 kept (-want +got):\n%s", diff)
			}
			starter := map[string]bool{}
			for _, c := range s.sites[0].pool.Starter {
				starter[c.Name] = true
			}
			for _, p := range v.Prospects {
				if starter[p.Name] {
					t.Fatalf("starter candidate %s injected despite %d kept", p.Name, keep)
				}
			}
		})
	}
}

func TestProspectPoolNeverExceedsTarget(t *testing.T) {
	t.Run("all kept", func(t *testing.T) {
		s, _ := started(t, 7)
		profile(t, s)
		categorizeAll(t, s, always(DecisionKeep))
		pickAllRounds(t, s)
		v := active(t, s)
		require.Equal(t, PhaseTreatment, v.Phase)
		require.Len(t, v.Prospects, v.ProspectTarget)
	})

	t.Run("carry-over", func(t *testing.T) {
		s, _ := started(t, 7)
		playSite(t, s, func(i int) Decision {
			if i < 5 {
				return DecisionSave
			}
			return DecisionKeep
		})
		reviewAll(t, s, DecisionKeep)
		profile(t, s)
		categorizeAll(t, s, always(DecisionKeep))
		v := active(t, s)
		require.Len(t, v.Kept, 15)
		require.Equal(t, model.Names(v.Kept[:6]), model.Names(v.Prospects))
		pickAllRounds(t, s)
		require.LessOrEqual(t, len(active(t, s).Prospects), config.MaxProspects)
	})

	t.Run("smaller target", func(t *testing.T) {
		cfg := config.Default()
		cfg.Pools.ProspectTarget = 8
		clock := &fakeClock{now: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
		s := New(cfg, WithClock(clock.Now))
		seed := uint64(7)
		require.NoError(t, s.Start(&seed))
		profile(t, s)
		categorizeAll(t, s, always(DecisionReject))
		pickAllRounds(t, s)
		v := active(t, s)
		require.Equal(t, 4, v.Round, "every round is consumed")
		require.Len(t, v.Prospects, 8)
	})
}

func TestProspectSeedingDeduplicatesKept(t *testing.T) {
	s, _ := started(t, 13)
	st := s.sites[0]
	dup := st.pool.Browse[0]
	st.pool.Browse[1] = dup
	profile(t, s)
	categorizeAll(t, s, func(i int) Decision {
		if i < 2 {
			return DecisionKeep
		}
		return DecisionReject
	})
	v := active(t, s)
	require.Len(t, v.Kept, 2)
	require.Len(t, v.Prospects, 6)
	require.Equal(t, dup.Name, v.Prospects[0].Name)
	require.NotEqual(t, dup.Name, v.Prospects[1].Name)
}

func TestRoundsAppendPicksThenEnterTreatment(t *testing.T) {
	s, _ := started(t, 21)
	profile(t, s)
	categorizeAll(t, s, always(DecisionReject))
	for round := 0; round < 4; round++ {
		v := active(t, s)
		require.Equal(t, round, v.Round)
		require.Len(t, v.RoundOffer, 3)
		require.NoError(t, s.PickRound(round%3))
		got := active(t, s).Prospects
		require.Equal(t, v.RoundOffer[round%3].Name, got[len(got)-1].Name)
	}
	v := active(t, s)
	require.Equal(t, PhaseTreatment, v.Phase)
	require.Len(t, v.Prospects, 10)
}

func TestPickRoundOutOfRangeRefused(t *testing.T) {
	s, _ := started(t, 22)
	profile(t, s)
	categorizeAll(t, s, always(DecisionReject))
	requireRefusal(t, s.PickRound(3), ReasonIndexOutOfRange)
	requireRefusal(t, s.PickRound(-1), ReasonIndexOutOfRange)
	require.Equal(t, 0, active(t, s).Round)
}

// Implementations disagree on a round pick whose name is already a
// prospect: one drops the pick and replays the round, another appends the
// duplicate. This session consumes the round and skips the append.
func TestRoundPickDuplicateConsumesRoundWithoutAppending(t *testing.T) {
	s, _ := started(t, 23)
	profile(t, s)
	categorizeAll(t, s, always(DecisionReject))
	st := s.sites[0]
	st.pool.Rounds[0][1] = st.prospects[2]
	before := len(st.prospects)

	require.NoError(t, s.PickRound(1))
	v := active(t, s)
	require.Equal(t, 1, v.Round, "duplicate pick must still consume the round")
	require.Len(t, v.Prospects, before, "duplicate pick must not be appended")
}

func TestToggleFinalLimitAndSubmitPrecondition(t *testing.T) {
	s, _ := started(t, 31)
	profile(t, s)
	categorizeAll(t, s, always(DecisionReject))
	pickAllRounds(t, s)

	requireRefusal(t, s.Submit(), ReasonSelectionIncomplete)
	require.NoError(t, s.ToggleFinal(4))
	require.NoError(t, s.ToggleFinal(1))
	requireRefusal(t, s.Submit(), ReasonSelectionIncomplete)
	require.NoError(t, s.ToggleFinal(7))
	requireRefusal(t, s.ToggleFinal(2), ReasonSelectionFull)
	requireRefusal(t, s.ToggleFinal(99), ReasonIndexOutOfRange)
	if diff := cmp.Diff([]int{1, 4, 7}, active(t, s).Final); diff != "" {
		t.Fatalf("final selection (-want +got):\n%s", diff)
	}

	require.NoError(t, s.ToggleFinal(4))
	require.Equal(t, []int{1, 7}, active(t, s).Final)
	require.Equal(t, 2, s.Preview().Count)
	require.NoError(t, s.ToggleFinal(2))
	require.Equal(t, []int{1, 2, 7}, active(t, s).Final)
}

func TestSubmitRecordsScoreAndAdvances(t *testing.T) {
	s, _ := started(t, 41)
	profile(t, s)
	categorizeAll(t, s, always(DecisionReject))
	pickAllRounds(t, s)
	selectFirstThree(t, s)
	v := active(t, s)
	want, err := scoring.Evaluate(v.Site, v.Prospects[:3])
	require.NoError(t, err)

	require.NoError(t, s.Submit())
	first, ok := s.SiteAt(0)
	require.True(t, ok)
	require.True(t, first.Submitted)
	require.Equal(t, PhaseSubmitted, first.Phase)
	if diff := cmp.Diff(&want, first.Result); diff != "" {
		t.Fatalf("recorded result (-want +got):\n%s", diff)
	}
	require.Equal(t, 1, s.SiteIndex())
	require.Equal(t, PhaseProfile, s.Phase(), "nothing saved so review is skipped")

	requireRefusal(t, s.Submit(), ReasonWrongPhase)
	again, _ := s.SiteAt(0)
	if diff := cmp.Diff(first.Result, again.Result); diff != "" {
		t.Fatalf("submitted result changed:\n%s", diff)
	}
}

func TestSavedCandidatesCarryIntoNextReview(t *testing.T) {
	s, _ := started(t, 51)
	playSite(t, s, func(i int) Decision {
		if i < 3 {
			return DecisionSave
		}
		return DecisionReject
	})
	saved := s.sites[0].saved
	require.Len(t, saved, 3)

	v := active(t, s)
	require.Equal(t, PhaseReview, v.Phase)
	if diff := cmp.Diff(model.Names(saved), model.Names(v.Review)); diff != "" {
		t.Fatalf("review list (-want +got):\n%s", diff)
	}
	requireRefusal(t, s.DecideReview(DecisionSave), ReasonInvalidDecision)
	c, ok := v.ReviewCandidate()
	require.True(t, ok)
	require.Equal(t, saved[0].Name, c.Name)

	require.NoError(t, s.DecideReview(DecisionKeep))
	require.NoError(t, s.DecideReview(DecisionReject))
	require.NoError(t, s.DecideReview(DecisionKeep))
	require.Equal(t, PhaseProfile, s.Phase())

	profile(t, s)
	categorizeAll(t, s, always(DecisionReject))
	got := model.Names(active(t, s).Prospects)
	require.Equal(t, []string{saved[0].Name, saved[2].Name}, got[:2])
}

func TestSaveRefusedOnFinalSite(t *testing.T) {
	s, _ := started(t, 61)
	playSite(t, s, always(DecisionReject))
	playSite(t, s, always(DecisionReject))
	require.Equal(t, 2, s.SiteIndex())
	profile(t, s)
	requireRefusal(t, s.DecideCategorize(DecisionSave), ReasonSaveOnFinalSite)
	v := active(t, s)
	require.Equal(t, 0, v.BrowseIndex)
	require.Empty(t, v.Saved)
}

func TestFullPlaythroughReachesResults(t *testing.T) {
	s, clock := started(t, 71)
	for i := 0; i < 3; i++ {
		clock.Advance(2 * time.Minute)
		playSite(t, s, always(DecisionKeep))
	}
	require.Equal(t, StatusResults, s.Status())
	require.False(t, s.Expired())
	require.Equal(t, 6*time.Minute, s.Elapsed())

	clock.Advance(time.Hour)
	require.Equal(t, 24*time.Minute, s.Remaining(), "clock is frozen at results")
	require.False(t, s.CheckExpiry())

	total := 0
	for _, r := range s.Results() {
		require.NotNil(t, r)
		total += r.Score
	}
	sum := s.Summary()
	require.Equal(t, total, sum.Total)
	require.Equal(t, 300, sum.MaxTotal)
	require.Equal(t, Phase(""), s.Phase())
}

func TestRemainingCountsDown(t *testing.T) {
	s, clock := started(t, 81)
	clock.Advance(10 * time.Minute)
	require.Equal(t, 20*time.Minute, s.Remaining())
	require.Equal(t, 10*time.Minute, s.Elapsed())
	require.False(t, s.CheckExpiry())
}

func TestExpiryMidCategorizeLeavesSubmittedSiteUntouched(t *testing.T) {
	journal := &recordingJournal{}
	s, clock := newSession(t, WithJournal(journal))
	seed := uint64(91)
	require.NoError(t, s.Start(&seed))
	playSite(t, s, always(DecisionReject))
	first := s.Results()[0]
	require.NotNil(t, first)

	profile(t, s)
	require.NoError(t, s.DecideCategorize(DecisionKeep))
	require.NoError(t, s.DecideCategorize(DecisionReject))

	clock.Advance(30 * time.Minute)
	require.Equal(t, time.Duration(0), s.Remaining())
	require.True(t, s.CheckExpiry())
	require.Equal(t, StatusResults, s.Status())
	require.True(t, s.Expired())

	results := s.Results()
	if diff := cmp.Diff(first, results[0]); diff != "" {
		t.Fatalf("submitted site changed on expiry:\n%s", diff)
	}
	for _, r := range results[1:] {
		require.Equal(t, 0, r.Score)
		require.True(t, r.Incomplete)
		require.Contains(t, strings.Join(r.Explanation(), "\n"), "incomplete")
	}

	require.False(t, s.CheckExpiry(), "finalize runs once")
	if diff := cmp.Diff(results, s.Results()); diff != "" {
		t.Fatalf("second expiry check changed results:\n%s", diff)
	}
	require.Contains(t, strings.Join(journal.lines, "\n"), "Time is up on site 2")
}

func TestExpiryScoresCompleteSelectionNormally(t *testing.T) {
	s, clock := started(t, 92)
	profile(t, s)
	categorizeAll(t, s, always(DecisionReject))
	pickAllRounds(t, s)
	selectFirstThree(t, s)
	v := active(t, s)
	want, err := scoring.Evaluate(v.Site, v.Prospects[:3])
	require.NoError(t, err)

	clock.Advance(45 * time.Minute)
	requireRefusal(t, s.Submit(), ReasonWrongStatus)
	got := s.Results()[0]
	if diff := cmp.Diff(&want, got); diff != "" {
		t.Fatalf("validated selection must be scored normally (-want +got):\n%s", diff)
	}
	require.True(t, s.Results()[1].Incomplete)
}

func TestEveryEventChecksExpiryFirst(t *testing.T) {
	s, clock := started(t, 93)
	profile(t, s)
	clock.Advance(31 * time.Minute)
	requireRefusal(t, s.DecideCategorize(DecisionKeep), ReasonWrongStatus)
	require.Equal(t, StatusResults, s.Status())
	require.Equal(t, 30*time.Minute, s.Elapsed())
}

func TestViewAndAdvanceSite(t *testing.T) {
	s, _ := started(t, 101)
	requireRefusal(t, s.AdvanceSite(), ReasonSiteNotSubmitted)
	playSite(t, s, always(DecisionReject))
	require.Equal(t, 1, s.ViewedIndex())

	requireRefusal(t, s.ViewSite(2), ReasonSiteNotSubmitted)
	requireRefusal(t, s.ViewSite(5), ReasonIndexOutOfRange)
	before := s.Results()
	require.NoError(t, s.ViewSite(0))
	v, _ := s.View()
	require.Equal(t, 0, v.Index)
	require.True(t, v.Submitted)
	require.Equal(t, 1, s.SiteIndex(), "viewing does not change the active site")

	require.NoError(t, s.AdvanceSite())
	require.Equal(t, 1, s.ViewedIndex())
	requireRefusal(t, s.AdvanceSite(), ReasonSiteNotSubmitted)
	if diff := cmp.Diff(before, s.Results()); diff != "" {
		t.Fatalf("viewing re-scored a site:\n%s", diff)
	}

	require.NoError(t, s.ViewSite(0))
	profile(t, s)
	require.Equal(t, 1, s.ViewedIndex(), "live events return the view to the active site")
}

func TestAdvanceSiteRefusedOnLastSite(t *testing.T) {
	s, _ := started(t, 102)
	playSite(t, s, always(DecisionReject))
	playSite(t, s, always(DecisionReject))
	// Submitting the last site ends play, so mark it submitted directly.
	s.sites[2].result = &scoring.Result{}
	s.viewed = 2
	requireRefusal(t, s.AdvanceSite(), ReasonNoMoreSites)
}

func TestRefusalLeavesStateUnchanged(t *testing.T) {
	s, clock := started(t, 111)
	profile(t, s)
	require.NoError(t, s.DecideCategorize(DecisionKeep))
	before := active(t, s)
	clock.Advance(time.Minute)

	requireRefusal(t, s.DecideReview(DecisionKeep), ReasonWrongPhase)
	requireRefusal(t, s.ConfirmProfile("a", "b"), ReasonWrongPhase)
	requireRefusal(t, s.PickRound(0), ReasonWrongPhase)
	requireRefusal(t, s.ToggleFinal(0), ReasonWrongPhase)
	requireRefusal(t, s.Submit(), ReasonWrongPhase)
	requireRefusal(t, s.DecideCategorize(Decision("")), ReasonInvalidDecision)

	if diff := cmp.Diff(before, active(t, s)); diff != "" {
		t.Fatalf("refused events changed state:\n%s", diff)
	}
	require.Equal(t, StatusPlaying, s.Status())
}

func TestResetReplacesSession(t *testing.T) {
	journal := &recordingJournal{}
	s, _ := newSession(t, WithJournal(journal))
	seed := uint64(121)
	require.NoError(t, s.Start(&seed))
	playSite(t, s, always(DecisionKeep))
	old := s.ID()

	s.Reset()
	require.Equal(t, StatusMenu, s.Status())
	require.NotEqual(t, old, s.ID())
	require.Zero(t, s.SiteCount())
	require.Zero(t, s.Seed())
	_, ok := s.View()
	require.False(t, ok)

	require.NoError(t, s.Start(&seed))
	require.Equal(t, PhaseProfile, s.Phase())
	require.Contains(t, strings.Join(journal.lines, "\n"), "reset")
}

func TestSameSeedReplaysWorld(t *testing.T) {
	a, _ := started(t, 131)
	b, _ := started(t, 131)
	if diff := cmp.Diff(a.Sites(), b.Sites()); diff != "" {
		t.Fatalf("same seed produced different sites:\n%s", diff)
	}
	require.NotEqual(t, a.ID(), b.ID())
}

func TestRefusalErrorMessage(t *testing.T) {
	err := &RefusalError{Op: "submit", Reason: ReasonSelectionIncomplete, Detail: "2 of 3 selected"}
	require.Equal(t, "session: submit refused: selection_incomplete: 2 of 3 selected", err.Error())
	require.True(t, IsRefusal(fmt.Errorf("wrapped: %w", err), ReasonSelectionIncomplete))
	require.False(t, IsRefusal(err, ReasonWrongPhase))
}
