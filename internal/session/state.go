package session

import (
	"errors"
	"fmt"
)

// Status enumerates the top-level session states.
type Status string

const (
	StatusMenu    Status = "menu"
	StatusPlaying Status = "playing"
	StatusResults Status = "results"
)

// Phase is the per-site sub-state while playing.
type Phase string

const (
	PhaseReview     Phase = "review"
	PhaseProfile    Phase = "profile"
	PhaseCategorize Phase = "categorize"
	PhaseProspects  Phase = "prospects"
	PhaseTreatment  Phase = "treatment"
	PhaseSubmitted  Phase = "submitted"
)

// FriendlyName returns the heading shown for the phase.
func (p Phase) FriendlyName() string {
	switch p {
	case PhaseReview:
		return "Review Carry-over"
	case PhaseProfile:
		return "Profile the Site"
	case PhaseCategorize:
		return "Categorize Candidates"
	case PhaseProspects:
		return "Build Prospects"
	case PhaseTreatment:
		return "Choose Treatment"
	case PhaseSubmitted:
		return "Submitted"
	default:
		return "Unknown"
	}
}

// Decision is a player's verdict on a single candidate.
type Decision string

const (
	DecisionKeep   Decision = "keep"
	DecisionSave   Decision = "save"
	DecisionReject Decision = "reject"
)

// Reason codes carried by RefusalError.
type Reason string

const (
	ReasonWrongStatus         Reason = "wrong_status"
	ReasonWrongPhase          Reason = "wrong_phase"
	ReasonInvalidDecision     Reason = "invalid_decision"
	ReasonSaveOnFinalSite     Reason = "save_on_final_site"
	ReasonProfileChoices      Reason = "profile_choices"
	ReasonIndexOutOfRange     Reason = "index_out_of_range"
	ReasonSelectionFull       Reason = "selection_full"
	ReasonSelectionIncomplete Reason = "selection_incomplete"
	ReasonMalformedTrio       Reason = "malformed_trio"
	ReasonSiteNotSubmitted    Reason = "site_not_submitted"
	ReasonNoMoreSites         Reason = "no_more_sites"
)

// RefusalError reports an event that was rejected without changing state.
type RefusalError struct {
	Op     string
	Reason Reason
	Detail string
}

func (e *RefusalError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("session: %s refused: %s", e.Op, e.Reason)
	}
	return fmt.Sprintf("session: %s refused: %s: %s", e.Op, e.Reason, e.Detail)
}

func refuse(op string, reason Reason, format string, args ...any) error {
	return &RefusalError{Op: op, Reason: reason, Detail: fmt.Sprintf(format, args...)}
}

// IsRefusal reports whether err is a refusal with the given reason.
func IsRefusal(err error, reason Reason) bool {
	var r *RefusalError
	return errors.As(err, &r) && r.Reason == reason
}
