package order

import (
	"fmt"

	"warehouse/internal/pkg/errs"
)

// Stage is the lifecycle stage of an order. Exactly one stage is active at a
// time, which rules out the contradictory flag combinations (archived but not
// closed, deleted and open) a set of independent booleans would allow.
//
// Transitions:
//
//	        complete            archive
//	Open ─────────────> Closed ─────────> Archived
//	  ^                  │                   │
//	  └──── incomplete ──┘                   │
//	  │                  │                   │
//	  └──────── delete ──┴──────── delete ───┴──> Deleted
type Stage int

const (
	// Unknown catches uninitialized values.
	Unknown Stage = iota
	Open
	Closed
	Archived
	Deleted
)

type action string

const (
	actionComplete   action = "complete"
	actionIncomplete action = "incomplete"
	actionArchive    action = "archive"
	actionDelete     action = "delete"
)

// transitions maps a stage and an action to the resulting stage.
// A missing entry means the action is not allowed from that stage.
var transitions = map[Stage]map[action]Stage{
	Open: {
		actionComplete: Closed,
		actionDelete:   Deleted,
	},
	Closed: {
		actionIncomplete: Open,
		actionArchive:    Archived,
		actionDelete:     Deleted,
	},
	Archived: {
		actionDelete: Deleted,
	},
}

var stageNames = map[Stage]string{
	Unknown:  "Unknown",
	Open:     "Open",
	Closed:   "Closed",
	Archived: "Archived",
	Deleted:  "Deleted",
}

// String returns the stage name, "Unknown" for unrecognized values.
func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return "Unknown"
}

// Validate rejects Unknown and out of range values, typically ones read from storage.
func (s Stage) Validate() error {
	if s < Open || s > Deleted {
		return errs.NewValueIsInvalidErrorWithCause("stage", fmt.Errorf("%d is not a valid stage", s))
	}
	return nil
}

// IsClosed reports the legacy "closed" flag: true for Closed and Archived.
func (s Stage) IsClosed() bool {
	return s == Closed || s == Archived
}

// Complete returns Closed if the stage is Open.
func (s Stage) Complete() (Stage, error) {
	return s.apply(actionComplete)
}

// Incomplete returns Open if the stage is Closed.
func (s Stage) Incomplete() (Stage, error) {
	return s.apply(actionIncomplete)
}

// Archive returns Archived if the stage is Closed.
func (s Stage) Archive() (Stage, error) {
	return s.apply(actionArchive)
}

// Delete returns Deleted for any stage other than Deleted and Unknown.
func (s Stage) Delete() (Stage, error) {
	return s.apply(actionDelete)
}

func (s Stage) apply(a action) (Stage, error) {
	next, ok := transitions[s][a]
	if !ok {
		return Unknown, errs.NewInvalidStateTransitionError(string(a), s.String())
	}
	return next, nil
}
