package engine

import (
	"errors"
	"fmt"
)

// GateError indicates a feature is locked behind a required global level.
// This is returned by gate checks and should be shown to the user.
type GateError struct {
	Feature       string
	RequiredLevel int
}

func (e GateError) Error() string {
	if e.RequiredLevel <= 0 {
		return fmt.Sprintf("feature '%s' is locked", e.Feature)
	}
	return fmt.Sprintf("feature '%s' unlocks at level %d", e.Feature, e.RequiredLevel)
}

// UnknownIDError reports a lookup miss against the content catalog.
type UnknownIDError struct {
	Kind string
	ID   string
}

func (e UnknownIDError) Error() string {
	return fmt.Sprintf("unknown %s '%s'", e.Kind, e.ID)
}

// AlreadyCompletedError rejects re-completing a challenge that has not
// expired yet.
type AlreadyCompletedError struct {
	ID string
}

func (e AlreadyCompletedError) Error() string {
	return fmt.Sprintf("challenge '%s' is already completed", e.ID)
}

// Battle session gates.
var (
	ErrBattleActive = errors.New("a battle is already in progress")
	ErrNoBattle     = errors.New("no battle in progress")
)
