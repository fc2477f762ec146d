package monitor

import (
	"errors"
	"fmt"
)

var (
	ErrMissingSession       = errors.New("a session is required")
	ErrPatientNotFound      = errors.New("patient not found")
	ErrLinkNotFound         = errors.New("doctor is not linked to patient")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrInvalidReminder      = errors.New("invalid reminder")
	ErrNotDoctor            = errors.New("only doctors can watch a roster")
)

// RecipientResolutionError means the doctors of a patient could not be looked
// up, so nothing was persisted for them. Toasts were still shown.
type RecipientResolutionError struct {
	PatientID string
	Err       error
}

func (e *RecipientResolutionError) Error() string {
	return fmt.Sprintf("resolve recipients for patient %s: %v", e.PatientID, e.Err)
}

func (e *RecipientResolutionError) Unwrap() error {
	return e.Err
}

// PersistenceError is a failed notification write for one recipient. Other
// recipients of the same event are unaffected.
type PersistenceError struct {
	RecipientID string
	Err         error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persist notification for %s: %v", e.RecipientID, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
