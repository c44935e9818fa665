package errors

import "fmt"

var (
	ErrInsufficientParticipants = fmt.Errorf("not enough participants to fill the requested groups")
	ErrInvalidGroupCount        = fmt.Errorf("group count must be at least 1")
	ErrInvalidDraft             = fmt.Errorf("invalid draft request")
	ErrNoDraft                  = fmt.Errorf("no draft has been made yet")
	ErrUnsupportedRoster        = fmt.Errorf("roster is neither JSON nor CSV")
)
