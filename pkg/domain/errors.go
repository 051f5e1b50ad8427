package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrConfiguration is matched by every *ConfigurationError.
var ErrConfiguration = errors.New("invalid configuration")

// ErrContractViolation is matched by every *ContractViolation.
var ErrContractViolation = errors.New("contract violation")

// ErrOutOfRange is returned when a step or option index is outside its table.
var ErrOutOfRange = errors.New("index out of range")

// ErrDismissed is returned when an operation requires a live flow.
var ErrDismissed = errors.New("flow already dismissed")

// ErrNotStarted is returned when input arrives before the first step is displayed.
var ErrNotStarted = errors.New("flow not started")

// ErrAlreadyStarted is returned when Start is called twice.
var ErrAlreadyStarted = errors.New("flow already started")

// ErrNotChoiceStep is returned when an option is selected on a step without options.
var ErrNotChoiceStep = errors.New("step has no options")

// ErrNoTransition is returned when a completion arrives with no transition in flight.
var ErrNoTransition = errors.New("no transition in flight")

// ErrUnknownOrientation is returned for orientation values other than portrait or landscape.
var ErrUnknownOrientation = errors.New("unknown orientation")

// ConfigurationError lists every problem found in a step table, transition
// table or layout profile.
type ConfigurationError struct {
	Source  string
	Reasons []string
}

func (e *ConfigurationError) Error() string {
	if len(e.Reasons) == 1 {
		return fmt.Sprintf("%s: %s", e.Source, e.Reasons[0])
	}
	return fmt.Sprintf("%s: %d problems: %s", e.Source, len(e.Reasons), strings.Join(e.Reasons, "; "))
}

// Is makes errors.Is(err, ErrConfiguration) hold.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// ContractViolation reports input the controller refuses. State is unchanged.
type ContractViolation struct {
	Op  string
	Err error
}

func (e *ContractViolation) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ContractViolation) Unwrap() []error {
	return []error{ErrContractViolation, e.Err}
}

// Violation builds a *ContractViolation.
func Violation(op string, err error) error {
	return &ContractViolation{Op: op, Err: err}
}
