package stock

import (
	"fmt"

	"spktrack/internal/pkg/errs"
)

// DrawPolicy controls what happens when a material draw would push stock
// below zero. The policy is a deployment-level configuration choice: strict
// shops block production on shortfall, permissive shops let the floor keep
// moving and reconcile stock counts later.
type DrawPolicy int

const (
	// PolicyUnknown represents an invalid or undefined policy.
	// This value (0) helps catch uninitialized DrawPolicy values.
	PolicyUnknown DrawPolicy = iota

	// PolicyStrict rejects draws that would make stock negative.
	// The whole transition aborts with InsufficientStockError.
	PolicyStrict

	// PolicyPermissive allows stock to go negative. The draw succeeds and
	// an advisory alert is recorded for the supervisor.
	PolicyPermissive
)

// getPolicyStrings returns a map of DrawPolicy values to their string representations.
func getPolicyStrings() map[DrawPolicy]string {
	return map[DrawPolicy]string{
		PolicyUnknown:    "UNKNOWN",
		PolicyStrict:     "STRICT",
		PolicyPermissive: "PERMISSIVE",
	}
}

// PolicyFromString parses a configuration value into a DrawPolicy.
// Accepts "STRICT" and "PERMISSIVE".
func PolicyFromString(s string) (DrawPolicy, error) {
	switch s {
	case "STRICT":
		return PolicyStrict, nil
	case "PERMISSIVE":
		return PolicyPermissive, nil
	default:
		return PolicyUnknown, errs.NewValueIsInvalidErrorWithCause("drawPolicy",
			fmt.Errorf("%q is not a valid draw policy", s))
	}
}

// Validate checks if the DrawPolicy value is valid.
func (p DrawPolicy) Validate() error {
	if p != PolicyStrict && p != PolicyPermissive {
		return errs.NewValueIsInvalidErrorWithCause("drawPolicy",
			fmt.Errorf("%d is not a valid draw policy", p))
	}
	return nil
}

// String returns the configuration name of the policy. Implements fmt.Stringer.
func (p DrawPolicy) String() string {
	if str, ok := getPolicyStrings()[p]; ok {
		return str
	}
	return "UNKNOWN"
}
