package bundle

import (
	"spktrack/internal/pkg/errs"
)

// Stage represents a bundle's position in the production pipeline.
// It implements a state machine with defined transitions so bundles follow
// the factory's physical workflow.
//
// Stage transitions:
//
//	New ──> Cutting ──> Sewing ──> Finishing ──> Done
//	 │         │           │           │
//	 └─────────┴───────────┴───────────┴──> Rejected
//
// Only the immediate forward successor is reachable; Rejected is reachable
// from any non-terminal stage. Done and Rejected are terminal.
//
// Stage is a value object that validates state transitions and provides
// string representations for persistence and display.
type Stage int

const (
	// Unknown represents an invalid or undefined stage.
	// This value (0) helps catch uninitialized Stage values.
	Unknown Stage = iota

	// New is the initial stage assigned to every bundle at decomposition.
	// Bundles in this stage have not entered the production floor.
	New

	// Cutting means fabric is being cut for the bundle. Entering this stage
	// is the material draw point: raw stock is consumed per the BOM.
	Cutting

	// Sewing means the bundle is at the sewing line.
	Sewing

	// Finishing means the bundle is in finishing work (trimming, ironing, packing).
	Finishing

	// Done means all pieces passed QC and the bundle is complete. Entering
	// this stage accrues the worker's wage. Terminal.
	Done

	// Rejected means the bundle failed quality control. Terminal.
	Rejected
)

// getStageStrings returns a map of Stage values to their string representations.
// All stages are included for string conversion.
func getStageStrings() map[Stage]string {
	return map[Stage]string{
		Unknown:   "UNKNOWN",
		New:       "NEW",
		Cutting:   "CUTTING",
		Sewing:    "SEWING",
		Finishing: "FINISHING",
		Done:      "DONE",
		Rejected:  "REJECTED",
	}
}

// getValidStageStrings returns a map of only valid Stage values.
// Only valid stages are included to support validation and parsing.
func getValidStageStrings() map[Stage]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Stage]string{
		New:       "NEW",
		Cutting:   "CUTTING",
		Sewing:    "SEWING",
		Finishing: "FINISHING",
		Done:      "DONE",
		Rejected:  "REJECTED",
	}
}

// StageFromString parses the persistence/display representation of a stage.
// Returns an error for text that names no valid stage.
func StageFromString(s string) (Stage, error) {
	for stage, str := range getValidStageStrings() {
		if str == s {
			return stage, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("stage", errs.NewValueIsInvalidError(s))
}

// Validate checks if the Stage value is valid.
//
// Valid stages are: New, Cutting, Sewing, Finishing, Done, Rejected.
// Unknown (0) and any other values are invalid.
func (s Stage) Validate() error {
	if _, ok := getValidStageStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("stage")
	}
	return nil
}

// String returns the persistence/display name of the stage.
// Returns "UNKNOWN" for invalid stage values. Implements fmt.Stringer.
func (s Stage) String() string {
	if str, ok := getStageStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no transition out of the stage is permitted.
// Done and Rejected are the terminal stages.
func (s Stage) IsTerminal() bool {
	return s == Done || s == Rejected
}

// successor returns the immediate forward successor of the stage, or Unknown
// when the stage has none (terminal stages and invalid values).
func (s Stage) successor() Stage {
	switch s {
	case New:
		return Cutting
	case Cutting:
		return Sewing
	case Sewing:
		return Finishing
	case Finishing:
		return Done
	default:
		return Unknown
	}
}

// ValidateAdvance checks whether the requested target is reachable from the
// current stage, without performing the transition.
//
// Reachable targets:
//   - the immediate forward successor of the current stage
//   - Rejected, from any non-terminal stage
//
// Everything else fails with InvalidTransitionError: skip-aheads, backward
// moves, transitions out of Done or Rejected, and requests for the current
// stage itself. The repeat-completion no-op is decided by the caller, not
// here; at this level Done -> Done is still invalid.
func (s Stage) ValidateAdvance(target Stage) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := target.Validate(); err != nil {
		return err
	}

	if target == Rejected && !s.IsTerminal() {
		return nil
	}

	if target == s.successor() && target != Unknown {
		return nil
	}

	return errs.NewInvalidTransitionError(s.String(), target.String())
}

// Advance transitions the stage to the requested target.
//
// Returns (target, nil) when the move is legal per ValidateAdvance, or
// (0, InvalidTransitionError) otherwise. Used by Bundle.AdvanceTo to enforce
// the transition graph.
func (s Stage) Advance(target Stage) (Stage, error) {
	if err := s.ValidateAdvance(target); err != nil {
		return 0, err
	}

	return target, nil
}
