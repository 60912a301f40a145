package commands

import (
	"errors"

	"spktrack/internal/core/domain/model/bundle"
	"spktrack/internal/core/domain/model/kernel"
	"spktrack/internal/pkg/guard"
)

var ErrAdvanceBundleCommandIsNotConstructed = errors.New(
	"AdvanceBundleCommand must be created via NewAdvanceBundleCommand constructor",
)

// AdvanceBundleCommand represents one scan event from the production floor:
// a worker scanned a bundle's code at a station to report it reached the
// target stage.
//
// Example:
//
//	code, err := kernel.NewScanCode("POL-003")
//	if err != nil {
//	    return fmt.Errorf("unreadable tag: %w", err)
//	}
//	target, _ := bundle.StageFromString("SEWING")
//
//	cmd, err := NewAdvanceBundleCommand(code, target, workerID, "line 2")
//	if err != nil {
//	    return err
//	}
//
//	handler := NewAdvanceBundleCommandHandler(uowFactory, locker, publisher, inventory, wages)
//	result, err := handler.Handle(ctx, cmd)
type AdvanceBundleCommand struct { //nolint:recvcheck //using for validation
	code        kernel.ScanCode
	targetStage bundle.Stage
	actorID     kernel.UUID
	note        string

	guard guard.ConstructorGuard
}

// NewAdvanceBundleCommand creates a command for one scan event.
// Validates the scan code, target stage and actor identifier; the note is
// optional free text. Returns an error if any validation fails.
func NewAdvanceBundleCommand(
	code kernel.ScanCode,
	targetStage bundle.Stage,
	actorID kernel.UUID,
	note string,
) (AdvanceBundleCommand, error) {
	advanceCommand := AdvanceBundleCommand{
		note:  note,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		advanceCommand.setCode(code),
		advanceCommand.setTargetStage(targetStage),
		advanceCommand.setActorID(actorID),
	); err != nil {
		return AdvanceBundleCommand{}, err
	}

	return advanceCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAdvanceBundleCommandIsNotConstructed if validation fails.
func (c AdvanceBundleCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceBundleCommandIsNotConstructed)
}

// Code returns the scanned bundle code.
func (c AdvanceBundleCommand) Code() kernel.ScanCode {
	return c.code
}

// TargetStage returns the stage the scan reports the bundle reached.
func (c AdvanceBundleCommand) TargetStage() bundle.Stage {
	return c.targetStage
}

// ActorID returns the worker or operator who scanned.
func (c AdvanceBundleCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Note returns the optional free-form note attached to the scan.
func (c AdvanceBundleCommand) Note() string {
	return c.note
}

func (c *AdvanceBundleCommand) setCode(code kernel.ScanCode) error {
	if err := code.Validate(); err != nil {
		return err
	}

	c.code = code
	return nil
}

func (c *AdvanceBundleCommand) setTargetStage(targetStage bundle.Stage) error {
	if err := targetStage.Validate(); err != nil {
		return err
	}

	c.targetStage = targetStage
	return nil
}

func (c *AdvanceBundleCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
