package kernel

import (
	"regexp"
	"strings"

	"spktrack/internal/pkg/errs"
)

// bundleCodePattern matches human-readable bundle labels: an alphanumeric
// prefix derived from the order title and id, a dash, and a 1-based sequence
// number padded to at least three digits (e.g. "KAO1A2B-003").
var bundleCodePattern = regexp.MustCompile(`^[A-Z0-9]{1,8}-[0-9]{3,}$`)

// ScanCodeKind classifies which identifier shape a scan payload parsed as.
type ScanCodeKind int

const (
	// ScanCodeUnknown represents an unclassified scan payload.
	// This value (0) helps catch uninitialized ScanCode values.
	ScanCodeUnknown ScanCodeKind = iota

	// ScanCodeBundleID means the payload parsed as a bundle UUID.
	ScanCodeBundleID

	// ScanCodeBundleLabel means the payload matched the bundle code shape.
	ScanCodeBundleLabel
)

// ScanCode is a value object for the decoded text of a scan event. The core
// receives only the decoded string, never the decoding mechanism: the same
// value arrives from a camera reader, an uploaded image, or manual entry.
//
// A ScanCode is either a bundle UUID or a bundle label. Text that parses as
// neither fails construction with MalformedCodeError, which the operator
// surface treats as a "re-scan" prompt. Whether a well-formed code actually
// resolves to a bundle is decided later, against the repository.
type ScanCode struct {
	raw  string
	kind ScanCodeKind
	id   UUID
}

// NewScanCode classifies raw scanned text into one of the known code shapes.
// Leading and trailing whitespace is tolerated; scanners routinely append
// newlines to the payload. Returns MalformedCodeError for anything else.
func NewScanCode(raw string) (ScanCode, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ScanCode{}, errs.NewMalformedCodeError(raw)
	}

	if id, err := UUIDFromString(trimmed); err == nil {
		return ScanCode{raw: trimmed, kind: ScanCodeBundleID, id: id}, nil
	}

	if bundleCodePattern.MatchString(trimmed) {
		return ScanCode{raw: trimmed, kind: ScanCodeBundleLabel}, nil
	}

	return ScanCode{}, errs.NewMalformedCodeError(raw)
}

// Validate ensures the ScanCode was created via NewScanCode.
func (c ScanCode) Validate() error {
	if c.kind == ScanCodeUnknown {
		return errs.NewValueIsRequiredError("scan code must be created via NewScanCode")
	}
	return nil
}

// Kind returns which identifier shape the payload parsed as.
func (c ScanCode) Kind() ScanCodeKind {
	return c.kind
}

// String returns the trimmed scan payload.
func (c ScanCode) String() string {
	return c.raw
}

// BundleID returns the parsed bundle UUID.
// Only meaningful when Kind() == ScanCodeBundleID.
func (c ScanCode) BundleID() UUID {
	return c.id
}
