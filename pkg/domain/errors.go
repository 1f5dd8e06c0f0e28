package domain

import "errors"

// ErrMachineNotFound is returned when a machine name cannot be found by a loader.
var ErrMachineNotFound = errors.New("machine not found")

// ErrRunNotFound is returned when a run ID cannot be found in the store.
var ErrRunNotFound = errors.New("run not found")

// ErrMalformedDefinition is returned by loaders when a machine description is
// structurally incomplete, for example a missing header row or a transition
// row with fewer than five fields.
var ErrMalformedDefinition = errors.New("malformed machine definition")

// ErrFaultyTransition is reported when a transition references a state or a
// symbol the machine never declared. Detected once at validation time, never
// inside the exploration loop.
var ErrFaultyTransition = errors.New("faulty transition")

// ErrOptionViolation is returned when an engine option is set to an unusable
// value, such as a non-positive depth bound.
var ErrOptionViolation = errors.New("option violation")
