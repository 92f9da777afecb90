// Package guard detects domain objects, commands and queries that were not
// created through their constructor functions.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded into types that must only be built by their
// constructor. The zero value is "not constructed".
//
// Example:
//
//	type ScheduleInstallationCommand struct {
//	    orderID kernel.UUID
//	    date    kernel.Date
//	    guard   guard.ConstructorGuard
//	}
//
//	func (c ScheduleInstallationCommand) Validate() error {
//	    return c.guard.Validate(ErrScheduleInstallationCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
