// Package guard provides the constructor-guard pattern used by commands,
// queries and value objects to detect zero-value instances that bypassed
// their designated constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes
// a nil validation error, so validation always fails with a meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures objects are only created through their designated
// constructor functions. Embedding a ConstructorGuard in a struct makes a
// zero-value instance distinguishable from a properly constructed one:
// the internal flag is only set by NewConstructorGuard.
//
// Example usage:
//
//	var ErrCommandNotConstructed = errors.New("Command must be created via NewCommand")
//
//	type Command struct {
//	    parcelID string
//	    guard    guard.ConstructorGuard
//	}
//
//	func NewCommand(parcelID string) (Command, error) {
//	    if parcelID == "" {
//	        return Command{}, errors.New("parcelID is required")
//	    }
//	    return Command{parcelID: parcelID, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c Command) Validate() error {
//	    return c.guard.Validate(ErrCommandNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly
// constructed. Call it in the constructor of the guarded object.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the guarded object was created through its
// constructor. Otherwise it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
