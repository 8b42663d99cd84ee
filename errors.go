// errors.go - public errors exposed by perfect
//
// (c) Sudhi Herle 2018 (teacher), adapted 2026
//
// License GPLv2
//
// If you need a commercial license for this work, please contact
// the author.
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

package perfect

import (
	"errors"
	"fmt"
)

// Sentinel errors for container failures. No operation in this package
// returns them: container operations report a key outside the domain by
// panicking with *InvalidArgument, and a mutation of an immutable view by
// panicking with *ContainerIntegrity. PerfectionFailure and
// InvalidArgument carry extra context and satisfy errors.As.
var (
	// ErrNotInDomain is returned when a key presented to a container
	// operation does not belong to the minimal hash domain.
	ErrNotInDomain = errors.New("perfect: key not in domain")

	// ErrNilValue is returned when a nil/zero value is rejected by a
	// container that forbids null values.
	ErrNilValue = errors.New("perfect: nil value not permitted")

	// ErrImmutable is returned when a mutating call is made against an
	// immutable view of a container.
	ErrImmutable = errors.New("perfect: container is immutable")
)

// PerfectionFailure is raised when a randomized search - either the
// Perfectionist's seed search or the BMZ minimization loop - exhausts its
// attempt budget without finding a suitable hash.
type PerfectionFailure struct {
	Reason string
}

func (e *PerfectionFailure) Error() string {
	return fmt.Sprintf("perfect: %s", e.Reason)
}

func newPerfectionFailure(format string, args ...interface{}) *PerfectionFailure {
	return &PerfectionFailure{Reason: fmt.Sprintf(format, args...)}
}

// InvalidArgument reports a caller error: a nil parameter, a negative
// count, an out-of-range configuration value, or a key presented to
// Add/Put that does not belong to the container's domain.
type InvalidArgument struct {
	Arg    string
	Reason string
}

func (e *InvalidArgument) Error() string {
	if e.Arg == "" {
		return fmt.Sprintf("perfect: invalid argument: %s", e.Reason)
	}
	return fmt.Sprintf("perfect: invalid argument %q: %s", e.Arg, e.Reason)
}

func newInvalidArgument(arg, format string, args ...interface{}) *InvalidArgument {
	return &InvalidArgument{Arg: arg, Reason: fmt.Sprintf(format, args...)}
}

// ContainerIntegrity is raised when a caller attempts to mutate through an
// immutable view, or to store a forbidden null value.
type ContainerIntegrity struct {
	Reason string
}

func (e *ContainerIntegrity) Error() string {
	return fmt.Sprintf("perfect: container integrity: %s", e.Reason)
}

func newContainerIntegrity(format string, args ...interface{}) *ContainerIntegrity {
	return &ContainerIntegrity{Reason: fmt.Sprintf(format, args...)}
}
