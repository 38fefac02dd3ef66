package packet

import (
	"errors"
	"fmt"
	"io"
)

var (
	// ErrTruncated is returned when a payload ends in the middle of a field.
	ErrTruncated = io.ErrUnexpectedEOF

	ErrUnknownOpcode         = errors.New("unknown opcode")
	ErrUnknownDiscriminant   = errors.New("unknown discriminant")
	ErrDuplicateRegistration = errors.New("duplicate registration")
	ErrTrailingData          = errors.New("trailing data after packet payload")
	ErrStringTooLong         = errors.New("string exceeds maximum length")
	ErrInvalidJSON           = errors.New("invalid JSON text component")
	ErrInvalidNBT            = errors.New("invalid NBT")
	ErrUnregisteredPacket    = errors.New("packet type not registered")
)

// UnknownDiscriminantError reports a tagged union tag or enum id outside of
// its declared domain.
type UnknownDiscriminantError struct {
	Family string
	Value  any
}

func (e *UnknownDiscriminantError) Error() string {
	return fmt.Sprintf("unknown %s discriminant %v", e.Family, e.Value)
}

func (e *UnknownDiscriminantError) Is(target error) bool {
	return target == ErrUnknownDiscriminant
}

func unknown(family string, v any) error {
	return &UnknownDiscriminantError{Family: family, Value: v}
}

// checkFlags rejects a flag byte with bits outside mask.
func checkFlags(family string, flags, mask byte) error {
	if flags&^mask != 0 {
		return unknown(family, flags)
	}
	return nil
}

// MalformedError wraps any failure to decode a registered packet.
type MalformedError struct {
	State     State
	Direction Direction
	Opcode    int32
	Err       error
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed %s %s packet 0x%02x: %v", e.State, e.Direction, e.Opcode, e.Err)
}

func (e *MalformedError) Unwrap() error {
	return e.Err
}

// UnknownOpcodeError reports an opcode with no registered packet type.
type UnknownOpcodeError struct {
	State     State
	Direction Direction
	Opcode    int32
}

func (e *UnknownOpcodeError) Error() string {
	return fmt.Sprintf("unknown %s %s opcode 0x%02x", e.State, e.Direction, e.Opcode)
}

func (e *UnknownOpcodeError) Is(target error) bool {
	return target == ErrUnknownOpcode
}

// DuplicateRegistrationError reports an opcode or packet type registered twice
// for one direction.
type DuplicateRegistrationError struct {
	State     State
	Direction Direction
	Opcode    int32
	Type      string
}

func (e *DuplicateRegistrationError) Error() string {
	return fmt.Sprintf("duplicate %s %s registration: opcode 0x%02x, type %s", e.State, e.Direction, e.Opcode, e.Type)
}

func (e *DuplicateRegistrationError) Is(target error) bool {
	return target == ErrDuplicateRegistration
}
