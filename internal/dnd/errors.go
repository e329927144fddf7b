package dnd

import (
	"errors"
	"fmt"
)

var (
	// ErrNoCoordinator is the panic value raised when zone or drag
	// operations run without a coordinator. It is a programming error.
	ErrNoCoordinator   = errors.New("dnd: no coordinator; mount zones through a Coordinator")
	ErrDuplicateZone   = errors.New("zone already mounted")
	ErrDragDisabled    = errors.New("dragging disabled")
	ErrItemPinned      = errors.New("item cannot be dragged")
	ErrNotMeasured     = errors.New("zone not measured yet")
	ErrIndexOutOfRange = errors.New("item index out of range")
	ErrDragInProgress  = errors.New("another drag is in progress")
	ErrInvalidOptions  = errors.New("invalid zone options")
)

type OpError struct {
	Op       string
	Resource string
	ID       string
	Err      error
}

func (e *OpError) Error() string {
	if e == nil {
		return ""
	}
	if e.ID != "" {
		return fmt.Sprintf("%s %s %s: %v", e.Op, e.Resource, e.ID, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Resource, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

func wrapZoneErr(op, id string, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Resource: "zone", ID: id, Err: err}
}
