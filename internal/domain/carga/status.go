package carga

import "github.com/BruksfildServices01/doca-panel/internal/httperr"

// ===============================
// Status da Carga
// ===============================

type Status string

const (
	StatusArrivalScheduled Status = "arrival_scheduled"
	StatusArrival          Status = "arrival"
	StatusCheckin          Status = "checkin"
	StatusClosed           Status = "closed"
	StatusNoShow           Status = "no_show"
	StatusDeleted          Status = "deleted"
)

func InitialStatus() Status {
	return StatusArrivalScheduled
}

// IsTerminal: closed, no_show e deleted não saem mais do lugar.
func IsTerminal(s Status) bool {
	switch s {
	case StatusClosed, StatusNoShow, StatusDeleted:
		return true
	}
	return false
}

// ===============================
// Validações de transição
// ===============================

func CanArrive(current Status) error {
	if current != StatusArrivalScheduled {
		return httperr.ErrInvalidTransition("carga_not_scheduled")
	}
	return nil
}

func CanCheckin(current Status) error {
	if IsTerminal(current) {
		return httperr.ErrInvalidTransition("carga_terminal")
	}
	if current == StatusCheckin {
		return httperr.ErrInvalidTransition("carga_already_checkin")
	}
	return nil
}

func CanClose(current Status) error {
	if current != StatusCheckin {
		return httperr.ErrInvalidTransition("carga_not_checkin")
	}
	return nil
}

func CanSoftDelete(current Status) error {
	if IsTerminal(current) {
		return httperr.ErrInvalidTransition("carga_terminal")
	}
	return nil
}
