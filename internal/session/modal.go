package session

import "fmt"

// ModalState is the visibility state of the details/player modal
type ModalState int

const (
	ModalClosed ModalState = iota
	ModalDetails
	ModalPlayer
)

func (s ModalState) String() string {
	switch s {
	case ModalClosed:
		return "closed"
	case ModalDetails:
		return "details-open"
	case ModalPlayer:
		return "player-open"
	default:
		return fmt.Sprintf("ModalState(%d)", int(s))
	}
}

// Modal is the modal state machine:
//
//	closed -> details-open -> player-open -> details-open
//	any -> closed
type Modal struct {
	state ModalState
}

// State returns the current state
func (m *Modal) State() ModalState {
	return m.state
}

// OpenDetails shows the details body. Allowed from any state; from
// player-open it hides the player.
func (m *Modal) OpenDetails() {
	m.state = ModalDetails
}

// OpenPlayer shows the player. It fails unless details are open.
func (m *Modal) OpenPlayer() error {
	if m.state != ModalDetails && m.state != ModalPlayer {
		return fmt.Errorf("cannot open player from %s", m.state)
	}
	m.state = ModalPlayer
	return nil
}

// ClosePlayer returns to the details body
func (m *Modal) ClosePlayer() {
	if m.state == ModalPlayer {
		m.state = ModalDetails
	}
}

// Close hides the modal entirely
func (m *Modal) Close() {
	m.state = ModalClosed
}

// IsOpen reports whether any part of the modal is visible
func (m *Modal) IsOpen() bool {
	return m.state != ModalClosed
}
