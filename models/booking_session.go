package models

// SessionStatus is the client-observable state of a booking session.
type SessionStatus string

const (
	SessionIdle    SessionStatus = "idle"
	SessionLoading SessionStatus = "loading"
	SessionSuccess SessionStatus = "success"
	SessionError   SessionStatus = "error"
)

// BookingSession holds context between opening the booking dialog and the
// final reservation. TakenSlots is a cache of the last authoritative read
// for the selected date; it is advanced through exactly two paths:
// MergeTaken after an accepted reservation (optimistic local update) and
// ReplaceTaken after an explicit refresh, such as the mandatory re-read that
// follows a conflict.
type BookingSession struct {
	SessionID          string        `json:"sessionId"`
	Doctor             Doctor        `json:"doctor"`
	Date               string        `json:"date,omitempty"`
	Status             SessionStatus `json:"status"`
	TakenSlots         []string      `json:"takenSlots,omitempty"`
	OutsideWorkingDays bool          `json:"outsideWorkingDays,omitempty"`
	Booked             *Appointment  `json:"booking,omitempty"`
	LastError          string        `json:"lastError,omitempty"`
}

// MergeTaken records a newly confirmed slot in the local taken set without
// waiting for a fresh read. Idempotent.
func (s *BookingSession) MergeTaken(slot string) {
	for _, t := range s.TakenSlots {
		if t == slot {
			return
		}
	}
	s.TakenSlots = append(s.TakenSlots, slot)
}

// ReplaceTaken swaps in the result of a fresh authoritative read, discarding
// any optimistic local state.
func (s *BookingSession) ReplaceTaken(fresh []string) {
	s.TakenSlots = append([]string(nil), fresh...)
}
