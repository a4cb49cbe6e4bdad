package motorcycle

import "time"

// RegisteredEvent is the outbound domain event raised after a motorcycle
// registration is durably committed. Delivery is at-least-once and
// fire-and-forget: a publish failure is logged but never rolls back the
// registration.
type RegisteredEvent struct {
	MotorcycleID string    `json:"motorcycle_id"`
	Year         int       `json:"year"`
	Model        string    `json:"model"`
	Plate        string    `json:"plate"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// NewRegisteredEvent builds the event from a registered motorcycle.
// The occurredAt instant is normalized to UTC.
func NewRegisteredEvent(m *Motorcycle, occurredAt time.Time) RegisteredEvent {
	return RegisteredEvent{
		MotorcycleID: m.ID().String(),
		Year:         m.Year(),
		Model:        m.Model(),
		Plate:        m.Plate().String(),
		OccurredAt:   occurredAt.UTC(),
	}
}
