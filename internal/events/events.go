package events

import "time"

// Type represents an emitted event type.
type Type string

const (
	RunStarted   Type = "RunStarted"
	RootResolved Type = "RootResolved"
	RootFailed   Type = "RootFailed"
	RunFinished  Type = "RunFinished"
)

// Event is the common envelope for renderer events.
type Event struct {
	Type      Type      `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload"`
}

// New stamps an event with the current time.
func New(t Type, payload any) Event {
	return Event{Type: t, Timestamp: time.Now(), Payload: payload}
}

// RunStartedPayload is emitted at the beginning of a run.
type RunStartedPayload struct {
	Version   string    `json:"version"`
	RunID     string    `json:"run_id"`
	Paths     []string  `json:"paths"`
	StartedAt time.Time `json:"started_at"`
}

// RootResolvedPayload reports the workdir found for a path.
type RootResolvedPayload struct {
	Path     string `json:"path"`
	Workdir  string `json:"workdir"`
	Fallback bool   `json:"fallback,omitempty"`
}

// RootFailedPayload records a lookup failure.
type RootFailedPayload struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// RunFinishedPayload closes the run.
type RunFinishedPayload struct {
	Status     string    `json:"status"`
	Resolved   int       `json:"resolved"`
	Failed     int       `json:"failed"`
	FinishedAt time.Time `json:"finished_at"`
}
