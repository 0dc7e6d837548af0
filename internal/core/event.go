package core

// Event is a presentation-level notification emitted by a game step.
// The platform turns events into sound; games never play audio themselves.
type Event int

const (
	EventNone     Event = iota
	EventSelect         // Menu cursor moved or entry chosen
	EventFire           // A projectile was launched
	EventSpawn          // A new target appeared
	EventHit            // Correct target struck
	EventMiss           // Wrong target struck
	EventLifeLost       // A target got through
	EventGameOver       // The run ended
	EventSaved          // Game state written
	EventError          // A save or load failed
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventNone:
		return "none"
	case EventSelect:
		return "select"
	case EventFire:
		return "fire"
	case EventSpawn:
		return "spawn"
	case EventHit:
		return "hit"
	case EventMiss:
		return "miss"
	case EventLifeLost:
		return "life_lost"
	case EventGameOver:
		return "game_over"
	case EventSaved:
		return "saved"
	case EventError:
		return "error"
	default:
		return "unknown"
	}
}
