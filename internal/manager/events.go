package manager

// Event names published by the manager.
const (
	EventLoadStart       = "load_start"
	EventLoadDone        = "load_done"
	EventLoadFailed      = "load_failed"
	EventTranslateFailed = "translate_failed"
)

// Event is one lifecycle notification for a language pair.
type Event struct {
	Name   string
	Pair   string
	Fields map[string]any
}

// EventPublisher receives manager events. Publish is called synchronously
// from load and translate paths, so it must return quickly.
type EventPublisher interface {
	Publish(Event)
}

type noopPublisher struct{}

func (noopPublisher) Publish(Event) {}
