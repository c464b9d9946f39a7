package manager

import "github.com/rs/zerolog"

// LogPublisher writes each event as one structured log line.
type LogPublisher struct {
	log zerolog.Logger
}

func NewLogPublisher(l zerolog.Logger) *LogPublisher { return &LogPublisher{log: l} }

func (p *LogPublisher) Publish(e Event) {
	ev := p.log.Info()
	if e.Name == EventLoadFailed || e.Name == EventTranslateFailed {
		ev = p.log.Warn()
	}
	ev.Str("event", e.Name).Str("pair", e.Pair).Fields(e.Fields).Msg("manager event")
}
