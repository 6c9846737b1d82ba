package ingestion

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"StableLedger/internal/core"
	"StableLedger/internal/observability"
)

// ErrDuplicateCommand marks a command whose reference was already
// processed. The caller treats it as success with no effect.
var ErrDuplicateCommand = errors.New("duplicate command")

// CommandGateway fronts the engine for command surfaces that carry a
// caller-supplied reference. The reference doubles as the idempotency
// key, so a retried gRPC call cannot apply twice even across a restart
// (the deduper falls back to the event log).
type CommandGateway struct {
	deduper *core.CommandDeduper
	metrics *observability.Metrics
	logger  zerolog.Logger
}

func NewCommandGateway(deduper *core.CommandDeduper, metrics *observability.Metrics) *CommandGateway {
	return &CommandGateway{
		deduper: deduper,
		metrics: metrics,
		logger:  observability.NewLogger("gateway"),
	}
}

// Execute runs fn unless the (eventType, ref) pair was seen before.
// fn is only marked processed when it succeeds, so a failed command can
// be retried with the same reference.
func (g *CommandGateway) Execute(eventType, ref string, fn func() error) error {
	if ref == "" {
		return fmt.Errorf("command reference required")
	}

	if g.deduper.IsDuplicate(eventType, ref) {
		if g.metrics != nil {
			g.metrics.IdempotencyDuplicates.WithLabelValues(eventType, "gateway").Inc()
		}
		g.logger.Debug().Str("event_type", eventType).Str("ref", ref).Msg("duplicate command dropped")
		return ErrDuplicateCommand
	}

	if err := fn(); err != nil {
		return err
	}

	g.deduper.MarkProcessed(eventType, ref)
	return nil
}
