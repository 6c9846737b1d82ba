package ingestion

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"StableLedger/internal/core"
	"StableLedger/internal/observability"
	"StableLedger/internal/state"
)

// FeedConsumer drains the subscriber channel and applies oracle prices
// and keeper triggers to the engine. Messages are acked only after the
// engine has applied them; deterministic rejections (bad payload, stale
// duplicate, validation failure) are acked too so redelivery cannot
// succeed where the first attempt could not.
type FeedConsumer struct {
	engine  *core.Engine
	deduper *core.CommandDeduper
	msgChan <-chan RawMessage
	metrics *observability.Metrics
	logger  zerolog.Logger
}

func NewFeedConsumer(
	engine *core.Engine,
	deduper *core.CommandDeduper,
	msgChan <-chan RawMessage,
	metrics *observability.Metrics,
) *FeedConsumer {
	return &FeedConsumer{
		engine:  engine,
		deduper: deduper,
		msgChan: msgChan,
		metrics: metrics,
		logger:  observability.NewLogger("feed"),
	}
}

// Run starts the consumer loop.
func (fc *FeedConsumer) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case msg, ok := <-fc.msgChan:
			if !ok {
				return nil
			}
			fc.handle(msg)
		}
	}
}

func (fc *FeedConsumer) handle(msg RawMessage) {
	if fc.metrics != nil {
		fc.metrics.NATSPullLatency.WithLabelValues(msg.Subject).Observe(time.Since(msg.Timestamp).Seconds())
	}

	switch {
	case strings.HasPrefix(msg.Subject, "stable.prices."):
		fc.handlePrice(msg)
	case strings.HasPrefix(msg.Subject, "stable.keeper.interest."):
		fc.handleInterest(msg)
	default:
		fc.logger.Warn().Str("subject", msg.Subject).Msg("unroutable subject")
		msg.AckFunc()
	}
}

func (fc *FeedConsumer) handlePrice(msg RawMessage) {
	update, err := ParsePriceUpdate(msg.Data)
	if err != nil {
		fc.logger.Warn().Err(err).Str("subject", msg.Subject).Msg("dropping malformed price")
		msg.AckFunc()
		return
	}

	idemKey := fmt.Sprintf("%s:%d", update.Asset, update.PriceSequence)
	if fc.deduper.IsDuplicate("PriceUpdated", idemKey) {
		if fc.metrics != nil {
			fc.metrics.IdempotencyDuplicates.WithLabelValues("PriceUpdated", "feed").Inc()
		}
		msg.AckFunc()
		return
	}

	ref := fmt.Sprintf("oracle:%s", idemKey)
	if err := fc.engine.SetPrice(ref, update.Asset, update.USDPrice); err != nil {
		fc.logger.Warn().Err(err).Str("asset", update.Asset).Msg("price update rejected")
		msg.AckFunc()
		return
	}

	fc.deduper.MarkProcessed("PriceUpdated", idemKey)
	if fc.metrics != nil {
		fc.metrics.PriceUpdatesApplied.WithLabelValues(update.Asset).Inc()
	}
	msg.AckFunc()
}

func (fc *FeedConsumer) handleInterest(msg RawMessage) {
	charge, err := ParseInterestCharge(msg.Data)
	if err != nil {
		fc.logger.Warn().Err(err).Str("subject", msg.Subject).Msg("dropping malformed interest trigger")
		msg.AckFunc()
		return
	}

	idemKey := fmt.Sprintf("%s:%d", charge.Collateral, charge.Sequence)
	if fc.deduper.IsDuplicate("InterestCharged", idemKey) {
		if fc.metrics != nil {
			fc.metrics.IdempotencyDuplicates.WithLabelValues("InterestCharged", "feed").Inc()
		}
		msg.AckFunc()
		return
	}

	// Absent bounds mean the whole range, privileged tier included.
	params := fc.engine.Params()
	rateStart := state.PrivilegedWireRate
	if charge.RateStart != nil {
		rateStart = *charge.RateStart
	}
	rateEnd := params.MaxInterest.Add(params.InterestInterval)
	if charge.RateEnd != nil {
		rateEnd = *charge.RateEnd
	}

	ref := fmt.Sprintf("keeper:%s", idemKey)
	_, err = fc.engine.ChargeInterest(ref, charge.Collateral, rateStart, rateEnd, charge.SubstituteRate)
	if err != nil {
		fc.logger.Warn().Err(err).Str("collateral", charge.Collateral).Msg("interest trigger rejected")
		msg.AckFunc()
		return
	}

	fc.deduper.MarkProcessed("InterestCharged", idemKey)
	msg.AckFunc()
}
