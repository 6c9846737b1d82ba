package event

import (
	"time"
)

// EventType discriminator for event payloads
type EventType int32

const (
	EventTypeUnknown EventType = iota
	EventTypePositionOpened
	EventTypePositionClosed
	EventTypeCollateralToppedUp
	EventTypeCollateralRemoved
	EventTypeDebtBorrowed
	EventTypeDebtRepaid
	EventTypeRateChanged
	EventTypePositionTagged
	EventTypePositionMarked
	EventTypePositionUnmarked
	EventTypePositionLiquidated
	EventTypePositionRedeemed
	EventTypeLeftoverClaimed
	EventTypePositionBurned
	EventTypeInterestCharged
	EventTypePriceUpdated
	EventTypeCollateralCreated
	EventTypeCollateralEdited
	EventTypeParamsUpdated
	EventTypeBorrowerCreated
	EventTypeBorrowerEdited
	EventTypeBorrowerLinked
	EventTypeBorrowerUnlinked
	EventTypeSupplyMinted
	EventTypeSupplyBurned
)

// EventEnvelope wraps every event in the log
type EventEnvelope struct {
	// Global monotonic sequence assigned by the engine
	Sequence int64

	// Stable idempotency key of the operation that produced the event
	IdempotencyKey string

	// Event type discriminator
	EventType EventType

	// Collateral context (nullable for global events)
	Collateral *string

	// Operation timestamp (versioned input, NOT wall-clock at write time)
	Timestamp time.Time

	// JSON-encoded event-specific data
	Payload []byte

	// SHA-256 of state AFTER applying this event
	StateHash [32]byte

	// Previous event's state hash (chain integrity)
	PrevHash [32]byte
}

// Event is the interface all event payloads implement
type Event interface {
	// EventType returns the discriminator
	EventType() EventType

	// CollateralAsset returns the collateral context (nil for global events)
	CollateralAsset() *string
}

func (et EventType) String() string {
	switch et {
	case EventTypePositionOpened:
		return "PositionOpened"
	case EventTypePositionClosed:
		return "PositionClosed"
	case EventTypeCollateralToppedUp:
		return "CollateralToppedUp"
	case EventTypeCollateralRemoved:
		return "CollateralRemoved"
	case EventTypeDebtBorrowed:
		return "DebtBorrowed"
	case EventTypeDebtRepaid:
		return "DebtRepaid"
	case EventTypeRateChanged:
		return "RateChanged"
	case EventTypePositionTagged:
		return "PositionTagged"
	case EventTypePositionMarked:
		return "PositionMarked"
	case EventTypePositionUnmarked:
		return "PositionUnmarked"
	case EventTypePositionLiquidated:
		return "PositionLiquidated"
	case EventTypePositionRedeemed:
		return "PositionRedeemed"
	case EventTypeLeftoverClaimed:
		return "LeftoverClaimed"
	case EventTypePositionBurned:
		return "PositionBurned"
	case EventTypeInterestCharged:
		return "InterestCharged"
	case EventTypePriceUpdated:
		return "PriceUpdated"
	case EventTypeCollateralCreated:
		return "CollateralCreated"
	case EventTypeCollateralEdited:
		return "CollateralEdited"
	case EventTypeParamsUpdated:
		return "ParamsUpdated"
	case EventTypeBorrowerCreated:
		return "BorrowerCreated"
	case EventTypeBorrowerEdited:
		return "BorrowerEdited"
	case EventTypeBorrowerLinked:
		return "BorrowerLinked"
	case EventTypeBorrowerUnlinked:
		return "BorrowerUnlinked"
	case EventTypeSupplyMinted:
		return "SupplyMinted"
	case EventTypeSupplyBurned:
		return "SupplyBurned"
	default:
		return "Unknown"
	}
}
