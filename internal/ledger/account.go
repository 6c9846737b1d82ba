package ledger

import (
	"fmt"
)

// AccountScope represents the top-level account namespace
type AccountScope uint8

const (
	AccountScopeSystem AccountScope = iota
	AccountScopeExternal
)

// AccountSubType represents the account purpose
type AccountSubType uint8

const (
	// System sub-types: per-collateral escrows and the stablecoin issuer.
	// Vault holds the collateral backing active positions; Leftovers holds
	// collateral left behind by liquidations and full redemptions until the
	// position holder claims it; FeeEscrow holds upfront interest fees not
	// yet distributed; Issuer is the stablecoin mint/burn counterparty.
	SubTypeVault AccountSubType = iota
	SubTypeLeftovers
	SubTypeFeeEscrow
	SubTypeIssuer

	// External sub-types: the protocol boundary. Holders is circulating
	// stablecoin in the wild; Boundary is collateral held by callers.
	SubTypeHolders
	SubTypeBoundary
)

// StablecoinAsset is the asset identifier of the protocol's own token.
const StablecoinAsset = "SUSD"

// AccountKey is the in-memory key for balance tracking. Asset is the
// token actually held; Earmark names the collateral an escrow serves when
// the two differ (the fee escrow holds stablecoin per collateral).
type AccountKey struct {
	Scope   AccountScope
	SubType AccountSubType
	Asset   string
	Earmark string
}

// NewVaultKey is the active collateral escrow for an asset.
func NewVaultKey(asset string) AccountKey {
	return AccountKey{Scope: AccountScopeSystem, SubType: SubTypeVault, Asset: asset}
}

// NewLeftoversKey is the claimable-leftover escrow for an asset.
func NewLeftoversKey(asset string) AccountKey {
	return AccountKey{Scope: AccountScopeSystem, SubType: SubTypeLeftovers, Asset: asset}
}

// NewFeeEscrowKey is the uncharged-interest-fee escrow for a collateral.
// The fee is denominated in stablecoin but earmarked per collateral.
func NewFeeEscrowKey(collateral string) AccountKey {
	return AccountKey{Scope: AccountScopeSystem, SubType: SubTypeFeeEscrow, Asset: StablecoinAsset, Earmark: collateral}
}

// NewIssuerKey is the stablecoin mint/burn counterparty.
func NewIssuerKey() AccountKey {
	return AccountKey{Scope: AccountScopeSystem, SubType: SubTypeIssuer, Asset: StablecoinAsset}
}

// NewHoldersKey tracks circulating stablecoin outside the protocol.
func NewHoldersKey() AccountKey {
	return AccountKey{Scope: AccountScopeExternal, SubType: SubTypeHolders, Asset: StablecoinAsset}
}

// NewBoundaryKey tracks an asset held by callers outside the protocol.
func NewBoundaryKey(asset string) AccountKey {
	return AccountKey{Scope: AccountScopeExternal, SubType: SubTypeBoundary, Asset: asset}
}

// AccountPath returns the string representation for storage/logging
func (k AccountKey) AccountPath() string {
	suffix := k.Asset
	if k.Earmark != "" {
		suffix = fmt.Sprintf("%s:%s", k.Earmark, k.Asset)
	}

	switch k.Scope {
	case AccountScopeSystem:
		return fmt.Sprintf("system:%s:%s", k.subTypeName(), suffix)
	case AccountScopeExternal:
		return fmt.Sprintf("external:%s:%s", k.subTypeName(), suffix)
	}
	return "unknown"
}

func (k AccountKey) subTypeName() string {
	switch k.SubType {
	case SubTypeVault:
		return "vault"
	case SubTypeLeftovers:
		return "leftovers"
	case SubTypeFeeEscrow:
		return "fee_escrow"
	case SubTypeIssuer:
		return "issuer"
	case SubTypeHolders:
		return "holders"
	case SubTypeBoundary:
		return "boundary"
	default:
		return "unknown"
	}
}
