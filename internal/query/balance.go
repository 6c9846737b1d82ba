package query

import (
	"context"
	"database/sql"

	"github.com/shopspring/decimal"
)

// BalanceResponse represents a projected account balance.
type BalanceResponse struct {
	AccountPath  string          `json:"account_path"`
	Asset        string          `json:"asset"`
	Balance      decimal.Decimal `json:"balance"`
	AsOfSequence int64           `json:"as_of_sequence"`
}

// SystemAccountsResponse bundles the escrow balances backing one
// collateral: the vault holding active collateral, the leftovers pool
// awaiting claims, and the stablecoin fee escrow earmarked for it.
type SystemAccountsResponse struct {
	Collateral   string          `json:"collateral"`
	Vault        decimal.Decimal `json:"vault"`
	Leftovers    decimal.Decimal `json:"leftovers"`
	FeeEscrow    decimal.Decimal `json:"fee_escrow"`
	AsOfSequence int64           `json:"as_of_sequence"`
}

// GetBalance returns the projected balance of a single account.
func (qs *QueryService) GetBalance(ctx context.Context, accountPath, asset string) (*BalanceResponse, error) {
	asOfSeq, err := qs.getWatermark(ctx)
	if err != nil {
		return nil, err
	}

	balance, err := qs.getProjectedBalance(ctx, accountPath, asset)
	if err != nil {
		return nil, err
	}

	return &BalanceResponse{
		AccountPath:  accountPath,
		Asset:        asset,
		Balance:      balance,
		AsOfSequence: asOfSeq,
	}, nil
}

func (qs *QueryService) getProjectedBalance(ctx context.Context, accountPath, asset string) (decimal.Decimal, error) {
	var raw string
	err := qs.db.QueryRowContext(ctx, `
		SELECT balance::text FROM projections.balances
		WHERE account_path = $1 AND asset = $2
	`, accountPath, asset).Scan(&raw)
	if err == sql.ErrNoRows {
		return decimal.Zero, nil
	}
	if err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromString(raw)
}
