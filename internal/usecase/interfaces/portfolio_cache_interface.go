package interfaces

import (
	"context"

	"catering_ledger/internal/domain/ledger"
)

//go:generate mockgen -source=portfolio_cache_interface.go -destination=mocks/mock_portfolio_cache_interface.go -package=mock_interfaces

// IPortfolioCache keeps the last computed portfolio view between writes.
//
// Every Invalidate bumps a generation. Get reports the generation it saw and
// Set stores a view only while that generation is still current, so a view
// computed from a snapshot read before a write is never cached after it.
type IPortfolioCache interface {
	// Get reports ok=false on a miss.
	Get(ctx context.Context) (view ledger.PortfolioView, generation int64, ok bool, err error)
	Set(ctx context.Context, view ledger.PortfolioView, generation int64) error
	Invalidate(ctx context.Context) error
}
