// Package contract provides configuration, interfaces and shared utilities
// for the internal architecture.
package contract

import (
	"context"
	"encoding/json"
	"time"

	"github.com/defactosf/nbafetch/schema"
)

// StatsProvider defines the fixed stats-provider operations, one per
// endpoint. This allows the orchestration layer to be tested without
// reaching the live API.
type StatsProvider interface {
	// GameFinder returns all games for a season, league-wide.
	GameFinder(ctx context.Context, season string) (*schema.RecordSet, error)

	// AllPlayers returns the full player list for a season.
	AllPlayers(ctx context.Context, season string) (*schema.RecordSet, error)

	// PlayerGameLog returns the per-game log for one player in a season.
	PlayerGameLog(ctx context.Context, playerID int, season string) (*schema.RecordSet, error)

	// TeamGameLog returns the per-game log for one team in a season.
	TeamGameLog(ctx context.Context, teamID int, season string) (*schema.RecordSet, error)

	// Standings returns the league standings for a season.
	Standings(ctx context.Context, season string) (*schema.RecordSet, error)

	// PlayerTotals returns season total stats for every player, including
	// the total minutes column used by the minutes filter.
	PlayerTotals(ctx context.Context, season string) (*schema.RecordSet, error)

	// SearchPlayers returns the players whose display name contains the
	// given fragment, case-insensitive.
	SearchPlayers(ctx context.Context, season, name string) (*schema.RecordSet, error)
}

// BoxscoreProvider defines the daily boxscore operations. The document is
// opaque: the provider's response schema is not part of this contract.
type BoxscoreProvider interface {
	// FetchDaily returns the boxscore document for one calendar date.
	FetchDaily(ctx context.Context, date time.Time) (json.RawMessage, error)

	// FetchRange returns one DateResult per calendar day in [start, end]
	// inclusive, ascending. Per-date failures are recorded, not raised.
	FetchRange(ctx context.Context, start, end time.Time) ([]schema.DateResult, error)
}
