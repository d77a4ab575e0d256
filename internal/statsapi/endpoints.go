package statsapi

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/defactosf/nbafetch/schema"
)

const regularSeason = "Regular Season"

// displayNameColumn is the player list column used by SearchPlayers.
const displayNameColumn = "DISPLAY_FIRST_LAST"

// GameFinder returns all games for a season, league-wide. Team filtering
// happens client-side on the TEAM_ABBREVIATION column.
func (c *Client) GameFinder(ctx context.Context, season string) (*schema.RecordSet, error) {
	params := url.Values{}
	params.Set("LeagueID", LeagueID)
	params.Set("Season", season)
	return c.get(ctx, "leaguegamefinder", params)
}

// AllPlayers returns every player associated with a season, historical
// entries included.
func (c *Client) AllPlayers(ctx context.Context, season string) (*schema.RecordSet, error) {
	params := url.Values{}
	params.Set("LeagueID", LeagueID)
	params.Set("Season", season)
	params.Set("IsOnlyCurrentSeason", "0")
	return c.get(ctx, "commonallplayers", params)
}

// PlayerGameLog returns the per-game log for one player in a season.
func (c *Client) PlayerGameLog(ctx context.Context, playerID int, season string) (*schema.RecordSet, error) {
	params := url.Values{}
	params.Set("PlayerID", strconv.Itoa(playerID))
	params.Set("Season", season)
	params.Set("SeasonType", regularSeason)
	return c.get(ctx, "playergamelog", params)
}

// TeamGameLog returns the per-game log for one team in a season.
func (c *Client) TeamGameLog(ctx context.Context, teamID int, season string) (*schema.RecordSet, error) {
	params := url.Values{}
	params.Set("TeamID", strconv.Itoa(teamID))
	params.Set("Season", season)
	params.Set("SeasonType", regularSeason)
	return c.get(ctx, "teamgamelog", params)
}

// Standings returns the league standings for a season.
func (c *Client) Standings(ctx context.Context, season string) (*schema.RecordSet, error) {
	params := url.Values{}
	params.Set("LeagueID", LeagueID)
	params.Set("Season", season)
	params.Set("SeasonType", regularSeason)
	return c.get(ctx, "leaguestandingsv3", params)
}

// PlayerTotals returns season total stats for every player. PerMode=Totals
// makes the MIN column carry total minutes played, which is what the
// minutes filter operates on.
func (c *Client) PlayerTotals(ctx context.Context, season string) (*schema.RecordSet, error) {
	params := url.Values{}
	params.Set("LeagueID", LeagueID)
	params.Set("Season", season)
	params.Set("SeasonType", regularSeason)
	params.Set("PerMode", "Totals")
	params.Set("MeasureType", "Base")
	return c.get(ctx, "leaguedashplayerstats", params)
}

// SearchPlayers returns the players whose display name contains the given
// fragment, case-insensitive. The match runs locally over the season player
// list; the provider has no search endpoint.
func (c *Client) SearchPlayers(ctx context.Context, season, name string) (*schema.RecordSet, error) {
	rs, err := c.AllPlayers(ctx, season)
	if err != nil {
		return nil, err
	}

	idx := rs.ColumnIndex(displayNameColumn)
	out := &schema.RecordSet{Name: rs.Name, Columns: rs.Columns}
	if idx < 0 {
		return out, nil
	}

	needle := strings.ToLower(strings.TrimSpace(name))
	for _, row := range rs.Rows {
		if idx >= len(row) {
			continue
		}
		if strings.Contains(strings.ToLower(schema.CellString(row[idx])), needle) {
			out.Rows = append(out.Rows, row)
		}
	}
	return out, nil
}
