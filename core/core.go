// Package core has the fetch, filter and export orchestration. Each
// Execute* function is the entry point for one subcommand.
package core

import (
	"context"
	"fmt"
	"os"

	"github.com/defactosf/nbafetch/internal/contract"
	"github.com/defactosf/nbafetch/internal/outwriter"
)

// Column selections for the stdout summary tables.
var (
	gameLogColumns  = []string{"GAME_DATE", "MATCHUP", "WL", "MIN", "PTS", "REB", "AST"}
	totalsColumns   = []string{"PLAYER_NAME", "TEAM_ABBREVIATION", "MIN", "PTS", "REB", "AST"}
	playerColumns   = []string{"DISPLAY_FIRST_LAST", "PERSON_ID", "TEAM_ABBREVIATION"}
	standingColumns = []string{"TeamCity", "TeamName", "WINS", "LOSSES", "WinPCT"}
)

const summaryLimit = 10

// teamAbbrColumn is the game-finder column used for client-side team
// filtering.
const teamAbbrColumn = "TEAM_ABBREVIATION"

// ExecuteGames fetches the season's games, optionally filtered to one team,
// and exports them.
func ExecuteGames(ctx context.Context, cfg *contract.Config, stats contract.StatsProvider) error {
	fmt.Printf("Fetching games for %s season...\n", cfg.Season)

	rs, err := stats.GameFinder(ctx, cfg.Season)
	if err != nil {
		return err
	}

	name := fmt.Sprintf("games_%s", cfg.Season)
	if cfg.TeamAbbr != "" {
		rs = FilterByColumn(rs, teamAbbrColumn, cfg.TeamAbbr)
		name = fmt.Sprintf("games_%s_%s", cfg.Season, cfg.TeamAbbr)
	}

	path, err := outwriter.WriteRecordSet(rs, name, cfg)
	if err != nil {
		return err
	}
	return outwriter.PrintSavedSummary(os.Stdout, rs.Len(), path)
}

// ExecutePlayers fetches the season's full player list and exports it.
func ExecutePlayers(ctx context.Context, cfg *contract.Config, stats contract.StatsProvider) error {
	fmt.Printf("Fetching players for %s season...\n", cfg.Season)

	rs, err := stats.AllPlayers(ctx, cfg.Season)
	if err != nil {
		return err
	}

	path, err := outwriter.WriteRecordSet(rs, fmt.Sprintf("players_%s", cfg.Season), cfg)
	if err != nil {
		return err
	}
	return outwriter.PrintSavedSummary(os.Stdout, rs.Len(), path)
}

// ExecutePlayerStats fetches one player's game log and exports it, printing
// the most recent games as a table.
func ExecutePlayerStats(ctx context.Context, cfg *contract.Config, stats contract.StatsProvider) error {
	fmt.Printf("Fetching stats for player %d in %s...\n", cfg.PlayerID, cfg.Season)

	rs, err := stats.PlayerGameLog(ctx, cfg.PlayerID, cfg.Season)
	if err != nil {
		return err
	}

	path, err := outwriter.WriteRecordSet(rs, fmt.Sprintf("player_%d_%s", cfg.PlayerID, cfg.Season), cfg)
	if err != nil {
		return err
	}
	if rs.Len() > 0 {
		if err := outwriter.PrintRecordTable(os.Stdout, rs, gameLogColumns, summaryLimit, cfg); err != nil {
			return err
		}
	}
	return outwriter.PrintSavedSummary(os.Stdout, rs.Len(), path)
}

// ExecuteTeamStats fetches one team's game log and exports it.
func ExecuteTeamStats(ctx context.Context, cfg *contract.Config, stats contract.StatsProvider) error {
	fmt.Printf("Fetching stats for team %d in %s...\n", cfg.TeamID, cfg.Season)

	rs, err := stats.TeamGameLog(ctx, cfg.TeamID, cfg.Season)
	if err != nil {
		return err
	}

	path, err := outwriter.WriteRecordSet(rs, fmt.Sprintf("team_%d_%s", cfg.TeamID, cfg.Season), cfg)
	if err != nil {
		return err
	}
	if rs.Len() > 0 {
		if err := outwriter.PrintRecordTable(os.Stdout, rs, gameLogColumns, summaryLimit, cfg); err != nil {
			return err
		}
	}
	return outwriter.PrintSavedSummary(os.Stdout, rs.Len(), path)
}

// ExecuteStandings fetches the league standings and exports them.
func ExecuteStandings(ctx context.Context, cfg *contract.Config, stats contract.StatsProvider) error {
	fmt.Printf("Fetching standings for %s season...\n", cfg.Season)

	rs, err := stats.Standings(ctx, cfg.Season)
	if err != nil {
		return err
	}

	path, err := outwriter.WriteRecordSet(rs, fmt.Sprintf("standings_%s", cfg.Season), cfg)
	if err != nil {
		return err
	}
	if rs.Len() > 0 {
		if err := outwriter.PrintRecordTable(os.Stdout, rs, standingColumns, 0, cfg); err != nil {
			return err
		}
	}
	return outwriter.PrintSavedSummary(os.Stdout, rs.Len(), path)
}

// ExecutePlayerTotals fetches season totals for every player, keeps those
// above the minutes threshold sorted by minutes, and exports the result.
func ExecutePlayerTotals(ctx context.Context, cfg *contract.Config, stats contract.StatsProvider) error {
	fmt.Printf("Fetching player totals for %s season...\n", cfg.Season)
	fmt.Printf("Filter: players with at least %.1f total minutes played\n", cfg.MinMinutes)

	rs, err := stats.PlayerTotals(ctx, cfg.Season)
	if err != nil {
		return err
	}
	fetched := rs.Len()

	filtered := FilterByMinutes(rs, MinutesColumn, cfg.MinMinutes)
	fmt.Printf("Filtered %d of %d players\n", filtered.Len(), fetched)

	name := fmt.Sprintf("player_totals_%s_min%dmins", cfg.Season, int(cfg.MinMinutes))
	path, err := outwriter.WriteRecordSet(filtered, name, cfg)
	if err != nil {
		return err
	}

	if filtered.Len() > 0 {
		fmt.Printf("Top %d players by minutes played:\n", summaryLimit)
		if err := outwriter.PrintRecordTable(os.Stdout, filtered, totalsColumns, summaryLimit, cfg); err != nil {
			return err
		}
	}
	return outwriter.PrintSavedSummary(os.Stdout, filtered.Len(), path)
}

// ExecuteSearchPlayers looks up players by name fragment and prints the
// matches. Nothing is exported; the subcommand exists to find player ids.
func ExecuteSearchPlayers(ctx context.Context, cfg *contract.Config, stats contract.StatsProvider) error {
	rs, err := stats.SearchPlayers(ctx, cfg.Season, cfg.PlayerName)
	if err != nil {
		return err
	}

	if rs.Len() == 0 {
		msg := fmt.Sprintf("No players found matching %q", cfg.PlayerName)
		if cfg.UseColors {
			msg = contract.NoteColor.Sprint(msg)
		}
		fmt.Println(msg)
		return nil
	}
	fmt.Printf("Found %d player(s):\n", rs.Len())
	return outwriter.PrintRecordTable(os.Stdout, rs, playerColumns, 0, cfg)
}

// ExecuteListTeams prints the static franchise registry with ids and
// abbreviations.
func ExecuteListTeams(cfg *contract.Config) error {
	return outwriter.PrintTeamsTable(os.Stdout, cfg)
}

// ExecuteBoxscoreDate fetches one day's boxscore document and exports it
// verbatim.
func ExecuteBoxscoreDate(ctx context.Context, cfg *contract.Config, box contract.BoxscoreProvider) error {
	dateStr := cfg.Date.Format(contract.DateFormat)
	fmt.Printf("Fetching boxscores for %s...\n", dateStr)

	doc, err := box.FetchDaily(ctx, cfg.Date)
	if err != nil {
		return err
	}

	path, err := outwriter.WriteDocument(doc, fmt.Sprintf("boxscores_%s", dateStr), cfg)
	if err != nil {
		return err
	}
	_, err = fmt.Printf("Saved %d bytes to %s\n", len(doc), path)
	return err
}

// ExecuteBoxscoreRange fetches boxscores across a date range and exports
// the batch. Per-date failures are recorded in the batch, so a partially
// failed range still succeeds.
func ExecuteBoxscoreRange(ctx context.Context, cfg *contract.Config, box contract.BoxscoreProvider) error {
	startStr := cfg.StartDate.Format(contract.DateFormat)
	endStr := cfg.EndDate.Format(contract.DateFormat)
	fmt.Printf("Fetching boxscores from %s to %s...\n", startStr, endStr)

	results, err := box.FetchRange(ctx, cfg.StartDate, cfg.EndDate)
	if err != nil {
		return err
	}

	if err := outwriter.PrintDateResultsTable(os.Stdout, results, cfg); err != nil {
		return err
	}

	path, err := outwriter.WriteDateResults(results, fmt.Sprintf("boxscores_%s_%s", startStr, endStr), cfg)
	if err != nil {
		return err
	}
	_, err = fmt.Printf("Saved batch to %s\n", path)
	return err
}
