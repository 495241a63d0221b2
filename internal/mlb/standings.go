package mlb

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strconv"
)

// League identifiers used by the Stats API.
const (
	AmericanLeagueID = 103
	NationalLeagueID = 104
)

// League is a league reference as embedded in standings records.
type League struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// TeamRef is a team reference as embedded in standings and stat responses.
type TeamRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// TeamRecord is one team's line in a standings table.
type TeamRecord struct {
	Team              TeamRef `json:"team"`
	Wins              int     `json:"wins"`
	Losses            int     `json:"losses"`
	WinningPercentage string  `json:"winningPercentage"`
	GamesBack         string  `json:"gamesBack"`
	DivisionRank      string  `json:"divisionRank"`
	LeagueRank        string  `json:"leagueRank"`
	RunsScored        int     `json:"runsScored"`
	RunsAllowed       int     `json:"runsAllowed"`
	StreakCode        string  `json:"-"`
}

// StandingsRecord is one division's standings.
type StandingsRecord struct {
	League      League       `json:"league"`
	Division    struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"division"`
	TeamRecords []TeamRecord `json:"teamRecords"`
}

type standingsResponse struct {
	Records []StandingsRecord `json:"records"`
}

// Standings fetches standings for a league (103 = AL, 104 = NL).
func (c *Client) Standings(ctx context.Context, leagueID int) ([]StandingsRecord, error) {
	params := url.Values{"leagueId": {strconv.Itoa(leagueID)}}
	var resp standingsResponse
	if err := c.get(ctx, "/standings", params, &resp); err != nil {
		return nil, fmt.Errorf("fetch standings: %w", err)
	}
	return resp.Records, nil
}

// LeagueTable flattens division records into a single table sorted by
// winning percentage, best first.
func LeagueTable(records []StandingsRecord) []TeamRecord {
	var table []TeamRecord
	for _, rec := range records {
		table = append(table, rec.TeamRecords...)
	}
	sort.SliceStable(table, func(i, j int) bool {
		return pct(table[i].WinningPercentage) > pct(table[j].WinningPercentage)
	})
	return table
}

func pct(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
