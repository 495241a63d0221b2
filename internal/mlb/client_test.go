package mlb_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albapepper/moneyball/internal/mlb"
)

func fixtureClient(t *testing.T, handler http.HandlerFunc) *mlb.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return mlb.NewClient(srv.URL, 6000, nil)
}

const standingsFixture = `{
  "records": [
    {
      "league": {"id": 103, "name": "American League"},
      "division": {"id": 201, "name": "American League East"},
      "teamRecords": [
        {"team": {"id": 147, "name": "New York Yankees"}, "wins": 50, "losses": 30, "winningPercentage": ".625", "gamesBack": "-"},
        {"team": {"id": 111, "name": "Boston Red Sox"}, "wins": 45, "losses": 35, "winningPercentage": ".563", "gamesBack": "5.0"}
      ]
    },
    {
      "league": {"id": 103, "name": "American League"},
      "division": {"id": 202, "name": "American League West"},
      "teamRecords": [
        {"team": {"id": 117, "name": "Houston Astros"}, "wins": 52, "losses": 28, "winningPercentage": ".650", "gamesBack": "-"}
      ]
    }
  ]
}`

func TestStandings(t *testing.T) {
	c := fixtureClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/standings", r.URL.Path)
		assert.Equal(t, "103", r.URL.Query().Get("leagueId"))
		w.Write([]byte(standingsFixture))
	})

	records, err := c.Standings(context.Background(), mlb.AmericanLeagueID)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "American League East", records[0].Division.Name)
	assert.Equal(t, 147, records[0].TeamRecords[0].Team.ID)
	assert.Equal(t, 50, records[0].TeamRecords[0].Wins)
}

func TestLeagueTable(t *testing.T) {
	c := fixtureClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(standingsFixture))
	})

	records, err := c.Standings(context.Background(), mlb.AmericanLeagueID)
	require.NoError(t, err)

	table := mlb.LeagueTable(records)
	require.Len(t, table, 3)
	// Divisions flattened, best winning percentage first.
	assert.Equal(t, "Houston Astros", table[0].Team.Name)
	assert.Equal(t, "New York Yankees", table[1].Team.Name)
	assert.Equal(t, "Boston Red Sox", table[2].Team.Name)
}

func TestLeagueTableEmpty(t *testing.T) {
	assert.Empty(t, mlb.LeagueTable(nil))
}

func TestPlayerStats(t *testing.T) {
	c := fixtureClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/people/660271/stats", r.URL.Path)
		assert.Equal(t, "season", r.URL.Query().Get("stats"))
		assert.Equal(t, "hitting", r.URL.Query().Get("group"))
		w.Write([]byte(`{"stats":[{"group":{"displayName":"hitting"},"splits":[
			{"season":"2026","stat":{"avg":".304","homeRuns":44,"ops":"1.066"}}]}]}`))
	})

	line, err := c.PlayerStats(context.Background(), 660271, mlb.GroupHitting)
	require.NoError(t, err)
	assert.Equal(t, ".304", line.String("avg"))
	assert.Equal(t, "44", line.String("homeRuns"))
}

func TestPlayerStatsNoSplits(t *testing.T) {
	c := fixtureClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"stats":[]}`))
	})

	line, err := c.PlayerStats(context.Background(), 1, mlb.GroupPitching)
	require.NoError(t, err)
	assert.NotNil(t, line)
	assert.Equal(t, "0", line.String("era"))
}

func TestStatLineString(t *testing.T) {
	line := mlb.StatLine{
		"avg":      ".297",
		"homeRuns": float64(31),
		"era":      3.21,
		"note":     "",
		"flag":     true,
	}
	assert.Equal(t, ".297", line.String("avg"))
	assert.Equal(t, "31", line.String("homeRuns"))
	assert.Equal(t, "3.21", line.String("era"))
	assert.Equal(t, "0", line.String("note"))
	assert.Equal(t, "0", line.String("missing"))
	assert.Equal(t, "true", line.String("flag"))
}

func TestGetRawNon200(t *testing.T) {
	c := fixtureClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := c.GetRaw(context.Background(), "/teams", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestGetRawCancelledContext(t *testing.T) {
	c := fixtureClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.GetRaw(ctx, "/teams", nil)
	assert.Error(t, err)
}

func TestTeamsTolerantParsing(t *testing.T) {
	c := fixtureClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1", r.URL.Query().Get("sportId"))
		// Minimal records with most optional fields absent.
		w.Write([]byte(`{"teams":[{"id":119,"name":"Los Angeles Dodgers"},{"id":147}]}`))
	})

	teams, err := c.Teams(context.Background())
	require.NoError(t, err)
	require.Len(t, teams, 2)
	assert.Equal(t, "Los Angeles Dodgers", teams[0].Name)
	assert.Equal(t, 147, teams[1].ID)
	assert.Empty(t, teams[1].Name)
}
