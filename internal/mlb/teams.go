package mlb

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// Team is a club as returned by /teams.
type Team struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	Abbreviation    string `json:"abbreviation"`
	LocationName    string `json:"locationName"`
	FirstYearOfPlay string `json:"firstYearOfPlay"`
	League          League `json:"league"`
	Division        struct {
		Name string `json:"name"`
	} `json:"division"`
	Venue struct {
		Name string `json:"name"`
	} `json:"venue"`
}

type teamsResponse struct {
	Teams []Team `json:"teams"`
}

// Teams fetches all MLB clubs (sportId=1).
func (c *Client) Teams(ctx context.Context) ([]Team, error) {
	params := url.Values{"sportId": {"1"}}
	var resp teamsResponse
	if err := c.get(ctx, "/teams", params, &resp); err != nil {
		return nil, fmt.Errorf("fetch teams: %w", err)
	}
	return resp.Teams, nil
}

// Team fetches a single club by id.
func (c *Client) Team(ctx context.Context, teamID int) (Team, error) {
	var resp teamsResponse
	if err := c.get(ctx, "/teams/"+strconv.Itoa(teamID), nil, &resp); err != nil {
		return Team{}, fmt.Errorf("fetch team %d: %w", teamID, err)
	}
	if len(resp.Teams) == 0 {
		return Team{}, fmt.Errorf("team %d not found", teamID)
	}
	return resp.Teams[0], nil
}

// RosterEntry is one player on a team roster.
type RosterEntry struct {
	Person struct {
		ID       int    `json:"id"`
		FullName string `json:"fullName"`
	} `json:"person"`
	JerseyNumber string `json:"jerseyNumber"`
	Position     struct {
		Name string `json:"name"`
	} `json:"position"`
}

type rosterResponse struct {
	Roster []RosterEntry `json:"roster"`
}

// Roster fetches a team's active roster.
func (c *Client) Roster(ctx context.Context, teamID int) ([]RosterEntry, error) {
	var resp rosterResponse
	if err := c.get(ctx, "/teams/"+strconv.Itoa(teamID)+"/roster", nil, &resp); err != nil {
		return nil, fmt.Errorf("fetch roster %d: %w", teamID, err)
	}
	return resp.Roster, nil
}
