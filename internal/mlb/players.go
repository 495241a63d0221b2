package mlb

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// Player is a person as returned by /people/{id}.
type Player struct {
	ID              int     `json:"id"`
	FullName        string  `json:"fullName"`
	PrimaryNumber   string  `json:"primaryNumber"`
	CurrentAge      int     `json:"currentAge"`
	BirthCity       string  `json:"birthCity"`
	BirthCountry    string  `json:"birthCountry"`
	Height          string  `json:"height"`
	Weight          int     `json:"weight"`
	CurrentTeam     TeamRef `json:"currentTeam"`
	PrimaryPosition struct {
		Name string `json:"name"`
	} `json:"primaryPosition"`
	BatSide struct {
		Description string `json:"description"`
	} `json:"batSide"`
	PitchHand struct {
		Description string `json:"description"`
	} `json:"pitchHand"`
}

type peopleResponse struct {
	People []Player `json:"people"`
}

// Player fetches one person by id.
func (c *Client) Player(ctx context.Context, playerID int) (Player, error) {
	var resp peopleResponse
	if err := c.get(ctx, "/people/"+strconv.Itoa(playerID), nil, &resp); err != nil {
		return Player{}, fmt.Errorf("fetch player %d: %w", playerID, err)
	}
	if len(resp.People) == 0 {
		return Player{}, fmt.Errorf("player %d not found", playerID)
	}
	return resp.People[0], nil
}

// PlayerSearch looks people up by name.
func (c *Client) PlayerSearch(ctx context.Context, name string) ([]Player, error) {
	params := url.Values{"names": {name}, "sportId": {"1"}}
	var resp peopleResponse
	if err := c.get(ctx, "/people/search", params, &resp); err != nil {
		return nil, fmt.Errorf("search players: %w", err)
	}
	return resp.People, nil
}
