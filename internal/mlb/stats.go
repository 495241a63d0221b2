package mlb

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// Stat groups understood by the Stats API.
const (
	GroupHitting  = "hitting"
	GroupPitching = "pitching"
	GroupFielding = "fielding"
)

// StatLine is one split's stat object. Upstream mixes numbers and
// formatted strings ("0.297", "3.21") and omits anything not applicable,
// so values stay untyped until rendered.
type StatLine map[string]interface{}

// String renders the named stat as display text, tolerating number and
// string encodings. Missing stats render as "0", matching how the
// dashboards treat absent values.
func (s StatLine) String(key string) string {
	v, ok := s[key]
	if !ok || v == nil {
		return "0"
	}
	switch t := v.(type) {
	case string:
		if t == "" {
			return "0"
		}
		return t
	case float64:
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

type statsResponse struct {
	Stats []struct {
		Group struct {
			DisplayName string `json:"displayName"`
		} `json:"group"`
		Splits []struct {
			Season string   `json:"season"`
			Stat   StatLine `json:"stat"`
		} `json:"splits"`
	} `json:"stats"`
}

// PlayerStats fetches a player's current-season stat line for a group.
// Players with no splits for the group (a pitcher's hitting line, say)
// return an empty StatLine, not an error.
func (c *Client) PlayerStats(ctx context.Context, playerID int, group string) (StatLine, error) {
	path := "/people/" + strconv.Itoa(playerID) + "/stats"
	return c.seasonStats(ctx, path, group)
}

// TeamStats fetches a team's current-season stat line for a group.
func (c *Client) TeamStats(ctx context.Context, teamID int, group string) (StatLine, error) {
	path := "/teams/" + strconv.Itoa(teamID) + "/stats"
	return c.seasonStats(ctx, path, group)
}

func (c *Client) seasonStats(ctx context.Context, path, group string) (StatLine, error) {
	params := url.Values{"stats": {"season"}, "group": {group}}
	var resp statsResponse
	if err := c.get(ctx, path, params, &resp); err != nil {
		return nil, fmt.Errorf("fetch %s stats: %w", group, err)
	}
	for _, st := range resp.Stats {
		for _, split := range st.Splits {
			if split.Stat != nil {
				return split.Stat, nil
			}
		}
	}
	return StatLine{}, nil
}
