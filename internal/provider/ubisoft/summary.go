package ubisoft

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/playtrack/playtrack-data/internal/provider"
)

// SummaryStats is the flattened R6 stat line the FPS transformer consumes:
// the general counter block plus the current ranked season's MMR and rank
// name.
type SummaryStats struct {
	Level     int    `json:"level"`
	Rank      string `json:"rank"`
	MMR       int    `json:"mmr"`
	Kills     int    `json:"kills"`
	Deaths    int    `json:"deaths"`
	Assists   int    `json:"assists"`
	Headshots int    `json:"headshots"`
	Wins      int    `json:"wins"`
	Losses    int    `json:"losses"`
}

// statsPayload is the slice of the PlayerStats response this service reads.
type statsPayload struct {
	Results map[string]struct {
		General struct {
			Level     int `json:"level"`
			Kills     int `json:"kills"`
			Deaths    int `json:"deaths"`
			Assists   int `json:"assists"`
			Headshots int `json:"headshots"`
			Wins      int `json:"wins"`
			Losses    int `json:"losses"`
		} `json:"general"`
		Ranked struct {
			CurrentSeason struct {
				Rank int `json:"rank"`
				MMR  int `json:"mmr"`
			} `json:"current_season"`
		} `json:"ranked"`
	} `json:"results"`
}

// PlayerSummaryStats fetches and flattens a player's stat line, resolving
// the numeric rank ID to its display name. The profile ID resolved by
// SearchPlayer is reused verbatim.
func (c *Client) PlayerSummaryStats(ctx context.Context, profileID, platform string) (*SummaryStats, error) {
	raw, err := c.PlayerStats(ctx, profileID, platform)
	if err != nil {
		return nil, err
	}

	var payload statsPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, provider.Unavailable(providerName, fmt.Errorf("decode response: %w", err))
	}
	entry, ok := payload.Results[profileID]
	if !ok {
		return nil, provider.NotFound(providerName, "profile has no stats")
	}

	return &SummaryStats{
		Level:     entry.General.Level,
		Rank:      RankInfo(entry.Ranked.CurrentSeason.Rank).Name,
		MMR:       entry.Ranked.CurrentSeason.MMR,
		Kills:     entry.General.Kills,
		Deaths:    entry.General.Deaths,
		Assists:   entry.General.Assists,
		Headshots: entry.General.Headshots,
		Wins:      entry.General.Wins,
		Losses:    entry.General.Losses,
	}, nil
}
