package ubisoft

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
)

// Placeholder payloads mirror the shapes the live endpoints return. Counter
// values derive from a hash of the profile ID so repeated calls are
// deterministic.

func seed(s string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return h.Sum64()
}

func placeholderSearch(username, platform string) json.RawMessage {
	s := seed(username)
	profileID := fmt.Sprintf("%08x-0000-4000-8000-%012x", uint32(s), s&0xffffffffffff)
	payload := map[string]any{
		"profiles": []map[string]any{{
			"profileId":      profileID,
			"userId":         profileID,
			"platformType":   platform,
			"idOnPlatform":   username,
			"nameOnPlatform": username,
		}},
	}
	raw, _ := json.Marshal(payload)
	return raw
}

// generalStats builds the flat counter block shared by the stats payloads.
func generalStats(profileID string) map[string]any {
	s := seed(profileID)
	kills := 8000 + int(s%8000)
	deaths := 6000 + int((s/3)%5000)
	wins := 150 + int((s/7)%200)
	losses := 120 + int((s/11)%150)
	return map[string]any{
		"level":          100 + int(s%200),
		"xp":             int(s % 500000),
		"playtime":       500000 + int(s%800000),
		"kills":          kills,
		"deaths":         deaths,
		"assists":        2000 + int((s/13)%3000),
		"wins":           wins,
		"losses":         losses,
		"matches_played": wins + losses,
		"headshots":      kills * 38 / 100,
		"melee_kills":    int(s % 80),
		"revives":        int((s / 17) % 200),
	}
}

func rankedBlock(profileID string) map[string]any {
	s := seed(profileID)
	rankID := 10 + int(s%18) // Bronze I .. Diamond-ish
	return map[string]any{
		"season_id": 28,
		"rank":      rankID,
		"mmr":       2200 + int(s%2000),
		"wins":      40 + int((s/5)%60),
		"losses":    30 + int((s/9)%50),
		"abandons":  int(s % 4),
		"max_rank":  rankID + 1,
		"max_mmr":   2400 + int(s%2000),
	}
}

func placeholderStats(profileID string) json.RawMessage {
	payload := map[string]any{
		"results": map[string]any{
			profileID: map[string]any{
				"general": generalStats(profileID),
				"ranked": map[string]any{
					"current_season": rankedBlock(profileID),
				},
			},
		},
	}
	raw, _ := json.Marshal(payload)
	return raw
}

func placeholderSeasonal(profileID string, seasonID int) json.RawMessage {
	if seasonID <= 0 {
		seasonID = 28
	}
	ranked := rankedBlock(profileID)
	wins := ranked["wins"].(int)
	losses := ranked["losses"].(int)
	payload := map[string]any{
		"season_id":   seasonID,
		"season_name": fmt.Sprintf("Season %d", seasonID),
		"stats": map[string]any{
			"ranked": map[string]any{
				"rank":     ranked["rank"],
				"mmr":      ranked["mmr"],
				"wins":     wins,
				"losses":   losses,
				"win_rate": float64(wins) / float64(max(1, wins+losses)),
			},
		},
	}
	raw, _ := json.Marshal(payload)
	return raw
}

func placeholderOperators(profileID string) json.RawMessage {
	op := func(name string) map[string]any {
		p := seed(fmt.Sprintf("%s/%s", profileID, name))
		kills := 200 + int(p%500)
		deaths := 100 + int((p/3)%400)
		wins := 80 + int((p/5)%300)
		losses := 60 + int((p/7)%200)
		return map[string]any{
			"name":          name,
			"playtime":      30000 + int(p%40000),
			"rounds_played": wins + losses,
			"wins":          wins,
			"losses":        losses,
			"kills":         kills,
			"deaths":        deaths,
			"kd_ratio":      float64(kills) / float64(max(1, deaths)),
			"win_rate":      float64(wins) / float64(max(1, wins+losses)),
		}
	}
	payload := map[string]any{
		"attackers": []map[string]any{op("Ash"), op("Thermite")},
		"defenders": []map[string]any{op("Jäger"), op("Bandit")},
	}
	raw, _ := json.Marshal(payload)
	return raw
}
