// Package transform converts raw provider payloads into the standardized
// per-category stat schemas (MOBA, FPS, RPG) served to clients.
//
// Transforms are pure functions: no I/O, and every input field is optional —
// a missing field leaves the corresponding output unset instead of failing.
// Derived rate fields (win rate, KD, headshot percentage) are always
// computed here, never passed through raw, and guard their denominators.
package transform

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/playtrack/playtrack-data/internal/provider/riot"
	"github.com/playtrack/playtrack-data/internal/provider/ubisoft"
)

// Category identifies a standardized stats schema.
type Category string

const (
	CategoryMOBA Category = "MOBA"
	CategoryFPS  Category = "FPS"
	CategoryRPG  Category = "RPG"
)

// Game names with registered transforms.
const (
	GameLeagueOfLegends = "League of Legends"
	GameRainbowSix      = "Rainbow Six Siege"
	GameWorldOfWarcraft = "World of Warcraft"
)

// UnsupportedTransformError reports a (game, category) pair with no
// registered transform.
type UnsupportedTransformError struct {
	Game     string
	Category Category
}

func (e *UnsupportedTransformError) Error() string {
	return fmt.Sprintf("no transform registered for %s (%s)", e.Game, e.Category)
}

// MOBAStats is the standardized MOBA schema. Absent fields mean "unavailable
// from this provider", not an error.
type MOBAStats struct {
	PlayerLevel       *int     `json:"player_level,omitempty"`
	CurrentRank       *string  `json:"current_rank,omitempty"`
	RankTier          *string  `json:"rank_tier,omitempty"`
	RankDivision      *string  `json:"rank_division,omitempty"`
	Wins              *int     `json:"wins,omitempty"`
	Losses            *int     `json:"losses,omitempty"`
	WinRate           *float64 `json:"win_rate,omitempty"`
	MainRole          *string  `json:"main_role,omitempty"`
	FavoriteChampions []string `json:"favorite_champions,omitempty"`
	TotalGames        *int     `json:"total_games,omitempty"`
	AverageKDA        *float64 `json:"average_kda,omitempty"`
}

// FPSStats is the standardized FPS schema.
type FPSStats struct {
	PlayerLevel        *int     `json:"player_level,omitempty"`
	CurrentRank        *string  `json:"current_rank,omitempty"`
	RankMMR            *int     `json:"rank_mmr,omitempty"`
	Kills              *int     `json:"kills,omitempty"`
	Deaths             *int     `json:"deaths,omitempty"`
	Assists            *int     `json:"assists,omitempty"`
	KDRatio            *float64 `json:"kd_ratio,omitempty"`
	HeadshotPercentage *float64 `json:"headshot_percentage,omitempty"`
	Wins               *int     `json:"wins,omitempty"`
	Losses             *int     `json:"losses,omitempty"`
	TotalMatches       *int     `json:"total_matches,omitempty"`
	FavoriteOperators  []string `json:"favorite_operators,omitempty"`
}

// RPGStats is the standardized RPG schema.
type RPGStats struct {
	CharacterLevel     *int     `json:"character_level,omitempty"`
	CharacterClass     *string  `json:"character_class,omitempty"`
	GuildName          *string  `json:"guild_name,omitempty"`
	AchievementsCount  *int     `json:"achievements_count,omitempty"`
	TotalPlaytimeHours *float64 `json:"total_playtime_hours,omitempty"`
	EquipmentScore     *int     `json:"equipment_score,omitempty"`
}

func ptr[T any](v T) *T { return &v }

const favoriteChampionCount = 3

// RiotLoLToMOBA maps the combined League profile onto the MOBA schema.
// Rate fields are always present (0 when there is nothing to divide).
func RiotLoLToMOBA(p *riot.Profile) MOBAStats {
	var out MOBAStats
	if p == nil {
		out.WinRate = ptr(0.0)
		return out
	}

	if p.Summoner != nil {
		out.PlayerLevel = ptr(p.Summoner.SummonerLevel)
	}

	var wins, losses int
	if p.Ranked != nil {
		wins, losses = p.Ranked.Wins, p.Ranked.Losses
		if rank := strings.TrimSpace(p.Ranked.Tier + " " + p.Ranked.Rank); rank != "" {
			out.CurrentRank = ptr(rank)
		}
		if p.Ranked.Tier != "" {
			out.RankTier = ptr(p.Ranked.Tier)
		}
		if p.Ranked.Rank != "" {
			out.RankDivision = ptr(p.Ranked.Rank)
		}
	}
	out.Wins = ptr(wins)
	out.Losses = ptr(losses)
	out.TotalGames = ptr(wins + losses)

	winRate := 0.0
	if total := wins + losses; total > 0 {
		winRate = float64(wins) / float64(total) * 100
	}
	out.WinRate = ptr(winRate)

	out.FavoriteChampions = favoriteChampions(p.Mastery)

	if kda, ok := averageKDA(p.RecentMatches); ok {
		out.AverageKDA = ptr(kda)
	}
	if role, ok := mainRole(p.RecentMatches); ok {
		out.MainRole = ptr(role)
	}
	return out
}

// favoriteChampions picks the top mastery entries by points descending,
// independent of input order, and resolves them to display names.
func favoriteChampions(mastery []riot.MasteryEntry) []string {
	if len(mastery) == 0 {
		return nil
	}
	sorted := make([]riot.MasteryEntry, len(mastery))
	copy(sorted, mastery)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ChampionPoints > sorted[j].ChampionPoints
	})
	if len(sorted) > favoriteChampionCount {
		sorted = sorted[:favoriteChampionCount]
	}
	names := make([]string, len(sorted))
	for i, m := range sorted {
		names[i] = riot.ChampionName(m.ChampionID)
	}
	return names
}

// averageKDA computes (mean kills + mean assists) / max(1, mean deaths)
// across the supplied matches, rounded to two decimals.
func averageKDA(matches []riot.MatchSummary) (float64, bool) {
	if len(matches) == 0 {
		return 0, false
	}
	var kills, deaths, assists int
	for _, m := range matches {
		kills += m.Kills
		deaths += m.Deaths
		assists += m.Assists
	}
	n := float64(len(matches))
	meanDeaths := float64(deaths) / n
	if meanDeaths < 1 {
		meanDeaths = 1
	}
	kda := (float64(kills)/n + float64(assists)/n) / meanDeaths
	return math.Round(kda*100) / 100, true
}

// mainRole returns the most frequent role; ties break to the role seen
// first in iteration order.
func mainRole(matches []riot.MatchSummary) (string, bool) {
	counts := make(map[string]int)
	best, bestCount := "", 0
	for _, m := range matches {
		role := m.Role
		if role == "" {
			role = "UNKNOWN"
		}
		counts[role]++
		if counts[role] > bestCount {
			best, bestCount = role, counts[role]
		}
	}
	if bestCount == 0 {
		return "", false
	}
	return best, true
}

// UbisoftR6ToFPS maps the flattened R6 stat line onto the FPS schema.
//
// The headshot percentage divides by kills+deaths rather than shots fired;
// the stat feed carries no shot counts. Clients depend on the current
// values, so the formula must stay put.
func UbisoftR6ToFPS(s *ubisoft.SummaryStats) FPSStats {
	var out FPSStats
	if s == nil {
		out.KDRatio = ptr(0.0)
		out.HeadshotPercentage = ptr(0.0)
		return out
	}

	out.PlayerLevel = ptr(s.Level)
	if s.Rank != "" {
		out.CurrentRank = ptr(s.Rank)
	}
	out.RankMMR = ptr(s.MMR)
	out.Kills = ptr(s.Kills)
	out.Deaths = ptr(s.Deaths)
	out.Assists = ptr(s.Assists)
	out.Wins = ptr(s.Wins)
	out.Losses = ptr(s.Losses)
	out.TotalMatches = ptr(s.Wins + s.Losses)

	deaths := s.Deaths
	if deaths < 1 {
		deaths = 1
	}
	out.KDRatio = ptr(float64(s.Kills) / float64(deaths))

	engagements := s.Kills + s.Deaths
	if engagements < 1 {
		engagements = 1
	}
	out.HeadshotPercentage = ptr(float64(s.Headshots) / float64(engagements) * 100)

	return out
}

// WoWCharacter is the Blizzard character payload slice the RPG transform
// reads. Pointer fields distinguish absent from zero.
type WoWCharacter struct {
	Level          *int    `json:"level"`
	CharacterClass *string `json:"character_class"`
	Guild          *struct {
		Name string `json:"name"`
	} `json:"guild"`
	AchievementsCount *int `json:"achievements_count"`
	PlaytimeSeconds   *int `json:"playtime_seconds"`
	ItemLevel         *int `json:"item_level"`
}

// BlizzardWoWToRPG maps a WoW character payload onto the RPG schema.
func BlizzardWoWToRPG(c *WoWCharacter) RPGStats {
	var out RPGStats
	if c == nil {
		return out
	}
	out.CharacterLevel = c.Level
	out.CharacterClass = c.CharacterClass
	if c.Guild != nil && c.Guild.Name != "" {
		out.GuildName = ptr(c.Guild.Name)
	}
	out.AchievementsCount = c.AchievementsCount
	if c.PlaytimeSeconds != nil {
		out.TotalPlaytimeHours = ptr(float64(*c.PlaytimeSeconds) / 3600)
	}
	out.EquipmentScore = c.ItemLevel
	return out
}
