package riot

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
)

const queueRankedSolo = "RANKED_SOLO_5x5"

// Summoner is the summoner-v4 response.
type Summoner struct {
	ID            string `json:"id"`
	AccountID     string `json:"accountId"`
	PUUID         string `json:"puuid"`
	Name          string `json:"name"`
	ProfileIconID int    `json:"profileIconId"`
	RevisionDate  int64  `json:"revisionDate"`
	SummonerLevel int    `json:"summonerLevel"`
}

// LeagueEntry is one queue's entry from league-v4.
type LeagueEntry struct {
	QueueType    string `json:"queueType"`
	Tier         string `json:"tier"`
	Rank         string `json:"rank"`
	SummonerID   string `json:"summonerId"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
	LeaguePoints int    `json:"leaguePoints"`
	Veteran      bool   `json:"veteran"`
	Inactive     bool   `json:"inactive"`
	FreshBlood   bool   `json:"freshBlood"`
	HotStreak    bool   `json:"hotStreak"`
}

// MasteryEntry is one champion's mastery from champion-mastery-v4.
type MasteryEntry struct {
	ChampionID     int   `json:"championId"`
	ChampionLevel  int   `json:"championLevel"`
	ChampionPoints int   `json:"championPoints"`
	LastPlayTime   int64 `json:"lastPlayTime"`
	ChestGranted   bool  `json:"chestGranted"`
	TokensEarned   int   `json:"tokensEarned"`
}

// Match is the match-v5 response, reduced to the fields this service reads.
type Match struct {
	Metadata struct {
		MatchID      string   `json:"matchId"`
		Participants []string `json:"participants"`
	} `json:"metadata"`
	Info struct {
		GameCreation int64         `json:"gameCreation"`
		GameDuration int64         `json:"gameDuration"`
		GameMode     string        `json:"gameMode"`
		QueueID      int           `json:"queueId"`
		Participants []Participant `json:"participants"`
	} `json:"info"`
}

// Participant is one player's line within a match.
type Participant struct {
	PUUID        string `json:"puuid"`
	SummonerName string `json:"summonerName"`
	ChampionID   int    `json:"championId"`
	ChampionName string `json:"championName"`
	TeamID       int    `json:"teamId"`
	Role         string `json:"role"`
	Win          bool   `json:"win"`
	Kills        int    `json:"kills"`
	Deaths       int    `json:"deaths"`
	Assists      int    `json:"assists"`
}

// SummonerByName resolves a summoner by display name on a platform region.
func (c *Client) SummonerByName(ctx context.Context, region, name string) (*Summoner, error) {
	if !validPlatform(region) {
		return nil, invalidRegion(region)
	}
	if c.mock != nil {
		return c.mock.summoner(name), nil
	}

	raw, err := c.get(ctx, region, "/lol/summoner/v4/summoners/by-name/"+url.PathEscape(name), nil, dataTimeout)
	if err != nil {
		return nil, err
	}
	var s Summoner
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, decodeError(err)
	}
	return &s, nil
}

// RankedSolo returns the summoner's solo-queue entry. Summoners without a
// solo-queue placement get the UNRANKED default shape rather than an error.
func (c *Client) RankedSolo(ctx context.Context, region, summonerID string) (*LeagueEntry, error) {
	if !validPlatform(region) {
		return nil, invalidRegion(region)
	}
	if c.mock != nil {
		return c.mock.rankedSolo(summonerID), nil
	}

	raw, err := c.get(ctx, region, "/lol/league/v4/entries/by-summoner/"+url.PathEscape(summonerID), nil, dataTimeout)
	if err != nil {
		return nil, err
	}
	var entries []LeagueEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, decodeError(err)
	}
	for i := range entries {
		if entries[i].QueueType == queueRankedSolo {
			return &entries[i], nil
		}
	}
	return unrankedEntry(summonerID), nil
}

func unrankedEntry(summonerID string) *LeagueEntry {
	return &LeagueEntry{
		QueueType:  queueRankedSolo,
		Tier:       "UNRANKED",
		SummonerID: summonerID,
	}
}

// ChampionMastery returns the summoner's top mastery entries, ordered by
// points descending, trimmed to limit.
func (c *Client) ChampionMastery(ctx context.Context, region, summonerID string, limit int) ([]MasteryEntry, error) {
	if !validPlatform(region) {
		return nil, invalidRegion(region)
	}
	if limit <= 0 {
		limit = 3
	}
	if c.mock != nil {
		return c.mock.mastery(summonerID, limit), nil
	}

	raw, err := c.get(ctx, region, "/lol/champion-mastery/v4/champion-masteries/by-summoner/"+url.PathEscape(summonerID), nil, dataTimeout)
	if err != nil {
		return nil, err
	}
	var entries []MasteryEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, decodeError(err)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].ChampionPoints > entries[j].ChampionPoints
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// MatchIDsByPUUID returns recent match IDs. Match history lives on the
// continent routing hosts, not the platform hosts.
func (c *Client) MatchIDsByPUUID(ctx context.Context, routing, puuid string, count int) ([]string, error) {
	if !validRouting(routing) {
		return nil, invalidRouting(routing)
	}
	if count <= 0 {
		count = 10
	}
	if c.mock != nil {
		return c.mock.matchIDs(puuid, count), nil
	}

	params := url.Values{"count": []string{fmt.Sprint(count)}}
	raw, err := c.get(ctx, routing, "/lol/match/v5/matches/by-puuid/"+url.PathEscape(puuid)+"/ids", params, dataTimeout)
	if err != nil {
		return nil, err
	}
	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, decodeError(err)
	}
	return ids, nil
}

// MatchByID fetches full detail for a known match. NotFound here propagates;
// a match ID taken from a match list is expected to exist.
func (c *Client) MatchByID(ctx context.Context, routing, matchID string) (*Match, error) {
	if !validRouting(routing) {
		return nil, invalidRouting(routing)
	}
	if c.mock != nil {
		return c.mock.match(matchID), nil
	}

	raw, err := c.get(ctx, routing, "/lol/match/v5/matches/"+url.PathEscape(matchID), nil, dataTimeout)
	if err != nil {
		return nil, err
	}
	var m Match
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, decodeError(err)
	}
	return &m, nil
}
