package riot

import (
	"fmt"
	"hash/fnv"
	"sync"
	"time"
)

// mockState backs the keyless fallback for the League operations. It is
// instance-scoped on the client — never package-level — and tracks when its
// reference timestamp was last refreshed so repeated calls within the TTL
// produce identical payloads.
type mockState struct {
	ttl time.Duration

	mu          sync.Mutex
	refreshedAt time.Time
}

func newMockState(ttl time.Duration) *mockState {
	return &mockState{ttl: ttl, refreshedAt: time.Now()}
}

// now returns the state's reference timestamp, refreshing it once the TTL
// elapses. Payload timestamps derive from this value, not the wall clock, so
// identical requests stay byte-identical between refreshes.
func (m *mockState) now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	if time.Since(m.refreshedAt) > m.ttl {
		m.refreshedAt = time.Now()
	}
	return m.refreshedAt
}

// seed hashes an identifier into a stable non-negative value.
func seed(s string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return h.Sum64()
}

func (m *mockState) summoner(name string) *Summoner {
	s := seed(name)
	return &Summoner{
		ID:            "mock-summoner-" + name,
		AccountID:     "mock-account-" + name,
		PUUID:         "mock-puuid-" + name,
		Name:          name,
		ProfileIconID: 4000 + int(s%1000),
		RevisionDate:  m.now().UnixMilli(),
		SummonerLevel: 30 + int(s%300),
	}
}

func (m *mockState) rankedSolo(summonerID string) *LeagueEntry {
	s := seed(summonerID)
	tiers := []string{"SILVER", "GOLD", "PLATINUM", "DIAMOND"}
	ranks := []string{"I", "II", "III", "IV"}
	wins := 40 + int(s%60)
	return &LeagueEntry{
		QueueType:    queueRankedSolo,
		Tier:         tiers[s%uint64(len(tiers))],
		Rank:         ranks[(s/7)%uint64(len(ranks))],
		SummonerID:   summonerID,
		Wins:         wins,
		Losses:       30 + int((s/11)%50),
		LeaguePoints: int(s % 100),
		HotStreak:    s%2 == 0,
	}
}

func (m *mockState) mastery(summonerID string, limit int) []MasteryEntry {
	s := seed(summonerID)
	base := m.now().UnixMilli()
	entries := []MasteryEntry{
		{ChampionID: 157, ChampionLevel: 7, ChampionPoints: 200000 + int(s%100000), LastPlayTime: base, ChestGranted: true},
		{ChampionID: 99, ChampionLevel: 6, ChampionPoints: 100000 + int((s/3)%50000), LastPlayTime: base - 86400000, TokensEarned: 2},
		{ChampionID: 412, ChampionLevel: 5, ChampionPoints: 50000 + int((s/5)%30000), LastPlayTime: base - 172800000, ChestGranted: true},
	}
	if limit < len(entries) {
		entries = entries[:limit]
	}
	return entries
}

func (m *mockState) matchIDs(puuid string, count int) []string {
	s := seed(puuid)
	ids := make([]string, count)
	for i := range ids {
		ids[i] = fmt.Sprintf("NA1_%010d", 4000000000+(s+uint64(i)*97)%1000000000)
	}
	return ids
}

var mockRoles = []string{"TOP", "JUNGLE", "MIDDLE", "BOTTOM", "SUPPORT"}

func (m *mockState) match(matchID string) *Match {
	s := seed(matchID)
	match := &Match{}
	match.Metadata.MatchID = matchID
	match.Info.GameCreation = m.now().UnixMilli() - int64(s%48)*3600000
	match.Info.GameDuration = int64(15*60 + s%(30*60))
	match.Info.GameMode = "CLASSIC"
	match.Info.QueueID = 420

	for i := 0; i < 10; i++ {
		p := seed(fmt.Sprintf("%s/%d", matchID, i))
		teamID := 100
		if i >= 5 {
			teamID = 200
		}
		championID := 1 + int(p%160)
		match.Info.Participants = append(match.Info.Participants, Participant{
			PUUID:        fmt.Sprintf("mock-participant-%d", i+1),
			SummonerName: fmt.Sprintf("Player%d", i+1),
			ChampionID:   championID,
			ChampionName: ChampionName(championID),
			TeamID:       teamID,
			Role:         mockRoles[i%len(mockRoles)],
			Win:          teamID == 100,
			Kills:        int(p % 16),
			Deaths:       int((p / 17) % 13),
			Assists:      int((p / 31) % 21),
		})
		match.Metadata.Participants = append(match.Metadata.Participants, fmt.Sprintf("mock-participant-%d", i+1))
	}
	return match
}
