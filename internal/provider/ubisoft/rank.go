package ubisoft

// RankMeta describes one competitive rank tier.
type RankMeta struct {
	Name     string `json:"name"`
	Tier     string `json:"tier"`
	Division int    `json:"division"`
}

// rankTable maps Ubisoft rank IDs to display metadata. IDs between the
// listed boundaries interpolate within the tier (rank 3 = Copper III).
var rankTable = map[int]RankMeta{
	0:  {Name: "Unranked", Tier: "Unranked", Division: 0},
	1:  {Name: "Copper V", Tier: "Copper", Division: 5},
	5:  {Name: "Copper I", Tier: "Copper", Division: 1},
	6:  {Name: "Bronze V", Tier: "Bronze", Division: 5},
	10: {Name: "Bronze I", Tier: "Bronze", Division: 1},
	11: {Name: "Silver V", Tier: "Silver", Division: 5},
	15: {Name: "Silver I", Tier: "Silver", Division: 1},
	16: {Name: "Gold V", Tier: "Gold", Division: 5},
	20: {Name: "Gold I", Tier: "Gold", Division: 1},
	21: {Name: "Platinum V", Tier: "Platinum", Division: 5},
	25: {Name: "Platinum I", Tier: "Platinum", Division: 1},
	26: {Name: "Diamond V", Tier: "Diamond", Division: 5},
	30: {Name: "Diamond I", Tier: "Diamond", Division: 1},
	31: {Name: "Champion", Tier: "Champion", Division: 1},
}

// tierBounds lists the first and last rank ID of each tier, low to high.
var tierBounds = []struct {
	lo, hi int
	tier   string
}{
	{1, 5, "Copper"},
	{6, 10, "Bronze"},
	{11, 15, "Silver"},
	{16, 20, "Gold"},
	{21, 25, "Platinum"},
	{26, 30, "Diamond"},
}

var romanDivisions = [...]string{"V", "IV", "III", "II", "I"}

// RankInfo resolves a Ubisoft rank ID to its display metadata. Unknown IDs
// resolve to an explicit Unknown value rather than an error.
func RankInfo(rankID int) RankMeta {
	if meta, ok := rankTable[rankID]; ok {
		return meta
	}
	for _, b := range tierBounds {
		if rankID >= b.lo && rankID <= b.hi {
			idx := rankID - b.lo
			return RankMeta{
				Name:     b.tier + " " + romanDivisions[idx],
				Tier:     b.tier,
				Division: 5 - idx,
			}
		}
	}
	return RankMeta{Name: "Unknown", Tier: "Unknown", Division: 0}
}
