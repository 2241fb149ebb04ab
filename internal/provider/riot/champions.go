package riot

import "fmt"

// championNames maps champion IDs to display names for the champions this
// service renders most often. Data Dragon is the full source of truth; IDs
// missing here fall back to "Champion {id}".
var championNames = map[int]string{
	1:   "Annie",
	11:  "Master Yi",
	25:  "Morgana",
	51:  "Caitlyn",
	55:  "Katarina",
	64:  "Lee Sin",
	67:  "Vayne",
	81:  "Ezreal",
	84:  "Akali",
	86:  "Garen",
	99:  "Lux",
	103: "Ahri",
	117: "Lulu",
	157: "Yasuo",
	202: "Jhin",
	222: "Jinx",
	238: "Zed",
	266: "Aatrox",
	412: "Thresh",
	498: "Xayah",
	555: "Pyke",
	777: "Yone",
	875: "Sett",
	887: "Gwen",
}

// ChampionName resolves a champion ID to its display name.
func ChampionName(id int) string {
	if name, ok := championNames[id]; ok {
		return name
	}
	return fmt.Sprintf("Champion %d", id)
}
