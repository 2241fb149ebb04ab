package transform

import (
	"encoding/json"
	"fmt"

	"github.com/playtrack/playtrack-data/internal/provider/riot"
	"github.com/playtrack/playtrack-data/internal/provider/ubisoft"
)

// ByGameAndCategory routes a raw payload through the transform registered
// for the (game, category) pair. The set of pairs is finite and enumerated
// here — an unregistered pair fails with UnsupportedTransformError, never a
// lookup miss at runtime.
//
// The raw payload is decoded leniently: unknown fields are ignored and
// missing fields stay unset.
func ByGameAndCategory(game string, category Category, raw json.RawMessage) (any, error) {
	switch {
	case game == GameLeagueOfLegends && category == CategoryMOBA:
		var p riot.Profile
		if err := decode(raw, &p); err != nil {
			return nil, err
		}
		return RiotLoLToMOBA(&p), nil

	case game == GameRainbowSix && category == CategoryFPS:
		var s ubisoft.SummaryStats
		if err := decode(raw, &s); err != nil {
			return nil, err
		}
		return UbisoftR6ToFPS(&s), nil

	case game == GameWorldOfWarcraft && category == CategoryRPG:
		var c WoWCharacter
		if err := decode(raw, &c); err != nil {
			return nil, err
		}
		return BlizzardWoWToRPG(&c), nil

	default:
		return nil, &UnsupportedTransformError{Game: game, Category: category}
	}
}

func decode(raw json.RawMessage, v any) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}
	return nil
}

// Supported lists the games with a registered transform per category.
func Supported() map[Category][]string {
	return map[Category][]string{
		CategoryMOBA: {GameLeagueOfLegends},
		CategoryFPS:  {GameRainbowSix},
		CategoryRPG:  {GameWorldOfWarcraft},
	}
}
