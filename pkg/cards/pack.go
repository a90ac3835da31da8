package cards

import (
	"fmt"

	"github.com/fadedpez/cardkit/pkg/types"
)

// PackSize is the number of cards in one pack
const PackSize = 52

// MaxPacks is the largest number of packs NewPacks will combine
const MaxPacks = 1000

// NewPack lists the 52 cards of one pack, suits in bridge order and ranks from
// ace to king within each suit.
func NewPack(packID int) ([]Card, error) {
	if packID < 0 {
		return nil, types.NewCardError(types.ErrInvalidPackID, fmt.Sprintf("pack id must not be negative, got %d", packID))
	}

	cards := make([]Card, 0, PackSize)
	for _, suit := range AllSuits() {
		for _, rank := range AllRanks() {
			cards = append(cards, Card{Rank: rank, Suit: suit, PackID: packID})
		}
	}
	return cards, nil
}

// NewPacks lists the cards of packs 0 through n-1, one pack after another.
// n must be between 1 and MaxPacks.
func NewPacks(n int) ([]Card, error) {
	if n < 1 {
		return nil, types.NewCardError(types.ErrInvalidArgument, fmt.Sprintf("need at least one pack, got %d", n))
	}
	if n > MaxPacks {
		return nil, types.NewCardError(types.ErrInvalidArgument, fmt.Sprintf("at most %d packs can be combined, got %d", MaxPacks, n))
	}

	cards := make([]Card, 0, n*PackSize)
	for packID := 0; packID < n; packID++ {
		pack, err := NewPack(packID)
		if err != nil {
			return nil, err
		}
		cards = append(cards, pack...)
	}
	return cards, nil
}
