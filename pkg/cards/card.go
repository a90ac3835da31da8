package cards

import (
	"fmt"
	"strconv"

	"github.com/fadedpez/cardkit/pkg/types"
)

// Card represents a playing card.
//
// PackID tells apart otherwise identical cards when several packs are combined
// into one set, as in canasta. The first pack is 0. Cards are comparable, so ==
// and map keys take the pack id into account.
type Card struct {
	Rank   Rank
	Suit   Suit
	PackID int
}

// NewCard creates a card belonging to pack 0
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// NewPackCard creates a card belonging to the given pack
func NewPackCard(rank Rank, suit Suit, packID int) (Card, error) {
	if packID < 0 {
		return Card{}, types.NewCardError(types.ErrInvalidPackID, fmt.Sprintf("pack id must not be negative, got %d", packID))
	}
	return Card{Rank: rank, Suit: suit, PackID: packID}, nil
}

// ParseCard creates a card from its short name ("QS") or pack name ("QS1").
//
// The first character is the rank code and the second the suit code. The whole
// run of digits after that is the pack id, so "QS12" is pack 12 rather than
// pack 1 and every PackName parses back to the same card. Without digits the
// pack id is 0. This is meant for prototyping, tests and debugging, not for
// untrusted input.
func ParseCard(name string) (Card, error) {
	chars := []rune(name)
	rankCode := substring(chars, 0, 1)
	suitCode := substring(chars, 1, 2)

	rank, err := ParseRank(rankCode)
	if err != nil {
		return Card{}, types.WrapError(types.ErrInvalidCardName, fmt.Sprintf("cannot parse card name %q", name), err)
	}
	suit, err := ParseSuit(suitCode)
	if err != nil {
		return Card{}, types.WrapError(types.ErrInvalidCardName, fmt.Sprintf("cannot parse card name %q", name), err)
	}

	return Card{Rank: rank, Suit: suit, PackID: leadingInt(substring(chars, 2, len(chars)))}, nil
}

// MustParseCard is like ParseCard but panics if the name cannot be parsed
func MustParseCard(name string) Card {
	c, err := ParseCard(name)
	if err != nil {
		panic(err)
	}
	return c
}

// Name returns the short name of the card, e.g. "QS". Ten is "T".
func (c Card) Name() string {
	return c.Rank.Code() + c.Suit.Code()
}

// String returns the short name of the card
func (c Card) String() string {
	return c.Name()
}

// LongName returns e.g. "queen of spades"
func (c Card) LongName() string {
	return fmt.Sprintf("%s of %s", c.Rank.LongName(), c.Suit.LongName())
}

// UnicodeName returns the suit symbol followed by the true rank name, e.g. "♠10"
func (c Card) UnicodeName() string {
	return c.UnicodeNameVariant(EmojiVariant)
}

// UnicodeNameVariant is UnicodeName with an explicit presentation variant
func (c Card) UnicodeNameVariant(v Variant) string {
	return c.Suit.UnicodeNameVariant(v) + c.Rank.TrueName()
}

// PackName returns the short name followed by the pack id when it is not 0,
// e.g. "QS1" for the queen of spades of the second pack.
func (c Card) PackName() string {
	if c.PackID == 0 {
		return c.Name()
	}
	return c.Name() + strconv.Itoa(c.PackID)
}

// Validate checks that the card has a valid rank, suit and pack id
func (c Card) Validate() error {
	if !c.Rank.IsValid() {
		return types.NewCardError(types.ErrInvalidRank, fmt.Sprintf("invalid rank %d", int(c.Rank)))
	}
	if !c.Suit.IsValid() {
		return types.NewCardError(types.ErrInvalidSuit, fmt.Sprintf("invalid suit %d", int(c.Suit)))
	}
	if c.PackID < 0 {
		return types.NewCardError(types.ErrInvalidPackID, fmt.Sprintf("pack id must not be negative, got %d", c.PackID))
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler using the pack name
func (c Card) MarshalText() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return []byte(c.PackName()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (c *Card) UnmarshalText(text []byte) error {
	parsed, err := ParseCard(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func substring(chars []rune, from, to int) string {
	if from > len(chars) {
		from = len(chars)
	}
	if to > len(chars) {
		to = len(chars)
	}
	return string(chars[from:to])
}

// leadingInt parses the run of ASCII digits at the start of s.
// No digits, or a value that overflows int, yields 0.
func leadingInt(s string) int {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}
