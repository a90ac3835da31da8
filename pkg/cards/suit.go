package cards

import (
	"fmt"

	"github.com/fadedpez/cardkit/pkg/types"
)

// Suit represents a card suit. The zero value is not a valid suit.
type Suit int8

const (
	Clubs Suit = iota + 1
	Diamonds
	Hearts
	Spades
)

var suitCodes = [...]string{
	Clubs:    "C",
	Diamonds: "D",
	Hearts:   "H",
	Spades:   "S",
}

var suitLongNames = [...]string{
	Clubs:    "clubs",
	Diamonds: "diamonds",
	Hearts:   "hearts",
	Spades:   "spades",
}

var suitGlyphs = [...]string{
	Clubs:    "♣",
	Diamonds: "♦",
	Hearts:   "♥",
	Spades:   "♠",
}

// AllSuits returns the four suits in bridge order: clubs, diamonds, hearts, spades.
// The returned slice is a fresh copy.
func AllSuits() []Suit {
	return []Suit{Clubs, Diamonds, Hearts, Spades}
}

// ParseSuit converts a one-character suit code (C, D, H, S) into a Suit
func ParseSuit(code string) (Suit, error) {
	for _, s := range AllSuits() {
		if s.Code() == code {
			return s, nil
		}
	}
	return 0, types.NewCardError(types.ErrInvalidSuit, fmt.Sprintf("unknown suit code %q", code))
}

// IsValid reports whether s is one of the four suits
func (s Suit) IsValid() bool {
	return s >= Clubs && s <= Spades
}

// Code returns the one-character short name of the suit, or "" if invalid
func (s Suit) Code() string {
	if !s.IsValid() {
		return ""
	}
	return suitCodes[s]
}

// String returns the suit code
func (s Suit) String() string {
	return s.Code()
}

// LongName returns clubs, diamonds, hearts or spades
func (s Suit) LongName() string {
	if !s.IsValid() {
		return ""
	}
	return suitLongNames[s]
}

// UnicodeName returns the suit symbol with the emoji presentation selector
func (s Suit) UnicodeName() string {
	return s.UnicodeNameVariant(EmojiVariant)
}

// UnicodeNameVariant returns the suit symbol followed by the selector for v
func (s Suit) UnicodeNameVariant(v Variant) string {
	if !s.IsValid() {
		return ""
	}
	return suitGlyphs[s] + v.Selector()
}

// Color returns Red for diamonds and hearts, Black for clubs and spades,
// and NoColor for an invalid suit.
func (s Suit) Color() Color {
	switch s {
	case Diamonds, Hearts:
		return Red
	case Clubs, Spades:
		return Black
	}
	return NoColor
}

// IsClubs through IsSpades report whether s is that particular suit.
func (s Suit) IsClubs() bool    { return s == Clubs }
func (s Suit) IsDiamonds() bool { return s == Diamonds }
func (s Suit) IsHearts() bool   { return s == Hearts }
func (s Suit) IsSpades() bool   { return s == Spades }

// MarshalText implements encoding.TextMarshaler
func (s Suit) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, types.NewCardError(types.ErrInvalidSuit, fmt.Sprintf("cannot marshal suit %d", int(s)))
	}
	return []byte(s.Code()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (s *Suit) UnmarshalText(text []byte) error {
	parsed, err := ParseSuit(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Color is the display color of a suit
type Color int8

const (
	NoColor Color = iota
	Black
	Red
)

// String returns "black", "red", or "" for NoColor
func (c Color) String() string {
	switch c {
	case Black:
		return "black"
	case Red:
		return "red"
	}
	return ""
}

// RGB returns the 8-bit components used to draw the color
func (c Color) RGB() (r, g, b uint8) {
	if c == Red {
		return 223, 0, 3
	}
	return 0, 0, 0
}

// Variant selects how a suit symbol is presented
type Variant int8

const (
	EmojiVariant Variant = iota
	TextVariant
)

// ParseVariant converts "emoji" or "text" into a Variant
func ParseVariant(name string) (Variant, error) {
	switch name {
	case "emoji":
		return EmojiVariant, nil
	case "text":
		return TextVariant, nil
	}
	return 0, types.NewCardError(types.ErrInvalidArgument, fmt.Sprintf("unknown unicode variant %q", name))
}

// Selector returns the unicode variation selector appended to a suit symbol
func (v Variant) Selector() string {
	if v == TextVariant {
		return "\uFE0E"
	}
	return "\uFE0F"
}

// String returns "emoji" or "text"
func (v Variant) String() string {
	if v == TextVariant {
		return "text"
	}
	return "emoji"
}
