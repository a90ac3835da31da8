package cards

import (
	"fmt"

	"github.com/fadedpez/cardkit/pkg/types"
)

// Rank represents a card rank. The zero value is not a valid rank.
type Rank int8

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

var rankCodes = [...]string{
	Ace:   "A",
	Two:   "2",
	Three: "3",
	Four:  "4",
	Five:  "5",
	Six:   "6",
	Seven: "7",
	Eight: "8",
	Nine:  "9",
	Ten:   "T",
	Jack:  "J",
	Queen: "Q",
	King:  "K",
}

var rankLongNames = [...]string{
	Ace:   "ace",
	Two:   "two",
	Three: "three",
	Four:  "four",
	Five:  "five",
	Six:   "six",
	Seven: "seven",
	Eight: "eight",
	Nine:  "nine",
	Ten:   "ten",
	Jack:  "jack",
	Queen: "queen",
	King:  "king",
}

// AllRanks returns every rank from ace to king.
// The returned slice is a fresh copy and may be modified by the caller.
func AllRanks() []Rank {
	return []Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}
}

// ParseRank converts a one-character rank code (A, 2-9, T, J, Q, K) into a Rank
func ParseRank(code string) (Rank, error) {
	for _, r := range AllRanks() {
		if r.Code() == code {
			return r, nil
		}
	}
	return 0, types.NewCardError(types.ErrInvalidRank, fmt.Sprintf("unknown rank code %q", code))
}

// IsValid reports whether r is one of the thirteen ranks
func (r Rank) IsValid() bool {
	return r >= Ace && r <= King
}

// Code returns the one-character short name of the rank.
// Ten is "T", not "10". Invalid ranks return an empty string.
func (r Rank) Code() string {
	if !r.IsValid() {
		return ""
	}
	return rankCodes[r]
}

// String returns the rank code
func (r Rank) String() string {
	return r.Code()
}

// LongName returns the English name of the rank: ace, two, ..., king
func (r Rank) LongName() string {
	if !r.IsValid() {
		return ""
	}
	return rankLongNames[r]
}

// TrueName returns the rank code using "10" rather than "T"
func (r Rank) TrueName() string {
	if r == Ten {
		return "10"
	}
	return r.Code()
}

// IsAce through IsKing report whether r is that particular rank.
func (r Rank) IsAce() bool   { return r == Ace }
func (r Rank) IsTwo() bool   { return r == Two }
func (r Rank) IsThree() bool { return r == Three }
func (r Rank) IsFour() bool  { return r == Four }
func (r Rank) IsFive() bool  { return r == Five }
func (r Rank) IsSix() bool   { return r == Six }
func (r Rank) IsSeven() bool { return r == Seven }
func (r Rank) IsEight() bool { return r == Eight }
func (r Rank) IsNine() bool  { return r == Nine }
func (r Rank) IsTen() bool   { return r == Ten }
func (r Rank) IsJack() bool  { return r == Jack }
func (r Rank) IsQueen() bool { return r == Queen }
func (r Rank) IsKing() bool  { return r == King }

// MarshalText implements encoding.TextMarshaler
func (r Rank) MarshalText() ([]byte, error) {
	if !r.IsValid() {
		return nil, types.NewCardError(types.ErrInvalidRank, fmt.Sprintf("cannot marshal rank %d", int(r)))
	}
	return []byte(r.Code()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (r *Rank) UnmarshalText(text []byte) error {
	parsed, err := ParseRank(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
