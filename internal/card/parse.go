package card

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidCard is returned when card notation cannot be parsed.
var ErrInvalidCard = errors.New("invalid card")

// ParseCard parses a single card in compact notation ("Ah", "10h", "Th") or
// in the game's key notation ("H_A", "C_10"). The returned card is active and
// sits at position 0.
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if suitPart, rankPart, ok := strings.Cut(s, "_"); ok {
		return parseKey(suitPart, rankPart)
	}
	if len(s) < 2 {
		return Card{}, fmt.Errorf("%w: %q too short", ErrInvalidCard, s)
	}

	rank, err := parseRank(s[:len(s)-1])
	if err != nil {
		return Card{}, fmt.Errorf("%w: %q: %v", ErrInvalidCard, s, err)
	}
	suit, err := parseSuit(s[len(s)-1])
	if err != nil {
		return Card{}, fmt.Errorf("%w: %q: %v", ErrInvalidCard, s, err)
	}
	return Card{Suit: suit, Rank: rank}, nil
}

func parseKey(suitPart, rankPart string) (Card, error) {
	if len(suitPart) != 1 {
		return Card{}, fmt.Errorf("%w: key suit %q", ErrInvalidCard, suitPart)
	}
	suit, err := parseSuit(suitPart[0])
	if err != nil {
		return Card{}, fmt.Errorf("%w: key %s_%s: %v", ErrInvalidCard, suitPart, rankPart, err)
	}
	rank, err := parseRank(rankPart)
	if err != nil {
		return Card{}, fmt.Errorf("%w: key %s_%s: %v", ErrInvalidCard, suitPart, rankPart, err)
	}
	return Card{Suit: suit, Rank: rank}, nil
}

// ParseHand parses whitespace or comma separated card tokens. A token may be
// prefixed with "N:" to give an explicit position and with "!" to mark the
// card debuffed, e.g. "Ah Ac !Kc 7:Qs". Tokens without an explicit position
// take their token index.
func ParseHand(s string) ([]Card, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})

	cards := make([]Card, 0, len(fields))
	for i, field := range fields {
		position := i
		if pos, rest, ok := strings.Cut(field, ":"); ok {
			n, err := strconv.Atoi(pos)
			if err != nil {
				return nil, fmt.Errorf("%w: token %d position %q", ErrInvalidCard, i, pos)
			}
			position, field = n, rest
		}

		debuffed := strings.HasPrefix(field, "!")
		field = strings.TrimPrefix(field, "!")

		c, err := ParseCard(field)
		if err != nil {
			return nil, fmt.Errorf("token %d: %w", i, err)
		}
		c.Debuffed = debuffed
		c.Position = position
		cards = append(cards, c)
	}
	return cards, nil
}

// MustParseHand parses cards and panics on error (for tests)
func MustParseHand(s string) []Card {
	cards, err := ParseHand(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards '%s': %v", s, err))
	}
	return cards
}

// ParseSuitName parses the suit names the game reports ("Hearts", "clubs").
func ParseSuitName(name string) (Suit, error) {
	for _, s := range Suits {
		if strings.EqualFold(name, s.Name()) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown suit %q", ErrInvalidCard, name)
}

// ParseRankName parses the card values the game reports: "2".."10", "Jack",
// "Queen", "King" and "Ace".
func ParseRankName(name string) (Rank, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "jack":
		return Jack, nil
	case "queen":
		return Queen, nil
	case "king":
		return King, nil
	case "ace":
		return Ace, nil
	}
	r, err := parseRank(name)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidCard, err)
	}
	return r, nil
}

// FromGame builds a card from the fields the game sends for a held card.
func FromGame(suit, value string, debuff bool, position int) (Card, error) {
	s, err := ParseSuitName(suit)
	if err != nil {
		return Card{}, err
	}
	r, err := ParseRankName(value)
	if err != nil {
		return Card{}, err
	}
	return Card{Suit: s, Rank: r, Debuffed: debuff, Position: position}, nil
}

func parseRank(s string) (Rank, error) {
	switch strings.ToUpper(s) {
	case "A":
		return Ace, nil
	case "K":
		return King, nil
	case "Q":
		return Queen, nil
	case "J":
		return Jack, nil
	case "T", "10":
		return Ten, nil
	}
	if len(s) == 1 && s[0] >= '2' && s[0] <= '9' {
		return Rank(s[0] - '0'), nil
	}
	return 0, fmt.Errorf("unknown rank %q", s)
}

func parseSuit(c byte) (Suit, error) {
	switch c {
	case 's', 'S':
		return Spades, nil
	case 'h', 'H':
		return Hearts, nil
	case 'd', 'D':
		return Diamonds, nil
	case 'c', 'C':
		return Clubs, nil
	default:
		return 0, fmt.Errorf("unknown suit '%c'", c)
	}
}
