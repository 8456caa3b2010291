// Package profile is the player's saved profile: the selected character and
// a win/loss tally per character. It is stored as one JSON document that is
// read and patched in place, so unknown keys written by other versions
// survive a save.
package profile

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

const (
	keyCharacter = "character"
	keyMatches   = "matches"
)

// Profile wraps the raw JSON document.
type Profile struct {
	raw []byte
}

// Parse wraps raw. Empty or invalid input yields an empty profile.
func Parse(raw []byte) Profile {
	if len(raw) == 0 || !gjson.ValidBytes(raw) {
		return Profile{raw: []byte("{}")}
	}
	return Profile{raw: raw}
}

// Bytes returns the document for storage.
func (p Profile) Bytes() []byte {
	if len(p.raw) == 0 {
		return []byte("{}")
	}
	return p.raw
}

// Character returns the selected character, or fallback when none is saved.
func (p Profile) Character(fallback string) string {
	if c := gjson.GetBytes(p.raw, keyCharacter).String(); c != "" {
		return c
	}
	return fallback
}

// Wins returns the number of matches won with a character.
func (p Profile) Wins(character string) int {
	return int(gjson.GetBytes(p.raw, tallyPath("wins", character)).Int())
}

// Losses returns the number of matches lost with a character.
func (p Profile) Losses(character string) int {
	return int(gjson.GetBytes(p.raw, tallyPath("losses", character)).Int())
}

// Matches returns the number of finished matches, draws included.
func (p Profile) Matches() int {
	return int(gjson.GetBytes(p.raw, keyMatches).Int())
}

// WithCharacter returns p with a new selected character.
func (p Profile) WithCharacter(character string) (Profile, error) {
	raw, err := sjson.SetBytes(p.Bytes(), keyCharacter, character)
	if err != nil {
		return p, fmt.Errorf("set character: %w", err)
	}
	return Profile{raw: raw}, nil
}

// Outcome is how a finished match went for the local player.
type Outcome int

const (
	Draw Outcome = iota
	Won
	Lost
)

// WithResult returns p with one more finished match for character.
func (p Profile) WithResult(character string, o Outcome) (Profile, error) {
	raw, err := sjson.SetBytes(p.Bytes(), keyMatches, p.Matches()+1)
	if err != nil {
		return p, fmt.Errorf("count match: %w", err)
	}
	next := Profile{raw: raw}

	var path string
	var n int
	switch o {
	case Won:
		path, n = tallyPath("wins", character), next.Wins(character)
	case Lost:
		path, n = tallyPath("losses", character), next.Losses(character)
	default:
		return next, nil
	}
	raw, err = sjson.SetBytes(next.raw, path, n+1)
	if err != nil {
		return p, fmt.Errorf("tally %s: %w", character, err)
	}
	return Profile{raw: raw}, nil
}

// tallyPath builds a gjson/sjson path, escaping characters that are path
// syntax.
func tallyPath(kind, character string) string {
	r := strings.NewReplacer(".", `\.`, "*", `\*`, "?", `\?`)
	return kind + "." + r.Replace(character)
}
