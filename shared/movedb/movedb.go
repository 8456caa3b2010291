// Package movedb loads per-character move tables. Tables are read once at
// startup and are read-only afterwards.
package movedb

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownCharacter = errors.New("unknown character")
	ErrUnknownMove      = errors.New("unknown move")
)

//go:embed data/*.yaml
var dataFS embed.FS

// Database maps character names to their move tables.
type Database struct {
	tables map[string]*MoveTable
}

// LoadEmbedded loads the built-in roster.
func LoadEmbedded() (*Database, error) {
	return Load(dataFS, "data")
}

// Load reads every .yaml file in dir. Dangling move references are logged
// and left for lookups to report; only unreadable files fail the load.
func Load(fsys fs.FS, dir string) (*Database, error) {
	matches, err := fs.Glob(fsys, path.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", dir, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no move files in %s", dir)
	}

	db := &Database{tables: make(map[string]*MoveTable, len(matches))}
	for _, p := range matches {
		raw, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", p, err)
		}
		t, err := Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", p, err)
		}
		if t.Character == "" {
			t.Character = strings.TrimSuffix(path.Base(p), ".yaml")
		}
		for _, e := range t.Validate() {
			log.Printf("[movedb] %v", e)
		}
		db.tables[t.Character] = t
	}
	return db, nil
}

// Parse decodes one character file.
func Parse(raw []byte) (*MoveTable, error) {
	var t MoveTable
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return nil, err
	}
	for name, m := range t.Moves {
		m.Name = name
		if m.Kind == "" {
			m.Kind = KindNormal
		}
		t.Moves[name] = m
	}
	return &t, nil
}

// Table returns the move table of a character.
func (d *Database) Table(character string) (*MoveTable, error) {
	t, ok := d.tables[character]
	if !ok {
		return nil, fmt.Errorf("%q: %w", character, ErrUnknownCharacter)
	}
	return t, nil
}

// Move looks up a single move by (character, move).
func (d *Database) Move(character, move string) (MoveDescriptor, error) {
	t, err := d.Table(character)
	if err != nil {
		return MoveDescriptor{}, err
	}
	return t.Move(move)
}

// Characters returns the roster in name order.
func (d *Database) Characters() []string {
	names := make([]string, 0, len(d.tables))
	for n := range d.tables {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
