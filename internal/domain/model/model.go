// Package model contains domain models passed between layers.
package model

import "strings"

// Identity is the aggregation key for a player: surname plus given name,
// both trimmed of surrounding whitespace. Two identities are equal iff both
// components match exactly (case-sensitive). There is no separate player ID.
type Identity struct {
	Surname   string
	GivenName string
}

// NewIdentity builds an Identity, trimming surrounding whitespace from both
// name components.
func NewIdentity(surname, givenName string) Identity {
	return Identity{
		Surname:   strings.TrimSpace(surname),
		GivenName: strings.TrimSpace(givenName),
	}
}

// Blank reports whether both name components are empty after trimming.
// A row keyed by a blank identity never ranks.
func (id Identity) Blank() bool {
	return id.Surname == "" && id.GivenName == ""
}

// Contribution is one tournament result produced by a player in one
// sheet-row: a score and the points it earned.
type Contribution struct {
	Score  float64
	Points float64
}

// RawRow holds the four cells of interest from one spreadsheet row, as
// extracted text. An empty string means the cell is missing, which is
// distinguishable from a cell containing "0".
type RawRow struct {
	Surname   string
	GivenName string
	Score     string
	Points    string
}
