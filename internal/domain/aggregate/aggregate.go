// Package aggregate merges raw sheet rows into per-player contribution
// records keyed by identity.
package aggregate

import (
	"strconv"
	"strings"

	"github.com/clubtarot/standings/internal/domain/model"
)

// Sheet is one tournament's worth of extracted rows, already restricted to
// the configured row window by the extractor.
type Sheet struct {
	Name string
	Rows []model.RawRow
}

// PlayerRecord is one player's contributions accumulated across all sheets,
// in sheet-then-row encounter order.
type PlayerRecord struct {
	Identity      model.Identity
	Contributions []model.Contribution
}

// Records is an insertion-ordered collection of PlayerRecords. Iteration
// order is first-seen order, independent of Go map iteration order, so
// repeated runs over the same input produce identical results.
type Records struct {
	players []PlayerRecord
	index   map[model.Identity]int
}

// NewRecords returns an empty Records collection.
func NewRecords() *Records {
	return &Records{index: make(map[model.Identity]int)}
}

// Add appends a contribution to the player's record, creating the record on
// first sight of the identity.
func (r *Records) Add(id model.Identity, c model.Contribution) {
	i, ok := r.index[id]
	if !ok {
		i = len(r.players)
		r.players = append(r.players, PlayerRecord{Identity: id})
		r.index[id] = i
	}
	r.players[i].Contributions = append(r.players[i].Contributions, c)
}

// Len returns the number of players with at least one contribution.
func (r *Records) Len() int {
	return len(r.players)
}

// Players returns the records in first-seen order. Callers must not mutate
// the returned slice.
func (r *Records) Players() []PlayerRecord {
	return r.players
}

// Get returns the record for an identity, if present.
func (r *Records) Get(id model.Identity) (PlayerRecord, bool) {
	i, ok := r.index[id]
	if !ok {
		return PlayerRecord{}, false
	}
	return r.players[i], true
}

// Aggregate merges raw rows across all sheets into per-player records.
//
// Skip rules, applied per row:
//   - both name cells blank after trimming: the row is dropped;
//   - score cell missing or not a real number: the row is dropped;
//   - points cell missing or not a real number: accepted with points 0.
//
// Rows are processed in sheet order, then row order within a sheet. A player
// who appears only in dropped rows is never materialized, so every record in
// the result carries at least one contribution.
func Aggregate(sheets []Sheet) *Records {
	out := NewRecords()

	for _, sheet := range sheets {
		for _, row := range sheet.Rows {
			id := model.NewIdentity(row.Surname, row.GivenName)
			if id.Blank() {
				continue
			}

			score, err := strconv.ParseFloat(strings.TrimSpace(row.Score), 64)
			if err != nil {
				continue
			}

			// Points degrade to zero; a bad cell never aborts the run.
			points, err := strconv.ParseFloat(strings.TrimSpace(row.Points), 64)
			if err != nil {
				points = 0
			}

			out.Add(id, model.Contribution{Score: score, Points: points})
		}
	}

	return out
}
