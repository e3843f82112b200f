// Package standings turns aggregated player records into a ranked season
// table: each player's best K contributions are selected and summed, then
// all players are ordered and assigned dense competition ranks.
package standings

import (
	"sort"
	"strconv"

	"github.com/clubtarot/standings/internal/domain/aggregate"
	"github.com/clubtarot/standings/internal/domain/model"
)

// Slot is one of the K points columns of a ranked row. A slot left invalid
// renders as blank; a player with fewer than K contributions has their
// trailing slots invalid.
type Slot struct {
	Valid  bool
	Points float64
}

// Row is one line of the final table. Slots always has exactly K entries.
type Row struct {
	Rank        int
	Surname     string
	GivenName   string
	PlayCount   int
	Slots       []Slot
	TotalScore  float64
	TotalPoints float64
}

// Cell is one flattened field of a Row, handed to renderers. Numeric cells
// carry Value; the rest carry Text, with the zero Cell rendering as blank.
type Cell struct {
	Text    string
	Value   float64
	Numeric bool
}

func numberCell(v float64) Cell { return Cell{Value: v, Numeric: true} }
func textCell(s string) Cell    { return Cell{Text: s} }

// Flatten returns the row's fields in header order: rank, surname, given
// name, play count, the K points slots, total score, total points. The
// result always has exactly len(Headers(k)) entries.
func (r Row) Flatten() []Cell {
	cells := make([]Cell, 0, len(r.Slots)+fixedColumns)
	cells = append(cells,
		numberCell(float64(r.Rank)),
		textCell(r.Surname),
		textCell(r.GivenName),
		numberCell(float64(r.PlayCount)),
	)
	for _, s := range r.Slots {
		if s.Valid {
			cells = append(cells, numberCell(s.Points))
		} else {
			cells = append(cells, Cell{})
		}
	}
	return append(cells, numberCell(r.TotalScore), numberCell(r.TotalPoints))
}

// fixedColumns counts the non-slot columns: rank, surname, given name,
// play count, total score, total points.
const fixedColumns = 6

// Headers returns the column headers for a table with k points slots,
// labeled 1..k.
func Headers(k int) []string {
	h := make([]string, 0, k+fixedColumns)
	h = append(h, "Classement", "Nom", "Prénom", "Participations")
	for i := 1; i <= k; i++ {
		h = append(h, strconv.Itoa(i))
	}
	return append(h, "Scores", "Points")
}

// Rank builds the season table from aggregated records, keeping each
// player's best k contributions by (points desc, score desc) and assigning
// competition ranks on (total points, total score).
//
// k must be positive; ErrInvalidTopK is returned otherwise. An empty record
// set yields correct headers and no rows.
func Rank(records *aggregate.Records, k int) ([]string, []Row, error) {
	if k <= 0 {
		return nil, nil, ErrInvalidTopK
	}

	players := records.Players()
	rows := make([]Row, 0, len(players))
	for _, rec := range players {
		rows = append(rows, selectTopK(rec, k))
	}

	sortByTotals(rows)
	assignRanks(rows)
	sortForPresentation(rows)

	return Headers(k), rows, nil
}

// selectTopK orders one player's contributions by points descending with
// score as tiebreak, keeps the first k, and sums them. The sort is stable,
// so equal (points, score) pairs keep their encounter order when truncated.
func selectTopK(rec aggregate.PlayerRecord, k int) Row {
	kept := make([]model.Contribution, len(rec.Contributions))
	copy(kept, rec.Contributions)
	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].Points != kept[j].Points {
			return kept[i].Points > kept[j].Points
		}
		return kept[i].Score > kept[j].Score
	})
	if len(kept) > k {
		kept = kept[:k]
	}

	row := Row{
		Surname:   rec.Identity.Surname,
		GivenName: rec.Identity.GivenName,
		PlayCount: len(kept),
		Slots:     make([]Slot, k),
	}
	for i, c := range kept {
		row.Slots[i] = Slot{Valid: true, Points: c.Points}
		row.TotalScore += c.Score
		row.TotalPoints += c.Points
	}
	return row
}

// sortByTotals orders rows by total points desc, total score desc, then
// surname and given name asc. The name keys only make the order
// deterministic among players tied on both totals; they never affect rank.
func sortByTotals(rows []Row) {
	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.TotalPoints != b.TotalPoints {
			return a.TotalPoints > b.TotalPoints
		}
		if a.TotalScore != b.TotalScore {
			return a.TotalScore > b.TotalScore
		}
		if a.Surname != b.Surname {
			return a.Surname < b.Surname
		}
		return a.GivenName < b.GivenName
	})
}

// assignRanks walks totals-sorted rows and assigns competition ranks: a row
// opens a new rank equal to its 1-based position only when its
// (total points, total score) pair differs from the previous row's,
// otherwise it shares the previous rank. Ties produce gaps (1,2,2,4).
func assignRanks(rows []Row) {
	for i := range rows {
		if i > 0 && rows[i].TotalPoints == rows[i-1].TotalPoints && rows[i].TotalScore == rows[i-1].TotalScore {
			rows[i].Rank = rows[i-1].Rank
			continue
		}
		rows[i].Rank = i + 1
	}
}

// sortForPresentation re-orders ranked rows by rank asc, then surname and
// given name asc. For non-tied rows this matches the totals order; for tied
// rows it pins a deterministic final order.
func sortForPresentation(rows []Row) {
	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Rank != b.Rank {
			return a.Rank < b.Rank
		}
		if a.Surname != b.Surname {
			return a.Surname < b.Surname
		}
		return a.GivenName < b.GivenName
	})
}
