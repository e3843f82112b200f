// Package samplebook builds workbooks in the club's sheet layout, filled
// with fake tournament results. It exists for manual testing of the
// pipeline: the generated files include the malformed rows (blank names,
// text scores, missing points) the aggregator is expected to tolerate.
package samplebook

import (
	"fmt"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/xuri/excelize/v2"
)

// Layout constants matching the club's sheets.
const (
	dataStartRow = 4

	surnameCol   = "C"
	givenNameCol = "D"
	scoreCol     = "I"
	pointsCol    = "K"
)

// Cadence of deliberately malformed rows.
const (
	blankNameEvery = 7
	textScoreEvery = 11
	noPointsEvery  = 5

	scoreMin, scoreMax   = -400, 1600
	pointsMin, pointsMax = 0, 30
)

// Builder generates a multi-sheet workbook of fake results.
type Builder struct {
	sheets    int
	players   int
	seed      uint64
	malformed bool
}

// Option applies a configuration option to the Builder.
type Option func(*Builder)

// WithSheets sets the number of tournament sheets.
func WithSheets(n int) Option {
	return func(b *Builder) {
		if n > 0 {
			b.sheets = n
		}
	}
}

// WithPlayers sets how many result rows each sheet carries.
func WithPlayers(n int) Option {
	return func(b *Builder) {
		if n > 0 {
			b.players = n
		}
	}
}

// WithSeed fixes the random seed so generated workbooks are reproducible.
func WithSeed(seed uint64) Option {
	return func(b *Builder) {
		b.seed = seed
	}
}

// WithMalformedRows toggles the deliberately broken rows.
func WithMalformedRows(on bool) Option {
	return func(b *Builder) {
		b.malformed = on
	}
}

// NewBuilder creates a Builder producing 4 sheets of 24 rows with
// malformed rows enabled.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		sheets:    4,
		players:   24,
		seed:      1,
		malformed: true,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Write generates the workbook and saves it at path.
func (b *Builder) Write(path string) error {
	faker := gofakeit.New(b.seed)

	// A stable roster so the same players recur across sheets, which is
	// what makes the aggregation interesting.
	type player struct{ surname, given string }
	roster := make([]player, b.players*2)
	for i := range roster {
		roster[i] = player{surname: faker.LastName(), given: faker.FirstName()}
	}

	f := excelize.NewFile()
	defer f.Close()

	for s := 0; s < b.sheets; s++ {
		name := fmt.Sprintf("Tournoi %d", s+1)
		if s == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), name); err != nil {
				return fmt.Errorf("create sheet %q: %w", name, err)
			}
		} else {
			if _, err := f.NewSheet(name); err != nil {
				return fmt.Errorf("create sheet %q: %w", name, err)
			}
		}

		if err := f.SetCellValue(name, "C1", "Challenge du club"); err != nil {
			return fmt.Errorf("write sheet %q: %w", name, err)
		}

		for i := 0; i < b.players; i++ {
			row := dataStartRow + i
			p := roster[faker.IntRange(0, len(roster)-1)]

			surname, given := p.surname, p.given
			if b.malformed && i > 0 && i%blankNameEvery == 0 {
				surname, given = "", ""
			}
			if err := f.SetCellValue(name, fmt.Sprintf("%s%d", surnameCol, row), surname); err != nil {
				return fmt.Errorf("write sheet %q: %w", name, err)
			}
			if err := f.SetCellValue(name, fmt.Sprintf("%s%d", givenNameCol, row), given); err != nil {
				return fmt.Errorf("write sheet %q: %w", name, err)
			}

			if b.malformed && i > 0 && i%textScoreEvery == 0 {
				if err := f.SetCellValue(name, fmt.Sprintf("%s%d", scoreCol, row), "abandon"); err != nil {
					return fmt.Errorf("write sheet %q: %w", name, err)
				}
			} else {
				score := faker.IntRange(scoreMin, scoreMax)
				if err := f.SetCellValue(name, fmt.Sprintf("%s%d", scoreCol, row), score); err != nil {
					return fmt.Errorf("write sheet %q: %w", name, err)
				}
			}

			if b.malformed && i > 0 && i%noPointsEvery == 0 {
				continue // points cell left empty, defaults to 0 downstream
			}
			points := faker.IntRange(pointsMin, pointsMax)
			if err := f.SetCellValue(name, fmt.Sprintf("%s%d", pointsCol, row), points); err != nil {
				return fmt.Errorf("write sheet %q: %w", name, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}
