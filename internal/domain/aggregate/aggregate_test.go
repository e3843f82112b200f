package aggregate_test

import (
	"testing"

	"github.com/clubtarot/standings/internal/domain/aggregate"
	"github.com/clubtarot/standings/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestAggregate(t *testing.T) {
	Convey("Given raw rows spread over several sheets", t, func() {
		sheets := []aggregate.Sheet{
			{
				Name: "Tournoi 1",
				Rows: []model.RawRow{
					{Surname: "Dupont", GivenName: "Marie", Score: "520", Points: "12"},
					{Surname: "Martin", GivenName: "Paul", Score: "-80", Points: "3"},
				},
			},
			{
				Name: "Tournoi 2",
				Rows: []model.RawRow{
					{Surname: " Dupont ", GivenName: "Marie", Score: "140.5", Points: "7"},
				},
			},
		}

		Convey("When aggregating", func() {
			records := aggregate.Aggregate(sheets)

			Convey("Then contributions merge by trimmed identity across sheets", func() {
				So(records.Len(), ShouldEqual, 2)

				rec, ok := records.Get(model.NewIdentity("Dupont", "Marie"))
				So(ok, ShouldBeTrue)
				So(rec.Contributions, ShouldResemble, []model.Contribution{
					{Score: 520, Points: 12},
					{Score: 140.5, Points: 7},
				})
			})

			Convey("And players keep first-seen order", func() {
				players := records.Players()
				So(players[0].Identity, ShouldResemble, model.NewIdentity("Dupont", "Marie"))
				So(players[1].Identity, ShouldResemble, model.NewIdentity("Martin", "Paul"))
			})
		})
	})

	Convey("Given rows that violate the skip rules", t, func() {
		sheets := []aggregate.Sheet{
			{
				Name: "Tournoi 1",
				Rows: []model.RawRow{
					// Unparsable score: dropped entirely, names and points notwithstanding.
					{Surname: "Durand", GivenName: "Luc", Score: "abc", Points: "10"},
					// Both names blank: dropped regardless of values.
					{Surname: "  ", GivenName: "", Score: "300", Points: "5"},
					// Missing score cell: dropped.
					{Surname: "Petit", GivenName: "Anne", Score: "", Points: "5"},
					// Missing points: accepted with points zero.
					{Surname: "Petit", GivenName: "Anne", Score: "410", Points: ""},
					// Unparsable points: accepted with points zero.
					{Surname: "Petit", GivenName: "Anne", Score: "95", Points: "n/a"},
				},
			},
		}

		Convey("When aggregating", func() {
			records := aggregate.Aggregate(sheets)

			Convey("Then only the valid-score rows survive", func() {
				So(records.Len(), ShouldEqual, 1)

				rec, ok := records.Get(model.NewIdentity("Petit", "Anne"))
				So(ok, ShouldBeTrue)
				So(rec.Contributions, ShouldResemble, []model.Contribution{
					{Score: 410, Points: 0},
					{Score: 95, Points: 0},
				})
			})

			Convey("And players seen only in dropped rows are never materialized", func() {
				_, ok := records.Get(model.NewIdentity("Durand", "Luc"))
				So(ok, ShouldBeFalse)
			})

			Convey("And contribution counts never exceed rows scanned", func() {
				total := 0
				for _, p := range records.Players() {
					total += len(p.Contributions)
				}
				So(total, ShouldBeLessThanOrEqualTo, len(sheets[0].Rows))
			})
		})
	})

	Convey("Given a single name cell", t, func() {
		sheets := []aggregate.Sheet{
			{Rows: []model.RawRow{{Surname: "Moreau", Score: "220", Points: "4"}}},
		}

		Convey("When aggregating", func() {
			records := aggregate.Aggregate(sheets)

			Convey("Then the row is kept, keyed by the partial identity", func() {
				rec, ok := records.Get(model.NewIdentity("Moreau", ""))
				So(ok, ShouldBeTrue)
				So(rec.Contributions, ShouldHaveLength, 1)
			})
		})
	})

	Convey("Given no sheets", t, func() {
		Convey("When aggregating", func() {
			records := aggregate.Aggregate(nil)

			Convey("Then the result is empty", func() {
				So(records.Len(), ShouldEqual, 0)
				So(records.Players(), ShouldBeEmpty)
			})
		})
	})

	Convey("Given numeric cells with surrounding whitespace", t, func() {
		sheets := []aggregate.Sheet{
			{Rows: []model.RawRow{{Surname: "Roux", GivenName: "Jean", Score: " 150 ", Points: " 8 "}}},
		}

		Convey("When aggregating", func() {
			records := aggregate.Aggregate(sheets)

			Convey("Then the values still parse", func() {
				rec, ok := records.Get(model.NewIdentity("Roux", "Jean"))
				So(ok, ShouldBeTrue)
				So(rec.Contributions, ShouldResemble, []model.Contribution{{Score: 150, Points: 8}})
			})
		})
	})
}
