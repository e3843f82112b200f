package standings_test

import (
	"errors"
	"testing"

	"github.com/clubtarot/standings/internal/domain/aggregate"
	"github.com/clubtarot/standings/internal/domain/model"
	"github.com/clubtarot/standings/internal/domain/standings"
	. "github.com/smartystreets/goconvey/convey"
)

func records(entries map[model.Identity][]model.Contribution, order []model.Identity) *aggregate.Records {
	r := aggregate.NewRecords()
	for _, id := range order {
		for _, c := range entries[id] {
			r.Add(id, c)
		}
	}
	return r
}

func TestHeaders(t *testing.T) {
	Convey("Given a top-K of 3", t, func() {
		Convey("When building headers", func() {
			h := standings.Headers(3)

			Convey("Then the columns are rank, names, plays, slots 1..3, totals", func() {
				So(h, ShouldResemble, []string{
					"Classement", "Nom", "Prénom", "Participations",
					"1", "2", "3",
					"Scores", "Points",
				})
			})
		})
	})
}

func TestRankSelection(t *testing.T) {
	Convey("Given a player with more contributions than K", t, func() {
		id := model.NewIdentity("Dupont", "Marie")
		recs := records(map[model.Identity][]model.Contribution{
			id: {
				{Score: 100, Points: 5},
				{Score: 300, Points: 20},
				{Score: 50, Points: 8},
				{Score: 200, Points: 20},
			},
		}, []model.Identity{id})

		Convey("When ranking with K=2", func() {
			headers, rows, err := standings.Rank(recs, 2)

			Convey("Then the two largest by (points, score) are kept and summed", func() {
				So(err, ShouldBeNil)
				So(rows, ShouldHaveLength, 1)
				row := rows[0]
				// Both kept contributions have 20 points; the higher score
				// sorts first.
				So(row.PlayCount, ShouldEqual, 2)
				So(row.Slots, ShouldResemble, []standings.Slot{
					{Valid: true, Points: 20},
					{Valid: true, Points: 20},
				})
				So(row.TotalScore, ShouldEqual, 500)
				So(row.TotalPoints, ShouldEqual, 40)
			})

			Convey("And the flattened row width matches the headers", func() {
				So(rows[0].Flatten(), ShouldHaveLength, len(headers))
			})
		})
	})

	Convey("Given a player with fewer contributions than K", t, func() {
		id := model.NewIdentity("Martin", "Paul")
		recs := records(map[model.Identity][]model.Contribution{
			id: {{Score: 120, Points: 9}},
		}, []model.Identity{id})

		Convey("When ranking with K=4", func() {
			_, rows, err := standings.Rank(recs, 4)

			Convey("Then play count reflects the true number and extra slots stay blank", func() {
				So(err, ShouldBeNil)
				row := rows[0]
				So(row.PlayCount, ShouldEqual, 1)
				So(row.Slots, ShouldHaveLength, 4)
				So(row.Slots[0], ShouldResemble, standings.Slot{Valid: true, Points: 9})
				So(row.Slots[1].Valid, ShouldBeFalse)
				So(row.Slots[2].Valid, ShouldBeFalse)
				So(row.Slots[3].Valid, ShouldBeFalse)
			})
		})
	})

	Convey("Given contributions with identical (points, score) pairs", t, func() {
		id := model.NewIdentity("Petit", "Anne")
		recs := records(map[model.Identity][]model.Contribution{
			id: {
				{Score: 100, Points: 10},
				{Score: 100, Points: 10},
				{Score: 100, Points: 10},
			},
		}, []model.Identity{id})

		Convey("When ranking with K=2", func() {
			_, rows, err := standings.Rank(recs, 2)

			Convey("Then selection is stable and truncation only affects the count", func() {
				So(err, ShouldBeNil)
				So(rows[0].PlayCount, ShouldEqual, 2)
				So(rows[0].TotalScore, ShouldEqual, 200)
				So(rows[0].TotalPoints, ShouldEqual, 20)
			})
		})
	})
}

func TestRankOrdering(t *testing.T) {
	Convey("Given two players tied on points with different scores", t, func() {
		a := model.NewIdentity("Aubert", "Alice")
		b := model.NewIdentity("Bernard", "Bruno")
		recs := records(map[model.Identity][]model.Contribution{
			a: {{Score: 50, Points: 10}},
			b: {{Score: 60, Points: 10}},
		}, []model.Identity{a, b})

		Convey("When ranking with K=15", func() {
			_, rows, err := standings.Rank(recs, 15)

			Convey("Then the higher score wins the tiebreak", func() {
				So(err, ShouldBeNil)
				So(rows[0].Surname, ShouldEqual, "Bernard")
				So(rows[0].Rank, ShouldEqual, 1)
				So(rows[1].Surname, ShouldEqual, "Aubert")
				So(rows[1].Rank, ShouldEqual, 2)
			})
		})
	})

	Convey("Given three players with identical totals and one below", t, func() {
		ids := []model.Identity{
			model.NewIdentity("Charlot", "Cécile"),
			model.NewIdentity("Arnaud", "Zoé"),
			model.NewIdentity("Blanc", "Yves"),
			model.NewIdentity("Denis", "Hugo"),
		}
		entries := map[model.Identity][]model.Contribution{
			ids[0]: {{Score: 80, Points: 20}},
			ids[1]: {{Score: 80, Points: 20}},
			ids[2]: {{Score: 80, Points: 20}},
			ids[3]: {{Score: 80, Points: 5}},
		}
		recs := records(entries, ids)

		Convey("When ranking", func() {
			_, rows, err := standings.Rank(recs, 15)

			Convey("Then the tie shares rank 1 and the next rank is 4", func() {
				So(err, ShouldBeNil)
				So(rows[0].Rank, ShouldEqual, 1)
				So(rows[1].Rank, ShouldEqual, 1)
				So(rows[2].Rank, ShouldEqual, 1)
				So(rows[3].Rank, ShouldEqual, 4)
			})

			Convey("And tied players appear in name order", func() {
				So(rows[0].Surname, ShouldEqual, "Arnaud")
				So(rows[1].Surname, ShouldEqual, "Blanc")
				So(rows[2].Surname, ShouldEqual, "Charlot")
			})

			Convey("And ranks never decrease in presentation order", func() {
				for i := 1; i < len(rows); i++ {
					So(rows[i].Rank, ShouldBeGreaterThanOrEqualTo, rows[i-1].Rank)
				}
			})
		})
	})

	Convey("Given players who tie on points but not on score", t, func() {
		a := model.NewIdentity("Evrard", "Léa")
		b := model.NewIdentity("Fabre", "Max")
		recs := records(map[model.Identity][]model.Contribution{
			a: {{Score: 300, Points: 12}},
			b: {{Score: 250, Points: 12}},
		}, []model.Identity{a, b})

		Convey("When ranking", func() {
			_, rows, err := standings.Rank(recs, 15)

			Convey("Then they do not share a rank", func() {
				So(err, ShouldBeNil)
				So(rows[0].Rank, ShouldEqual, 1)
				So(rows[1].Rank, ShouldEqual, 2)
			})
		})
	})
}

func TestRankEdgeCases(t *testing.T) {
	Convey("Given an empty record set", t, func() {
		Convey("When ranking with K=15", func() {
			headers, rows, err := standings.Rank(aggregate.NewRecords(), 15)

			Convey("Then headers are correct and no rows come back", func() {
				So(err, ShouldBeNil)
				So(headers, ShouldHaveLength, 15+6)
				So(rows, ShouldBeEmpty)
			})
		})
	})

	Convey("Given a non-positive K", t, func() {
		Convey("When ranking", func() {
			_, _, err := standings.Rank(aggregate.NewRecords(), 0)

			Convey("Then the cutoff is rejected", func() {
				So(errors.Is(err, standings.ErrInvalidTopK), ShouldBeTrue)
			})
		})
	})

	Convey("Given the same input ranked twice", t, func() {
		ids := []model.Identity{
			model.NewIdentity("Garnier", "Emma"),
			model.NewIdentity("Henry", "Tom"),
			model.NewIdentity("Garnier", "Lou"),
		}
		entries := map[model.Identity][]model.Contribution{
			ids[0]: {{Score: 90, Points: 15}, {Score: 10, Points: 2}},
			ids[1]: {{Score: 90, Points: 15}, {Score: 10, Points: 2}},
			ids[2]: {{Score: 40, Points: 15}},
		}

		Convey("When ranking both runs", func() {
			h1, r1, err1 := standings.Rank(records(entries, ids), 15)
			h2, r2, err2 := standings.Rank(records(entries, ids), 15)

			Convey("Then the outputs are identical, tie order included", func() {
				So(err1, ShouldBeNil)
				So(err2, ShouldBeNil)
				So(h1, ShouldResemble, h2)
				So(r1, ShouldResemble, r2)
			})
		})
	})

	Convey("Given ranked rows", t, func() {
		id := model.NewIdentity("Ibanez", "Sophie")
		recs := records(map[model.Identity][]model.Contribution{
			id: {{Score: 77.5, Points: 13}},
		}, []model.Identity{id})

		Convey("When flattening", func() {
			headers, rows, err := standings.Rank(recs, 3)
			So(err, ShouldBeNil)
			cells := rows[0].Flatten()

			Convey("Then the field order is rank, names, plays, slots, totals", func() {
				So(cells, ShouldHaveLength, len(headers))
				So(cells[0].Numeric, ShouldBeTrue)
				So(cells[0].Value, ShouldEqual, 1)
				So(cells[1].Text, ShouldEqual, "Ibanez")
				So(cells[2].Text, ShouldEqual, "Sophie")
				So(cells[3].Value, ShouldEqual, 1)
				So(cells[4].Value, ShouldEqual, 13)
				So(cells[5].Numeric, ShouldBeFalse) // blank slot
				So(cells[6].Numeric, ShouldBeFalse) // blank slot
				So(cells[7].Value, ShouldEqual, 77.5)
				So(cells[8].Value, ShouldEqual, 13)
			})
		})
	})
}
