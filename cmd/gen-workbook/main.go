// Command gen-workbook writes a fake multi-sheet tournament workbook in the
// club's layout, for exercising the standings pipeline by hand.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/clubtarot/standings/internal/samplebook"
)

func main() {
	out := flag.String("out", "tournois.xlsx", "output workbook path")
	sheets := flag.Int("sheets", 4, "number of tournament sheets")
	players := flag.Int("players", 24, "result rows per sheet")
	seed := flag.Uint64("seed", 1, "random seed")
	clean := flag.Bool("clean", false, "omit the deliberately malformed rows")
	flag.Parse()

	b := samplebook.NewBuilder(
		samplebook.WithSheets(*sheets),
		samplebook.WithPlayers(*players),
		samplebook.WithSeed(*seed),
		samplebook.WithMalformedRows(!*clean),
	)
	if err := b.Write(*out); err != nil {
		fmt.Fprintln(os.Stderr, "gen-workbook:", err)
		os.Exit(1)
	}
	fmt.Println("Workbook:", *out)
}
