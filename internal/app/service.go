// Package service provides the core pipeline service: it wires the workbook
// extractor, the aggregator, the ranker, and the table renderers into one
// synchronous run.
package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/clubtarot/standings/internal/adapters/export"
	"github.com/clubtarot/standings/internal/adapters/workbook"
	"github.com/clubtarot/standings/internal/domain/aggregate"
	"github.com/clubtarot/standings/internal/domain/standings"
	"github.com/clubtarot/standings/pkg/logger"
	"github.com/clubtarot/standings/pkg/metrics"
)

// Defaults mirroring the club's sheet layout.
const (
	defaultTopK     = 15
	defaultStartRow = 4
	defaultEndRow   = 100
	defaultDay      = "Mardi"

	outDirPermission = 0o755
)

// Service runs the standings pipeline. A Service holds configuration only;
// every Run takes fresh inputs and returns a fresh result, so concurrent
// runs with disjoint inputs need no synchronization.
type Service struct {
	topK     int
	startRow int
	endRow   int

	colSurname   string
	colGivenName string
	colScore     string
	colPoints    string

	day    string
	outDir string

	wantCSV bool
	wantPDF bool

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithTopK sets how many of a player's best contributions count.
func WithTopK(k int) Option {
	return func(s *Service) {
		if k > 0 {
			s.topK = k
		}
	}
}

// WithRowWindow sets the inclusive 1-indexed row range scanned per sheet.
func WithRowWindow(first, last int) Option {
	return func(s *Service) {
		if first >= 1 && first <= last {
			s.startRow = first
			s.endRow = last
		}
	}
}

// WithColumns sets the column letters holding surname, given name, score
// and points.
func WithColumns(surname, givenName, score, points string) Option {
	return func(s *Service) {
		if surname != "" && givenName != "" && score != "" && points != "" {
			s.colSurname = surname
			s.colGivenName = givenName
			s.colScore = score
			s.colPoints = points
		}
	}
}

// WithDayLabel sets the tournament day used in filenames and the PDF title.
func WithDayLabel(day string) Option {
	return func(s *Service) {
		if day != "" {
			s.day = day
		}
	}
}

// WithOutputDir sets the directory exports are written to.
func WithOutputDir(dir string) Option {
	return func(s *Service) {
		if dir != "" {
			s.outDir = dir
		}
	}
}

// WithFormats selects the export formats. When neither is requested the
// service produces both.
func WithFormats(csv, pdf bool) Option {
	return func(s *Service) {
		s.wantCSV = csv
		s.wantPDF = pdf
	}
}

// New constructs a Service with the club's default layout.
func New(opts ...Option) *Service {
	s := &Service{
		topK:         defaultTopK,
		startRow:     defaultStartRow,
		endRow:       defaultEndRow,
		colSurname:   "C",
		colGivenName: "D",
		colScore:     "I",
		colPoints:    "K",
		day:          defaultDay,
		outDir:       ".",
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		_ = logger.Init()
		s.logger = logger.Get()
	}
	return s
}

// Run executes the full pipeline on one workbook: extract raw rows,
// aggregate per player, rank, export. It returns the written files keyed by
// format ("csv", "pdf").
func (s *Service) Run(ctx context.Context, workbookPath string) (map[string]string, error) {
	start := time.Now()
	log := s.logger.With(logger.String("run_id", uuid.NewString()))

	reader := workbook.NewReader(
		workbook.WithRowWindow(s.startRow, s.endRow),
		workbook.WithColumns(s.colSurname, s.colGivenName, s.colScore, s.colPoints),
	)
	sheets, err := reader.Read(ctx, workbookPath)
	if err != nil {
		return nil, err
	}

	scanned := 0
	for _, sheet := range sheets {
		scanned += len(sheet.Rows)
	}

	records := aggregate.Aggregate(sheets)
	kept := 0
	for _, p := range records.Players() {
		kept += len(p.Contributions)
	}
	metrics.AddRowsScanned(scanned)
	metrics.AddRowsSkipped(scanned - kept)
	log.Debug(ctx, "aggregation complete",
		logger.Int("sheets", len(sheets)),
		logger.Int("rows_scanned", scanned),
		logger.Int("rows_kept", kept),
		logger.Int("players", records.Len()),
	)

	headers, rows, err := standings.Rank(records, s.topK)
	if err != nil {
		return nil, err
	}
	metrics.SetPlayersRanked(len(rows))

	wantCSV, wantPDF := s.wantCSV, s.wantPDF
	if !wantCSV && !wantPDF {
		wantCSV, wantPDF = true, true
	}

	if err := os.MkdirAll(s.outDir, outDirPermission); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	outputs := make(map[string]string)
	if wantCSV {
		path := filepath.Join(s.outDir, fmt.Sprintf("classement_tarot_%s.csv", s.day))
		if err := export.WriteCSV(path, headers, rows); err != nil {
			return nil, err
		}
		outputs["csv"] = path
		metrics.IncExportWritten("csv")
	}
	if wantPDF {
		path := filepath.Join(s.outDir, fmt.Sprintf("classement_tarot_%s.pdf", s.day))
		if err := export.WritePDF(path, headers, rows, export.WithDayLabel(s.day)); err != nil {
			return nil, err
		}
		outputs["pdf"] = path
		metrics.IncExportWritten("pdf")
	}

	metrics.ObserveRunDuration(time.Since(start))
	log.Info(ctx, "standings exported",
		logger.Int("players", len(rows)),
		logger.Int("top_k", s.topK),
		logger.Any("outputs", outputs),
	)
	return outputs, nil
}
