package processor

import (
	"fmt"
	"runtime"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/gabriel-briffe/openaip-airspace/internal/geo"
	"github.com/gabriel-briffe/openaip-airspace/internal/openair"
)

// ProcessFile converts one OpenAir file into canonical features. The
// returned report always describes what happened, including on failure.
// File-level failures (syntax errors, broken block structure, strict-mode
// repairs) leave the collection empty; block-level failures drop only the
// offending block.
func ProcessFile(name, content string, strict bool) (geo.FeatureCollection, FileReport) {
	report := FileReport{File: name}
	fc := geo.NewFeatureCollection()

	lines := openair.SplitLines(content)
	if err := openair.ValidateLines(lines); err != nil {
		report.Error = fmt.Sprintf("syntax validation: %v", err)
		return fc, report
	}

	blocks, repairs, err := openair.Segment(lines)
	if err != nil {
		report.Repairs = repairs
		report.Error = fmt.Sprintf("segmentation: %v", err)
		return fc, report
	}
	report.Repairs = repairs
	report.Blocks = len(blocks)

	if strict && len(repairs) > 0 {
		report.Error = fmt.Sprintf("strict mode: %d repairs required", len(repairs))
		return fc, report
	}

	// Blocks are independent once segmented: parser state never crosses
	// block boundaries. Build them in parallel, reassemble in file order.
	results := make([]blockResult, len(blocks))

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, b := range blocks {
		i, b := i, b
		g.Go(func() error {
			results[i] = buildBlock(b)
			return nil
		})
	}
	_ = g.Wait() // workers report through results, never an error

	for _, r := range results {
		report.Warnings = append(report.Warnings, r.warnings...)
		if r.failure != nil {
			report.DroppedBlocks = append(report.DroppedBlocks, *r.failure)
			log.Warn().
				Str("file", name).
				Str("block", r.failure.Block).
				Str("reason", r.failure.Reason).
				Msg("Dropped airspace block")
			continue
		}
		fc.Features = append(fc.Features, *r.feature)
	}
	report.Features = len(fc.Features)

	log.Info().
		Str("file", name).
		Int("blocks", report.Blocks).
		Int("features", report.Features).
		Int("repairs", len(report.Repairs)).
		Msg("File converted")

	return fc, report
}

type blockResult struct {
	feature  *geo.Feature
	failure  *BlockFailure
	warnings []string
}

func buildBlock(b openair.Block) (r blockResult) {
	rec, err := NormalizeRecord(b)
	if err != nil {
		r.failure = &BlockFailure{Block: b.Name(), Line: b.StartLine(), Reason: err.Error()}
		return r
	}

	ring, warnings, err := BuildRing(b)
	r.warnings = warnings
	if err != nil {
		r.failure = &BlockFailure{Block: b.Name(), Line: b.StartLine(), Reason: err.Error()}
		return r
	}

	r.feature = &geo.Feature{
		Type: "Feature",
		Properties: geo.Properties{
			Name:    rec.Name,
			Class:   rec.Class,
			Floor:   rec.Floor,
			Ceiling: rec.Ceiling,
			Source:  geo.SourcePrimary,
		},
		Geometry: geo.NewPolygon(ring),
	}
	return r
}
