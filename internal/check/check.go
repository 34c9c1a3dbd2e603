// Package check runs one QA pass over a standards workbook and a vessel
// report workbook.
package check

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/vessel-qa/internal/config"
	"github.com/sells-group/vessel-qa/internal/fuzzy"
	"github.com/sells-group/vessel-qa/internal/qa"
	"github.com/sells-group/vessel-qa/internal/workbook"
)

// Options tunes the matching cutoffs.
type Options struct {
	ProductCutoff   float64
	ParameterCutoff float64
}

// defaultOptions returns the standard cutoffs.
func defaultOptions() Options {
	return Options{ProductCutoff: fuzzy.ProductCutoff, ParameterCutoff: fuzzy.ParameterCutoff}
}

// OptionsFromConfig reads the cutoffs from the match config.
func OptionsFromConfig(cfg config.MatchConfig) Options {
	return Options{ProductCutoff: cfg.ProductCutoff, ParameterCutoff: cfg.ParameterCutoff}
}

// ErrInvalidPeriod is returned when a period is blank or contains a path
// separator.
var ErrInvalidPeriod = eris.New("check: invalid period")

var validate = validator.New()

type periodInput struct {
	Period string `validate:"required,excludesall=/\\"`
}

// ValidatePeriod checks that period is usable in a report file name.
func ValidatePeriod(period string) error {
	if err := validate.Struct(periodInput{Period: strings.TrimSpace(period)}); err != nil {
		return eris.Wrapf(ErrInvalidPeriod, "check: period %q", period)
	}
	return nil
}

// Result is a finished QA run.
type Result struct {
	ID       string     `json:"id" yaml:"id"`
	Period   string     `json:"period" yaml:"period"`
	FileName string     `json:"file_name" yaml:"file_name"`
	Report   *qa.Report `json:"report" yaml:"report"`
}

// Run loads both workbooks and evaluates the vessel report against the
// standards. Unreadable input aborts the run; sheets and rows that cannot
// be evaluated only produce diagnostics.
func Run(ctx context.Context, standards, vessel workbook.Source, period string, opts Options) (*Result, error) {
	if err := ValidatePeriod(period); err != nil {
		return nil, err
	}

	id := uuid.New().String()
	log := zap.L().With(zap.String("report_id", id), zap.String("period", period))

	in, err := workbook.LoadPair(ctx, standards, vessel)
	if err != nil {
		return nil, eris.Wrap(err, "check: load inputs")
	}

	catalog := qa.NewCatalog(in.Standards)
	log.Info("check: standards loaded",
		zap.Int("products", catalog.Len()),
		zap.String("keys", catalog.String()),
	)

	engine := qa.NewEngine(catalog,
		qa.WithProductCutoff(opts.ProductCutoff),
		qa.WithParameterCutoff(opts.ParameterCutoff),
		qa.WithLogger(log),
	)
	report := engine.Run(in.Vessel)

	for _, d := range report.SkippedSheets() {
		log.Warn("check: sheet not evaluated",
			zap.String("sheet", d.Sheet),
			zap.String("reason", string(d.Reason)),
		)
	}

	return &Result{
		ID:       id,
		Period:   period,
		FileName: workbook.ReportFileName(period),
		Report:   report,
	}, nil
}
