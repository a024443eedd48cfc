// harness/runner.go
// Package: harness
package harness

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/mwiater/msprofstat/internal/logger"
	"github.com/mwiater/msprofstat/internal/trace"
)

// RunScrapeSuite is the single exported entrypoint. It discovers the run
// directories under cfg.Root, extracts one latency per run and aggregates
// them. Missing roots, unreadable files and unmatched runs all yield a
// well-formed result; the only error is a config without a root.
func RunScrapeSuite(cfg SuiteConfig) (SuiteResult, error) {
	if cfg.Root == "" {
		return SuiteResult{}, errors.New("Root is required (the msprof output directory)")
	}
	if cfg.RunPrefix == "" {
		cfg.RunPrefix = trace.DefaultRunPrefix
	}
	log := logger.Get().WithField("root", cfg.Root)

	re, ok := trace.CompilePattern(cfg.Pattern)
	if !ok {
		log.WithField("pattern", cfg.Pattern).Warn("invalid row pattern, using default")
	}

	if _, err := os.Stat(cfg.Root); err != nil {
		log.WithError(err).Info("msprof root not found")
		res := buildSuiteResult(cfg, re.String(), nil)
		res.RootMissing = true
		return res, nil
	}

	runDirs := trace.DiscoverRuns(cfg.Root, cfg.RunPrefix)
	log.WithField("runs", len(runDirs)).Info("discovered run directories")

	ex := trace.NewExtractor(re)
	runs := make([]trace.Extraction, 0, len(runDirs))
	for _, dir := range runDirs {
		ext := ex.Extract(dir)
		logExtraction(log, ext)
		runs = append(runs, ext)
	}

	res := buildSuiteResult(cfg, re.String(), runs)
	log.WithField("samples", res.Aggregate.Count()).Info("scrape finished")
	return res, nil
}

func logExtraction(log *logrus.Entry, ext trace.Extraction) {
	runLog := log.WithField("run", ext.Run.Name)
	for _, s := range ext.Skips {
		fileLog := runLog.WithFields(logrus.Fields{"file": s.Path, "reason": s.Reason})
		if s.Unreadable() {
			fileLog.Warn("unreadable trace file")
			continue
		}
		fileLog.Debug("skipped trace file")
	}
	if ext.Winner == nil {
		runLog.Debug("no usable trace file")
		return
	}
	runLog.WithFields(logrus.Fields{
		"file":   ext.Winner.Path,
		"column": ext.Winner.Column.Name,
		"match":  ext.Winner.Match.String(),
		"ms":     ext.Winner.Ms,
	}).Debug("selected trace file")
}
