package alibi

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/thomas-vilte/mischief/internal/errors"
	"github.com/thomas-vilte/mischief/internal/logger"
)

// timestampLayout is the ISO-8601 UTC form written into work files.
const timestampLayout = "2006-01-02T15:04:05.000Z"

type GitClient interface {
	HeadCommit(ctx context.Context) (string, error)
	AddFileToStaging(ctx context.Context, file string) error
	CommitFileAt(ctx context.Context, file, message string, when time.Time) error
	ResetMixed(ctx context.Context, ref string) error
	DeleteHead(ctx context.Context) error
	RemoveFromIndex(ctx context.Context, files []string) error
}

type Status string

const (
	StatusDone    Status = "done"
	StatusFailed  Status = "failed"
	StatusSkipped Status = "skipped"
)

// Policy says what happens to finished commits when a later one fails.
type Policy string

const (
	PolicyKeep     Policy = "keep"
	PolicyRollback Policy = "rollback"
)

func ParsePolicy(s string) (Policy, error) {
	switch Policy(strings.ToLower(strings.TrimSpace(s))) {
	case "", PolicyKeep:
		return PolicyKeep, nil
	case PolicyRollback:
		return PolicyRollback, nil
	default:
		return "", errors.ErrInvalidPolicy.WithContext("policy", s)
	}
}

type StepResult struct {
	Index  int
	Entry  PlanEntry
	File   string
	Status Status
	Err    error

	written  bool
	existed  bool
	previous []byte
}

// Report describes one fabrication run. StartHead is empty when the branch
// had no commits yet.
type Report struct {
	StartHead string
	Steps     []StepResult

	createdDir string
}

func (r Report) Done() int {
	n := 0
	for _, s := range r.Steps {
		if s.Status == StatusDone {
			n++
		}
	}
	return n
}

// Failed returns the failing step, or nil when every step finished.
func (r Report) Failed() *StepResult {
	for i := range r.Steps {
		if r.Steps[i].Status == StatusFailed {
			return &r.Steps[i]
		}
	}
	return nil
}

// Fabricator turns a plan into real backdated commits, one at a time.
type Fabricator struct {
	git       GitClient
	root      string
	markerDir string
	delay     time.Duration
}

// NewFabricator writes work files under root/markerDir. root must be the
// directory git runs in.
func NewFabricator(git GitClient, root, markerDir string, delay time.Duration) *Fabricator {
	return &Fabricator{
		git:       git,
		root:      root,
		markerDir: markerDir,
		delay:     delay,
	}
}

// WorkFileContent is the body of the file committed for entry.
func WorkFileContent(entry PlanEntry) string {
	return fmt.Sprintf("%s\n\nTimestamp: %s\n", entry.Message, entry.Timestamp.UTC().Format(timestampLayout))
}

// Fabricate writes, stages and commits each entry in order. The first
// failure stops the run: that step is marked failed, the rest skipped, and
// its error is returned alongside the report. Finished commits are left in
// place; see Rollback.
func (f *Fabricator) Fabricate(ctx context.Context, plan []PlanEntry) (Report, error) {
	log := logger.FromContext(ctx)

	head, err := f.git.HeadCommit(ctx)
	if err != nil {
		return Report{}, err
	}
	report := Report{StartHead: head, Steps: make([]StepResult, len(plan))}

	dir := filepath.Join(f.root, f.markerDir)
	if _, statErr := os.Stat(dir); os.IsNotExist(statErr) {
		report.createdDir = dir
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		werr := errors.ErrWriteMarker.WithError(err).WithContext("path", dir)
		for i, entry := range plan {
			report.Steps[i] = StepResult{Index: i, Entry: entry, Status: StatusSkipped}
		}
		if len(plan) > 0 {
			report.Steps[0].Status = StatusFailed
			report.Steps[0].Err = werr
		}
		return report, werr
	}

	var failure error
	for i, entry := range plan {
		step := &report.Steps[i]
		step.Index = i
		step.Entry = entry
		step.File = filepath.ToSlash(filepath.Join(f.markerDir, fmt.Sprintf("work-%d.txt", i+1)))

		if failure != nil {
			step.Status = StatusSkipped
			continue
		}

		if err := f.commitStep(ctx, step); err != nil {
			step.Status = StatusFailed
			step.Err = err
			failure = err
			log.Warn("fabrication step failed", "step", i+1, "file", step.File, "error", err)
			continue
		}
		step.Status = StatusDone
		log.Debug("commit fabricated", "step", i+1, "at", entry.Timestamp.Format(time.RFC3339))

		if i < len(plan)-1 && f.delay > 0 {
			select {
			case <-ctx.Done():
			case <-time.After(f.delay):
			}
		}
	}

	return report, failure
}

func (f *Fabricator) commitStep(ctx context.Context, step *StepResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path := filepath.Join(f.root, filepath.FromSlash(step.File))
	if prev, err := os.ReadFile(path); err == nil {
		step.existed = true
		step.previous = prev
	}

	if err := os.WriteFile(path, []byte(WorkFileContent(step.Entry)), 0644); err != nil {
		return errors.ErrWriteMarker.WithError(err).WithContext("file", step.File)
	}
	step.written = true

	if err := f.git.AddFileToStaging(ctx, step.File); err != nil {
		return err
	}
	return f.git.CommitFileAt(ctx, step.File, step.Entry.Message, step.Entry.Timestamp)
}

// Rollback puts the branch, the index and the work files back the way they
// were before report's run.
func (f *Fabricator) Rollback(ctx context.Context, report *Report) error {
	var files []string
	for _, s := range report.Steps {
		if s.written {
			files = append(files, s.File)
		}
	}

	if report.StartHead != "" {
		if err := f.git.ResetMixed(ctx, report.StartHead); err != nil {
			return err
		}
	} else {
		if report.Done() > 0 {
			if err := f.git.DeleteHead(ctx); err != nil {
				return err
			}
		}
		if err := f.git.RemoveFromIndex(ctx, files); err != nil {
			return err
		}
	}

	for _, s := range report.Steps {
		if !s.written {
			continue
		}
		path := filepath.Join(f.root, filepath.FromSlash(s.File))
		var err error
		if s.existed {
			err = os.WriteFile(path, s.previous, 0644)
		} else {
			err = os.Remove(path)
		}
		if err != nil && !os.IsNotExist(err) {
			return errors.ErrRollback.WithError(err).WithContext("file", s.File)
		}
	}

	if report.createdDir != "" {
		_ = os.Remove(report.createdDir)
	}

	logger.FromContext(ctx).Info("fabrication rolled back", "files", len(files), "head", report.StartHead)
	return nil
}
