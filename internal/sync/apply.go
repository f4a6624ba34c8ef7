package sync

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-git/go-billy/v5"

	"github.com/arvinn/vscode-settings/internal/log"
)

// ConflictMessage is the overwrite question asked for an existing destination.
func ConflictMessage(displayName string) string {
	return fmt.Sprintf("Config file '%s' already exists. Overwrite?", displayName)
}

// Runner synchronizes the template source into a project.
// Tasks are processed one at a time; the prompt for one task completes before
// the next task starts.
type Runner struct {
	// Source holds the templates, rooted at the tool's installation root.
	Source fs.FS
	// Project is rooted at the directory being synced into.
	Project billy.Filesystem
	// Confirmer decides conflicts. A nil Confirmer declines every overwrite.
	Confirmer Confirmer
	// Reporter receives status events. May be nil.
	Reporter Reporter
}

// Run discovers tasks and applies them. Discovery errors abort the run before
// anything is copied. When there is nothing to sync, the reporter's Empty is
// called and an empty summary is returned.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	tasks, err := Discover(r.Source, r.Project)
	if err != nil {
		return Summary{}, err
	}
	if len(tasks) == 0 {
		r.reporter().Empty()
		return Summary{}, nil
	}
	return r.Apply(ctx, tasks)
}

// Apply resolves and copies each task in order. Per-task failures are recorded
// in the summary and never stop the loop; only context cancellation does, in
// which case the partial summary is returned with the context error.
func (r *Runner) Apply(ctx context.Context, tasks []Task) (Summary, error) {
	rep := r.reporter()
	summary := Summary{Results: make([]Result, 0, len(tasks))}

	rep.Start()
	for _, t := range tasks {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		res := r.applyOne(t)
		summary.Results = append(summary.Results, res)
		rep.Report(res)
	}
	rep.Finish(summary)

	return summary, nil
}

func (r *Runner) applyOne(t Task) Result {
	logger := log.WithComponent("sync")

	perm := os.FileMode(filePerm)
	dest := LookupProject(r.Project, t.DestPath)
	switch dest.State {
	case LookupFailed:
		return Result{Task: t, Outcome: Failed, Err: dest.Err}
	case Found:
		logger.Debug().Str("dest", t.DestPath).Msg("destination exists")
		if !r.confirm(t) {
			return Result{Task: t, Outcome: Skipped}
		}
		// An overwrite keeps the mode of the file it replaces.
		perm = dest.Info.Mode().Perm()
	}

	n, err := copyFile(r.Source, r.Project, t, perm)
	if err != nil {
		logger.Debug().Err(err).Str("dest", t.DestPath).Msg("copy failed")
		return Result{Task: t, Outcome: Failed, Err: err}
	}
	logger.Debug().Str("dest", t.DestPath).Int64("bytes", n).Msg("copied")
	return Result{Task: t, Outcome: Copied}
}

func (r *Runner) confirm(t Task) bool {
	if r.Confirmer == nil {
		return false
	}
	ok, err := r.Confirmer.Confirm(ConflictMessage(t.DisplayName))
	if err != nil {
		logger := log.WithComponent("sync")
		ev := logger.Debug().Str("dest", t.DestPath)
		if errors.Is(err, ErrNoAnswer) {
			ev.Msg("prompt ended without an answer, keeping file")
		} else {
			ev.Err(err).Msg("prompt failed, keeping file")
		}
		return false
	}
	return ok
}

func (r *Runner) reporter() Reporter {
	if r.Reporter == nil {
		return nopReporter{}
	}
	return r.Reporter
}

type nopReporter struct{}

func (nopReporter) Start()         {}
func (nopReporter) Report(Result)  {}
func (nopReporter) Finish(Summary) {}
func (nopReporter) Empty()         {}
