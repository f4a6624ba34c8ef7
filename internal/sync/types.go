// Package sync copies the packaged editor and workspace configuration templates
// into a project directory. Discovery builds a list of Tasks from the template
// source; Apply resolves conflicts through a Confirmer and copies each task,
// reporting one Result per task.
package sync

import "fmt"

// Task is a single file to copy from the template source into the project.
type Task struct {
	// SourcePath is the slash-separated path inside the template source filesystem
	// (e.g. "src/.vscode/settings.json").
	SourcePath string
	// DestPath is the path inside the project filesystem (e.g. ".vscode/settings.json").
	DestPath string
	// DisplayName is the label used in prompts and status lines.
	DisplayName string
}

// Outcome is the terminal state of a Task after Apply.
type Outcome int

const (
	// Copied means the source was written to the destination.
	Copied Outcome = iota
	// Skipped means the destination existed and the overwrite was declined.
	Skipped
	// Failed means the copy was attempted and did not succeed.
	Failed
)

// String returns the status word printed for an outcome.
func (o Outcome) String() string {
	switch o {
	case Copied:
		return "created"
	case Skipped:
		return "skipped"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Result records what happened to one Task.
type Result struct {
	Task    Task
	Outcome Outcome
	// Err is set when Outcome is Failed.
	Err error
}

// Summary aggregates the results of a run in task order.
type Summary struct {
	Results []Result
}

// Count returns the number of results with the given outcome.
func (s Summary) Count(o Outcome) int {
	n := 0
	for _, r := range s.Results {
		if r.Outcome == o {
			n++
		}
	}
	return n
}

// Reporter receives progress events from Apply.
type Reporter interface {
	// Start is called once before the first task.
	Start()
	// Report is called once per task, in order.
	Report(Result)
	// Finish is called after the last task.
	Finish(Summary)
	// Empty is called instead of Start/Finish when there is nothing to sync.
	Empty()
}
