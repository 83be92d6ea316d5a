package convert

import (
	"fmt"
	"os"
)

// Result is the outcome of converting one source file.
type Result struct {
	Source  SourceFile
	Outputs []string
	Err     error
}

// Runner processes a batch of source files sequentially, one file fully
// read and written before the next. Per-file failures are recorded and
// the batch continues; fatal errors stop it.
type Runner struct {
	opt Options

	// OnFile, if set, is called after each file finishes (progress hook).
	OnFile func(Result)
}

func NewRunner(opt Options) *Runner {
	return &Runner{opt: opt.withDefaults()}
}

// Run converts each file in order. The returned results cover every file
// attempted, including the one that caused a fatal stop.
func (r *Runner) Run(files []SourceFile) ([]Result, error) {
	results := make([]Result, 0, len(files))
	for _, src := range files {
		outs, err := Convert(src, r.opt)
		res := Result{Source: src, Outputs: outs, Err: err}
		results = append(results, res)
		if r.OnFile != nil {
			r.OnFile(res)
		}
		if IsFatal(err) {
			return results, err
		}
	}
	return results, nil
}

// Summary tallies a finished run.
type Summary struct {
	Succeeded   int
	Failed      int
	FailedPaths []string
}

func Summarize(results []Result) Summary {
	var s Summary
	for _, r := range results {
		if r.Err == nil {
			s.Succeeded++
		} else {
			s.Failed++
			s.FailedPaths = append(s.FailedPaths, r.Source.Path)
		}
	}
	return s
}

// DeleteSources removes the source file of every successful result.
// Failed conversions keep their sources. Removal errors are returned but
// never undo prior deletions or written output.
func DeleteSources(results []Result) []error {
	var errs []error
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		if err := os.Remove(r.Source.Path); err != nil {
			errs = append(errs, fmt.Errorf("delete %q: %w", r.Source.Path, err))
		}
	}
	return errs
}
