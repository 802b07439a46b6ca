package app

import "time"

// ItemStatus is the outcome of handling one egg file.
type ItemStatus string

const (
	// StatusImported means the egg was uploaded (or would be, in dry-run).
	StatusImported ItemStatus = "imported"
	// StatusSkippedDuplicate means an egg with the same name already exists in the nest.
	StatusSkippedDuplicate ItemStatus = "skipped-duplicate"
	// StatusSkippedFiltered means the egg resolves to a nest other than the requested one.
	StatusSkippedFiltered ItemStatus = "skipped-filtered"
	// StatusFailed means the file could not be parsed or a panel call failed.
	StatusFailed ItemStatus = "failed"
)

// ItemResult describes what happened to one egg file.
type ItemResult struct {
	// Path is the file path relative to the repository root.
	Path string `json:"path" yaml:"path"`
	// Slug is the game slug the nest was resolved from.
	Slug string `json:"slug" yaml:"slug"`
	// Egg is the egg name; empty when the file was filtered or unparsable.
	Egg string `json:"egg,omitempty" yaml:"egg,omitempty"`
	// Nest is the resolved nest name.
	Nest string `json:"nest" yaml:"nest"`
	// NestID is the panel id of the nest, zero when unknown or only planned.
	NestID int `json:"nest_id,omitempty" yaml:"nest_id,omitempty"`
	// Status is the outcome.
	Status ItemStatus `json:"status" yaml:"status"`
	// Error is the failure message for StatusFailed.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
	// Err is the failure for StatusFailed.
	Err error `json:"-" yaml:"-"`
}

// NestAction records a nest created, or planned in dry-run, during the run.
type NestAction struct {
	// Name is the nest name.
	Name string `json:"name" yaml:"name"`
	// ID is the panel-assigned id, zero when planned or failed.
	ID int `json:"id,omitempty" yaml:"id,omitempty"`
	// Planned is set in dry-run mode.
	Planned bool `json:"planned,omitempty" yaml:"planned,omitempty"`
	// Error is set when creation failed.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// ImportResult contains the results of an import run.
type ImportResult struct {
	// RunID identifies the run in logs.
	RunID string `json:"run_id" yaml:"run_id"`
	// DryRun is set when no mutating call was made.
	DryRun bool `json:"dry_run" yaml:"dry_run"`
	// StartedAt and FinishedAt bound the run.
	StartedAt  time.Time `json:"started_at" yaml:"started_at"`
	FinishedAt time.Time `json:"finished_at" yaml:"finished_at"`
	// Found is the number of egg files discovered.
	Found int `json:"found" yaml:"found"`
	// Nests lists the nests created or planned.
	Nests []NestAction `json:"nests,omitempty" yaml:"nests,omitempty"`
	// Items holds one entry per egg file, in processing order.
	Items []ItemResult `json:"items" yaml:"items"`

	Imported         int `json:"imported" yaml:"imported"`
	SkippedDuplicate int `json:"skipped_duplicate" yaml:"skipped_duplicate"`
	SkippedFiltered  int `json:"skipped_filtered" yaml:"skipped_filtered"`
	Failed           int `json:"failed" yaml:"failed"`
}

// Skipped returns the number of items skipped for any reason.
func (r *ImportResult) Skipped() int {
	return r.SkippedDuplicate + r.SkippedFiltered
}

// Matched returns the number of items not excluded by the nest filter.
func (r *ImportResult) Matched() int {
	return len(r.Items) - r.SkippedFiltered
}

// NestsCreated returns the names of nests created (or planned) successfully.
func (r *ImportResult) NestsCreated() []string {
	var names []string
	for _, n := range r.Nests {
		if n.Error == "" {
			names = append(names, n.Name)
		}
	}
	return names
}

// add appends an item and updates the counters.
func (r *ImportResult) add(item ItemResult) {
	if item.Err != nil {
		item.Error = item.Err.Error()
	}
	switch item.Status {
	case StatusImported:
		r.Imported++
	case StatusSkippedDuplicate:
		r.SkippedDuplicate++
	case StatusSkippedFiltered:
		r.SkippedFiltered++
	case StatusFailed:
		r.Failed++
	}
	r.Items = append(r.Items, item)
}
