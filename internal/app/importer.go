package app

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/tacogips/egg-import/internal/debug"
	"github.com/tacogips/egg-import/internal/egg"
	"github.com/tacogips/egg-import/internal/panel"
)

// Panel is the part of the panel API the importer uses.
type Panel interface {
	ListNests(ctx context.Context) ([]panel.Nest, error)
	CreateNest(ctx context.Context, name, description string) (*panel.Nest, error)
	ListEggs(ctx context.Context, nestID int) ([]panel.Egg, error)
	ImportEgg(ctx context.Context, nestID int, raw json.RawMessage) (*panel.Egg, error)
}

// ImportOptions contains options for an import run.
type ImportOptions struct {
	// RepoRoot is the egg repository root to scan.
	RepoRoot string
	// NestName, when set, restricts the run to eggs resolving to this nest.
	NestName string
	// DryRun plans nest creation and uploads without issuing them.
	DryRun bool
	// Delay separates successive upload calls.
	Delay time.Duration
	// Progress, if set, is called with every item as soon as it is handled.
	Progress func(ItemResult)
	// Sleep waits between uploads. Defaults to a context-aware timer.
	Sleep func(ctx context.Context, d time.Duration) error
}

// NestDescription is the description given to nests the importer creates.
func NestDescription(nest string) string {
	return fmt.Sprintf("%s: auto-created by egg-import", nest)
}

// importer holds the in-run view of panel state. It is discarded after Import.
type importer struct {
	client Panel
	opts   ImportOptions
	log    *zap.Logger
	result *ImportResult

	nestsLoaded bool
	nestIDs     map[string]int
	planned     map[string]bool
	failedNests map[string]error
	eggNames    map[string]map[string]bool
	uploads     int
}

// Import discovers egg files under opts.RepoRoot and imports them into the
// panel one at a time. Per-item problems are recorded in the result; the
// returned error is reserved for failures that stop the run (discovery,
// nest listing outside dry-run, cancellation). The result is non-nil even
// when an error is returned.
func Import(ctx context.Context, client Panel, opts ImportOptions) (*ImportResult, error) {
	runID := ulid.Make().String()
	result := &ImportResult{
		RunID:     runID,
		DryRun:    opts.DryRun,
		StartedAt: time.Now(),
		Items:     []ItemResult{},
	}
	defer func() { result.FinishedAt = time.Now() }()

	if opts.Sleep == nil {
		opts.Sleep = sleepContext
	}

	imp := &importer{
		client:      client,
		opts:        opts,
		log:         debug.Logger().With(zap.String("run_id", runID)),
		result:      result,
		nestIDs:     make(map[string]int),
		planned:     make(map[string]bool),
		failedNests: make(map[string]error),
		eggNames:    make(map[string]map[string]bool),
	}

	debug.DebugSection("[app] Import workflow start")
	debug.DebugValue("[app] RunID", runID)
	debug.DebugValue("[app] RepoRoot", opts.RepoRoot)
	debug.DebugValue("[app] NestName", opts.NestName)
	debug.DebugValue("[app] DryRun", opts.DryRun)
	debug.DebugValue("[app] Delay", opts.Delay)

	files, err := egg.Discover(opts.RepoRoot)
	if err != nil {
		return result, NewDiscoveryError(opts.RepoRoot, err)
	}
	result.Found = len(files)

	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return result, NewCancelledError(err)
		}
		if err := imp.handle(ctx, f); err != nil {
			return result, err
		}
	}

	imp.log.Debug("import finished",
		zap.Int("found", result.Found),
		zap.Int("imported", result.Imported),
		zap.Int("skipped_duplicate", result.SkippedDuplicate),
		zap.Int("skipped_filtered", result.SkippedFiltered),
		zap.Int("failed", result.Failed),
	)
	return result, nil
}

// handle processes one file. It returns an error only when the run must stop.
func (imp *importer) handle(ctx context.Context, f egg.File) error {
	item := ItemResult{
		Path: f.RelPath,
		Slug: f.Slug,
		Nest: f.Nest(),
	}

	if imp.opts.NestName != "" && item.Nest != imp.opts.NestName {
		debug.Debug("[app] %s resolves to %q, filtered", f.RelPath, item.Nest)
		imp.report(item, StatusSkippedFiltered, nil)
		return nil
	}

	def, err := egg.Load(f)
	if err != nil {
		imp.report(item, StatusFailed, err)
		return nil
	}
	item.Egg = def.Name

	if err := imp.loadNests(ctx); err != nil {
		return err
	}

	nestID, err := imp.ensureNest(ctx, item.Nest)
	if err != nil {
		imp.report(item, StatusFailed, err)
		return nil
	}
	item.NestID = nestID

	known := imp.knownEggs(ctx, item.Nest, nestID)
	if known[def.Name] {
		debug.Debug("[app] %s: egg %q already exists in %q", f.RelPath, def.Name, item.Nest)
		imp.report(item, StatusSkippedDuplicate, nil)
		return nil
	}

	if imp.opts.DryRun {
		known[def.Name] = true
		imp.report(item, StatusImported, nil)
		return nil
	}

	if imp.uploads > 0 {
		if err := imp.opts.Sleep(ctx, imp.opts.Delay); err != nil {
			return NewCancelledError(err)
		}
	}
	imp.uploads++

	if _, err := imp.client.ImportEgg(ctx, nestID, def.Raw); err != nil {
		imp.report(item, StatusFailed, NewUploadError(f.RelPath, item.Nest, err))
		return nil
	}

	known[def.Name] = true
	imp.report(item, StatusImported, nil)
	return nil
}

// loadNests fetches the existing nests once per run.
func (imp *importer) loadNests(ctx context.Context) error {
	if imp.nestsLoaded {
		return nil
	}

	nests, err := imp.client.ListNests(ctx)
	if err != nil {
		if !imp.opts.DryRun {
			return NewNestListError(err)
		}
		imp.log.Warn("could not reach panel, assuming no nests exist", zap.Error(err))
		nests = nil
	}

	for _, n := range nests {
		if _, dup := imp.nestIDs[n.Name]; !dup {
			imp.nestIDs[n.Name] = n.ID
		}
	}
	imp.nestsLoaded = true

	debug.Debug("[app] Found %d existing nest(s)", len(imp.nestIDs))
	return nil
}

// ensureNest returns the id of the named nest, creating it when missing.
// Planned nests in dry-run have id zero.
func (imp *importer) ensureNest(ctx context.Context, name string) (int, error) {
	if id, ok := imp.nestIDs[name]; ok {
		return id, nil
	}
	if imp.planned[name] {
		return 0, nil
	}
	if err, ok := imp.failedNests[name]; ok {
		return 0, err
	}

	if imp.opts.DryRun {
		imp.planned[name] = true
		imp.result.Nests = append(imp.result.Nests, NestAction{Name: name, Planned: true})
		debug.Debug("[app] Would create nest %q", name)
		return 0, nil
	}

	nest, err := imp.client.CreateNest(ctx, name, NestDescription(name))
	if err != nil {
		createErr := NewNestCreateError(name, err)
		imp.failedNests[name] = createErr
		imp.result.Nests = append(imp.result.Nests, NestAction{Name: name, Error: err.Error()})
		imp.log.Warn("nest creation failed", zap.String("nest", name), zap.Error(err))
		return 0, createErr
	}

	imp.nestIDs[name] = nest.ID
	imp.result.Nests = append(imp.result.Nests, NestAction{Name: name, ID: nest.ID})
	debug.Debug("[app] Created nest %q with id=%d", name, nest.ID)
	return nest.ID, nil
}

// knownEggs returns the egg names in the nest, listing them on first use.
// A listing failure is logged and treated as an empty nest.
func (imp *importer) knownEggs(ctx context.Context, nest string, nestID int) map[string]bool {
	if names, ok := imp.eggNames[nest]; ok {
		return names
	}

	names := make(map[string]bool)
	imp.eggNames[nest] = names

	if imp.planned[nest] {
		return names
	}

	eggs, err := imp.client.ListEggs(ctx, nestID)
	if err != nil {
		imp.log.Warn("could not list eggs, duplicates will not be detected",
			zap.String("nest", nest), zap.Int("nest_id", nestID), zap.Error(err))
		return names
	}
	for _, e := range eggs {
		names[e.Name] = true
	}
	return names
}

// report records the item outcome and forwards it to the progress callback.
func (imp *importer) report(item ItemResult, status ItemStatus, err error) {
	item.Status = status
	item.Err = err
	imp.result.add(item)

	if err != nil {
		imp.log.Debug("item failed", zap.String("path", item.Path), zap.String("nest", item.Nest), zap.Error(err))
	}
	if imp.opts.Progress != nil {
		imp.opts.Progress(imp.result.Items[len(imp.result.Items)-1])
	}
}

// sleepContext waits for d or until ctx is done.
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
