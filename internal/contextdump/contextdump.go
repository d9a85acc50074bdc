// Package contextdump implements the Orchestrator (C6): it validates
// inputs, partitions caller targets into files and directories, drives the
// Context Walker over each directory target, and enforces the aggregate
// size budget across the whole call.
package contextdump

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/harvestcx/harvestcx/internal/classify"
	"github.com/harvestcx/harvestcx/internal/fileproc"
	"github.com/harvestcx/harvestcx/internal/obs"
	"github.com/harvestcx/harvestcx/internal/ruleset"
	"github.com/harvestcx/harvestcx/internal/walk"
)

// DefaultSizeLimitBytes is the default aggregate budget (100 MiB), used
// when a caller passes 0 for SizeLimitBytes.
const DefaultSizeLimitBytes int64 = 100 * 1024 * 1024

// Request bundles read_context's inputs.
type Request struct {
	ProjectRoot    string
	Targets        []string
	OverrideRules  []string
	ListOnly       bool
	SizeLimitBytes int64
	DebugExplain   bool
	Cancelled      func() bool
}

// Result is read_context's successful output: the concatenated text plus,
// when Request.DebugExplain was set, the trace of every classification
// decision made along the way.
type Result struct {
	Text    string
	Explain *ExplainTrace
}

// ReadContext is the Orchestrator's public operation.
func ReadContext(ctx context.Context, req Request) (*Result, error) {
	logger := obs.NewLogger("contextdump")

	root, err := resolveRoot(req.ProjectRoot)
	if err != nil {
		return nil, newInvalidRoot(req.ProjectRoot, err)
	}

	targets := req.Targets
	if len(targets) == 0 {
		targets = []string{root}
	}

	fileTargets, dirTargets, err := partitionTargets(root, targets)
	if err != nil {
		return nil, err
	}

	overrideActive := len(req.OverrideRules) > 0
	var overrideLayer ruleset.RuleLayer
	if overrideActive {
		overrideLayer = ruleset.NewOverrideLayer(req.OverrideRules)
	}

	limit := req.SizeLimitBytes
	if limit <= 0 {
		limit = DefaultSizeLimitBytes
	}

	ledger := fileproc.NewSizeLedger()
	seen := make(map[string]bool)
	var blocks []string
	var trace *ExplainTrace
	if req.DebugExplain {
		trace = &ExplainTrace{}
	}

	emit := func(absPath, relPath string, size int64) *DumpError {
		canon, err := filepath.EvalSymlinks(absPath)
		if err != nil {
			canon = absPath
		}
		if seen[canon] {
			return nil
		}
		seen[canon] = true

		raw, err := os.ReadFile(absPath)
		if err != nil {
			logger.Debug("file read error, skipping", "path", relPath, "error", err)
			return nil
		}

		result := fileproc.Process(fileproc.EntryRecord{AbsPath: absPath, RelPath: relPath, Size: size}, raw, req.ListOnly)
		blocks = append(blocks, result.Block)
		ledger.Add(relPath, size, !req.ListOnly)

		if !req.ListOnly && ledger.Total() > limit {
			return newOversize(&OversizeDetail{
				LimitBytes:    limit,
				ObservedBytes: ledger.Total(),
				LargestFiles:  convertLargest(ledger.Largest()),
			})
		}
		return nil
	}

	for _, ft := range fileTargets {
		if classify.IsBinary(ft) {
			logger.Debug("explicit file target skipped, binary", "path", ft)
			continue
		}
		relPath := toProjectRelative(root, ft)
		if err := emit(ft, relPath, statSize(ft)); err != nil {
			return nil, err
		}
	}

	for _, dt := range dirTargets {
		explicitFiles, explicitDirs := nestedExplicitTargets(dt, fileTargets, dirTargets)
		if dumpErr := walkOneTarget(ctx, dt, root, overrideActive, overrideLayer, explicitFiles, explicitDirs, req.Cancelled, trace, emit); dumpErr != nil {
			return nil, dumpErr
		}
	}

	text := strings.Join(blocks, blockSeparator(req.ListOnly))
	return &Result{Text: text, Explain: trace}, nil
}

// blockSeparator is a blank line between content-mode blocks and nothing
// extra in list-only mode, since each listing line is already
// newline-terminated.
func blockSeparator(listOnly bool) string {
	if listOnly {
		return ""
	}
	return "\n\n"
}

func statSize(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return info.Size()
}

func resolveRoot(root string) (string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", errors.New("not a directory")
	}
	canon, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return abs, nil
	}
	return canon, nil
}

// partitionTargets resolves each target under root and splits it into
// absolute file-target and directory-target lists, failing with
// TargetOutsideRoot when a target escapes root.
func partitionTargets(root string, targets []string) (files, dirs []string, err error) {
	for _, t := range targets {
		abs := t
		if !filepath.IsAbs(abs) {
			abs = filepath.Join(root, t)
		}
		abs, statErr := filepath.Abs(abs)
		if statErr != nil {
			return nil, nil, newTargetOutsideRoot(t)
		}

		rel, relErr := filepath.Rel(root, abs)
		if relErr != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return nil, nil, newTargetOutsideRoot(t)
		}

		info, statErr := os.Stat(abs)
		if statErr != nil {
			return nil, nil, newTargetOutsideRoot(t)
		}
		if info.IsDir() {
			dirs = append(dirs, abs)
		} else {
			files = append(files, abs)
		}
	}
	return files, dirs, nil
}

// nestedExplicitTargets finds every other caller-supplied target that falls
// strictly inside dirTarget and reports it relative to dirTarget, so the
// walker can exempt it from rule classification: a path that was itself an
// explicit target always descends/includes regardless of what the rules say.
func nestedExplicitTargets(dirTarget string, fileTargets, dirTargets []string) (files, dirs map[string]bool) {
	files = make(map[string]bool)
	dirs = make(map[string]bool)
	for _, f := range fileTargets {
		if rel, ok := nestedRel(dirTarget, f); ok {
			files[rel] = true
		}
	}
	for _, d := range dirTargets {
		if d == dirTarget {
			continue
		}
		if rel, ok := nestedRel(dirTarget, d); ok {
			dirs[rel] = true
		}
	}
	return files, dirs
}

func nestedRel(base, target string) (string, bool) {
	rel, err := filepath.Rel(base, target)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return filepath.ToSlash(rel), true
}

func toProjectRelative(root, abs string) string {
	rel, err := filepath.Rel(root, abs)
	if err != nil {
		return filepath.ToSlash(abs)
	}
	return filepath.ToSlash(rel)
}

func convertLargest(in []fileproc.LargestFile) []LargestFile {
	out := make([]LargestFile, len(in))
	for i, f := range in {
		out[i] = LargestFile{RelPath: f.RelPath, Size: f.Size}
	}
	return out
}

// walkOneTarget drives the Context Walker over one directory target,
// translating walk-target-relative paths into project-root-relative ones
// before calling emit, and folding walker provenance into trace.
func walkOneTarget(ctx context.Context, target, root string, overrideActive bool, overrideLayer ruleset.RuleLayer, explicitFiles, explicitDirs map[string]bool, cancelled func() bool, trace *ExplainTrace, emit func(absPath, relPath string, size int64) *DumpError) *DumpError {
	prefix := toProjectRelative(root, target)

	sink := &walkSink{root: root, target: target, prefix: prefix, emit: emit}

	cfg := walk.Config{
		Target:         target,
		OverrideActive: overrideActive,
		OverrideLayer:  overrideLayer,
		ExplicitFiles:  explicitFiles,
		ExplicitDirs:   explicitDirs,
		Cancelled:      cancelled,
	}
	if trace != nil {
		cfg.OnClassify = func(relToTarget string, isDir bool, info ruleset.MatchInfo) {
			trace.record(joinProjectRelative(prefix, relToTarget), info)
		}
	}

	err := walk.New().Walk(ctx, cfg, sink)
	if sink.dumpErr != nil {
		return sink.dumpErr
	}
	if err == walk.ErrCancelled {
		return newCancelled()
	}
	if err != nil {
		return newRuleReadError(err)
	}
	return nil
}

func joinProjectRelative(prefix, relToTarget string) string {
	if prefix == "." || prefix == "" {
		return relToTarget
	}
	return prefix + "/" + relToTarget
}

// walkSink adapts walk.Sink to the orchestrator's project-root-relative
// emit callback, and captures the first DumpError emit produces (the
// oversize abort) so the walk can be stopped.
type walkSink struct {
	root, target, prefix string
	emit                 func(absPath, relPath string, size int64) *DumpError
	dumpErr              *DumpError
}

func (s *walkSink) File(absPath, relToTarget string, size int64) error {
	relPath := joinProjectRelative(s.prefix, relToTarget)
	if err := s.emit(absPath, relPath, size); err != nil {
		s.dumpErr = err
		return err
	}
	return nil
}
