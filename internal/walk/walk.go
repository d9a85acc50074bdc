// Package walk implements the Context Walker: the depth-first, top-down
// descent of a single walk target that composes rule layers per directory,
// prunes excluded subtrees, and hands included files to a sink.
package walk

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/harvestcx/harvestcx/internal/classify"
	"github.com/harvestcx/harvestcx/internal/obs"
	"github.com/harvestcx/harvestcx/internal/ruleset"
)

// ErrCancelled is returned by Walk when the caller's cancellation check
// reports true at a directory boundary.
var ErrCancelled = errors.New("walk: cancelled")

// Sink receives every file the walker decides to include, already passed
// through the Binary Classifier. The walker calls Sink.File once per
// included file, in visitation order.
type Sink interface {
	File(absPath, relToTarget string, size int64) error
}

// Config configures one descent of a walk target.
type Config struct {
	// Target is the absolute directory the descent starts from. Rule
	// discovery and matching are relative to Target.
	Target string

	// OverrideActive and OverrideLayer implement the "override rules
	// replace every other rule source" invariant. When OverrideActive is
	// true, Defaults and discovered .gitignore/.contextfiles never
	// participate.
	OverrideActive bool
	OverrideLayer  ruleset.RuleLayer

	// ExplicitFiles and ExplicitDirs are paths (relative to Target, forward
	// slash separated) that were themselves named as caller targets nested
	// under this walk target. They bypass rule classification: files are
	// always included, directories are always descended.
	ExplicitFiles map[string]bool
	ExplicitDirs  map[string]bool

	// Cancelled is polled at each directory boundary, giving a cooperative
	// cancellation model at directory granularity. A nil func means
	// cancellation is never observed.
	Cancelled func() bool

	// OnClassify, when non-nil, is called with the provenance of every
	// rule-based classification decision (explicit-target bypasses are not
	// reported). This backs debug_explain; it is nil on the hot path.
	OnClassify func(relToTarget string, isDir bool, info ruleset.MatchInfo)
}

// Walker drives one Config's descent.
type Walker struct {
	logger *slog.Logger
}

// New returns a Walker.
func New() *Walker {
	return &Walker{logger: obs.NewLogger("walk")}
}

// Walk descends cfg.Target, calling sink.File for every included,
// non-binary file. Returns ErrCancelled if cfg.Cancelled reported true at
// some directory boundary.
func (w *Walker) Walk(ctx context.Context, cfg Config, sink Sink) error {
	var base []ruleset.RuleLayer
	if cfg.OverrideActive {
		base = []ruleset.RuleLayer{cfg.OverrideLayer}
	} else {
		base = []ruleset.RuleLayer{ruleset.NewDefaultsLayer()}
	}
	return w.descend(ctx, cfg, sink, "", base)
}

// descend processes the directory at relDir (relative to cfg.Target, ""
// meaning cfg.Target itself), given the layer stack inherited from its
// ancestors. It pushes this directory's own discovered layers, builds the
// EffectiveSpec, recurses into subdirectories, and pops what it pushed
// before returning, so a sibling subtree never sees a descendant's layers.
func (w *Walker) descend(ctx context.Context, cfg Config, sink Sink, relDir string, inherited []ruleset.RuleLayer) error {
	if cfg.Cancelled != nil && cfg.Cancelled() {
		return ErrCancelled
	}
	select {
	case <-ctx.Done():
		return ErrCancelled
	default:
	}

	absDir := filepath.Join(cfg.Target, filepath.FromSlash(relDir))

	entries, err := os.ReadDir(absDir)
	if err != nil {
		w.logger.Debug("read dir failed", "dir", absDir, "error", err)
		return nil
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	stack := inherited
	if !cfg.OverrideActive {
		if gi, ok := ruleset.DiscoverGitignore(absDir, relDir); ok {
			stack = append(stack, gi)
		}
		if cf, ok := ruleset.DiscoverContextfile(absDir, relDir); ok {
			stack = append(stack, cf)
		}
	}
	spec := ruleset.Compile(stack)

	for _, entry := range entries {
		relPath := entry.Name()
		if relDir != "" {
			relPath = relDir + "/" + entry.Name()
		}

		info, err := entry.Info()
		if err != nil {
			w.logger.Debug("stat entry failed", "path", relPath, "error", err)
			continue
		}
		if info.Mode()&os.ModeSymlink != 0 {
			w.logger.Debug("skipping symlink", "path", relPath)
			continue
		}

		if entry.IsDir() {
			explicit := cfg.ExplicitDirs[relPath]
			if !explicit {
				info := spec.ClassifyExplain(relPath, true)
				if cfg.OnClassify != nil {
					cfg.OnClassify(relPath, true, info)
				}
				if info.Classification == ruleset.Excluded {
					continue
				}
			}
			if err := w.descend(ctx, cfg, sink, relPath, stack); err != nil {
				return err
			}
			continue
		}

		explicit := cfg.ExplicitFiles[relPath]
		if !explicit {
			info := spec.ClassifyExplain(relPath, false)
			if cfg.OnClassify != nil {
				cfg.OnClassify(relPath, false, info)
			}
			if info.Classification == ruleset.Excluded {
				continue
			}
		}

		absPath := filepath.Join(cfg.Target, filepath.FromSlash(relPath))
		if classify.IsBinary(absPath) {
			w.logger.Debug("skipping binary file", "path", relPath)
			continue
		}

		if err := sink.File(absPath, relPath, info.Size()); err != nil {
			return err
		}
	}

	return nil
}
