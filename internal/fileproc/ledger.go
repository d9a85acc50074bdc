package fileproc

import "sort"

// LargestFile names one entry in a SizeLedger's top-N tracker.
type LargestFile struct {
	RelPath string
	Size    int64
}

// topN bounds how many largest-file entries a SizeLedger retains.
const topN = 10

// SizeLedger accumulates the running total of bytes emitted as content and
// tracks the largest files seen, regardless of mode, so the oversize
// diagnostic remains meaningful even in list-only mode. It is owned
// exclusively by the orchestrator for the duration of one read_context call
// and passed by reference through the walker rather than copied.
type SizeLedger struct {
	total   int64
	largest []LargestFile
}

// NewSizeLedger returns an empty ledger.
func NewSizeLedger() *SizeLedger {
	return &SizeLedger{}
}

// Add records one entry's raw size against the ledger. addToTotal controls
// whether size counts toward the aggregate that size_limit_bytes is checked
// against; it is true in content mode and false in list-only mode. The
// largest-files tracker always records raw size.
func (l *SizeLedger) Add(relPath string, size int64, addToTotal bool) {
	if addToTotal {
		l.total += size
	}
	l.recordLargest(relPath, size)
}

func (l *SizeLedger) recordLargest(relPath string, size int64) {
	l.largest = append(l.largest, LargestFile{RelPath: relPath, Size: size})
	sort.Slice(l.largest, func(i, j int) bool {
		if l.largest[i].Size != l.largest[j].Size {
			return l.largest[i].Size > l.largest[j].Size
		}
		return l.largest[i].RelPath < l.largest[j].RelPath
	})
	if len(l.largest) > topN {
		l.largest = l.largest[:topN]
	}
}

// Total reports the running aggregate of content-mode bytes.
func (l *SizeLedger) Total() int64 {
	return l.total
}

// Largest returns the top files seen so far, sorted descending by size with
// ascending lexicographic path as the tie-break.
func (l *SizeLedger) Largest() []LargestFile {
	out := make([]LargestFile, len(l.largest))
	copy(out, l.largest)
	return out
}
