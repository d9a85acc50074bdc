package fileproc

import "github.com/zeebo/xxh3"

// EntryRecord describes one included item the walker or orchestrator has
// handed to the file processor. RelPath is expressed relative to the
// project root, not the walk target.
type EntryRecord struct {
	AbsPath string
	RelPath string
	Size    int64
}

// ProcessResult is what Process emits for one EntryRecord: either the
// formatted content block (content mode) or the bare listing line
// (list-only mode), plus the content hash used to compare dumps for
// determinism without diffing the whole stream.
type ProcessResult struct {
	Block       string
	ContentHash uint64
}

// Process reads entry's bytes, decodes them, and renders output according to
// listOnly. It does not touch the SizeLedger; callers record sizes
// themselves once they know whether the read succeeded.
func Process(entry EntryRecord, raw []byte, listOnly bool) ProcessResult {
	if listOnly {
		return ProcessResult{
			Block:       entry.RelPath + "\n",
			ContentHash: xxh3.Hash(raw),
		}
	}

	content := Decode(raw)
	return ProcessResult{
		Block:       FormatBlock(entry.RelPath, content),
		ContentHash: xxh3.Hash([]byte(content)),
	}
}
