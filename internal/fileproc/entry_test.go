package fileproc

import "testing"

func TestProcessContentMode(t *testing.T) {
	entry := EntryRecord{RelPath: "src/a.go", Size: 5}
	result := Process(entry, []byte("hi\n"), false)
	want := "```path=src/a.go\nhi\n\n```"
	if result.Block != want {
		t.Errorf("got %q, want %q", result.Block, want)
	}
	if result.ContentHash == 0 {
		t.Error("expected non-zero content hash")
	}
}

func TestProcessListOnlyMode(t *testing.T) {
	entry := EntryRecord{RelPath: "src/a.go", Size: 5}
	result := Process(entry, []byte("hi\n"), true)
	if result.Block != "src/a.go\n" {
		t.Errorf("got %q, want bare relative path line", result.Block)
	}
}

func TestProcessDeterministicHash(t *testing.T) {
	entry := EntryRecord{RelPath: "x.go"}
	r1 := Process(entry, []byte("same bytes"), false)
	r2 := Process(entry, []byte("same bytes"), false)
	if r1.ContentHash != r2.ContentHash {
		t.Error("expected identical content to hash identically")
	}
}
