package git

import (
	"testing"
	"time"
)

func TestHistoryReader_ReadEvents(t *testing.T) {
	tr := newTestRepo(t)
	base := time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)

	tr.write("main.go", "package main\n")
	tr.commit("initial", base)
	tr.write("main.go", "package main\n\nfunc main() {}\n")
	tr.commit("add main", base.Add(24*time.Hour))
	tr.write("util.go", "package main\n")
	tr.commit("add util", base.Add(48*time.Hour))

	reader, err := NewHistoryReader(ReadOptions{RepoPath: tr.dir})
	if err != nil {
		t.Fatalf("NewHistoryReader: %v", err)
	}

	events, err := reader.ReadEvents()
	if err != nil {
		t.Fatalf("ReadEvents: %v", err)
	}

	if len(events) != 3 {
		t.Fatalf("len(events) = %d, want 3", len(events))
	}
	for _, ev := range events {
		if ev.Author != "Test <test@example.com>" {
			t.Errorf("Author = %q, want %q", ev.Author, "Test <test@example.com>")
		}
		if ev.UTCOffsetMinutes != 0 {
			t.Errorf("UTCOffsetMinutes = %d, want 0 for UTC commit", ev.UTCOffsetMinutes)
		}
	}
}

func TestHistoryReader_CommitterOffset(t *testing.T) {
	tr := newTestRepo(t)
	tokyo := time.FixedZone("UTC+9", 9*60*60)

	tr.write("a.txt", "a\n")
	tr.commit("offset commit", time.Date(2024, time.March, 1, 23, 30, 0, 0, tokyo))

	reader, err := NewHistoryReader(ReadOptions{RepoPath: tr.dir})
	if err != nil {
		t.Fatalf("NewHistoryReader: %v", err)
	}

	events, err := reader.ReadEvents()
	if err != nil {
		t.Fatalf("ReadEvents: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("len(events) = %d, want 1", len(events))
	}
	if events[0].UTCOffsetMinutes != 540 {
		t.Errorf("UTCOffsetMinutes = %d, want 540", events[0].UTCOffsetMinutes)
	}
	if got := events[0].When.UTC(); got != time.Date(2024, time.March, 1, 14, 30, 0, 0, time.UTC) {
		t.Errorf("When = %v, want 2024-03-01T14:30:00Z", got)
	}
}

func TestHistoryReader_AuthorFilter(t *testing.T) {
	tr := newTestRepo(t)
	base := time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)

	tr.write("a.txt", "a\n")
	tr.commitAs("by alice", "Alice", "alice@example.com", base)
	tr.write("b.txt", "b\n")
	tr.commitAs("by bob", "Bob", "bob@example.com", base.Add(time.Hour))
	tr.write("c.txt", "c\n")
	tr.commitAs("by alice again", "Alice", "alice@example.com", base.Add(2*time.Hour))

	tests := []struct {
		name    string
		authors []string
		want    int
	}{
		{name: "NoFilter", authors: nil, want: 3},
		{name: "ByName", authors: []string{"alice"}, want: 2},
		{name: "ByEmail", authors: []string{"bob@example.com"}, want: 1},
		{name: "Either", authors: []string{"alice", "bob"}, want: 3},
		{name: "NoMatch", authors: []string{"carol"}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader, err := NewHistoryReader(ReadOptions{RepoPath: tr.dir, Authors: tt.authors})
			if err != nil {
				t.Fatalf("NewHistoryReader: %v", err)
			}
			events, err := reader.ReadEvents()
			if err != nil {
				t.Fatalf("ReadEvents: %v", err)
			}
			if len(events) != tt.want {
				t.Errorf("len(events) = %d, want %d", len(events), tt.want)
			}
		})
	}
}

func TestHistoryReader_PathFilters(t *testing.T) {
	tr := newTestRepo(t)
	base := time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)

	tr.write("src/app.go", "package app\n")
	tr.commit("touch src", base)
	tr.write("docs/readme.md", "docs\n")
	tr.commit("touch docs", base.Add(time.Hour))
	tr.write("src/app_test.go", "package app\n")
	tr.commit("touch test", base.Add(2*time.Hour))

	tests := []struct {
		name    string
		include []string
		exclude []string
		want    int
	}{
		{name: "NoFilter", want: 3},
		{name: "IncludeSrc", include: []string{"src/**"}, want: 2},
		{name: "IncludeDocs", include: []string{"docs/**"}, want: 1},
		{name: "ExcludeTests", include: []string{"src/**"}, exclude: []string{"**/*_test.go"}, want: 1},
		{name: "ExcludeWins", include: []string{"**"}, exclude: []string{"**"}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader, err := NewHistoryReader(ReadOptions{
				RepoPath: tr.dir,
				Include:  tt.include,
				Exclude:  tt.exclude,
			})
			if err != nil {
				t.Fatalf("NewHistoryReader: %v", err)
			}
			events, err := reader.ReadEvents()
			if err != nil {
				t.Fatalf("ReadEvents: %v", err)
			}
			if len(events) != tt.want {
				t.Errorf("len(events) = %d, want %d", len(events), tt.want)
			}
		})
	}
}

func TestHistoryReader_TimeWindow(t *testing.T) {
	tr := newTestRepo(t)
	base := time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)

	tr.write("a.txt", "a\n")
	tr.commit("old", base)
	tr.write("b.txt", "b\n")
	tr.commit("middle", base.Add(48*time.Hour))
	tr.write("c.txt", "c\n")
	tr.commit("recent", base.Add(96*time.Hour))

	since := base.Add(24 * time.Hour)
	until := base.Add(72 * time.Hour)

	reader, err := NewHistoryReader(ReadOptions{
		RepoPath: tr.dir,
		Since:    &since,
		Until:    &until,
	})
	if err != nil {
		t.Fatalf("NewHistoryReader: %v", err)
	}

	events, err := reader.ReadEvents()
	if err != nil {
		t.Fatalf("ReadEvents: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("len(events) = %d, want 1", len(events))
	}
	if got := events[0].When.UTC(); got != base.Add(48*time.Hour) {
		t.Errorf("When = %v, want %v", got, base.Add(48*time.Hour))
	}
}

func TestHistoryReader_RespectsBranch(t *testing.T) {
	tr := newTestRepo(t)
	base := time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)

	tr.write("file.txt", "initial\n")
	tr.commit("initial", base)

	head, err := tr.repo.Head()
	if err != nil {
		t.Fatalf("Head: %v", err)
	}
	baseBranch := head.Name().Short()

	tr.checkout("feature", true)
	tr.write("file.txt", "feature\n")
	tr.commit("feature commit", base.Add(time.Hour))

	tr.checkout(baseBranch, false)
	tr.write("base.txt", "base\n")
	tr.commit("base commit", base.Add(2*time.Hour))

	featureReader, err := NewHistoryReader(ReadOptions{RepoPath: tr.dir, Branch: "feature"})
	if err != nil {
		t.Fatalf("NewHistoryReader(feature): %v", err)
	}
	featureEvents, err := featureReader.ReadEvents()
	if err != nil {
		t.Fatalf("ReadEvents(feature): %v", err)
	}
	if len(featureEvents) != 2 {
		t.Fatalf("feature events = %d, want 2 (initial + feature)", len(featureEvents))
	}

	baseReader, err := NewHistoryReader(ReadOptions{RepoPath: tr.dir, Branch: baseBranch})
	if err != nil {
		t.Fatalf("NewHistoryReader(%s): %v", baseBranch, err)
	}
	baseEvents, err := baseReader.ReadEvents()
	if err != nil {
		t.Fatalf("ReadEvents(%s): %v", baseBranch, err)
	}
	if len(baseEvents) != 2 {
		t.Fatalf("base events = %d, want 2 (initial + base)", len(baseEvents))
	}
}

func TestNewHistoryReader_MissingRepo(t *testing.T) {
	_, err := NewHistoryReader(ReadOptions{RepoPath: t.TempDir()})
	if err == nil {
		t.Fatal("expected error opening a directory with no repository")
	}
}
