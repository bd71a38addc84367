package git

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/hmurata/commitcal-go/internal/heatmap"
)

// HistoryReader reads commit events from a Git repository.
type HistoryReader struct {
	repo *git.Repository
	opts ReadOptions
}

// NewHistoryReader creates a history reader for the given repository.
// The git CLI backend defers repository validation to the first read.
func NewHistoryReader(opts ReadOptions) (*HistoryReader, error) {
	if opts.UseGitCLI {
		return &HistoryReader{opts: opts}, nil
	}
	repo, err := git.PlainOpen(opts.RepoPath)
	if err != nil {
		return nil, err
	}
	return &HistoryReader{repo: repo, opts: opts}, nil
}

// ReadEvents walks the commit log and returns one event per commit
// that passes the configured author and path filters.
func (r *HistoryReader) ReadEvents() ([]heatmap.CommitEvent, error) {
	if r.opts.UseGitCLI {
		return r.readEventsGitCLI()
	}
	from, err := r.startHash()
	if err != nil {
		return nil, err
	}

	logOpts := &git.LogOptions{From: from}
	if r.opts.Since != nil {
		logOpts.Since = r.opts.Since
	}
	if r.opts.Until != nil {
		logOpts.Until = r.opts.Until
	}

	cIter, err := r.repo.Log(logOpts)
	if err != nil {
		return nil, err
	}

	var events []heatmap.CommitEvent

	err = cIter.ForEach(func(c *object.Commit) error {
		if !r.matchesAuthor(c.Author.Name, c.Author.Email) {
			return nil
		}

		if r.opts.filtersPaths() {
			touched, err := r.touchesMatchingPath(c)
			if err != nil {
				return err
			}
			if !touched {
				return nil
			}
		}

		when := c.Committer.When
		_, offsetSeconds := when.Zone()

		events = append(events, heatmap.CommitEvent{
			When:             when,
			UTCOffsetMinutes: offsetSeconds / 60,
			Author:           c.Author.Name + " <" + c.Author.Email + ">",
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return events, nil
}

// startHash resolves the configured branch, falling back to HEAD.
func (r *HistoryReader) startHash() (plumbing.Hash, error) {
	if r.opts.Branch != "" {
		ref, err := r.repo.Reference(plumbing.NewBranchReferenceName(r.opts.Branch), true)
		if err == nil {
			return ref.Hash(), nil
		}
	}
	ref, err := r.repo.Head()
	if err != nil {
		return plumbing.ZeroHash, err
	}
	return ref.Hash(), nil
}

// matchesAuthor checks the author filter against name and email.
func (r *HistoryReader) matchesAuthor(name, email string) bool {
	if len(r.opts.Authors) == 0 {
		return true
	}
	name = strings.ToLower(name)
	email = strings.ToLower(email)
	for _, a := range r.opts.Authors {
		needle := strings.ToLower(a)
		if strings.Contains(name, needle) || strings.Contains(email, needle) {
			return true
		}
	}
	return false
}

// touchesMatchingPath reports whether any path changed by the commit
// passes the include/exclude globs. Root commits are compared against
// their own tree since there is no parent to diff.
func (r *HistoryReader) touchesMatchingPath(c *object.Commit) (bool, error) {
	paths, err := r.changedPaths(c)
	if err != nil {
		return false, err
	}
	for _, p := range paths {
		if r.matchesFilters(p) {
			return true, nil
		}
	}
	return false, nil
}

func (r *HistoryReader) changedPaths(c *object.Commit) ([]string, error) {
	if c.NumParents() == 0 {
		files, err := c.Files()
		if err != nil {
			return nil, err
		}
		var paths []string
		err = files.ForEach(func(f *object.File) error {
			paths = append(paths, f.Name)
			return nil
		})
		return paths, err
	}

	parent, err := c.Parent(0)
	if err != nil {
		return nil, err
	}
	patch, err := parent.Patch(c)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, filePatch := range patch.FilePatches() {
		from, to := filePatch.Files()
		if to != nil {
			paths = append(paths, to.Path())
		} else if from != nil {
			paths = append(paths, from.Path())
		}
	}
	return paths, nil
}

// matchesFilters checks a path against the include/exclude globs.
// Exclude wins; an empty include list accepts everything.
func (r *HistoryReader) matchesFilters(path string) bool {
	path = strings.ReplaceAll(path, "\\", "/")

	for _, pattern := range r.opts.Exclude {
		matched, _ := doublestar.Match(pattern, path)
		if matched {
			return false
		}
	}

	if len(r.opts.Include) == 0 {
		return true
	}

	for _, pattern := range r.opts.Include {
		matched, _ := doublestar.Match(pattern, path)
		if matched {
			return true
		}
	}
	return false
}
