package git

import (
	"bytes"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/hmurata/commitcal-go/internal/heatmap"
)

// gitFileMode is a Git file mode as an octal value, used when parsing
// git --raw output.
type gitFileMode uint32

const (
	gitFileModeEmpty   gitFileMode = 0
	gitFileModeRegular gitFileMode = 0100644
	gitFileModeExec    gitFileMode = 0100755
	gitFileModeSymlink gitFileMode = 0120000
)

func (m gitFileMode) IsFile() bool {
	return m == gitFileModeRegular || m == gitFileModeExec || m == gitFileModeSymlink
}

type gitRawEntry struct {
	srcMode gitFileMode
	dstMode gitFileMode
	status  string // e.g. "M", "A", "D", "R100"
	path    string // destination path (or path for non-renames)
}

func (r *HistoryReader) readEventsGitCLI() ([]heatmap.CommitEvent, error) {
	// Each commit header line is prefixed by 0x1e (record separator),
	// then NUL-separated fields, and ends with a newline. With --raw -z
	// appended the output stays reliably parseable as records split
	// by 0x1e.
	const format = "%x1e%cI%x00%an%x00%ae%n"

	args := []string{
		"-C", r.opts.RepoPath,
		"log",
		"--no-color",
		"--pretty=format:" + format,
	}

	if r.opts.filtersPaths() {
		args = append(args, "--raw", "-z", "--no-renames")
	}

	if r.opts.Since != nil {
		args = append(args, fmt.Sprintf("--since=@%d", r.opts.Since.Unix()))
	}
	if r.opts.Until != nil {
		args = append(args, fmt.Sprintf("--until=@%d", r.opts.Until.Unix()))
	}

	rev := strings.TrimSpace(r.opts.Branch)
	if rev != "" && !strings.EqualFold(rev, "HEAD") {
		args = append(args, rev)
	}

	out, err := exec.Command("git", args...).CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("git log failed: %w: %s", err, strings.TrimSpace(string(out)))
	}

	records := bytes.Split(out, []byte{0x1e})
	events := make([]heatmap.CommitEvent, 0, len(records))

	for _, rec := range records {
		if len(rec) == 0 {
			continue
		}

		header, body := splitHeaderBody(rec)
		if len(header) == 0 {
			continue
		}

		fields := bytes.SplitN(header, []byte{0x00}, 3)
		if len(fields) < 3 {
			return nil, fmt.Errorf("unexpected git log header format")
		}

		when, err := time.Parse(time.RFC3339, string(fields[0]))
		if err != nil {
			return nil, fmt.Errorf("parse committer date: %w", err)
		}

		authorName := string(fields[1])
		authorEmail := string(fields[2])

		if !r.matchesAuthor(authorName, authorEmail) {
			continue
		}

		if r.opts.filtersPaths() {
			rawEntries, err := parseGitRawEntries(body)
			if err != nil {
				return nil, err
			}
			touched := false
			for _, e := range rawEntries {
				if !e.srcMode.IsFile() && !e.dstMode.IsFile() {
					continue
				}
				if e.path != "" && r.matchesFilters(e.path) {
					touched = true
					break
				}
			}
			if !touched {
				continue
			}
		}

		_, offsetSeconds := when.Zone()

		events = append(events, heatmap.CommitEvent{
			When:             when,
			UTCOffsetMinutes: offsetSeconds / 60,
			Author:           authorName + " <" + authorEmail + ">",
		})
	}

	return events, nil
}

func splitHeaderBody(rec []byte) (header []byte, body []byte) {
	// The pretty line is followed by '\n', then diff output.
	if idx := bytes.IndexByte(rec, '\n'); idx != -1 {
		return rec[:idx], rec[idx+1:]
	}
	return rec, nil
}

func parseGitRawEntries(body []byte) ([]gitRawEntry, error) {
	i := 0
	for i < len(body) && (body[i] == '\n' || body[i] == '\r') {
		i++
	}

	var entries []gitRawEntry

	for i < len(body) && body[i] == ':' {
		meta, ok := readUntilNUL(body, &i)
		if !ok {
			return nil, fmt.Errorf("unexpected git --raw format (missing NUL)")
		}

		fields := strings.Fields(string(meta))
		if len(fields) < 5 {
			return nil, fmt.Errorf("unexpected git --raw meta: %q", string(meta))
		}

		srcMode, err := parseGitFileMode(strings.TrimPrefix(fields[0], ":"))
		if err != nil {
			return nil, err
		}
		dstMode, err := parseGitFileMode(fields[1])
		if err != nil {
			return nil, err
		}

		path, ok := readUntilNUL(body, &i)
		if !ok {
			return nil, fmt.Errorf("unexpected git --raw format (missing path)")
		}

		entries = append(entries, gitRawEntry{
			srcMode: srcMode,
			dstMode: dstMode,
			status:  fields[len(fields)-1],
			path:    string(path),
		})
	}

	return entries, nil
}

// parseGitFileMode parses an octal file mode string (e.g. "100644",
// "120000", "000000").
func parseGitFileMode(s string) (gitFileMode, error) {
	if s == "" {
		return gitFileModeEmpty, nil
	}
	v, err := strconv.ParseUint(s, 8, 32)
	if err != nil {
		return gitFileModeEmpty, fmt.Errorf("parse file mode %q: %w", s, err)
	}
	return gitFileMode(v), nil
}

func readUntilNUL(b []byte, i *int) ([]byte, bool) {
	if *i >= len(b) {
		return nil, false
	}
	j := bytes.IndexByte(b[*i:], 0)
	if j == -1 {
		return nil, false
	}
	start := *i
	end := *i + j
	*i = end + 1
	return b[start:end], true
}
