package filelist

import (
	"strconv"
	"strings"
)

const Separator = "/"

var branchPrefixes = []string{"├── ", "└── "}

// Parse decodes a text/filelist payload:
//
//	<name>
//	├── <entry>[/]
//	└── <entry>[/]
//	(blank)
//	<N> director(y|ies), <M> file(s)
//	(blank)
//
// A payload carrying the forbidden marker anywhere is an AccessDenied error, whatever
// else it contains.
func Parse(raw string) (Directory, error) {
	if strings.Contains(raw, ForbiddenMarker) {
		return Directory{}, &ProtocolError{Kind: AccessDenied}
	}

	lines := strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")
	// name, separator, summary, trailer
	if len(lines) < 4 {
		return Directory{}, malformed("expected at least 4 lines, got %d", len(lines))
	}

	dir := Directory{
		Path:        "/" + lines[0],
		Files:       []string{},
		Directories: []string{},
	}

	summary := lines[len(lines)-2]
	entries := lines[1 : len(lines)-3]

	var err error
	dir.DirCount, dir.FileCount, err = parseSummary(summary)
	if err != nil {
		return Directory{}, err
	}

	for _, line := range entries {
		name := trimBranch(line)
		if name == "" {
			continue
		}

		if strings.HasSuffix(name, Separator) {
			dir.Directories = append(dir.Directories, strings.Replace(name, Separator, "", 1))
		} else {
			dir.Files = append(dir.Files, name)
		}
	}

	return dir, nil
}

func trimBranch(line string) string {
	for _, prefix := range branchPrefixes {
		if trimmed, ok := strings.CutPrefix(line, prefix); ok {
			return trimmed
		}
	}
	return line
}

func parseSummary(line string) (dirs int, files int, err error) {
	fields := strings.Split(line, ",")
	if len(fields) != 2 {
		return 0, 0, malformed("summary line %q", line)
	}

	dirs, err = parseCount(fields[0], "directory", "directories")
	if err != nil {
		return 0, 0, err
	}

	files, err = parseCount(fields[1], "file", "files")
	if err != nil {
		return 0, 0, err
	}

	return dirs, files, nil
}

func parseCount(field, singular, plural string) (int, error) {
	parts := strings.Fields(field)
	if len(parts) != 2 || (parts[1] != singular && parts[1] != plural) {
		return 0, malformed("expected %q count, got %q", plural, strings.TrimSpace(field))
	}

	n, err := strconv.Atoi(parts[0])
	if err != nil || n < 0 {
		return 0, malformed("invalid %s count %q", plural, parts[0])
	}

	return n, nil
}
