package chart

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

var (
	legacyPage  = regexp.MustCompile(`Page\s+(\d+)`)
	legacyTable = regexp.MustCompile(`Table\s+([\d\-]+)`)
)

// ParseLegacy reads a pipe-delimited chart file.
//
// Lines starting with "//" are comments and may carry "Page N" and
// "Table X-Y" metadata. The first data line holds the entry count; each
// following line is "min|max|name|value[|flag]".
func ParseLegacy(r io.Reader, name string) (*Chart, error) {
	var data, comments []string

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "":
		case strings.HasPrefix(line, "//"):
			comments = append(comments, line)
		default:
			data = append(data, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read legacy chart %s: %w", name, err)
	}

	if len(data) == 0 {
		return nil, &FormatError{Path: name, Reason: "missing entry count"}
	}
	count, err := strconv.Atoi(data[0])
	if err != nil {
		return nil, &FormatError{Path: name, Reason: "entry count is not an integer", Err: err}
	}
	if count < 1 || len(data)-1 < count {
		return nil, &FormatError{Path: name, Reason: fmt.Sprintf("declares %d entries, has %d", count, len(data)-1)}
	}

	c := &Chart{
		Name:    name,
		Source:  "DMG",
		RollDie: DefaultDie,
		Entries: make([]Entry, 0, count),
	}

	for i, line := range data[1 : count+1] {
		parts := strings.Split(line, "|")
		if len(parts) < 4 {
			return nil, &FormatError{Path: name, Reason: fmt.Sprintf("entry %d: want at least 4 fields, got %d", i, len(parts))}
		}
		nums := make([]int, 0, 4)
		for _, idx := range []int{0, 1, 3} {
			n, err := strconv.Atoi(strings.TrimSpace(parts[idx]))
			if err != nil {
				return nil, &FormatError{Path: name, Reason: fmt.Sprintf("entry %d: field %d is not an integer", i, idx), Err: err}
			}
			nums = append(nums, n)
		}
		e := Entry{MinRoll: nums[0], MaxRoll: nums[1], Name: parts[2], Value: nums[2]}
		if len(parts) > 4 {
			flag, err := strconv.Atoi(strings.TrimSpace(parts[4]))
			if err != nil {
				return nil, &FormatError{Path: name, Reason: fmt.Sprintf("entry %d: flag is not an integer", i), Err: err}
			}
			e.Flag = flag
		}
		if e.MinRoll > e.MaxRoll {
			return nil, &FormatError{Path: name, Reason: fmt.Sprintf("entry %d: min_roll %d > max_roll %d", i, e.MinRoll, e.MaxRoll)}
		}
		c.Entries = append(c.Entries, e)
	}

	for _, line := range comments {
		if m := legacyPage.FindStringSubmatch(line); m != nil {
			c.Page, _ = strconv.Atoi(m[1])
		}
		if m := legacyTable.FindStringSubmatch(line); m != nil {
			c.Table = m[1]
		}
	}

	return c, nil
}
