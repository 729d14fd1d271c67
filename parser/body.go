// Package parser renders user-sent post text bodies to safe HTML and
// extracts the posts they reference
package parser

import (
	"fmt"
	"html"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// EmptyBody is rendered for posts with no text content
const EmptyBody = `<div class="post-content"></div>`

var (
	// Matched against the escaped body, so the literal token is &gt;&gt;N
	replyRegexp  = regexp.MustCompile(`&gt;&gt;(\d+)`)
	boldRegexp   = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicRegexp = regexp.MustCompile(`\*(.+?)\*`)
)

// TargetLookup resolves candidate reply IDs against existing posts on one
// board, returning a post ID -> thread map for the IDs that exist. Injected,
// so rendering stays testable without a database.
type TargetLookup func(ids []uint64) (map[uint64]uint64, error)

// Render converts a raw text body into HTML and the list of same-board post
// IDs it references. Only IDs that resolved to an existing post are linked
// and reported; the rest stay literal text.
func Render(board, body string, lookup TargetLookup) (
	rendered string, replied []uint64, err error,
) {
	if body == "" {
		rendered = EmptyBody
		return
	}

	s := quoteLines(body)
	// Bold before italic, so ** is not consumed as two single *
	s = boldRegexp.ReplaceAllString(s, "<b>$1</b>")
	s = italicRegexp.ReplaceAllString(s, "<em>$1</em>")

	var targets map[uint64]uint64
	if ids := findCandidates(s); len(ids) != 0 {
		targets, err = lookup(ids)
		if err != nil {
			return
		}
	}
	rendered = substituteLinks(s, board, targets)

	if len(targets) != 0 {
		replied = make([]uint64, 0, len(targets))
		for id := range targets {
			replied = append(replied, id)
		}
		sort.Slice(replied, func(i, j int) bool {
			return replied[i] < replied[j]
		})
	}
	return
}

// Escape each line, wrap quote lines and rejoin with line breaks. A quote
// line starts with a single `>` not followed by a second one.
func quoteLines(body string) string {
	var w strings.Builder
	for _, line := range strings.Split(body, "\n") {
		esc := html.EscapeString(line)
		if strings.HasPrefix(line, ">") && !strings.HasPrefix(line, ">>") {
			w.WriteString(`<div class="green-text">`)
			w.WriteString(esc)
			w.WriteString(`</div>`)
		} else {
			w.WriteString(esc)
		}
		w.WriteString("<br>")
	}
	return w.String()
}

// Collect candidate reply IDs from the escaped body in order of first
// occurrence, without duplicates
func findCandidates(s string) (ids []uint64) {
	seen := make(map[uint64]bool)
	for _, m := range replyRegexp.FindAllStringSubmatch(s, -1) {
		id, err := strconv.ParseUint(m[1], 10, 64)
		if err != nil { // Number does not fit uint64. Not a valid target.
			continue
		}
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return
}

// Replace resolved reply markers with links to the target post's thread.
// Unresolved markers are left as literal text.
func substituteLinks(
	s, board string, targets map[uint64]uint64,
) string {
	if len(targets) == 0 {
		return s
	}
	return replyRegexp.ReplaceAllStringFunc(s, func(m string) string {
		id, err := strconv.ParseUint(replyRegexp.FindStringSubmatch(m)[1],
			10, 64)
		if err != nil {
			return m
		}
		thread, ok := targets[id]
		if !ok {
			return m
		}
		return fmt.Sprintf(
			`<a href="/%s/%d#%d">&gt;&gt;%d</a>`,
			board, thread, id, id,
		)
	})
}
