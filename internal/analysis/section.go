// Package analysis implements the resume document analysis pipeline: section
// extraction, contact-line filtering, skill matching, scoring and
// recommendations. All functions are pure; absence of a section or of matches
// is a normal outcome represented by an empty slice, never an error.
package analysis

import "strings"

// ExtractSection returns the trimmed, non-empty content lines of the named
// section. The section starts on the line after the first line ending with
// header (case-insensitive) and runs until the earliest line beginning with
// any terminator (case-insensitive) or the end of the text. Returns an empty
// slice when the header is absent or the section has no content.
func ExtractSection(text, header string, terminators []string) []string {
	lines := strings.Split(text, "\n")

	start := -1
	for i, line := range lines {
		if lineEndsWithHeader(line, header) {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return []string{}
	}

	end := len(lines)
	for i := start; i < len(lines); i++ {
		if lineStartsWithAny(lines[i], terminators) {
			end = i
			break
		}
	}

	content := make([]string, 0, end-start)
	for _, line := range lines[start:end] {
		line = strings.TrimSpace(line)
		if line != "" {
			content = append(content, line)
		}
	}
	return content
}

// lineEndsWithHeader reports whether line consists of anything followed by
// header and optional trailing whitespace. Matching the header as a line
// suffix tolerates titles like "MY EDUCATION" that extraction sometimes
// produces.
func lineEndsWithHeader(line, header string) bool {
	trimmed := strings.TrimRight(line, " \t\r")
	if len(trimmed) < len(header) {
		return false
	}
	return strings.EqualFold(trimmed[len(trimmed)-len(header):], header)
}

// lineStartsWithAny reports whether line begins with one of the terminator
// headers, case-insensitively.
func lineStartsWithAny(line string, terminators []string) bool {
	for _, term := range terminators {
		if len(line) >= len(term) && strings.EqualFold(line[:len(term)], term) {
			return true
		}
	}
	return false
}
