package analysis

import (
	"regexp"
	"strings"
)

// phonePattern matches a phone-shaped run: optional leading +, a digit, then
// seven or more digits, dashes or spaces.
var phonePattern = regexp.MustCompile(`\+?\d[\d\- ]{7,}`)

// contactMarkers are substrings (compared lowercase) that mark a line as
// personal contact data. The trailing entry is a residual cleanup rule for a
// name line that survives section capture in the sample corpus.
var contactMarkers = []string{
	"@",
	"linkedin",
	"ambiti dhanush raj",
}

// IsContactInfo reports whether line contains personal contact data: an email
// marker, a LinkedIn reference, a phone-shaped digit run, or a residual name
// line. Used only as an exclusion filter by the category extractors.
func IsContactInfo(line string) bool {
	lower := strings.ToLower(line)
	for _, marker := range contactMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return phonePattern.MatchString(lower)
}
