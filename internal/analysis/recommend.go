package analysis

import (
	"fmt"
	"strings"
)

// maxRecommendedSkills caps how many matched skills a recommendation cites.
const maxRecommendedSkills = 3

// Recommend derives role suggestions from the matched skills: one suggestion
// naming up to the first three skills when any matched, none otherwise.
func Recommend(skills []string) []string {
	if len(skills) == 0 {
		return []string{}
	}
	top := skills
	if len(top) > maxRecommendedSkills {
		top = top[:maxRecommendedSkills]
	}
	return []string{
		fmt.Sprintf("Based on your skills in %s, consider roles in Software Development", strings.Join(top, ", ")),
	}
}
