package analysis

// Weights for the completeness score.
const (
	pointsPerSkill       = 8
	maxScoredSkills      = 10
	sectionPresenceBonus = 5
	skillFloorScore      = 60
	maxScore             = 100
)

// Score converts the extracted category lists into a completeness score in
// [0,100]. Skills contribute up to 80 points (8 each, at most 10 counted);
// each non-empty category adds 5. Any skill presence floors the score at 60.
// The returned issues list is reserved for future diagnostics and is always
// empty.
func Score(skills, education, experience, certifications []string) (int, []string) {
	score := min(len(skills), maxScoredSkills) * pointsPerSkill
	if len(education) > 0 {
		score += sectionPresenceBonus
	}
	if len(experience) > 0 {
		score += sectionPresenceBonus
	}
	if len(certifications) > 0 {
		score += sectionPresenceBonus
	}
	if score < skillFloorScore && len(skills) > 0 {
		score = skillFloorScore
	}
	return min(score, maxScore), []string{}
}
