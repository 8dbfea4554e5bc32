package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore_EmptyInput(t *testing.T) {
	score, issues := Score(nil, nil, nil, nil)

	assert.Equal(t, 0, score)
	assert.Empty(t, issues)
	assert.NotNil(t, issues)
}

func TestScore_SkillFloorApplies(t *testing.T) {
	// 3 skills = 24 raw points, floored to 60 because skills are present.
	score, _ := Score([]string{"python", "java", "sql"}, nil, nil, nil)

	assert.Equal(t, 60, score)
}

func TestScore_SkillContributionCappedAtTen(t *testing.T) {
	skills := make([]string, 12)
	for i := range skills {
		skills[i] = "skill"
	}

	score, _ := Score(skills, nil, nil, nil)

	assert.Equal(t, 80, score)
}

func TestScore_SectionBonuses(t *testing.T) {
	skills := make([]string, 10)
	for i := range skills {
		skills[i] = "skill"
	}

	score, _ := Score(skills, []string{"degree"}, []string{"project"}, []string{"cert"})

	assert.Equal(t, 95, score)
}

func TestScore_BonusesAloneStayBelowFloor(t *testing.T) {
	// Without any skills the floor never applies.
	score, _ := Score(nil, []string{"degree"}, []string{"project"}, []string{"cert"})

	assert.Equal(t, 15, score)
}

func TestScore_AlwaysWithinRange(t *testing.T) {
	inputs := [][]string{
		nil,
		{"a"},
		{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m"},
	}

	for _, skills := range inputs {
		score, _ := Score(skills, []string{"x"}, []string{"y"}, []string{"z"})
		assert.GreaterOrEqual(t, score, 0)
		assert.LessOrEqual(t, score, 100)
	}
}
