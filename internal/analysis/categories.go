package analysis

import (
	"regexp"
	"strings"
)

// Section headers recognized in the targeted resume layout.
const (
	headerEducation      = "EDUCATION"
	headerProjects       = "PROJECTS"
	headerCertifications = "CERTIFICATIONS"
	headerSkillsTools    = "KEY SKILLS AND TOOLS"
	headerObjective      = "CAREER OBJECTIVE"
)

// Terminator tables: any of these headers ends the section being captured.
var (
	educationTerminators     = []string{headerCertifications, headerProjects, headerSkillsTools, headerObjective}
	experienceTerminators    = []string{headerEducation, headerCertifications, headerSkillsTools, headerObjective}
	certificationTerminators = []string{headerEducation, headerProjects, headerSkillsTools, headerObjective}
)

// Keyword tables deciding whether a section line belongs to its category.
var (
	degreeKeywords = []string{
		"bachelor", "master", "phd", "b.tech", "m.tech", "b.sc", "m.sc",
		"intermediate", "grade", "university", "college", "school",
	}
	experienceKeywords = []string{
		"project", "developed", "implemented", "machine learning", "web app",
		"description", "kaggle", "intern", "engineer", "developer", "role", "position",
	}
	certificationKeywords = []string{
		"certified", "certification", "certificate", "coursera", "udemy",
		"infosys", "exam", "award",
	}
)

// yearPattern matches a four-digit year in the 1900s or 2000s.
var yearPattern = regexp.MustCompile(`(19|20)\d{2}`)

// ExtractEducation returns the education lines of text: lines of the
// EDUCATION section that are not contact data and mention a degree or
// institution keyword or a four-digit year.
func ExtractEducation(text string) []string {
	lines := ExtractSection(text, headerEducation, educationTerminators)
	education := make([]string, 0, len(lines))
	for _, line := range lines {
		if IsContactInfo(line) {
			continue
		}
		if containsAnyKeyword(line, degreeKeywords) || yearPattern.MatchString(line) {
			education = append(education, strings.TrimSpace(line))
		}
	}
	return education
}

// ExtractExperience returns the experience lines of text: lines of the
// PROJECTS section that are not contact data and mention a project or role
// keyword or a four-digit year. A single leading bullet marker is stripped.
func ExtractExperience(text string) []string {
	lines := ExtractSection(text, headerProjects, experienceTerminators)
	experience := make([]string, 0, len(lines))
	for _, line := range lines {
		if IsContactInfo(line) {
			continue
		}
		if containsAnyKeyword(line, experienceKeywords) || yearPattern.MatchString(line) {
			experience = append(experience, stripBullet(line))
		}
	}
	return experience
}

// ExtractCertifications returns the certification lines of text: lines of the
// CERTIFICATIONS section that are not contact data and mention a
// certification or award keyword. A single leading bullet marker is stripped.
func ExtractCertifications(text string) []string {
	lines := ExtractSection(text, headerCertifications, certificationTerminators)
	certifications := make([]string, 0, len(lines))
	for _, line := range lines {
		if IsContactInfo(line) {
			continue
		}
		if containsAnyKeyword(line, certificationKeywords) {
			certifications = append(certifications, stripBullet(line))
		}
	}
	return certifications
}

// containsAnyKeyword reports whether line contains one of the keywords,
// case-insensitively.
func containsAnyKeyword(line string, keywords []string) bool {
	lower := strings.ToLower(line)
	for _, keyword := range keywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

// stripBullet removes one leading bullet marker and trims the result.
func stripBullet(line string) string {
	return strings.TrimSpace(strings.TrimPrefix(line, "•"))
}
