// Package types defines the structured artifacts produced by the four
// evaluation stages: job description, resume, web research, and fit assessment.
package types

// JobDescription is the structured form of a raw job posting.
type JobDescription struct {
	Title                   string   `json:"title"`
	Location                string   `json:"location,omitempty"`
	Responsibilities        []string `json:"responsibilities"`
	RequiredQualifications  []string `json:"required_qualifications"`
	PreferredQualifications []string `json:"preferred_qualifications,omitempty"`
	TopSkills               []string `json:"top_skills"`
}

// Personal holds a candidate's contact details.
type Personal struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// EducationEntry is one entry in a candidate's education history.
type EducationEntry struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	StartYear   int    `json:"start_year,omitempty"`
	EndYear     int    `json:"end_year,omitempty"`
}

// ExperienceEntry is one entry in a candidate's work history.
type ExperienceEntry struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	StartDate   string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate     string `json:"end_date,omitempty"`   // empty means present
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
}

// Resume is the structured form of a raw resume.
type Resume struct {
	Personal       Personal          `json:"personal"`
	Education      []EducationEntry  `json:"education"`
	Experience     []ExperienceEntry `json:"experience"`
	Skills         []string          `json:"skills"`
	Certifications []string          `json:"certifications,omitempty"`
	Projects       []string          `json:"projects,omitempty"`
}

// WebResearch holds the public-footprint findings for a candidate.
// Each entry is a free-text line describing one verified finding.
// The four lists are always populated; when nothing could be verified
// for a category the list carries a single "No verified ..." placeholder
// so downstream formatting stays uniform.
type WebResearch struct {
	GitHubRepos     []string `json:"github_repos"`
	Blogs           []string `json:"blogs"`
	ConferenceTalks []string `json:"conference_talks"`
	SocialMentions  []string `json:"social_mentions"`
}

// ComparisonEntry is one row of the skill comparison matrix.
type ComparisonEntry struct {
	Skill        string `json:"skill"`
	Required     bool   `json:"required"`
	CandidateHas bool   `json:"candidate_has"`
}

// ScoreDetails breaks the overall fit verdict into its components.
type ScoreDetails struct {
	SkillMatchPercentage float64 `json:"skill_match_percentage"`
	ExperienceYears      float64 `json:"experience_years"`
	DomainSignal         string  `json:"domain_signal"` // High, Medium, Low
}

// Fit verdict values for FitAssessment.FitScore.
const (
	FitStrong   = "Strong Fit"
	FitModerate = "Moderate Fit"
	FitNone     = "Not a Fit"
)

// FitAssessment is the final structured output scoring a candidate
// against a job description.
type FitAssessment struct {
	FitScore         string            `json:"fit_score"`
	ScoreDetails     ScoreDetails      `json:"score_details"`
	ComparisonMatrix []ComparisonEntry `json:"comparison_matrix"`
	Reasoning        string            `json:"reasoning"`
}
