package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateJobDescription(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{
			name: "Valid document",
			content: `{
				"title": "Software Engineer",
				"location": "Remote",
				"responsibilities": ["Build services"],
				"required_qualifications": ["3+ years Go"],
				"preferred_qualifications": null,
				"top_skills": ["Go", "Postgres"]
			}`,
			wantErr: false,
		},
		{
			name:    "Missing title",
			content: `{"responsibilities": [], "required_qualifications": [], "top_skills": []}`,
			wantErr: true,
		},
		{
			name:    "Empty title",
			content: `{"title": "", "responsibilities": [], "required_qualifications": [], "top_skills": []}`,
			wantErr: true,
		},
		{
			name:    "Wrong type for skills",
			content: `{"title": "SWE", "responsibilities": [], "required_qualifications": [], "top_skills": "Go"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(JobDescription, tt.content)
			if tt.wantErr {
				require.Error(t, err)
				var ve *ValidationError
				assert.True(t, errors.As(err, &ve))
				assert.NotEmpty(t, ve.Errors)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateResume(t *testing.T) {
	valid := `{
		"personal": {"name": "Jane Doe", "email": "jane@example.com", "phone": null},
		"education": [{"degree": "BSc", "institution": "MIT", "start_year": 2015, "end_year": 2019}],
		"experience": [{"title": "Engineer", "company": "Acme", "start_date": "2019-06-01", "end_date": null}],
		"skills": ["Go"],
		"certifications": null,
		"projects": ["side project"]
	}`
	assert.NoError(t, Validate(Resume, valid))

	missingName := `{
		"personal": {"email": "jane@example.com"},
		"education": [], "experience": [], "skills": []
	}`
	assert.Error(t, Validate(Resume, missingName))

	stringYear := `{
		"personal": {"name": "Jane Doe"},
		"education": [{"degree": "BSc", "institution": "MIT", "start_year": "2015"}],
		"experience": [], "skills": []
	}`
	assert.Error(t, Validate(Resume, stringYear))
}

func TestValidateWebResearch(t *testing.T) {
	valid := `{
		"github_repos": ["repo-one"],
		"blogs": ["No verified blog posts found"],
		"conference_talks": [],
		"social_mentions": []
	}`
	assert.NoError(t, Validate(WebResearch, valid))

	assert.Error(t, Validate(WebResearch, `{"github_repos": []}`))
}

func TestValidateFitAssessment(t *testing.T) {
	valid := `{
		"fit_score": "Moderate Fit",
		"score_details": {"skill_match_percentage": 62.5, "experience_years": 4, "domain_signal": "Medium"},
		"comparison_matrix": [{"skill": "Go", "required": true, "candidate_has": true}],
		"reasoning": "Solid backend experience."
	}`
	assert.NoError(t, Validate(FitAssessment, valid))

	badVerdict := `{
		"fit_score": "Maybe",
		"score_details": {"skill_match_percentage": 50, "experience_years": 2, "domain_signal": "Low"},
		"comparison_matrix": [],
		"reasoning": "x"
	}`
	assert.Error(t, Validate(FitAssessment, badVerdict))
}

func TestValidateUnknownSchema(t *testing.T) {
	err := Validate("no_such_schema", `{}`)
	require.Error(t, err)
	var le *SchemaLoadError
	assert.True(t, errors.As(err, &le))
}

func TestValidateMalformedDocument(t *testing.T) {
	err := Validate(WebResearch, `{not json`)
	assert.Error(t, err)
}
