package resumes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateNewRequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		rec     Resume
		missing []string
	}{
		{
			name: "valid",
			rec: Resume{
				PersonalInfo: PersonalInfo{FullName: "Ada Lovelace", Email: "ada@example.com"},
			},
		},
		{
			name:    "both missing",
			rec:     Resume{},
			missing: []string{"personalInfo.fullName", "personalInfo.email"},
		},
		{
			name: "empty full name",
			rec: Resume{
				PersonalInfo: PersonalInfo{FullName: "", Email: "ada@example.com"},
			},
			missing: []string{"personalInfo.fullName"},
		},
		{
			name: "missing email",
			rec: Resume{
				PersonalInfo: PersonalInfo{FullName: "Ada Lovelace"},
			},
			missing: []string{"personalInfo.email"},
		},
		{
			name: "other fields do not matter",
			rec: Resume{
				Summary:    "long summary",
				Experience: []Experience{{Company: "ACME"}},
			},
			missing: []string{"personalInfo.fullName", "personalInfo.email"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNew(tt.rec)
			if len(tt.missing) == 0 {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.missing, verr.Fields)
		})
	}
}

func TestValidateNewAcceptsAnyNonEmptyText(t *testing.T) {
	// No format validation: any non-empty text passes for email.
	rec := Resume{
		PersonalInfo: PersonalInfo{FullName: "x", Email: "not-an-email"},
	}
	assert.NoError(t, ValidateNew(rec))
}

func TestValidationErrorMessageNamesFields(t *testing.T) {
	err := &ValidationError{Fields: []string{"personalInfo.fullName", "personalInfo.email"}}
	assert.Equal(t, "Missing required fields: personalInfo.fullName, personalInfo.email", err.Error())
}
