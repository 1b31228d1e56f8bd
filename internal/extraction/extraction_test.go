package extraction

import (
	"context"
	"errors"
	"testing"

	"github.com/jonathan/resume-extractor/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClient returns canned replies and records the prompts it was sent
type fakeClient struct {
	reply    string
	err      error
	prompts  []string
	lastTier llm.ModelTier
}

func (f *fakeClient) GenerateContent(_ context.Context, prompt string, tier llm.ModelTier) (string, error) {
	f.prompts = append(f.prompts, prompt)
	f.lastTier = tier
	return f.reply, f.err
}

func (f *fakeClient) GenerateJSON(_ context.Context, prompt string, tier llm.ModelTier) (string, error) {
	f.prompts = append(f.prompts, prompt)
	f.lastTier = tier
	return f.reply, f.err
}

func (f *fakeClient) Close() error { return nil }

const resumeText = "Jane Doe\njane@x.com\n555-1234\nSkills: Go, SQL"

func TestExtractContactInfo(t *testing.T) {
	tests := []struct {
		name        string
		reply       string
		replyErr    error
		wantFailure FailureKind
		wantName    string
	}{
		{
			name:     "Valid reply",
			reply:    `{"name":"Jane Doe","email":"jane@x.com","phone":"555-1234"}`,
			wantName: "Jane Doe",
		},
		{
			name:     "Fenced reply",
			reply:    "```json\n{\"name\":\"Jane Doe\",\"email\":\"jane@x.com\",\"phone\":\"555-1234\"}\n```",
			wantName: "Jane Doe",
		},
		{
			name:        "Service failure",
			replyErr:    errors.New("connection reset"),
			wantFailure: FailureService,
		},
		{
			name:        "Non-JSON reply",
			reply:       "I could not find any contact information.",
			wantFailure: FailureSchema,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeClient{reply: tt.reply, err: tt.replyErr}
			extractor := NewExtractor(client)

			result := extractor.ExtractContactInfo(context.Background(), resumeText)

			assert.Equal(t, tt.wantFailure, result.Failure)
			assert.Equal(t, tt.wantFailure == FailureNone, result.OK())
			if tt.wantFailure == FailureNone {
				assert.Equal(t, tt.wantName, result.Contact.Name)
				assert.Equal(t, llm.TierLite, client.lastTier, "contact gate runs on the cheap tier")
			} else {
				assert.Error(t, result.Err)
			}
		})
	}
}

func TestExtractContactInfo_NoClient(t *testing.T) {
	extractor := NewExtractor(nil)
	result := extractor.ExtractContactInfo(context.Background(), resumeText)

	assert.Equal(t, FailureConfig, result.Failure)
	assert.False(t, result.OK())
}

func TestExtractContactInfo_PromptEmbedsText(t *testing.T) {
	client := &fakeClient{reply: `{"name":"Jane Doe","email":"jane@x.com","phone":""}`}
	extractor := NewExtractor(client)

	extractor.ExtractContactInfo(context.Background(), resumeText)

	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], resumeText)
	assert.NotContains(t, client.prompts[0], "{{.ResumeText}}")
}

func TestValidateResume(t *testing.T) {
	tests := []struct {
		name        string
		reply       string
		replyErr    error
		wantValid   bool
		wantFailure FailureKind
	}{
		{name: "Literal true", reply: "true", wantValid: true},
		{name: "Mixed case True", reply: "True", wantValid: true},
		{name: "Yes", reply: "YES", wantValid: true},
		{name: "Valid with whitespace", reply: "  Valid \n", wantValid: true},
		{name: "False", reply: "false", wantValid: false},
		{name: "Hedging reply", reply: "probably", wantValid: false},
		{name: "Empty reply", reply: "", wantValid: false},
		{name: "Affirmative sentence is not a token", reply: "yes, this is a resume", wantValid: false},
		{
			name:        "Service failure degrades to negative",
			replyErr:    errors.New("deadline exceeded"),
			wantValid:   false,
			wantFailure: FailureService,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			extractor := NewExtractor(&fakeClient{reply: tt.reply, err: tt.replyErr})

			result := extractor.ValidateResume(context.Background(), resumeText)

			assert.Equal(t, tt.wantValid, result.Valid)
			assert.Equal(t, tt.wantFailure, result.Failure)
		})
	}
}

func TestValidateResume_NoClient(t *testing.T) {
	result := NewExtractor(nil).ValidateResume(context.Background(), resumeText)

	assert.False(t, result.Valid)
	assert.Equal(t, FailureConfig, result.Failure)
}

func TestExtractStructuredData(t *testing.T) {
	validReply := `{
		"name": "Jane Doe",
		"email": "jane@x.com",
		"phone": "555-1234",
		"skills": ["Go", " Go ", "SQL", ""],
		"work_experience": [
			{"company": "Acme Corp", "role": "Engineer", "dates": "2020 - Present", "description": "Built services"}
		],
		"education": [],
		"certifications": []
	}`

	t.Run("Valid reply with normalized skills", func(t *testing.T) {
		extractor := NewExtractor(&fakeClient{reply: validReply})

		result := extractor.ExtractStructuredData(context.Background(), resumeText)

		require.True(t, result.OK())
		require.NotNil(t, result.Record)
		assert.Equal(t, "Jane Doe", result.Record.Name)
		assert.Equal(t, []string{"Go", "SQL"}, result.Record.Skills, "skills are trimmed and deduplicated in order")
		require.Len(t, result.Record.WorkExperience, 1)
		assert.Equal(t, "Acme Corp", result.Record.WorkExperience[0].Company)
	})

	t.Run("Fenced reply is de-fenced before validation", func(t *testing.T) {
		extractor := NewExtractor(&fakeClient{reply: "```json\n" + validReply + "\n```"})

		result := extractor.ExtractStructuredData(context.Background(), resumeText)

		require.True(t, result.OK())
		require.NotNil(t, result.Record)
		assert.Equal(t, "Jane Doe", result.Record.Name)
	})

	t.Run("Uses the standard tier", func(t *testing.T) {
		client := &fakeClient{reply: validReply}
		NewExtractor(client).ExtractStructuredData(context.Background(), resumeText)
		assert.Equal(t, llm.TierStandard, client.lastTier)
	})

	t.Run("Reply missing required keys is rejected", func(t *testing.T) {
		extractor := NewExtractor(&fakeClient{reply: `{"name": "Jane Doe"}`})

		result := extractor.ExtractStructuredData(context.Background(), resumeText)

		assert.Equal(t, FailureSchema, result.Failure)
		assert.Nil(t, result.Record)
	})

	t.Run("Non-JSON reply is a schema failure", func(t *testing.T) {
		extractor := NewExtractor(&fakeClient{reply: "Sorry, I cannot help with that."})

		result := extractor.ExtractStructuredData(context.Background(), resumeText)

		assert.Equal(t, FailureSchema, result.Failure)
	})

	t.Run("Service failure", func(t *testing.T) {
		extractor := NewExtractor(&fakeClient{err: errors.New("503 unavailable")})

		result := extractor.ExtractStructuredData(context.Background(), resumeText)

		assert.Equal(t, FailureService, result.Failure)
		assert.Nil(t, result.Record)
	})

	t.Run("No client", func(t *testing.T) {
		result := NewExtractor(nil).ExtractStructuredData(context.Background(), resumeText)
		assert.Equal(t, FailureConfig, result.Failure)
	})
}

func TestExtractStructuredData_DegreeCertificationFixture(t *testing.T) {
	// The degree-vs-certification split is prompt-level instruction. This
	// fixture pins the expected representation: a certification earned as
	// part of a degree program lives in the degree's details, not as a
	// standalone certifications entry.
	reply := `{
		"name": "Jane Doe",
		"email": "jane@x.com",
		"phone": "555-1234",
		"skills": ["Go"],
		"work_experience": [],
		"education": [
			{
				"institution": "State University",
				"degree": "B.S. in Computer Science",
				"graduation_date": "May 2020",
				"details": "Includes Cisco networking certification completed as part of the degree program"
			}
		],
		"certifications": []
	}`

	result := NewExtractor(&fakeClient{reply: reply}).ExtractStructuredData(context.Background(), resumeText)

	require.True(t, result.OK())
	require.Len(t, result.Record.Education, 1)
	assert.Contains(t, result.Record.Education[0].Details, "Cisco networking certification")
	assert.Empty(t, result.Record.Certifications)
}
