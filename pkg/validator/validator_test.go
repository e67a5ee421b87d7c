package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reviewRequest struct {
	Action string `json:"action" validate:"required,oneof=approve reject"`
	Notes  string `json:"notes" validate:"required_if=Action reject,omitempty,notblank"`
}

type submitRequest struct {
	FileURL  string `json:"file_url" validate:"required,url"`
	FileName string `json:"file_name" validate:"required,notblank,max=10"`
}

func TestValidate_Review(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name   string
		req    reviewRequest
		errors map[string]string
	}{
		{"approve without notes", reviewRequest{Action: "approve"}, nil},
		{"reject with notes", reviewRequest{Action: "reject", Notes: "expired"}, nil},
		{"reject without notes", reviewRequest{Action: "reject"}, map[string]string{
			"notes": "notes is required when action is reject",
		}},
		{"reject with blank notes", reviewRequest{Action: "reject", Notes: "   "}, map[string]string{
			"notes": "notes must not be blank",
		}},
		{"unknown action", reviewRequest{Action: "escalate"}, map[string]string{
			"action": "action must be one of: approve, reject",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.req)
			if tt.errors == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.errors, v.FormatValidationErrors(err))
		})
	}
}

func TestValidate_Submit(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&submitRequest{FileURL: "not a url", FileName: "this-name-is-too-long.pdf"})
	require.Error(t, err)

	assert.Equal(t, map[string]string{
		"file_url":  "file_url must be a valid URL",
		"file_name": "file_name must be at most 10 characters",
	}, v.FormatValidationErrors(err))
}
