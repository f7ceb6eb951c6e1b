package business

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateInput(t *testing.T) {
	tests := []struct {
		name    string
		input   *AuditInput
		wantErr string
	}{
		{"合法输入", &AuditInput{CaseID: 1, ProjectName: "p"}, ""},
		{"缺 case_id", &AuditInput{ProjectName: "p"}, "case_id is required"},
		{"case_id 为负", &AuditInput{CaseID: -1, ProjectName: "p"}, "case_id is required"},
		{"缺 project_name", &AuditInput{CaseID: 1}, "project_name is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateInput(tt.input)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}
