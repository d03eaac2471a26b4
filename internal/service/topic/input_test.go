package topic

import (
	"errors"
	"strings"
	"testing"

	"github.com/avolkov-dev/forum-backend/internal/domain"
)

func fieldsOf(t *testing.T, err error) []string {
	t.Helper()
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error is not *ValidationError: %v", err)
	}
	fields := make([]string, 0, len(verr.Errors))
	for _, fe := range verr.Errors {
		fields = append(fields, fe.Field)
	}
	return fields
}

func TestCreateTopicInput_Validate(t *testing.T) {
	t.Parallel()

	limits := DefaultLimits()

	tests := []struct {
		name       string
		input      CreateTopicInput
		wantFields []string
	}{
		{
			name:  "valid",
			input: CreateTopicInput{Title: "Title", Description: "Body", CategoryName: "General"},
		},
		{
			name:  "empty description allowed",
			input: CreateTopicInput{Title: "Title", CategoryName: "General"},
		},
		{
			name:       "missing title",
			input:      CreateTopicInput{CategoryName: "General"},
			wantFields: []string{"title"},
		},
		{
			name:       "whitespace title",
			input:      CreateTopicInput{Title: "   \t ", CategoryName: "General"},
			wantFields: []string{"title"},
		},
		{
			name:       "missing category",
			input:      CreateTopicInput{Title: "Title"},
			wantFields: []string{"category_name"},
		},
		{
			name: "title over limit",
			input: CreateTopicInput{
				Title:        strings.Repeat("a", limits.MaxTitleLength+1),
				CategoryName: "General",
			},
			wantFields: []string{"title"},
		},
		{
			name: "description over limit",
			input: CreateTopicInput{
				Title:        "Title",
				Description:  strings.Repeat("a", limits.MaxDescriptionLength+1),
				CategoryName: "General",
			},
			wantFields: []string{"description"},
		},
		{
			name:       "all fields bad at once",
			input:      CreateTopicInput{},
			wantFields: []string{"title", "category_name"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := tc.input.Validate(limits)
			if len(tc.wantFields) == 0 {
				if err != nil {
					t.Fatalf("Validate returned error: %v", err)
				}
				return
			}

			got := fieldsOf(t, err)
			if len(got) != len(tc.wantFields) {
				t.Fatalf("fields: got=%v, want=%v", got, tc.wantFields)
			}
			for i, field := range tc.wantFields {
				if got[i] != field {
					t.Errorf("field[%d]: got=%s, want=%s", i, got[i], field)
				}
			}
		})
	}
}

func TestEditTopicInput_Validate(t *testing.T) {
	t.Parallel()

	limits := DefaultLimits()

	valid := EditTopicInput{ID: 7, Title: "Title", CategoryName: "General"}
	if err := valid.Validate(limits); err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}

	missingID := EditTopicInput{Title: "Title", CategoryName: "General"}
	got := fieldsOf(t, missingID.Validate(limits))
	if len(got) != 1 || got[0] != "id" {
		t.Errorf("fields: got=%v, want=[id]", got)
	}

	allBad := EditTopicInput{ID: -1}
	got = fieldsOf(t, allBad.Validate(limits))
	if len(got) != 3 {
		t.Errorf("fields: got=%v, want id, title and category_name", got)
	}
}
