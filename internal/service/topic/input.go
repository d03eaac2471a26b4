package topic

import (
	"fmt"
	"strings"

	"github.com/avolkov-dev/forum-backend/internal/domain"
)

// CreateTopicInput holds the form fields for creating a topic. The category
// is referenced by name, the way forms capture it; resolution to an id
// happens inside the service.
type CreateTopicInput struct {
	Title        string
	Description  string
	CategoryName string
}

// Validate checks all fields and collects all errors.
func (i CreateTopicInput) Validate(limits Limits) error {
	errs := validateContent(i.Title, i.Description, i.CategoryName, limits)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// EditTopicInput holds the form fields for the write phase of an edit.
type EditTopicInput struct {
	ID           int64
	Title        string
	Description  string
	CategoryName string
}

// Validate checks all fields and collects all errors.
func (i EditTopicInput) Validate(limits Limits) error {
	var errs []domain.FieldError
	if i.ID <= 0 {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	errs = append(errs, validateContent(i.Title, i.Description, i.CategoryName, limits)...)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateContent(title, description, categoryName string, limits Limits) []domain.FieldError {
	var errs []domain.FieldError

	title = strings.TrimSpace(title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(title) > limits.MaxTitleLength {
		errs = append(errs, domain.FieldError{
			Field:   "title",
			Message: fmt.Sprintf("max %d characters", limits.MaxTitleLength),
		})
	}

	if len(description) > limits.MaxDescriptionLength {
		errs = append(errs, domain.FieldError{
			Field:   "description",
			Message: fmt.Sprintf("max %d characters", limits.MaxDescriptionLength),
		})
	}

	if strings.TrimSpace(categoryName) == "" {
		errs = append(errs, domain.FieldError{Field: "category_name", Message: "required"})
	}

	return errs
}
