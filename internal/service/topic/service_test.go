package topic

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/avolkov-dev/forum-backend/internal/domain"
	pkgclock "github.com/avolkov-dev/forum-backend/pkg/clock"
	"github.com/avolkov-dev/forum-backend/pkg/ctxutil"
)

//go:generate moq -out topic_repo_mock_test.go -pkg topic . topicRepo
//go:generate moq -out category_resolver_mock_test.go -pkg topic . categoryResolver
//go:generate moq -out audit_logger_mock_test.go -pkg topic . auditLogger
//go:generate moq -out tx_manager_mock_test.go -pkg topic . txManager

// passthroughTx runs the transactional closure directly.
func passthroughTx() *txManagerMock {
	return &txManagerMock{
		RunInTxFunc: func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	}
}

// authedCtx returns a context carrying userID as the acting user.
func authedCtx(userID uuid.UUID) context.Context {
	return ctxutil.WithUserID(context.Background(), userID)
}

func newService(
	topics *topicRepoMock,
	categories *categoryResolverMock,
	audit *auditLoggerMock,
	tx *txManagerMock,
	clk pkgclock.Clock,
) *Service {
	if clk == nil {
		clk = pkgclock.Fixed{T: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
	}
	return NewService(slog.Default(), topics, categories, audit, tx, clk, DefaultLimits())
}

func TestNewService_FallsBackToDefaultLimits(t *testing.T) {
	t.Parallel()

	svc := NewService(slog.Default(), &topicRepoMock{}, &categoryResolverMock{},
		&auditLoggerMock{}, passthroughTx(), pkgclock.System{}, Limits{})

	if svc.limits != DefaultLimits() {
		t.Errorf("limits: got=%+v, want=%+v", svc.limits, DefaultLimits())
	}
}

func TestService_Details(t *testing.T) {
	t.Parallel()

	authorID := uuid.New()
	stored := &domain.Topic{
		ID:         7,
		Title:      "Deploying with confidence",
		AuthorID:   authorID,
		CategoryID: 3,
		Author:     &domain.User{ID: authorID, Username: "alice"},
		Category:   &domain.Category{ID: 3, Name: "DevOps"},
		Comments:   []domain.Comment{{ID: 1, TopicID: 7, Text: "nice"}},
	}

	topicsMock := &topicRepoMock{
		GetByIDFunc: func(ctx context.Context, id int64, include domain.TopicInclude) (*domain.Topic, error) {
			if id != 7 {
				t.Errorf("GetByID called with id=%d, want 7", id)
			}
			if !include.Author || !include.Category || !include.Comments {
				t.Errorf("GetByID include=%+v, want all relations", include)
			}
			return stored, nil
		},
	}

	svc := newService(topicsMock, &categoryResolverMock{}, &auditLoggerMock{}, passthroughTx(), nil)

	// Details is a public read: no acting user in the context.
	got, err := svc.Details(context.Background(), 7)
	if err != nil {
		t.Fatalf("Details returned error: %v", err)
	}
	if got.ID != 7 {
		t.Errorf("ID: got=%d, want=7", got.ID)
	}
	if got.Author == nil || got.Author.Username != "alice" {
		t.Errorf("Author not loaded: %+v", got.Author)
	}
	if got.Category == nil || got.Category.Name != "DevOps" {
		t.Errorf("Category not loaded: %+v", got.Category)
	}
	if len(got.Comments) != 1 {
		t.Errorf("Comments: got=%d, want=1", len(got.Comments))
	}
}

func TestService_Details_NotFound(t *testing.T) {
	t.Parallel()

	topicsMock := &topicRepoMock{
		GetByIDFunc: func(ctx context.Context, id int64, include domain.TopicInclude) (*domain.Topic, error) {
			return nil, domain.ErrNotFound
		},
	}

	svc := newService(topicsMock, &categoryResolverMock{}, &auditLoggerMock{}, passthroughTx(), nil)

	_, err := svc.Details(context.Background(), 999)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Details(999): got err=%v, want ErrNotFound", err)
	}
}
