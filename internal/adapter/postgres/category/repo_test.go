package category

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v2"

	"github.com/avolkov-dev/forum-backend/internal/domain"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	t.Cleanup(mock.Close)
	return mock
}

func TestRepo_GetByName(t *testing.T) {
	mock := newMock(t)
	repo := New(mock)

	mock.ExpectQuery(`SELECT id, name FROM categories WHERE`).
		WithArgs("General").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name"}).AddRow(int64(3), "General"))

	got, err := repo.GetByName(context.Background(), "General")
	if err != nil {
		t.Fatalf("GetByName: %v", err)
	}
	if got.ID != 3 || got.Name != "General" {
		t.Errorf("unexpected category: %+v", got)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRepo_GetByName_NotFound(t *testing.T) {
	mock := newMock(t)
	repo := New(mock)

	mock.ExpectQuery(`SELECT id, name FROM categories WHERE`).
		WithArgs("general").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByName(context.Background(), "general")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRepo_ListNames(t *testing.T) {
	mock := newMock(t)
	repo := New(mock)

	rows := pgxmock.NewRows([]string{"name"}).
		AddRow("Announcements").
		AddRow("General").
		AddRow("Off-topic")
	mock.ExpectQuery(`SELECT name FROM categories ORDER BY name`).
		WillReturnRows(rows)

	names, err := repo.ListNames(context.Background())
	if err != nil {
		t.Fatalf("ListNames: %v", err)
	}
	want := []string{"Announcements", "General", "Off-topic"}
	if len(names) != len(want) {
		t.Fatalf("names: got %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d]: got %q, want %q", i, names[i], want[i])
		}
	}
}

func TestRepo_ListNames_Empty(t *testing.T) {
	mock := newMock(t)
	repo := New(mock)

	mock.ExpectQuery(`SELECT name FROM categories ORDER BY name`).
		WillReturnRows(pgxmock.NewRows([]string{"name"}))

	names, err := repo.ListNames(context.Background())
	if err != nil {
		t.Fatalf("ListNames: %v", err)
	}
	if names == nil {
		t.Fatal("ListNames returned nil, want empty slice")
	}
	if len(names) != 0 {
		t.Fatalf("names: got %v, want empty", names)
	}
}

func TestRepo_Ensure(t *testing.T) {
	mock := newMock(t)
	repo := New(mock)

	mock.ExpectQuery(`INSERT INTO categories \(name\) VALUES .+ RETURNING id, name`).
		WithArgs("General").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name"}).AddRow(int64(3), "General"))

	got, err := repo.Ensure(context.Background(), "General")
	if err != nil {
		t.Fatalf("Ensure: %v", err)
	}
	if got.ID != 3 {
		t.Errorf("unexpected category: %+v", got)
	}
}
