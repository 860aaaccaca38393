package repository

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"os-service-api/internal/domain/entities"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// fakeRows serves pre-built rows whose values match the Scan destinations.
type fakeRows struct {
	rows [][]any
	pos  int
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return nil }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.NewCommandTag("SELECT") }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	if r.pos >= len(r.rows) {
		return false
	}
	r.pos++
	return true
}

func (r *fakeRows) Values() ([]any, error) { return r.rows[r.pos-1], nil }

func (r *fakeRows) Scan(dest ...any) error {
	row := r.rows[r.pos-1]
	if len(dest) != len(row) {
		return errors.New("fakeRows: column count mismatch")
	}
	for i, d := range dest {
		reflect.ValueOf(d).Elem().Set(reflect.ValueOf(row[i]))
	}
	return nil
}

type fakeQuerier struct {
	execTag  string
	execArgs []any
	selects  [][][]any
	queries  int
}

func (q *fakeQuerier) Exec(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
	q.execArgs = args
	return pgconn.NewCommandTag(q.execTag), nil
}

func (q *fakeQuerier) Query(context.Context, string, ...any) (pgx.Rows, error) {
	rows := q.selects[q.queries]
	q.queries++
	return &fakeRows{rows: rows}, nil
}

func (q *fakeQuerier) QueryRow(context.Context, string, ...any) pgx.Row { return nil }

func storedOrderRow(id int64, status entities.ServiceOrderStatus, version int64) []any {
	return []any{
		id, int64(1), int64(42),
		[]lineRef{}, []lineRef{},
		string(status), float64(0),
		time.Date(2025, 5, 20, 9, 0, 0, 0, time.UTC), (*time.Time)(nil),
		version,
	}
}

func TestServiceOrderPostgresRepository_Update(t *testing.T) {
	order := entities.ServiceOrder{
		ID:       10,
		Services: entities.ServiceRefs([]int64{1}),
		Status:   entities.ServiceOrderStatusInDiagnosis,
		Version:  2,
	}

	tests := []struct {
		name    string
		tag     string
		selects [][][]any
		check   func(t *testing.T, got entities.ServiceOrder, err error)
	}{
		{
			name:    "stale version is a concurrent modification",
			tag:     "UPDATE 0",
			selects: [][][]any{{storedOrderRow(10, entities.ServiceOrderStatusWaitingForApproval, 3)}},
			check: func(t *testing.T, _ entities.ServiceOrder, err error) {
				if !errors.Is(err, entities.ErrConcurrentModification) || !entities.IsConflictError(err) {
					t.Fatalf("expected concurrent modification conflict, got %v", err)
				}
			},
		},
		{
			name:    "missing row is not found",
			tag:     "UPDATE 0",
			selects: [][][]any{{}},
			check: func(t *testing.T, _ entities.ServiceOrder, err error) {
				if !entities.IsNotFoundError(err) {
					t.Fatalf("expected not found, got %v", err)
				}
				if err.Error() != "service order with id 10 not found" {
					t.Fatalf("unexpected message: %v", err)
				}
			},
		},
		{
			name:    "applied update re-reads the row",
			tag:     "UPDATE 1",
			selects: [][][]any{{storedOrderRow(10, entities.ServiceOrderStatusInDiagnosis, 3)}},
			check: func(t *testing.T, got entities.ServiceOrder, err error) {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if got.ID != 10 || got.Version != 3 || got.Status != entities.ServiceOrderStatusInDiagnosis {
					t.Fatalf("unexpected order: %+v", got)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := &fakeQuerier{execTag: tt.tag, selects: tt.selects}
			repo := &ServiceOrderPostgresRepository{db: db}

			got, err := repo.Update(context.Background(), order.ID, order)
			tt.check(t, got, err)

			if db.queries != 1 {
				t.Fatalf("expected one read after the update, got %d", db.queries)
			}
			if n := len(db.execArgs); n != 7 || db.execArgs[5] != int64(10) || db.execArgs[6] != int64(2) {
				t.Fatalf("update must match on id and the caller's version, got %v", db.execArgs)
			}
		})
	}
}
