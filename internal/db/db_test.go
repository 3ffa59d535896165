package db

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

func TestClassify(t *testing.T) {
	plain := errors.New("connection reset")

	tests := []struct {
		name    string
		err     error
		wantFK  bool
		wantUQ  bool
		wantRaw bool
	}{
		{name: "postgres foreign key", err: &pgconn.PgError{Code: "23503"}, wantFK: true},
		{name: "postgres unique", err: &pgconn.PgError{Code: "23505"}, wantUQ: true},
		{name: "postgres syntax error", err: &pgconn.PgError{Code: "42601"}, wantRaw: true},
		{name: "wrapped postgres unique", err: fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}), wantUQ: true},
		{name: "sqlite foreign key", err: sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey}, wantFK: true},
		{name: "sqlite unique", err: sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}, wantUQ: true},
		{name: "sqlite not null", err: sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintNotNull}, wantRaw: true},
		{name: "no code", err: plain, wantRaw: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.err)

			if errors.Is(got, ErrForeignKeyViolation) != tt.wantFK {
				t.Errorf("foreign key category: got %v, want %v", errors.Is(got, ErrForeignKeyViolation), tt.wantFK)
			}
			if errors.Is(got, ErrUniqueViolation) != tt.wantUQ {
				t.Errorf("unique category: got %v, want %v", errors.Is(got, ErrUniqueViolation), tt.wantUQ)
			}
			if tt.wantRaw && got != tt.err {
				t.Errorf("expected error to be returned unchanged, got %v", got)
			}
			if !tt.wantRaw && !errors.Is(got, tt.err) {
				t.Errorf("expected driver cause to be kept, got %v", got)
			}
		})
	}

	if Classify(nil) != nil {
		t.Error("expected nil for nil error")
	}
}

func TestRebind(t *testing.T) {
	q := `UPDATE todos SET title = COALESCE($1, title) WHERE id = $2 AND user_id = $10`

	if got := Rebind(DriverPostgres, q); got != q {
		t.Errorf("postgres query should be unchanged, got %q", got)
	}

	want := `UPDATE todos SET title = COALESCE(?1, title) WHERE id = ?2 AND user_id = ?10`
	if got := Rebind(DriverSQLite, q); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestWithForeignKeys(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "todos.db", want: "todos.db?_foreign_keys=on"},
		{in: "file:t?mode=memory", want: "file:t?mode=memory&_foreign_keys=on"},
		{in: "file:t?_fk=1", want: "file:t?_fk=1"},
		{in: "file:t?_foreign_keys=off", want: "file:t?_foreign_keys=off"},
	}
	for _, tt := range tests {
		if got := withForeignKeys(tt.in); got != tt.want {
			t.Errorf("withForeignKeys(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTimestampScan(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		src  any
		want time.Time
	}{
		{name: "time value", src: now, want: now},
		{name: "sqlite default text", src: "2024-05-01 10:30:00", want: now},
		{name: "bytes", src: []byte("2024-05-01 10:30:00"), want: now},
		{name: "iso with zone", src: "2024-05-01T10:30:00Z", want: now},
		{name: "null", src: nil, want: time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts Timestamp
			if err := ts.Scan(tt.src); err != nil {
				t.Fatalf("scan: %v", err)
			}
			if !ts.Time.Equal(tt.want) {
				t.Errorf("expected %v, got %v", tt.want, ts.Time)
			}
		})
	}

	var ts Timestamp
	if err := ts.Scan("yesterday"); err == nil {
		t.Error("expected error for unparseable text")
	}
	if err := ts.Scan(42); err == nil {
		t.Error("expected error for unsupported type")
	}
}

func TestConnectAndEnsureSchema_SQLite(t *testing.T) {
	conn, err := Connect(DriverSQLite, "file:dbtest?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		if err := EnsureSchema(ctx, conn, DriverSQLite); err != nil {
			t.Fatalf("ensure schema (run %d): %v", i+1, err)
		}
	}

	_, err = conn.ExecContext(ctx, `INSERT INTO todos (user_id, title, body) VALUES (999, 't', 'b')`)
	if !errors.Is(Classify(err), ErrForeignKeyViolation) {
		t.Fatalf("expected foreign key violation, got %v", err)
	}
}

func TestConnect_Rejects(t *testing.T) {
	if _, err := Connect(DriverPostgres, ""); err == nil {
		t.Error("expected error for empty url")
	}
	if _, err := Connect("mysql", "root@/todos"); err == nil {
		t.Error("expected error for unsupported driver")
	}
	if err := EnsureSchema(context.Background(), nil, "mysql"); err == nil {
		t.Error("expected error for unsupported driver")
	}
}
