package database

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMock(t *testing.T) (*Executor, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewExecutor(db), mock
}

func expectationsMet(t *testing.T, mock sqlmock.Sqlmock) {
	t.Helper()
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestExecuteSelectSingleValue(t *testing.T) {
	exec, mock := newMock(t)

	mock.ExpectQuery("SELECT SUM(valor) FROM gastos;").
		WillReturnRows(sqlmock.NewRows([]string{"SUM(valor)"}).AddRow(150.0))

	got, err := exec.Execute(context.Background(), "SELECT SUM(valor) FROM gastos;")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if got != "[(150.0,)]" {
		t.Errorf("Execute() = %q, want %q", got, "[(150.0,)]")
	}
	expectationsMet(t, mock)
}

func TestExecuteSelectMultipleRows(t *testing.T) {
	exec, mock := newMock(t)

	mock.ExpectQuery("SELECT descricao, valor FROM gastos;").
		WillReturnRows(sqlmock.NewRows([]string{"descricao", "valor"}).
			AddRow("Almoço", 30.0).
			AddRow("Uber", 22.5))

	got, err := exec.Execute(context.Background(), "SELECT descricao, valor FROM gastos;")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	want := "[('Almoço', 30.0), ('Uber', 22.5)]"
	if got != want {
		t.Errorf("Execute() = %q, want %q", got, want)
	}
	expectationsMet(t, mock)
}

func TestExecuteSelectNoRows(t *testing.T) {
	exec, mock := newMock(t)

	mock.ExpectQuery("SELECT * FROM gastos WHERE valor > 1000;").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	got, err := exec.Execute(context.Background(), "SELECT * FROM gastos WHERE valor > 1000;")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if got != "" {
		t.Errorf("Execute() = %q, want empty string", got)
	}
	expectationsMet(t, mock)
}

func TestExecuteSelectNullValue(t *testing.T) {
	exec, mock := newMock(t)

	mock.ExpectQuery("SELECT SUM(valor) FROM gastos;").
		WillReturnRows(sqlmock.NewRows([]string{"SUM(valor)"}).AddRow(nil))

	got, err := exec.Execute(context.Background(), "SELECT SUM(valor) FROM gastos;")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if got != "[(None,)]" {
		t.Errorf("Execute() = %q, want %q", got, "[(None,)]")
	}
	expectationsMet(t, mock)
}

func TestExecuteInsert(t *testing.T) {
	exec, mock := newMock(t)

	query := "INSERT INTO gastos (descricao, valor, data_hora, categoria, confirmado) VALUES ('Almoço', 30.0, datetime('now', 'localtime'), 'Alimentação', 0);"
	mock.ExpectExec(query).WillReturnResult(sqlmock.NewResult(1, 1))

	got, err := exec.Execute(context.Background(), query)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if got != "1 row(s) affected" {
		t.Errorf("Execute() = %q, want %q", got, "1 row(s) affected")
	}
	expectationsMet(t, mock)
}

func TestExecuteStripsCodeFence(t *testing.T) {
	exec, mock := newMock(t)

	// The expectation is the clean statement; the fenced input only
	// passes if sanitization runs before execution.
	mock.ExpectQuery("SELECT 1;").
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(int64(1)))

	got, err := exec.Execute(context.Background(), "```sql\nSELECT 1;\n```")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if got != "[(1,)]" {
		t.Errorf("Execute() = %q, want %q", got, "[(1,)]")
	}
	expectationsMet(t, mock)
}

func TestExecuteWithCTE(t *testing.T) {
	exec, mock := newMock(t)

	query := "WITH totais AS (SELECT categoria, SUM(valor) AS total FROM gastos GROUP BY categoria) SELECT * FROM totais;"
	mock.ExpectQuery(query).
		WillReturnRows(sqlmock.NewRows([]string{"categoria", "total"}).AddRow("Alimentação", 120.0))

	got, err := exec.Execute(context.Background(), query)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if got != "[('Alimentação', 120.0)]" {
		t.Errorf("Execute() = %q", got)
	}
	expectationsMet(t, mock)
}

func TestExecuteQueryError(t *testing.T) {
	exec, mock := newMock(t)

	dbErr := errors.New("no such table: gasto")
	mock.ExpectQuery("SELECT * FROM gasto;").WillReturnError(dbErr)

	_, err := exec.Execute(context.Background(), "SELECT * FROM gasto;")
	if !errors.Is(err, dbErr) {
		t.Fatalf("Execute() error = %v, want %v", err, dbErr)
	}
	expectationsMet(t, mock)
}

func TestSchema(t *testing.T) {
	exec, mock := newMock(t)

	ddl := "CREATE TABLE gastos (id INTEGER PRIMARY KEY AUTOINCREMENT, descricao TEXT NOT NULL, valor REAL NOT NULL)"
	mock.ExpectQuery(selectTables).
		WillReturnRows(sqlmock.NewRows([]string{"name", "sql"}).AddRow("gastos", ddl))
	mock.ExpectQuery("SELECT * FROM gastos LIMIT 3").
		WillReturnRows(sqlmock.NewRows([]string{"id", "descricao", "valor"}).
			AddRow(int64(1), "Almoço", 30.0).
			AddRow(int64(2), "Uber", 22.5))

	got, err := exec.Schema(context.Background())
	if err != nil {
		t.Fatalf("Schema() error: %v", err)
	}

	if !strings.Contains(got, ddl) {
		t.Errorf("Schema() missing CREATE statement:\n%s", got)
	}
	if !strings.Contains(got, "3 rows from gastos table:") {
		t.Errorf("Schema() missing sample header:\n%s", got)
	}
	if !strings.Contains(got, "Almoço\t30") {
		t.Errorf("Schema() missing sample row:\n%s", got)
	}
	expectationsMet(t, mock)
}

func TestSchemaQueryError(t *testing.T) {
	exec, mock := newMock(t)

	dbErr := errors.New("database is locked")
	mock.ExpectQuery(selectTables).WillReturnError(dbErr)

	_, err := exec.Schema(context.Background())
	if !errors.Is(err, dbErr) {
		t.Fatalf("Schema() error = %v, want wrapped %v", err, dbErr)
	}
	expectationsMet(t, mock)
}

func TestIsReadQuery(t *testing.T) {
	tests := []struct {
		query string
		want  bool
	}{
		{"SELECT 1;", true},
		{"select valor from gastos;", true},
		{"  WITH t AS (SELECT 1) SELECT * FROM t;", true},
		{"INSERT INTO gastos VALUES (1);", false},
		{"UPDATE gastos SET confirmado = 1;", false},
		{"DELETE FROM gastos;", false},
	}

	for _, tt := range tests {
		if got := isReadQuery(tt.query); got != tt.want {
			t.Errorf("isReadQuery(%q) = %v, want %v", tt.query, got, tt.want)
		}
	}
}

func TestFormatTuple(t *testing.T) {
	tests := []struct {
		name   string
		values []any
		want   string
	}{
		{"single float", []any{150.0}, "(150.0,)"},
		{"fractional float", []any{22.5}, "(22.5,)"},
		{"string and float", []any{"Almoço", 30.0}, "('Almoço', 30.0)"},
		{"bytes quoted", []any{[]byte("Uber")}, "('Uber',)"},
		{"integer", []any{int64(3)}, "(3,)"},
		{"null", []any{nil}, "(None,)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatTuple(tt.values); got != tt.want {
				t.Errorf("formatTuple(%v) = %q, want %q", tt.values, got, tt.want)
			}
		})
	}
}
