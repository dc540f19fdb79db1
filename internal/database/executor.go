package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strconv"
	"strings"

	"financebot/internal/pipeline"
)

const sampleRows = 3

// Executor runs model-generated SQL against the finance database and
// renders results as text for prompt interpolation.
type Executor struct {
	db *sql.DB
}

func NewExecutor(db *sql.DB) *Executor {
	return &Executor{db: db}
}

// Schema returns the CREATE statements of the user tables, each followed
// by a few sample rows. Fetched fresh on every call, no caching.
func (e *Executor) Schema(ctx context.Context) (string, error) {
	rows, err := e.db.QueryContext(ctx, selectTables)
	if err != nil {
		return "", fmt.Errorf("select table definitions: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			log.Println("[Executor.Schema] rows.Close():", cerr)
		}
	}()

	type table struct {
		name string
		ddl  string
	}
	var tables []table
	for rows.Next() {
		var t table
		if err := rows.Scan(&t.name, &t.ddl); err != nil {
			return "", fmt.Errorf("scan table definition: %w", err)
		}
		tables = append(tables, t)
	}
	if err := rows.Err(); err != nil {
		return "", fmt.Errorf("iterate table definitions: %w", err)
	}

	var b strings.Builder
	for _, t := range tables {
		b.WriteString(strings.TrimSpace(t.ddl))
		b.WriteString("\n\n")

		sample, err := e.sampleTable(ctx, t.name)
		if err != nil {
			return "", err
		}
		b.WriteString(sample)
	}

	return strings.TrimSpace(b.String()), nil
}

func (e *Executor) sampleTable(ctx context.Context, table string) (string, error) {
	rows, err := e.db.QueryContext(ctx, fmt.Sprintf("SELECT * FROM %s LIMIT %d", table, sampleRows))
	if err != nil {
		return "", fmt.Errorf("sample table %s: %w", table, err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			log.Println("[Executor.sampleTable] rows.Close():", cerr)
		}
	}()

	columns, err := rows.Columns()
	if err != nil {
		return "", fmt.Errorf("columns of %s: %w", table, err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "/*\n%d rows from %s table:\n", sampleRows, table)
	b.WriteString(strings.Join(columns, "\t"))
	b.WriteString("\n")

	for rows.Next() {
		values, err := scanRow(rows, len(columns))
		if err != nil {
			return "", fmt.Errorf("scan sample row of %s: %w", table, err)
		}
		for i, v := range values {
			if i > 0 {
				b.WriteString("\t")
			}
			b.WriteString(formatBare(v))
		}
		b.WriteString("\n")
	}
	if err := rows.Err(); err != nil {
		return "", fmt.Errorf("iterate sample rows of %s: %w", table, err)
	}

	b.WriteString("*/\n\n")
	return b.String(), nil
}

// Execute sanitizes the raw model output and runs it. SELECT results are
// rendered as a list of value tuples; write statements report the number
// of affected rows. Database errors propagate to the caller.
func (e *Executor) Execute(ctx context.Context, query string) (string, error) {
	clean := pipeline.SanitizeSQL(query)
	log.Printf("[Executor.Execute] executando query: %s", clean)

	if isReadQuery(clean) {
		return e.executeRead(ctx, clean)
	}

	result, err := e.db.ExecContext(ctx, clean)
	if err != nil {
		return "", err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d row(s) affected", affected), nil
}

func (e *Executor) executeRead(ctx context.Context, query string) (string, error) {
	rows, err := e.db.QueryContext(ctx, query)
	if err != nil {
		return "", err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			log.Println("[Executor.executeRead] rows.Close():", cerr)
		}
	}()

	columns, err := rows.Columns()
	if err != nil {
		return "", err
	}

	var tuples []string
	for rows.Next() {
		values, err := scanRow(rows, len(columns))
		if err != nil {
			return "", err
		}
		tuples = append(tuples, formatTuple(values))
	}
	if err := rows.Err(); err != nil {
		return "", err
	}

	if len(tuples) == 0 {
		return "", nil
	}
	return "[" + strings.Join(tuples, ", ") + "]", nil
}

func isReadQuery(query string) bool {
	head := strings.ToUpper(strings.TrimSpace(query))
	return strings.HasPrefix(head, "SELECT") || strings.HasPrefix(head, "WITH")
}

func scanRow(rows *sql.Rows, n int) ([]any, error) {
	values := make([]any, n)
	pointers := make([]any, n)
	for i := range values {
		pointers[i] = &values[i]
	}
	if err := rows.Scan(pointers...); err != nil {
		return nil, err
	}
	return values, nil
}

// formatTuple renders a row the way the response prompt expects:
// ('Almoço', 30.0) with a trailing comma for single values: (150.0,).
func formatTuple(values []any) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = formatValue(v)
	}
	if len(parts) == 1 {
		return "(" + parts[0] + ",)"
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func formatValue(v any) string {
	switch value := v.(type) {
	case nil:
		return "None"
	case []byte:
		return "'" + string(value) + "'"
	case string:
		return "'" + value + "'"
	case float64:
		return formatFloat(value)
	default:
		return fmt.Sprintf("%v", value)
	}
}

// formatFloat keeps a decimal point on whole numbers so amounts read as
// 150.0, not 150.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

func formatBare(v any) string {
	switch value := v.(type) {
	case nil:
		return "None"
	case []byte:
		return string(value)
	case string:
		return value
	default:
		return fmt.Sprintf("%v", value)
	}
}
