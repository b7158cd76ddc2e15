package common

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrArgCount is returned when a statement's placeholders and arguments disagree.
var ErrArgCount = errors.New("placeholder and argument count mismatch")

// Statement is a parameterized SQL statement with its bind arguments.
// Placeholders are Postgres ordinals ($1, $2, ...); Args[n-1] binds $n.
type Statement struct {
	SQL  string
	Args []interface{}
}

// JSONB is raw JSON text rendered as a jsonb-typed literal.
type JSONB string

// GenPreparedStmt generates an INSERT prepared statement with `?` placeholders.
func GenPreparedStmt(table string, fields []string) (string, error) {
	// Validate inputs
	if table == "" || len(fields) == 0 {
		return "", fmt.Errorf("table name and fields are required")
	}

	stmtSQL := fmt.Sprintf(`
INSERT INTO %s (
	%s
) VALUES (%s)`,
		table,
		strings.Join(fields, ", "),
		strings.Repeat("?, ", len(fields)-1)+"?",
	)

	return strings.TrimSpace(stmtSQL), nil
}

// QuoteLiteral renders s as a SQL string literal. Embedded single quotes
// are doubled; every other character is kept as is.
func QuoteLiteral(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('\'')
	b.WriteString(strings.ReplaceAll(s, "'", "''"))
	b.WriteByte('\'')
	return b.String()
}

// EncodeValue renders a bind argument as SQL literal text.
func EncodeValue(v interface{}) (string, error) {
	switch val := v.(type) {
	case nil:
		return "NULL", nil
	case string:
		return QuoteLiteral(val), nil
	case JSONB:
		return "CAST(" + QuoteLiteral(string(val)) + " AS jsonb)", nil
	case bool:
		if val {
			return "TRUE", nil
		}
		return "FALSE", nil
	case int:
		return strconv.Itoa(val), nil
	case int64:
		return strconv.FormatInt(val, 10), nil
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return "", fmt.Errorf("cannot encode non-finite number %v", val)
		}
		return strconv.FormatFloat(val, 'f', -1, 64), nil
	case *float64:
		if val == nil {
			return "NULL", nil
		}
		return EncodeValue(*val)
	case *string:
		if val == nil {
			return "NULL", nil
		}
		return QuoteLiteral(*val), nil
	default:
		return "", fmt.Errorf("unsupported argument type %T", v)
	}
}

// Interpolate renders a Statement into literal SQL, replacing each $n with
// the encoded argument. Substituted text is never rescanned.
func Interpolate(stmt Statement) (string, error) {
	var b strings.Builder
	b.Grow(len(stmt.SQL) + len(stmt.Args)*16)

	used := 0
	query := stmt.SQL
	for i := 0; i < len(query); i++ {
		c := query[i]
		if c != '$' {
			b.WriteByte(c)
			continue
		}
		j := i + 1
		for j < len(query) && query[j] >= '0' && query[j] <= '9' {
			j++
		}
		if j == i+1 {
			b.WriteByte(c)
			continue
		}
		n, err := strconv.Atoi(query[i+1 : j])
		if err != nil || n < 1 || n > len(stmt.Args) {
			return "", fmt.Errorf("%w: $%s with %d args", ErrArgCount, query[i+1:j], len(stmt.Args))
		}
		lit, err := EncodeValue(stmt.Args[n-1])
		if err != nil {
			return "", fmt.Errorf("failed to encode $%d: %w", n, err)
		}
		b.WriteString(lit)
		used++
		i = j - 1
	}

	if used != len(stmt.Args) {
		return "", fmt.Errorf("%w: %d placeholders, %d args", ErrArgCount, used, len(stmt.Args))
	}
	return b.String(), nil
}
