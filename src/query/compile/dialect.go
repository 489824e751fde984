package compile

import (
	"fmt"
	"strings"
)

// Dialect defines the SQL dialect-specific behavior for compilation.
// Quoting, placeholder style, and date formatting are the only points of
// variation; every other token the compiler emits is dialect-neutral.
type Dialect interface {
	// Name returns the dialect name for debugging/logging.
	Name() string

	// QuoteIdentifier quotes a single identifier segment (one
	// dot-separated part of a table or column reference).
	QuoteIdentifier(name string) string

	// Placeholder returns the parameter placeholder for the given
	// index (1-based). ANSI, MySQL, and SQLite use ?, Postgres $1, $2, ...
	Placeholder(index int) string

	// DateFormat returns the Go time layout used to format time.Time
	// values before they are bound as parameters.
	DateFormat() string

	// NowFunc returns the SQL expression for the current timestamp.
	NowFunc() string
}

const defaultDateFormat = "2006-01-02 15:04:05"

// quoteDouble wraps a segment in double quotes, doubling embedded quotes.
func quoteDouble(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// =============================================================================
// ANSI Dialect (default)
// =============================================================================

// ANSIDialect is the default dialect: double-quoted identifiers and ?
// placeholders.
type ANSIDialect struct{}

func (d *ANSIDialect) Name() string { return "ansi" }

func (d *ANSIDialect) QuoteIdentifier(name string) string {
	return quoteDouble(name)
}

func (d *ANSIDialect) Placeholder(index int) string {
	return "?"
}

func (d *ANSIDialect) DateFormat() string {
	return defaultDateFormat
}

func (d *ANSIDialect) NowFunc() string {
	return "NOW()"
}

// =============================================================================
// MySQL Dialect
// =============================================================================

// MySQLDialect implements Dialect for MySQL.
type MySQLDialect struct{}

func (d *MySQLDialect) Name() string { return "mysql" }

func (d *MySQLDialect) QuoteIdentifier(name string) string {
	// Escape embedded backticks by doubling them
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}

func (d *MySQLDialect) Placeholder(index int) string {
	return "?"
}

func (d *MySQLDialect) DateFormat() string {
	return defaultDateFormat
}

func (d *MySQLDialect) NowFunc() string {
	return "NOW()"
}

// =============================================================================
// Postgres Dialect
// =============================================================================

// PostgresDialect implements Dialect for PostgreSQL.
type PostgresDialect struct{}

func (d *PostgresDialect) Name() string { return "postgres" }

func (d *PostgresDialect) QuoteIdentifier(name string) string {
	return quoteDouble(name)
}

func (d *PostgresDialect) Placeholder(index int) string {
	return fmt.Sprintf("$%d", index)
}

func (d *PostgresDialect) DateFormat() string {
	return defaultDateFormat
}

func (d *PostgresDialect) NowFunc() string {
	return "NOW()"
}

// =============================================================================
// SQLite Dialect
// =============================================================================

// SQLiteDialect implements Dialect for SQLite.
type SQLiteDialect struct{}

func (d *SQLiteDialect) Name() string { return "sqlite" }

func (d *SQLiteDialect) QuoteIdentifier(name string) string {
	return quoteDouble(name)
}

func (d *SQLiteDialect) Placeholder(index int) string {
	return "?"
}

func (d *SQLiteDialect) DateFormat() string {
	return defaultDateFormat
}

func (d *SQLiteDialect) NowFunc() string {
	return "datetime('now')"
}

// =============================================================================
// Dialect Singletons
// =============================================================================

var (
	// ANSI is the default double-quote dialect.
	ANSI Dialect = &ANSIDialect{}

	// MySQL is the singleton MySQL dialect.
	MySQL Dialect = &MySQLDialect{}

	// Postgres is the singleton PostgreSQL dialect.
	Postgres Dialect = &PostgresDialect{}

	// SQLite is the singleton SQLite dialect.
	SQLite Dialect = &SQLiteDialect{}
)
