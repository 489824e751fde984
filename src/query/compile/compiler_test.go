package compile

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/sqlforge/sqlforge/src/query"
)

// compileANSI compiles with the default dialect and fails the test on error.
func compileANSI(t *testing.T, stmt query.Statement) (string, []any) {
	t.Helper()
	sql, params, err := NewCompiler(ANSI).Compile(stmt)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	return sql, params
}

func expectSQL(t *testing.T, stmt query.Statement, wantSQL string, wantParams []any) {
	t.Helper()
	sql, params := compileANSI(t, stmt)
	if sql != wantSQL {
		t.Errorf("SQL mismatch:\n got  %s\n want %s", sql, wantSQL)
	}
	if len(wantParams) == 0 && len(params) == 0 {
		return
	}
	if !reflect.DeepEqual(params, wantParams) {
		t.Errorf("params mismatch:\n got  %#v\n want %#v", params, wantParams)
	}
}

// =============================================================================
// SELECT
// =============================================================================

func TestSelectEmptyColumnsRendersStar(t *testing.T) {
	stmt := query.From(query.Table("users")).
		Where("id", "=", 5).
		Build()
	expectSQL(t, stmt, `SELECT * FROM "users" WHERE "id" = ?`, []any{5})
}

func TestSelectColumnsAndAliases(t *testing.T) {
	stmt := query.From(query.TableAs("users", "u")).
		Select("u.id").
		SelectAs("u.name", "username").
		Build()
	expectSQL(t, stmt, `SELECT "u"."id", "u"."name" AS "username" FROM "users" AS "u"`, nil)
}

func TestSelectDistinct(t *testing.T) {
	stmt := query.From(query.Table("users")).Select("country").Distinct().Build()
	expectSQL(t, stmt, `SELECT DISTINCT "country" FROM "users"`, nil)
}

func TestSelectInto(t *testing.T) {
	stmt := query.From(query.Table("users")).Into("users_backup").Build()
	expectSQL(t, stmt, `SELECT * INTO "users_backup" FROM "users"`, nil)

	stmt = query.From(query.Table("users")).IntoIn("users_backup", "archive").Build()
	expectSQL(t, stmt, `SELECT * INTO "users_backup" IN "archive" FROM "users"`, nil)
}

func TestSelectJoin(t *testing.T) {
	stmt := query.From(query.TableAs("users", "u")).
		Select("u.name", "o.total").
		Join(query.LeftJoin, query.TableAs("orders", "o"), query.OnEq("u.id", "o.user_id")).
		Build()
	expectSQL(t, stmt,
		`SELECT "u"."name", "o"."total" FROM "users" AS "u" LEFT JOIN "orders" AS "o" ON "u"."id" = "o"."user_id"`,
		nil)
}

func TestSelectMultipleJoinsDeclarationOrder(t *testing.T) {
	stmt := query.From(query.Table("a")).
		Join(query.InnerJoin, query.Table("b"), query.OnEq("a.id", "b.a_id")).
		Join(query.RightJoin, query.Table("c"), query.OnEq("b.id", "c.b_id")).
		Build()
	sql, _ := compileANSI(t, stmt)
	inner := strings.Index(sql, "INNER JOIN")
	right := strings.Index(sql, "RIGHT JOIN")
	if inner == -1 || right == -1 || inner > right {
		t.Errorf("joins out of declaration order: %s", sql)
	}
}

func TestSelectGroupOrderHavingOrder(t *testing.T) {
	stmt := query.From(query.Table("orders")).
		Select("dept").
		GroupBy("dept").
		OrderBy("dept").
		Having("total", ">", 100).
		Build()
	// HAVING renders after ORDER BY; this is part of the output contract.
	expectSQL(t, stmt,
		`SELECT "dept" FROM "orders" GROUP BY "dept" ORDER BY "dept" ASC HAVING "total" > ?`,
		[]any{100})
}

func TestSelectOrderByPairs(t *testing.T) {
	stmt := query.From(query.Table("t")).
		OrderBy("a", "b").
		OrderByDesc("c").
		Build()
	expectSQL(t, stmt, `SELECT * FROM "t" ORDER BY "a", "b" ASC, "c" DESC`, nil)
}

func TestSelectLimitOffsetParameterized(t *testing.T) {
	stmt := query.From(query.Table("t")).Limit(10).Offset(20).Build()
	expectSQL(t, stmt, `SELECT * FROM "t" LIMIT ? OFFSET ?`, []any{10, 20})
}

func TestSelectLimitOffsetOmittedWhenUnset(t *testing.T) {
	sql, _ := compileANSI(t, query.From(query.Table("t")).Build())
	if strings.Contains(sql, "LIMIT") || strings.Contains(sql, "OFFSET") {
		t.Errorf("unset limit/offset must not render: %s", sql)
	}
}

// =============================================================================
// WHERE chains
// =============================================================================

func TestWhereChainSeparators(t *testing.T) {
	stmt := &query.SelectStatement{
		Tables: []query.TableRef{{Name: "t"}},
		Wheres: []query.Cond{
			query.Compare{Column: "status", Op: "=", Value: "active"},
			query.In{Sep: query.SepOr, Column: "role", Values: []any{"admin", "staff"}},
		},
	}
	sql, params := compileANSI(t, stmt)
	want := `SELECT * FROM "t" WHERE "status" = ? OR "role" IN (?, ?)`
	if sql != want {
		t.Errorf("SQL mismatch:\n got  %s\n want %s", sql, want)
	}
	if strings.Count(sql, " OR ") != 1 {
		t.Errorf("expected exactly one OR separator: %s", sql)
	}
	if !reflect.DeepEqual(params, []any{"active", "admin", "staff"}) {
		t.Errorf("unexpected params: %#v", params)
	}
}

func TestNestedGroup(t *testing.T) {
	stmt := query.From(query.Table("users")).
		WhereGroup(func(w *query.CondList) {
			w.Where("a", "=", 1).OrWhere("b", "=", 2)
		}).
		Build()
	expectSQL(t, stmt, `SELECT * FROM "users" WHERE ("a" = ? OR "b" = ?)`, []any{1, 2})
}

func TestNestedGroupChainedAfterEntry(t *testing.T) {
	stmt := query.From(query.Table("users")).
		Where("active", "=", true).
		OrWhereGroup(func(w *query.CondList) {
			w.Where("a", "=", 1).OrWhere("b", "=", 2)
		}).
		Build()
	expectSQL(t, stmt,
		`SELECT * FROM "users" WHERE "active" = ? OR ("a" = ? OR "b" = ?)`,
		[]any{true, 1, 2})
}

func TestPredicateKinds(t *testing.T) {
	tests := []struct {
		name       string
		cond       query.Cond
		wantSQL    string
		wantParams []any
	}{
		{
			"Compare",
			query.Compare{Column: "age", Op: ">=", Value: 18},
			`SELECT * FROM "t" WHERE "age" >= ?`,
			[]any{18},
		},
		{
			"CompareColumnVsColumn",
			query.Compare{Column: "a.id", Op: "=", Value: query.Col{Name: "b.id"}},
			`SELECT * FROM "t" WHERE "a"."id" = "b"."id"`,
			nil,
		},
		{
			"In",
			query.In{Column: "id", Values: []any{1, 2, 3}},
			`SELECT * FROM "t" WHERE "id" IN (?, ?, ?)`,
			[]any{1, 2, 3},
		},
		{
			"NotIn",
			query.In{Column: "id", Values: []any{1}, Not: true},
			`SELECT * FROM "t" WHERE "id" NOT IN (?)`,
			[]any{1},
		},
		{
			"Between",
			query.Between{Column: "age", Low: 18, High: 65},
			`SELECT * FROM "t" WHERE "age" BETWEEN ? AND ?`,
			[]any{18, 65},
		},
		{
			"NotBetween",
			query.Between{Column: "age", Low: 18, High: 65, Not: true},
			`SELECT * FROM "t" WHERE "age" NOT BETWEEN ? AND ?`,
			[]any{18, 65},
		},
		{
			"Like",
			query.Like{Column: "name", Pattern: "Ann%"},
			`SELECT * FROM "t" WHERE "name" LIKE ?`,
			[]any{"Ann%"},
		},
		{
			"NotLike",
			query.Like{Column: "name", Pattern: "Ann%", Not: true},
			`SELECT * FROM "t" WHERE "name" NOT LIKE ?`,
			[]any{"Ann%"},
		},
		{
			"Null",
			query.Null{Column: "deleted_at"},
			`SELECT * FROM "t" WHERE "deleted_at" IS NULL`,
			nil,
		},
		{
			"NotNull",
			query.Null{Column: "deleted_at", Not: true},
			`SELECT * FROM "t" WHERE "deleted_at" IS NOT NULL`,
			nil,
		},
		{
			"Exists",
			query.ExistsCond{Subquery: query.RawSubquery(`SELECT 1`)},
			`SELECT * FROM "t" WHERE EXISTS (SELECT 1)`,
			nil,
		},
		{
			"NotExists",
			query.ExistsCond{Subquery: query.RawSubquery(`SELECT 1`), Not: true},
			`SELECT * FROM "t" WHERE NOT EXISTS (SELECT 1)`,
			nil,
		},
		{
			"SubqueryCompare",
			query.SubqueryCompare{Column: "total", Op: ">", Subquery: query.RawSubquery(`SELECT AVG("total") FROM "orders"`)},
			`SELECT * FROM "t" WHERE "total" > (SELECT AVG("total") FROM "orders")`,
			nil,
		},
		{
			"TreeCond",
			query.TreeCond{Tree: query.NewTree(query.Col{Name: "a"}, query.Op{Raw: "="}, query.Val{Value: 7})},
			`SELECT * FROM "t" WHERE "a" = ?`,
			[]any{7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt := &query.SelectStatement{
				Tables: []query.TableRef{{Name: "t"}},
				Wheres: []query.Cond{tt.cond},
			}
			expectSQL(t, stmt, tt.wantSQL, tt.wantParams)
		})
	}
}

// =============================================================================
// INSERT / UPDATE / DELETE
// =============================================================================

func TestInsert(t *testing.T) {
	stmt := query.InsertInto("users").
		Columns("name", "age").
		Values("Ann", 30).
		Build()
	expectSQL(t, stmt, `INSERT INTO "users" ("name", "age") VALUES (?, ?)`, []any{"Ann", 30})
}

func TestInsertMultiRow(t *testing.T) {
	stmt := query.InsertInto("users").
		Columns("name", "age").
		Values("Ann", 30).
		Values("Bob", 25).
		Build()
	expectSQL(t, stmt,
		`INSERT INTO "users" ("name", "age") VALUES (?, ?), (?, ?)`,
		[]any{"Ann", 30, "Bob", 25})
}

func TestInsertWithoutColumnsOmitsParenList(t *testing.T) {
	stmt := query.InsertInto("users").Values(1, "Ann").Build()
	expectSQL(t, stmt, `INSERT INTO "users" VALUES (?, ?)`, []any{1, "Ann"})
}

func TestUpdate(t *testing.T) {
	stmt := query.Update(query.Table("users")).
		Set("age", 31).
		Where("id", "=", 5).
		Build()
	expectSQL(t, stmt, `UPDATE "users" SET "age" = ? WHERE "id" = ?`, []any{31, 5})
}

func TestUpdateMultipleAssignments(t *testing.T) {
	stmt := query.Update(query.Table("users")).
		Set("name", "Ann").
		Set("age", 31).
		Build()
	expectSQL(t, stmt, `UPDATE "users" SET "name" = ?, "age" = ?`, []any{"Ann", 31})
}

func TestDeleteBare(t *testing.T) {
	stmt := query.DeleteFrom(query.Table("users")).Where("id", "=", 5).Build()
	expectSQL(t, stmt, `DELETE FROM "users" WHERE "id" = ?`, []any{5})
}

func TestDeleteQualified(t *testing.T) {
	stmt := query.DeleteFrom(query.TableAs("users", "u")).
		Targets(query.Table("u")).
		Join(query.InnerJoin, query.TableAs("orders", "o"), query.OnEq("u.id", "o.user_id")).
		Where("o.total", ">", 100).
		Build()
	expectSQL(t, stmt,
		`DELETE "u" FROM "users" AS "u" INNER JOIN "orders" AS "o" ON "u"."id" = "o"."user_id" WHERE "o"."total" > ?`,
		[]any{100})
}

// =============================================================================
// Session isolation and errors
// =============================================================================

func TestParameterBufferIsolationAcrossCalls(t *testing.T) {
	c := NewCompiler(ANSI)

	first := query.From(query.Table("a")).Where("x", "=", 1).Build()
	_, params1, err := c.Compile(first)
	if err != nil {
		t.Fatalf("first compile failed: %v", err)
	}

	second := query.From(query.Table("b")).Where("y", "=", 2).Build()
	_, params2, err := c.Compile(second)
	if err != nil {
		t.Fatalf("second compile failed: %v", err)
	}

	if !reflect.DeepEqual(params1, []any{1}) {
		t.Errorf("first params: %#v", params1)
	}
	if !reflect.DeepEqual(params2, []any{2}) {
		t.Errorf("second call leaked params from the first: %#v", params2)
	}
}

func TestFailedCompileLeavesNoResidue(t *testing.T) {
	c := NewCompiler(ANSI)

	bad := &query.SelectStatement{
		Tables: []query.TableRef{{Name: "t"}},
		Wheres: []query.Cond{
			query.Compare{Column: "a", Op: "=", Value: 1},
			badCond{},
		},
	}
	if _, _, err := c.Compile(bad); err == nil {
		t.Fatal("expected error for unknown condition type")
	}

	good := query.From(query.Table("t")).Where("b", "=", 2).Build()
	_, params, err := c.Compile(good)
	if err != nil {
		t.Fatalf("compile after failure: %v", err)
	}
	if !reflect.DeepEqual(params, []any{2}) {
		t.Errorf("residue from failed compile: %#v", params)
	}
}

// badCond is a condition type the compiler has no renderer for.
type badCond struct{}

func (badCond) Separator() string { return "" }

func TestUnknownConditionTypeFails(t *testing.T) {
	stmt := &query.SelectStatement{
		Tables: []query.TableRef{{Name: "t"}},
		Wheres: []query.Cond{badCond{}},
	}
	_, _, err := NewCompiler(ANSI).Compile(stmt)
	if !errors.Is(err, ErrUnsupportedConstruct) {
		t.Errorf("expected ErrUnsupportedConstruct, got %v", err)
	}
}

func TestUnknownStatementTypeFails(t *testing.T) {
	_, _, err := NewCompiler(ANSI).Compile(nil)
	if !errors.Is(err, ErrUnsupportedConstruct) {
		t.Errorf("expected ErrUnsupportedConstruct, got %v", err)
	}
}

func TestInvalidAliasFails(t *testing.T) {
	stmt := query.From(query.TableAs("users", `u"; DROP TABLE users; --`)).Build()
	if _, _, err := NewCompiler(ANSI).Compile(stmt); err == nil {
		t.Error("expected error for invalid alias")
	}
}

// =============================================================================
// Dialect variation
// =============================================================================

func TestAllDialects(t *testing.T) {
	dialects := []struct {
		name    string
		dialect Dialect
	}{
		{"ANSI", ANSI},
		{"MySQL", MySQL},
		{"Postgres", Postgres},
		{"SQLite", SQLite},
	}

	for _, d := range dialects {
		t.Run(d.name, func(t *testing.T) {
			runDialectTests(t, d.dialect)
		})
	}
}

func runDialectTests(t *testing.T, dialect Dialect) {
	stmt := query.From(query.Table("users")).
		Select("id", "name").
		Where("id", "=", 5).
		Where("age", ">", 18).
		Build()

	sql, params, err := NewCompiler(dialect).Compile(stmt)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	if len(params) != 2 {
		t.Fatalf("expected 2 params, got %d", len(params))
	}

	switch dialect.Name() {
	case "mysql":
		if !strings.Contains(sql, "`users`") {
			t.Errorf("MySQL should quote with backticks: %s", sql)
		}
		if !strings.Contains(sql, "?") {
			t.Errorf("MySQL should use ? placeholders: %s", sql)
		}
	case "postgres":
		if !strings.Contains(sql, `"users"`) {
			t.Errorf("Postgres should quote with double quotes: %s", sql)
		}
		if !strings.Contains(sql, "$1") || !strings.Contains(sql, "$2") {
			t.Errorf("Postgres placeholders should number $1, $2: %s", sql)
		}
	default:
		if !strings.Contains(sql, `"users"`) {
			t.Errorf("%s should quote with double quotes: %s", dialect.Name(), sql)
		}
		if strings.Count(sql, "?") != 2 {
			t.Errorf("%s should emit 2 ? placeholders: %s", dialect.Name(), sql)
		}
	}
}
