package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thoth-ai/thoth/pkg/config"
)

func TestCorrectDelimiters_IdentifierVsString(t *testing.T) {
	tests := []struct {
		name    string
		dialect config.Dialect
		in      string
		want    string
	}{
		{
			name:    "sqlite identifiers and string after comparison",
			dialect: config.DialectSQLite,
			in:      `SELECT "field name" FROM "my table" WHERE "status" = "active"`,
			want:    "SELECT `field name` FROM `my table` WHERE `status` = 'active'",
		},
		{
			name:    "postgres keeps double quotes",
			dialect: config.DialectPostgreSQL,
			in:      "SELECT `first name` FROM `users` WHERE `city` = 'Rome'",
			want:    `SELECT "first name" FROM "users" WHERE "city" = 'Rome'`,
		},
		{
			name:    "sqlserver brackets",
			dialect: config.DialectSQLServer,
			in:      `SELECT "order id" FROM "orders"`,
			want:    "SELECT [order id] FROM [orders]",
		},
		{
			name:    "oracle uppercases and drops unnecessary quoting",
			dialect: config.DialectOracle,
			in:      `SELECT "salary" FROM "emp data" WHERE "dept" = 'HR'`,
			want:    `SELECT SALARY FROM "EMP DATA" WHERE DEPT = 'HR'`,
		},
		{
			name:    "IN list members are strings",
			dialect: config.DialectMySQL,
			in:      `SELECT id FROM t WHERE region IN ("north", "south")`,
			want:    "SELECT id FROM t WHERE region IN ('north', 'south')",
		},
		{
			name:    "LIKE operand is a string",
			dialect: config.DialectSQLite,
			in:      `SELECT name FROM t WHERE name LIKE "Ada%"`,
			want:    "SELECT name FROM t WHERE name LIKE 'Ada%'",
		},
		{
			name:    "string content with embedded quote",
			dialect: config.DialectSQLite,
			in:      `SELECT * FROM t WHERE city = "O'Brien"`,
			want:    "SELECT * FROM t WHERE city = 'O''Brien'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CorrectDelimiters(tt.in, tt.dialect))
		})
	}
}

func TestCorrectDelimiters_Idempotent(t *testing.T) {
	inputs := []string{
		`SELECT "field name" FROM "my table" WHERE "status" = "active"`,
		`SELECT a.b, "x y" FROM t WHERE note LIKE "%done%" AND id IN (1, 2)`,
		"SELECT `col` FROM `tbl` WHERE v = 'it''s'",
	}
	dialects := []config.Dialect{
		config.DialectSQLite, config.DialectMySQL, config.DialectPostgreSQL,
		config.DialectSQLServer, config.DialectOracle,
	}

	for _, in := range inputs {
		for _, d := range dialects {
			once := CorrectDelimiters(in, d)
			twice := CorrectDelimiters(once, d)
			assert.Equal(t, once, twice, "dialect %s input %q", d, in)
		}
	}
}

func TestCorrectDelimiters_PreservesStringContent(t *testing.T) {
	got := CorrectDelimiters(`SELECT * FROM t WHERE label = 'SELECT "x" FROM y'`, config.DialectMySQL)
	assert.Equal(t, `SELECT * FROM t WHERE label = 'SELECT "x" FROM y'`, got)
}

func TestClassifyAsString_DefaultsToIdentifier(t *testing.T) {
	assert.False(t, classifyAsString(nil))
	assert.False(t, classifyAsString([]string{"(", ","}))
	assert.True(t, classifyAsString([]string{"where", "x", "="}))
	assert.True(t, classifyAsString([]string{"in", "("}))
	assert.False(t, classifyAsString([]string{"select"}))
}

func TestNeedsQuoting(t *testing.T) {
	assert.False(t, needsQuoting("user_id"))
	assert.True(t, needsQuoting("first name"))
	assert.True(t, needsQuoting("2fast"))
	assert.True(t, needsQuoting("order"))
	assert.True(t, needsQuoting(""))
}
