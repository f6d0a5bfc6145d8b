package predicate

import (
	"bytes"
	"reflect"
	"testing"

	"typedcol/pkg/column"
)

var (
	colID    = column.Autoincrement(column.Primary(column.Integer("id", column.IntegerNumber)))
	colAge   = column.Integer("age", column.IntegerNumber)
	colScore = column.NotNull(column.Real("score"))
	colEmail = column.Unique(column.NotNull(column.Text("email", column.TextString)), "users_email_key")
	colData  = column.Primary(column.Blob("data"))
	colAny   = column.Any("payload")
	colNum   = column.Default(column.Number("amount"), column.NumberInt(0))
)

func TestOpString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		op   Op
		want string
	}{
		{Eq, "="}, {Ne, "<>"}, {Lt, "<"}, {Le, "<="}, {Gt, ">"}, {Ge, ">="}, {Op(42), "?op?"},
	}
	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Fatalf("Op(%d).String() = %q, want %q", tt.op, got, tt.want)
		}
	}
}

func TestComparisons(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		cond     Condition
		wantSQL  string
		wantArgs []any
	}{
		{name: "integer with int64", cond: Int64(colID, Gt, 10), wantSQL: `"id" > ?`, wantArgs: []any{int64(10)}},
		{name: "integer with float64", cond: Float64(colAge, Le, 17.5), wantSQL: `"age" <= ?`, wantArgs: []any{17.5}},
		{name: "real with float64", cond: Float64(colScore, Ge, 0.5), wantSQL: `"score" >= ?`, wantArgs: []any{0.5}},
		{name: "any with float64", cond: Float64(colAny, Eq, 1), wantSQL: `"payload" = ?`, wantArgs: []any{1.0}},
		{name: "number with float64", cond: Float64(colNum, Lt, 3), wantSQL: `"amount" < ?`, wantArgs: []any{3.0}},
		{name: "text with string", cond: String(colEmail, Eq, "a@example.com"), wantSQL: `"email" = ?`, wantArgs: []any{"a@example.com"}},
		{name: "blob with bytes", cond: Bytes(colData, Ne, []byte{1}), wantSQL: `"data" <> ?`, wantArgs: []any{[]byte{1}}},
		{name: "bytes with blob", cond: BytesColumn([]byte{2}, Eq, colData), wantSQL: `? = "data"`, wantArgs: []any{[]byte{2}}},
		{name: "two integer columns", cond: Columns(colID, Eq, colAge), wantSQL: `"id" = "age"`},
		{name: "int64 with integer", cond: Int64Column(10, Lt, colID), wantSQL: `? < "id"`, wantArgs: []any{int64(10)}},
		{name: "float64 with real", cond: Float64Column(0.5, Ge, colScore), wantSQL: `? >= "score"`, wantArgs: []any{0.5}},
		{name: "float64 with any", cond: Float64Column(2, Eq, colAny), wantSQL: `? = "payload"`, wantArgs: []any{2.0}},
		{name: "string with text", cond: StringColumn("a@example.com", Ne, colEmail), wantSQL: `? <> "email"`, wantArgs: []any{"a@example.com"}},
		{name: "int64 with float64 value", cond: Int64Value(1, Lt, 2.5), wantSQL: `? < ?`, wantArgs: []any{int64(1), 2.5}},
		{name: "int64 with untyped integer", cond: Int64Value(1, Eq, 2), wantSQL: `? = ?`, wantArgs: []any{int64(1), int64(2)}},
		{name: "float64 with untyped integer", cond: Float64Value(1.5, Le, 2), wantSQL: `? <= ?`, wantArgs: []any{1.5, int64(2)}},
		{name: "float64 with int64 value", cond: Float64Value(1.5, Gt, int64(1)), wantSQL: `? > ?`, wantArgs: []any{1.5, int64(1)}},
		{name: "string values", cond: StringValue("a", Ne, "b"), wantSQL: `? <> ?`, wantArgs: []any{"a", "b"}},
		{name: "byte values", cond: BytesValue([]byte("a"), Eq, []byte("a")), wantSQL: `? = ?`, wantArgs: []any{[]byte("a"), []byte("a")}},
		{name: "is null", cond: IsNull(colAge), wantSQL: `"age" IS NULL`},
		{name: "is not null", cond: IsNotNull(colEmail), wantSQL: `"email" IS NOT NULL`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.cond.SQL(); got != tt.wantSQL {
				t.Fatalf("SQL() = %q, want %q", got, tt.wantSQL)
			}
			if got := tt.cond.Args(); !reflect.DeepEqual(got, tt.wantArgs) {
				t.Fatalf("Args() = %#v, want %#v", got, tt.wantArgs)
			}
		})
	}
}

type userID int64

func TestNamedNumericOperand(t *testing.T) {
	t.Parallel()

	c := Int64Value(7, Eq, userID(7))
	if got := c.Args(); !reflect.DeepEqual(got, []any{int64(7), int64(7)}) {
		t.Fatalf("Args() = %#v, want plain int64 values", got)
	}
}

// TestComparabilityIgnoresState checks that a column compares the same way in
// every builder state.
func TestComparabilityIgnoresState(t *testing.T) {
	t.Parallel()

	plain := column.Blob("data")
	conds := []Condition{
		Bytes(plain, Eq, []byte{1}),
		Bytes(column.Primary(plain), Eq, []byte{1}),
		Bytes(column.NotNull(column.Primary(plain)), Eq, []byte{1}),
		Bytes(column.Unique(plain, "k"), Eq, []byte{1}),
		Bytes(column.Default(plain, []byte{0}), Eq, []byte{1}),
	}
	for i, c := range conds {
		if c.SQL() != `"data" = ?` {
			t.Fatalf("condition %d SQL() = %q", i, c.SQL())
		}
	}

	if got := Columns(colEmail, Eq, column.Text("backup_email", column.TextString)).SQL(); got != `"email" = "backup_email"` {
		t.Fatalf("Columns() across states = %q", got)
	}
}

func TestBytesAreCopied(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		build func(v []byte) Condition
	}{
		{name: "Bytes", build: func(v []byte) Condition { return Bytes(colData, Eq, v) }},
		{name: "BytesColumn", build: func(v []byte) Condition { return BytesColumn(v, Eq, colData) }},
		{name: "BytesValue", build: func(v []byte) Condition { return BytesValue(v, Eq, []byte{3}) }},
		{name: "And", build: func(v []byte) Condition { return And(Int64(colID, Eq, 1), Bytes(colData, Eq, v)) }},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v := []byte{1, 2}
			c := tt.build(v)
			v[0] = 9

			arg := blobArg(t, c)
			if !bytes.Equal(arg, []byte{1, 2}) {
				t.Fatalf("argument = %v, want [1 2]", arg)
			}
			arg[1] = 9
			if again := blobArg(t, c); !bytes.Equal(again, []byte{1, 2}) {
				t.Fatalf("argument changed through Args(): %v", again)
			}
		})
	}
}

// blobArg returns the first []byte argument of c.
func blobArg(t *testing.T, c Condition) []byte {
	t.Helper()
	for _, a := range c.Args() {
		if b, ok := a.([]byte); ok {
			return b
		}
	}
	t.Fatalf("Args() = %#v holds no []byte", c.Args())
	return nil
}

func TestLogical(t *testing.T) {
	t.Parallel()

	a := Int64(colID, Gt, 10)
	b := String(colEmail, Eq, "a@example.com")
	c := IsNull(colAge)

	tests := []struct {
		name     string
		cond     Condition
		wantSQL  string
		wantArgs []any
	}{
		{name: "and", cond: And(a, b), wantSQL: `("id" > ? AND "email" = ?)`, wantArgs: []any{int64(10), "a@example.com"}},
		{name: "or", cond: Or(a, c), wantSQL: `("id" > ? OR "age" IS NULL)`, wantArgs: []any{int64(10)}},
		{name: "nested", cond: Or(And(a, b), c), wantSQL: `(("id" > ? AND "email" = ?) OR "age" IS NULL)`, wantArgs: []any{int64(10), "a@example.com"}},
		{name: "single is unwrapped", cond: And(b), wantSQL: `"email" = ?`, wantArgs: []any{"a@example.com"}},
		{name: "empty skipped", cond: And(Condition{}, a, Condition{}), wantSQL: `"id" > ?`, wantArgs: []any{int64(10)}},
		{name: "all empty", cond: Or(Condition{}, Condition{}), wantSQL: ``},
		{name: "none", cond: And(), wantSQL: ``},
		{name: "not", cond: Not(a), wantSQL: `NOT ("id" > ?)`, wantArgs: []any{int64(10)}},
		{name: "not empty", cond: Not(Condition{}), wantSQL: ``},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.cond.SQL(); got != tt.wantSQL {
				t.Fatalf("SQL() = %q, want %q", got, tt.wantSQL)
			}
			if got := tt.cond.Args(); !reflect.DeepEqual(got, tt.wantArgs) {
				t.Fatalf("Args() = %#v, want %#v", got, tt.wantArgs)
			}
			if tt.cond.IsZero() != (tt.wantSQL == "") {
				t.Fatalf("IsZero() = %v for %q", tt.cond.IsZero(), tt.wantSQL)
			}
		})
	}
}
