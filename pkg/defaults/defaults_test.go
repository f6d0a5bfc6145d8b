package defaults

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"typedcol/pkg/column"
)

var fixed = Clock(func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 500_000_000, time.UTC) })

func TestUUID(t *testing.T) {
	t.Parallel()

	gen := UUID()
	a, err := gen()
	if err != nil {
		t.Fatalf("UUID()() error = %v", err)
	}
	b, _ := gen()
	if a == b {
		t.Fatalf("UUID()() returned %q twice", a)
	}
	id, err := uuid.Parse(a)
	if err != nil {
		t.Fatalf("uuid.Parse(%q) error = %v", a, err)
	}
	if id.Version() != 4 {
		t.Fatalf("version = %d, want 4", id.Version())
	}
}

func TestUUIDv7(t *testing.T) {
	t.Parallel()

	s, err := UUIDv7()()
	if err != nil {
		t.Fatalf("UUIDv7()() error = %v", err)
	}
	if id := uuid.MustParse(s); id.Version() != 7 {
		t.Fatalf("version = %d, want 7", id.Version())
	}
}

func TestUUIDBytes(t *testing.T) {
	t.Parallel()

	b, err := UUIDBytes()()
	if err != nil {
		t.Fatalf("UUIDBytes()() error = %v", err)
	}
	if len(b) != 16 {
		t.Fatalf("len = %d, want 16", len(b))
	}
	if _, err := uuid.FromBytes(b); err != nil {
		t.Fatalf("uuid.FromBytes() error = %v", err)
	}
}

func TestClockFunctions(t *testing.T) {
	t.Parallel()

	if got, _ := UnixSeconds(fixed)(); got != 1709294400 {
		t.Fatalf("UnixSeconds() = %d, want 1709294400", got)
	}
	if got, _ := UnixMillis(fixed)(); got != 1709294400500 {
		t.Fatalf("UnixMillis() = %d, want 1709294400500", got)
	}
	if got, _ := RFC3339(fixed)(); got != "2024-03-01T12:00:00Z" {
		t.Fatalf("RFC3339() = %q", got)
	}

	before := time.Now().Unix()
	got, _ := UnixSeconds(nil)()
	if got < before || got > time.Now().Unix() {
		t.Fatalf("UnixSeconds(nil) = %d, want near %d", got, before)
	}
}

func TestWithColumns(t *testing.T) {
	t.Parallel()

	id := column.DefaultFn(column.NotNull(column.Primary(column.Text("id", column.TextString))), UUID())
	raw := column.DefaultFn(column.Blob("raw_id"), UUIDBytes())
	at := column.DefaultFn(column.Integer("at", column.IntegerTimestampMS), UnixMillis(fixed))

	if v, ok, err := id.ResolveDefault(); err != nil || !ok || len(v) != 36 {
		t.Fatalf("id default = %q, %v, %v", v, ok, err)
	}
	if v, ok, err := raw.ResolveDefault(); err != nil || !ok || len(v) != 16 {
		t.Fatalf("raw_id default = %v, %v, %v", v, ok, err)
	}
	if v, _, _ := at.ResolveDefault(); v != 1709294400500 {
		t.Fatalf("at default = %d", v)
	}
	if got := at.SQL(); got != `"at" INTEGER` {
		t.Fatalf("SQL() = %q, computed default must not render", got)
	}
}
