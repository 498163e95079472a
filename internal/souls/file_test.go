package souls

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestFileStoreRecordAndDump(t *testing.T) {
	ctx := context.Background()
	st := NewFileStore(filepath.Join(t.TempDir(), "hall_of_souls.txt"))

	// An absent scroll is an empty hall, not an error.
	out, err := st.Dump(ctx)
	if err != nil {
		t.Fatalf("dump of missing file: %v", err)
	}
	if out != "" {
		t.Fatalf("dump of missing file = %q, want empty", out)
	}

	e := Entry{
		ID:        "test-id",
		Name:      "Test Hero",
		EscapedAt: time.Date(2024, 10, 31, 23, 59, 0, 0, time.UTC),
		Health:    70,
	}
	if err := st.Record(ctx, e); err != nil {
		t.Fatalf("record: %v", err)
	}

	out, err = st.Dump(ctx)
	if err != nil {
		t.Fatalf("dump: %v", err)
	}
	for _, want := range []string{
		"SOUL FREED: Test Hero",
		"Date of Escape: 2024-10-31 23:59:00",
		"Life Force Remaining: 70/100",
		"ESCAPED THE HAUNTED MANSION",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dump missing %q:\n%s", want, out)
		}
	}

	// Records append; nothing is overwritten.
	if err := st.Record(ctx, NewEntry("Second Hero", 100)); err != nil {
		t.Fatalf("second record: %v", err)
	}
	out, _ = st.Dump(ctx)
	if got := strings.Count(out, "SOUL FREED:"); got != 2 {
		t.Errorf("entry count = %d, want 2:\n%s", got, out)
	}
	if !strings.Contains(out, "Test Hero") || !strings.Contains(out, "Second Hero") {
		t.Errorf("dump lost an entry:\n%s", out)
	}
}

func TestNewEntry(t *testing.T) {
	e := NewEntry("", 40)
	if e.ID == "" {
		t.Error("entry has no ID")
	}
	if e.EscapedAt.IsZero() {
		t.Error("entry has no timestamp")
	}
	if NewEntry("x", 1).ID == e.ID {
		t.Error("IDs should be unique")
	}
}
