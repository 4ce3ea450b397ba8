package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want StoreErrorKind
	}{
		{"no rows", sql.ErrNoRows, KindNotFound},
		{"wrapped no rows", fmt.Errorf("scan: %w", sql.ErrNoRows), KindNotFound},
		{"unique constraint", fakeSQLiteError{code: sqliteConstraintUnique}, KindConflict},
		{"primary key constraint", fakeSQLiteError{code: 1555}, KindConflict},
		{"plain constraint", fakeSQLiteError{code: 19}, KindConflict},
		{"busy is not a conflict", fakeSQLiteError{code: 5}, KindOther},
		{"arbitrary", errors.New("boom"), KindOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify("op", tt.err)
			if got.Kind != tt.want {
				t.Fatalf("classify(%v) kind = %s; want %s", tt.err, got.Kind, tt.want)
			}
			if !errors.Is(got, tt.err) {
				t.Fatalf("cause not preserved in chain: %v", got)
			}
		})
	}
}

func TestStoreError_IsSentinels(t *testing.T) {
	nf := notFound("find resource")
	if !errors.Is(nf, ErrNotFound) || errors.Is(nf, ErrConflict) {
		t.Fatalf("sentinel matching broken for %v", nf)
	}
	if nf.Error() != "find resource: not_found" {
		t.Fatalf("unexpected message: %q", nf.Error())
	}

	wrapped := fmt.Errorf("outer: %w", &StoreError{Kind: KindConflict, Op: "save resource"})
	if !errors.Is(wrapped, ErrConflict) {
		t.Fatalf("wrapped conflict not matched")
	}
}
