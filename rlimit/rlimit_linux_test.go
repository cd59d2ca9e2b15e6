// Copyright © 2025 The Gomon Project.

package rlimit

import (
	"testing"

	"golang.org/x/sys/unix"
)

func TestMemlockIdempotent(t *testing.T) {
	soft1, hard1, err1 := Memlock()
	soft2, hard2, err2 := Memlock()
	if err1 != nil || err2 != nil {
		t.Fatalf("Memlock() errors: %v, %v", err1, err2)
	}
	if soft1 != soft2 || hard1 != hard2 {
		t.Errorf("Memlock() not stable: (%s, %s) then (%s, %s)", soft1, hard1, soft2, hard2)
	}
}

func TestMemlockMatchesGetrlimit(t *testing.T) {
	soft, hard, err := Memlock()
	if err != nil {
		t.Fatalf("Memlock() error: %v", err)
	}

	var rl unix.Rlimit
	if err := unix.Getrlimit(unix.RLIMIT_MEMLOCK, &rl); err != nil {
		t.Fatalf("Getrlimit error: %v", err)
	}
	if want := limit(rl.Cur); soft != want {
		t.Errorf("soft limit %s, want %s", soft, want)
	}
	if want := limit(rl.Max); hard != want {
		t.Errorf("hard limit %s, want %s", hard, want)
	}
}

func TestLimitString(t *testing.T) {
	tests := []struct {
		limit Limit
		want  string
	}{
		{Unlimited, "unlimited"},
		{Limit(0), "0"},
		{Limit(2048), "2048"},
	}
	for _, tt := range tests {
		if got := tt.limit.String(); got != tt.want {
			t.Errorf("Limit.String() = %q, want %q", got, tt.want)
		}
	}
}
