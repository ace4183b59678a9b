package showcase

import (
	"testing"
	"time"
)

func TestLoginLimiterAllowsUnderLimit(t *testing.T) {
	l := NewLoginLimiter(3, time.Minute)
	for i := 0; i < 3; i++ {
		if !l.Check("1.2.3.4") {
			t.Fatalf("attempt %d blocked before limit reached", i)
		}
		l.Record("1.2.3.4")
	}
	if l.Check("1.2.3.4") {
		t.Error("expected block after 3 recorded failures")
	}
}

func TestLoginLimiterCheckDoesNotRecord(t *testing.T) {
	l := NewLoginLimiter(2, time.Minute)
	for i := 0; i < 10; i++ {
		if !l.Check("1.2.3.4") {
			t.Fatal("Check alone must never consume the budget")
		}
	}
}

func TestLoginLimiterPerIP(t *testing.T) {
	l := NewLoginLimiter(1, time.Minute)
	l.Record("1.1.1.1")
	if l.Check("1.1.1.1") {
		t.Error("1.1.1.1 should be blocked")
	}
	if !l.Check("2.2.2.2") {
		t.Error("2.2.2.2 should be unaffected")
	}
}

func TestLoginLimiterWindowExpiry(t *testing.T) {
	l := NewLoginLimiter(1, 10*time.Millisecond)
	l.Record("1.2.3.4")
	if l.Check("1.2.3.4") {
		t.Fatal("expected block inside the window")
	}
	time.Sleep(20 * time.Millisecond)
	if !l.Check("1.2.3.4") {
		t.Error("expected the failure to expire with the window")
	}
}
