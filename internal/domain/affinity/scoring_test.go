package affinity

import (
	"math"
	"testing"
	"time"
)

func TestPairID_CanonicalOrder(t *testing.T) {
	if got := PairID("EMP002", "EMP001"); got != "AFF_EMP001_EMP002" {
		t.Errorf("PairID swapped = %q", got)
	}
	if got := PairID("EMP001", "EMP002"); got != "AFF_EMP001_EMP002" {
		t.Errorf("PairID ordered = %q", got)
	}
}

func TestCollaborationScore(t *testing.T) {
	if got := CollaborationScore(12); got != 60 {
		t.Errorf("12 months overlap: got %v, want 60", got)
	}
	if got := CollaborationScore(30); got != 100 {
		t.Errorf("cap: got %v, want 100", got)
	}
	if got := CollaborationScore(0); got != 0 {
		t.Errorf("zero overlap: got %v", got)
	}
}

func TestCommunicationScore(t *testing.T) {
	// 200 messages caps the volume component at 50; avg response 20 min
	// gives 48, but the sum is clamped to 100... 50+48=98 stays below.
	if got := CommunicationScore(200, 20); got != 98 {
		t.Errorf("got %v, want 98", got)
	}
	if got := CommunicationScore(1000, 0); got != 100 {
		t.Errorf("clamp: got %v, want 100", got)
	}
	if got := CommunicationScore(0, 600); got != 0 {
		t.Errorf("slow and silent: got %v, want 0", got)
	}
}

func TestSocialAndPersonalScores(t *testing.T) {
	if got := SocialScore(3); got != 60 {
		t.Errorf("3 events: got %v, want 60", got)
	}
	if got := SocialScore(9); got != 100 {
		t.Errorf("cap: got %v, want 100", got)
	}
	if got := PersonalScore(2, 1); got != 50 {
		t.Errorf("payday=2 vacation=1: got %v, want 50", got)
	}
	if got := PersonalScore(10, 10); got != 100 {
		t.Errorf("cap: got %v, want 100", got)
	}
}

func TestOverall_WeightedSum(t *testing.T) {
	got := Overall(60, 100, 60, 50)
	want := 0.35*60 + 0.30*100 + 0.20*60 + 0.15*50 // 70.5
	if math.Abs(got-want) > 1e-2 {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestOverall_Clamped(t *testing.T) {
	if got := Overall(100, 100, 100, 100); got != 100 {
		t.Errorf("got %v, want 100", got)
	}
	if got := Overall(-50, -50, -50, -50); got != 0 {
		t.Errorf("got %v, want 0", got)
	}
}

func TestOverlapCalendarMonths(t *testing.T) {
	ym := func(s string) time.Time {
		d, err := time.Parse("2006-01", s)
		if err != nil {
			t.Fatalf("bad month %q", s)
		}
		return d
	}

	got := OverlapCalendarMonths(ym("2023-01"), ym("2024-01"), ym("2023-01"), ym("2024-01"))
	if got != 12 {
		t.Errorf("full year overlap: got %v, want 12", got)
	}

	got = OverlapCalendarMonths(ym("2023-01"), ym("2023-06"), ym("2023-07"), ym("2024-01"))
	if got != 0 {
		t.Errorf("disjoint: got %v, want 0", got)
	}

	got = OverlapCalendarMonths(ym("2022-01"), ym("2024-01"), ym("2023-07"), ym("2024-07"))
	if got != 6 {
		t.Errorf("partial: got %v, want 6", got)
	}
}
