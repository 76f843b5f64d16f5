package taskwarrior

import (
	"testing"
	"time"

	"taskquest/internal/engine"
)

const sampleUUID = "12345678-1234-1234-1234-123456789012"

func TestParseTaskFields(t *testing.T) {
	task, err := ParseTask([]byte(`{
		"id": 1,
		"uuid": "` + sampleUUID + `",
		"status": "completed",
		"description": "Test task",
		"urgency": 5.5,
		"challenge": 7,
		"due": "20260301T170000Z",
		"end": "2026-03-01T15:30:00Z",
		"project": "home",
		"stat1": "str",
		"stat2": "nope"
	}`))
	if err != nil {
		t.Fatalf("ParseTask: %v", err)
	}
	if task.Description != "Test task" || task.ChallengeOrDefault() != 7 || !task.IsCompleted() {
		t.Fatalf("task=%+v", task)
	}

	now := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	in := task.Input(now)
	if in.Urgency != 5.5 || in.Challenge != 7 || in.Project != "home" {
		t.Fatalf("input=%+v", in)
	}
	if in.Due == nil || !in.Due.Equal(time.Date(2026, 3, 1, 17, 0, 0, 0, time.UTC)) {
		t.Fatalf("due=%v", in.Due)
	}
	if !in.CompletedAt.Equal(time.Date(2026, 3, 1, 15, 30, 0, 0, time.UTC)) {
		t.Fatalf("completed at=%v", in.CompletedAt)
	}
	if in.Primary == nil || *in.Primary != engine.StatSTR || in.Secondary != nil {
		t.Fatalf("stats=%v/%v", in.Primary, in.Secondary)
	}
	if engine.DetermineTiming(in.Due, in.CompletedAt) != engine.TimingOnTime {
		t.Fatalf("timing=%s", engine.DetermineTiming(in.Due, in.CompletedAt))
	}
}

func TestParseTaskDefaults(t *testing.T) {
	task, err := ParseTask([]byte(`{"uuid":"` + sampleUUID + `","status":"pending","description":"x","urgency":-2}`))
	if err != nil {
		t.Fatalf("ParseTask: %v", err)
	}
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	in := task.Input(now)
	if in.Challenge != engine.DefaultChallenge || in.Urgency != 0 || in.Due != nil || !in.CompletedAt.Equal(now) {
		t.Fatalf("input=%+v", in)
	}
}

func TestChallengeDecoding(t *testing.T) {
	cases := []struct {
		raw  string
		want int
	}{
		{`7`, 7},
		{`7.9`, 7},
		{`"8"`, engine.DefaultChallenge},
		{`null`, engine.DefaultChallenge},
		{`42`, engine.MaxChallenge},
		{`0`, engine.MinChallenge},
	}
	for _, tc := range cases {
		task, err := ParseTask([]byte(`{"status":"pending","description":"x","challenge":` + tc.raw + `}`))
		if err != nil {
			t.Fatalf("ParseTask(challenge=%s): %v", tc.raw, err)
		}
		if got := task.ChallengeOrDefault(); got != tc.want {
			t.Fatalf("challenge %s -> %d, want %d", tc.raw, got, tc.want)
		}
	}
}

func TestParseTaskRejectsBadUUID(t *testing.T) {
	if _, err := ParseTask([]byte(`{"uuid":"not-a-uuid","status":"pending"}`)); err == nil {
		t.Fatalf("invalid uuid accepted")
	}
	if _, err := ParseTask([]byte(`not json`)); err == nil {
		t.Fatalf("invalid json accepted")
	}
}

func TestUnparseableDueIsAbsent(t *testing.T) {
	task, err := ParseTask([]byte(`{"status":"completed","due":"tomorrow"}`))
	if err != nil {
		t.Fatalf("ParseTask: %v", err)
	}
	if task.DueTime() != nil {
		t.Fatalf("due=%v, want nil", task.DueTime())
	}
}
