package taskwarrior

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"taskquest/internal/engine"
)

// compactLayout is the timestamp format of `task export` and hook payloads.
const compactLayout = "20060102T150405Z"

const StatusCompleted = "completed"

// Task is the subset of a Taskwarrior task that drives rewards.
type Task struct {
	ID          int       `json:"id,omitempty"`
	UUID        string    `json:"uuid"`
	Status      string    `json:"status"`
	Description string    `json:"description"`
	Urgency     *float64  `json:"urgency,omitempty"`
	Due         string    `json:"due,omitempty"`
	End         string    `json:"end,omitempty"`
	Challenge   Challenge `json:"challenge"`
	Project     string    `json:"project,omitempty"`
	Stat1       string    `json:"stat1,omitempty"`
	Stat2       string    `json:"stat2,omitempty"`
}

// Challenge is the challenge UDA. Taskwarrior stores numeric UDAs as JSON
// numbers, possibly fractional; anything else leaves it unset.
type Challenge struct {
	Value int
	Set   bool
}

func (c *Challenge) UnmarshalJSON(data []byte) error {
	*c = Challenge{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] == 'n' {
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return nil
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	if f < 0 {
		f = 0
	}
	if f > math.MaxInt32 {
		f = math.MaxInt32
	}
	c.Value = int(f)
	c.Set = true
	return nil
}

func (c Challenge) MarshalJSON() ([]byte, error) {
	if !c.Set {
		return []byte("null"), nil
	}
	return json.Marshal(c.Value)
}

// ParseTask decodes one task line. A uuid, when present, must be well formed.
func ParseTask(data []byte) (*Task, error) {
	var t Task
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse task: %w", err)
	}
	if t.UUID != "" {
		id, err := uuid.Parse(t.UUID)
		if err != nil {
			return nil, fmt.Errorf("parse task: invalid uuid %q: %w", t.UUID, err)
		}
		t.UUID = id.String()
	}
	return &t, nil
}

func (t *Task) IsCompleted() bool {
	return t.Status == StatusCompleted
}

// ChallengeOrDefault returns the rating clamped to 1-10, 5 when unset.
func (t *Task) ChallengeOrDefault() int {
	if !t.Challenge.Set {
		return engine.DefaultChallenge
	}
	return engine.ClampChallenge(t.Challenge.Value)
}

func (t *Task) DueTime() *time.Time {
	return parseTimestamp(t.Due)
}

func (t *Task) EndTime() *time.Time {
	return parseTimestamp(t.End)
}

// Input converts the task into a completion event. A task without an end
// timestamp is treated as finished at now.
func (t *Task) Input(now time.Time) engine.CompletionInput {
	in := engine.CompletionInput{
		TaskUUID:    t.UUID,
		Description: t.Description,
		Project:     strings.TrimSpace(t.Project),
		Challenge:   t.ChallengeOrDefault(),
		Due:         t.DueTime(),
		CompletedAt: now,
		Primary:     engine.ParseStatPtr(t.Stat1),
		Secondary:   engine.ParseStatPtr(t.Stat2),
	}
	if t.Urgency != nil && *t.Urgency > 0 {
		in.Urgency = *t.Urgency
	}
	if end := t.EndTime(); end != nil {
		in.CompletedAt = *end
	}
	return in
}

// parseTimestamp accepts RFC 3339 and the compact Taskwarrior form. Anything
// else is treated as absent.
func parseTimestamp(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339Nano, compactLayout} {
		if ts, err := time.Parse(layout, s); err == nil {
			ts = ts.UTC()
			return &ts
		}
	}
	return nil
}
