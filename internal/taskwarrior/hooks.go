package taskwarrior

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"taskquest/internal/engine"
	"taskquest/internal/logger"
)

const maxLine = 4 << 20

// Completer awards a finished task.
type Completer interface {
	Complete(ctx context.Context, in engine.CompletionInput) (*engine.CompleteResult, error)
}

// Hooks implements the Taskwarrior hook protocol. Hooks always echo the task
// back on stdout; reward failures are logged, never returned, so Taskwarrior
// is not blocked by the game.
type Hooks struct {
	Completer Completer
	Log       *logger.Logger
	Now       func() time.Time
}

func (h *Hooks) log() *logger.Logger {
	if h.Log == nil {
		return logger.Nop()
	}
	return h.Log
}

func (h *Hooks) now() time.Time {
	if h.Now == nil {
		return time.Now()
	}
	return h.Now()
}

// OnAdd gives new tasks the default challenge rating when none is set.
func (h *Hooks) OnAdd(r io.Reader, w io.Writer) error {
	lines, err := readLines(r)
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		return errors.New("on-add: no task on stdin")
	}
	line := lines[0]

	dec := json.NewDecoder(strings.NewReader(line))
	dec.UseNumber()
	var task map[string]any
	if err := dec.Decode(&task); err != nil {
		return fmt.Errorf("on-add: parse task: %w", err)
	}
	if v, ok := task["challenge"]; !ok || v == nil {
		task["challenge"] = engine.DefaultChallenge
	}
	out, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("on-add: encode task: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

// OnModify receives the original and modified task lines. When the task
// moves into the completed state it is awarded, and the modified line is
// echoed unchanged either way. The returned result is nil when nothing was
// awarded.
func (h *Hooks) OnModify(ctx context.Context, r io.Reader, w io.Writer) (*engine.CompleteResult, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}
	if len(lines) < 2 {
		h.log().Warn("on-modify expects the original and the modified task", "lines", len(lines))
		if len(lines) == 1 {
			_, err = fmt.Fprintln(w, lines[0])
		}
		return nil, err
	}
	modifiedLine := lines[1]
	if _, err := fmt.Fprintln(w, modifiedLine); err != nil {
		return nil, err
	}

	modified, err := ParseTask([]byte(modifiedLine))
	if err != nil {
		h.log().Warn("skipping completion: unreadable task", "error", err)
		return nil, nil
	}
	if !modified.IsCompleted() {
		return nil, nil
	}
	if original, err := ParseTask([]byte(lines[0])); err == nil && original.IsCompleted() {
		return nil, nil
	}

	if h.Completer == nil {
		h.log().Warn("skipping completion: game data unavailable", "task", modified.UUID)
		return nil, nil
	}
	res, err := h.Completer.Complete(ctx, modified.Input(h.now()))
	if err != nil {
		h.log().Warn("failed to process task completion", "task", modified.UUID, "error", err)
		return nil, nil
	}
	return res, nil
}

// OnExit runs after every Taskwarrior command. Nothing needs to happen there.
func (h *Hooks) OnExit(r io.Reader) error {
	_, err := io.Copy(io.Discard, r)
	return err
}

func readLines(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	var lines []string
	for sc.Scan() {
		line := string(bytes.TrimSpace(sc.Bytes()))
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read hook input: %w", err)
	}
	return lines, nil
}
