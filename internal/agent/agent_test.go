package agent

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"schedbot/internal/calendar"
	"schedbot/internal/intent"
	"schedbot/internal/memory"
	"schedbot/internal/schedule"
	"schedbot/internal/tasks"
)

type fakeCompleter struct {
	reply string
	err   error
	calls [][]memory.Message
}

func (f *fakeCompleter) Complete(_ context.Context, messages []memory.Message) (string, error) {
	f.calls = append(f.calls, messages)
	return f.reply, f.err
}

func newAgent(t *testing.T, completer Completer) *Agent {
	t.Helper()
	store := schedule.NewStore(filepath.Join(t.TempDir(), "schedule.json"))
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.Local)
	cal := calendar.NewService(store)
	cal.SetClock(func() time.Time { return now })
	tsk := tasks.NewService(store)
	tsk.SetClock(func() time.Time { return now })
	r := intent.NewRouter(store, cal, tsk)
	r.SetClock(func() time.Time { return now })
	return New(r, completer, memory.New(0), "")
}

func TestChat_RoutedTurnSkipsCompleter(t *testing.T) {
	fake := &fakeCompleter{reply: "should not be used"}
	a := newAgent(t, fake)

	got := a.Chat(context.Background(), "What tasks do I have?")
	if got != "No tasks found." {
		t.Errorf("Chat = %q", got)
	}
	if len(fake.calls) != 0 {
		t.Error("routed input reached the completer")
	}
}

func TestChat_UnroutedTurnUsesCompleter(t *testing.T) {
	fake := &fakeCompleter{reply: "Hello! How can I help?"}
	a := newAgent(t, fake)

	got := a.Chat(context.Background(), "hello there")
	if got != "Hello! How can I help?" {
		t.Errorf("Chat = %q", got)
	}
	if len(fake.calls) != 1 {
		t.Fatalf("completer called %d times", len(fake.calls))
	}

	sent := fake.calls[0]
	if sent[0].Role != "system" || sent[0].Content != DefaultSystemPrompt {
		t.Errorf("history does not start with the system prompt: %v", sent[0])
	}
	if last := sent[len(sent)-1]; last.Role != "user" || last.Content != "hello there" {
		t.Errorf("history does not end with the user turn: %v", last)
	}
}

func TestChat_CompleterFailureDegrades(t *testing.T) {
	fake := &fakeCompleter{err: errors.New("connection refused")}
	a := newAgent(t, fake)

	got := a.Chat(context.Background(), "hello there")
	if !strings.HasPrefix(got, "Error: ") || !strings.Contains(got, "connection refused") {
		t.Errorf("Chat = %q", got)
	}
}

func TestChat_NilCompleterFallback(t *testing.T) {
	a := newAgent(t, nil)

	got := a.Chat(context.Background(), "hello there")
	if !strings.Contains(got, "scheduling") {
		t.Errorf("Chat = %q, want canned fallback", got)
	}
}

func TestChat_RecordsBothSides(t *testing.T) {
	a := newAgent(t, nil)
	a.Chat(context.Background(), "What tasks do I have?")

	h := a.History()
	if len(h) != 3 {
		t.Fatalf("history length = %d, want system+user+assistant", len(h))
	}
	if h[1].Role != "user" || h[2].Role != "assistant" {
		t.Errorf("history roles = %s, %s", h[1].Role, h[2].Role)
	}
	if h[2].Content != "No tasks found." {
		t.Errorf("assistant turn = %q", h[2].Content)
	}
}

func TestClearConversation_ReseedsSystemPrompt(t *testing.T) {
	a := newAgent(t, nil)
	a.Chat(context.Background(), "What tasks do I have?")
	a.ClearConversation()

	h := a.History()
	if len(h) != 1 || h[0].Role != "system" {
		t.Errorf("history after clear = %v", h)
	}
}
