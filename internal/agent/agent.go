// Package agent ties the pipeline together: one user turn is routed to
// the scheduling services or, failing that, sent to the completion API
// with the full conversation history. Either way the turn never crashes
// the loop; failures degrade to descriptive strings.
package agent

import (
	"context"
	"fmt"

	"schedbot/internal/intent"
	"schedbot/internal/logging"
	"schedbot/internal/memory"
)

// DefaultSystemPrompt seeds a fresh conversation.
const DefaultSystemPrompt = `You are a scheduling assistant. You can:
- Schedule events and meetings
- Manage tasks with priorities and due dates
- Find available time slots
- View calendar events and tasks
- Suggest meeting times

Always be helpful and proactive in managing schedules.`

// Completer is the external completion collaborator: given the ordered
// conversation history, return a text completion or fail.
type Completer interface {
	Complete(ctx context.Context, messages []memory.Message) (string, error)
}

// Agent processes one user turn at a time.
type Agent struct {
	router       *intent.Router
	completer    Completer
	conversation *memory.Conversation
	systemPrompt string
}

// New creates an agent. completer may be nil, in which case unmatched
// input gets a fixed fallback reply instead of an API call.
func New(router *intent.Router, completer Completer, conversation *memory.Conversation, systemPrompt string) *Agent {
	if systemPrompt == "" {
		systemPrompt = DefaultSystemPrompt
	}
	a := &Agent{
		router:       router,
		completer:    completer,
		conversation: conversation,
		systemPrompt: systemPrompt,
	}
	conversation.Add("system", systemPrompt)
	return a
}

// Chat handles one user turn and returns the reply text.
func (a *Agent) Chat(ctx context.Context, input string) string {
	a.conversation.Add("user", input)

	reply, handled := a.router.Dispatch(input)
	if !handled {
		reply = a.complete(ctx)
	}

	a.conversation.Add("assistant", reply)
	return reply
}

func (a *Agent) complete(ctx context.Context) string {
	if a.completer == nil {
		return "I can help with scheduling events, managing tasks, and finding free time. Try 'examples' for sample commands."
	}

	reply, err := a.completer.Complete(ctx, a.conversation.History())
	if err != nil {
		logging.Info("agent", "completion failed: %v", err)
		return fmt.Sprintf("Error: %v", err)
	}
	return reply
}

// ClearConversation resets memory and re-seeds the system prompt.
func (a *Agent) ClearConversation() {
	a.conversation.Clear()
	a.conversation.Add("system", a.systemPrompt)
}

// History returns the current conversation history.
func (a *Agent) History() []memory.Message {
	return a.conversation.History()
}
