package memory

import (
	"fmt"
	"testing"
)

func TestAdd_EvictsOldestPastCap(t *testing.T) {
	c := New(3)
	for i := 1; i <= 5; i++ {
		c.Add("user", fmt.Sprintf("m%d", i))
	}

	if c.Len() != 3 {
		t.Fatalf("Len = %d, want 3", c.Len())
	}
	h := c.History()
	if h[0].Content != "m3" || h[2].Content != "m5" {
		t.Errorf("history = %v, want m3..m5", h)
	}
}

func TestNew_DefaultCap(t *testing.T) {
	c := New(0)
	for i := 0; i < DefaultMaxMessages+5; i++ {
		c.Add("user", "x")
	}
	if c.Len() != DefaultMaxMessages {
		t.Errorf("Len = %d, want %d", c.Len(), DefaultMaxMessages)
	}
}

func TestHistory_ReturnsCopy(t *testing.T) {
	c := New(5)
	c.Add("system", "prompt")

	h := c.History()
	h[0].Content = "mutated"

	if c.History()[0].Content != "prompt" {
		t.Error("History exposed internal state")
	}
}

func TestClear(t *testing.T) {
	c := New(5)
	c.Add("user", "hi")
	c.Clear()

	if c.Len() != 0 {
		t.Errorf("Len after Clear = %d", c.Len())
	}
	c.Add("user", "again")
	if c.Len() != 1 {
		t.Errorf("Len after re-add = %d", c.Len())
	}
}
