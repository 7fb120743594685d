package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/joho/godotenv"

	"schedbot/internal/agent"
	"schedbot/internal/calendar"
	"schedbot/internal/config"
	"schedbot/internal/intent"
	"schedbot/internal/llm"
	"schedbot/internal/memory"
	"schedbot/internal/schedule"
	"schedbot/internal/tasks"
)

var examples = []string{
	"Schedule a meeting called 'Project Review' at 3 PM tomorrow",
	"Schedule meeting with Ali and Ahmad at 4pm tomorrow about car service",
	"Add a task called 'Finish report'",
	"Show me my events",
	"What tasks do I have?",
}

func main() {
	// Load .env file (optional - won't error if missing)
	if err := godotenv.Load(); err == nil {
		log.Println("[config] Loaded .env file")
	}

	cfg, err := config.Load(os.Getenv("SCHEDBOT_CONFIG"))
	if err != nil {
		log.Fatalf("[config] %v", err)
	}

	store := schedule.NewStore(cfg.DataFile)
	cal := calendar.NewService(store)
	tsk := tasks.NewService(store)
	router := intent.NewRouter(store, cal, tsk)
	conversation := memory.New(cfg.MaxMessages)

	var completer agent.Completer
	if cfg.APIKey != "" {
		client, err := llm.NewClient(llm.Config{
			APIKey:      cfg.APIKey,
			Model:       cfg.Model,
			BaseURL:     cfg.BaseURL,
			MaxTokens:   cfg.MaxTokens,
			Temperature: cfg.Temperature,
		})
		if err != nil {
			log.Fatalf("[config] completion client: %v", err)
		}
		completer = client
	} else {
		log.Println("[config] OPENAI_API_KEY not set; running without the completion fallback")
	}

	bot := agent.New(router, completer, conversation, "")

	fmt.Println("Scheduling assistant ready.")
	fmt.Println("Type 'quit' to exit, 'clear' to reset the conversation, 'examples' for sample inputs.")
	fmt.Println()
	printExamples()

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "You: ",
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
		Stdin:           readline.NewCancelableStdin(os.Stdin),
		Stdout:          os.Stdout,
		Stderr:          os.Stderr,
	})
	if err != nil {
		log.Fatalf("failed to initialize readline: %v", err)
	}
	defer rl.Close()

	ctx := context.Background()
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt || err == io.EOF {
			fmt.Println("\nGoodbye!")
			return
		}

		line = strings.TrimSpace(line)
		switch {
		case line == "":
			continue
		case strings.EqualFold(line, "quit"):
			fmt.Println("Goodbye!")
			return
		case strings.EqualFold(line, "clear"):
			bot.ClearConversation()
			fmt.Println("Conversation cleared.")
			continue
		case strings.EqualFold(line, "examples"):
			printExamples()
			continue
		case strings.HasPrefix(line, "export "):
			path := strings.TrimSpace(strings.TrimPrefix(line, "export "))
			msg, err := cal.ExportICS(path)
			if err != nil {
				fmt.Printf("Export failed: %v\n", err)
			} else {
				fmt.Println(msg)
			}
			continue
		}

		fmt.Printf("\nAgent: %s\n\n", bot.Chat(ctx, line))
	}
}

func printExamples() {
	fmt.Println("Try these examples:")
	for i, example := range examples {
		fmt.Printf("%d. %s\n", i+1, example)
	}
	fmt.Println()
}
