// view-schedule pretty-prints the persisted schedule aggregate.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"

	"schedbot/internal/config"
	"schedbot/internal/schedule"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("SCHEDBOT_CONFIG"))
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	store := schedule.NewStore(cfg.DataFile)

	header := color.New(color.FgCyan, color.Bold)
	section := color.New(color.FgYellow, color.Bold)
	title := color.New(color.Bold)
	dim := color.New(color.Faint)

	header.Println("YOUR SCHEDULE")
	fmt.Println("==================================================")

	section.Println("\nEVENTS:")
	events := store.Events()
	if len(events) == 0 {
		fmt.Println("No events scheduled yet.")
	}
	for _, e := range events {
		title.Printf("- %s\n", e.Title)
		fmt.Printf("  %s  %s - %s\n",
			e.StartTime.Format("2006-01-02"),
			e.StartTime.Format("15:04"),
			e.EndTime.Format("15:04"))
		if e.Description != "" {
			dim.Printf("  %s\n", e.Description)
		}
		if e.Location != "" {
			dim.Printf("  @ %s\n", e.Location)
		}
		fmt.Println()
	}

	section.Println("\nTASKS:")
	tasks := store.Tasks()
	if len(tasks) == 0 {
		fmt.Println("No tasks created yet.")
	}
	for _, t := range tasks {
		statusColor(t.Status).Printf("[%s] ", t.Status)
		title.Printf("%s", t.Title)
		fmt.Printf(" (%s priority)\n", t.Priority)
		if t.DueDate != nil {
			fmt.Printf("  Due: %s\n", t.DueDate.Format("2006-01-02"))
		}
		if t.Description != "" {
			dim.Printf("  %s\n", t.Description)
		}
		fmt.Println()
	}
}

func statusColor(status string) *color.Color {
	switch status {
	case schedule.StatusCompleted:
		return color.New(color.FgGreen)
	case schedule.StatusInProgress:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgWhite)
	}
}
