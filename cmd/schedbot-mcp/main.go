// schedbot-mcp exposes the schedule store as MCP tools over stdio, so
// an MCP-capable client can drive the same calendar and task operations
// the interactive assistant uses.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"schedbot/internal/avail"
	"schedbot/internal/calendar"
	"schedbot/internal/config"
	"schedbot/internal/schedule"
	"schedbot/internal/tasks"
)

func main() {
	// Log to stderr so stdout is clean for JSON-RPC
	log.SetOutput(os.Stderr)
	log.SetPrefix("[schedbot-mcp] ")

	if err := godotenv.Load(); err == nil {
		log.Println("Loaded .env file")
	}

	cfg, err := config.Load(os.Getenv("SCHEDBOT_CONFIG"))
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	store := schedule.NewStore(cfg.DataFile)
	cal := calendar.NewService(store)
	tsk := tasks.NewService(store)
	log.Printf("Schedule file: %s", store.Path())

	s := server.NewMCPServer(
		"schedbot-mcp",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	s.AddTool(addEventTool(), handleAddEvent(cal))
	s.AddTool(getEventsTool(), handleGetEvents(cal))
	s.AddTool(removeEventTool(), handleRemoveEvent(cal))
	s.AddTool(addTaskTool(), handleAddTask(tsk))
	s.AddTool(getTasksTool(), handleGetTasks(tsk))
	s.AddTool(updateTaskStatusTool(), handleUpdateTaskStatus(tsk))
	s.AddTool(findAvailableTimeTool(), handleFindAvailableTime(store))
	s.AddTool(suggestMeetingTimeTool(), handleSuggestMeetingTime(store))

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

func addEventTool() mcp.Tool {
	return mcp.NewTool("add_event",
		mcp.WithDescription("Add a calendar event. Start and end times accept casual phrasing like '3pm tomorrow'. End defaults to one hour after start."),
		mcp.WithString("title", mcp.Required(), mcp.Description("Event title")),
		mcp.WithString("start_time", mcp.Required(), mcp.Description("Start time text")),
		mcp.WithString("end_time", mcp.Description("End time text. Optional.")),
		mcp.WithString("description", mcp.Description("Event description. Optional.")),
		mcp.WithString("location", mcp.Description("Event location. Optional.")),
	)
}

func handleAddEvent(cal *calendar.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, _ := req.Params.Arguments.(map[string]any)
		title, _ := args["title"].(string)
		startTime, _ := args["start_time"].(string)
		endTime, _ := args["end_time"].(string)
		description, _ := args["description"].(string)
		location, _ := args["location"].(string)

		if title == "" || startTime == "" {
			return mcp.NewToolResultError("title and start_time are required"), nil
		}
		return mcp.NewToolResultText(cal.AddEvent(title, startTime, endTime, description, location)), nil
	}
}

func getEventsTool() mcp.Tool {
	return mcp.NewTool("get_events",
		mcp.WithDescription("List calendar events, optionally only those on a given date ('today', 'tomorrow', '2026-09-15')."),
		mcp.WithString("date", mcp.Description("Date filter. Optional.")),
	)
}

func handleGetEvents(cal *calendar.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, _ := req.Params.Arguments.(map[string]any)
		date, _ := args["date"].(string)
		return mcp.NewToolResultText(cal.ListEvents(date)), nil
	}
}

func removeEventTool() mcp.Tool {
	return mcp.NewTool("remove_event",
		mcp.WithDescription("Remove a calendar event by its numeric ID."),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("Event ID")),
	)
}

func handleRemoveEvent(cal *calendar.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, _ := req.Params.Arguments.(map[string]any)
		id, ok := args["id"].(float64)
		if !ok {
			return mcp.NewToolResultError("id is required"), nil
		}
		return mcp.NewToolResultText(cal.RemoveEvent(int(id))), nil
	}
}

func addTaskTool() mcp.Tool {
	return mcp.NewTool("add_task",
		mcp.WithDescription("Add a task with optional due date and priority (low, medium, high)."),
		mcp.WithString("title", mcp.Required(), mcp.Description("Task title")),
		mcp.WithString("due_date", mcp.Description("Due date text. Optional.")),
		mcp.WithString("priority", mcp.Description("Priority: low, medium, or high. Default medium.")),
		mcp.WithString("description", mcp.Description("Task description. Optional.")),
	)
}

func handleAddTask(tsk *tasks.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, _ := req.Params.Arguments.(map[string]any)
		title, _ := args["title"].(string)
		dueDate, _ := args["due_date"].(string)
		priority, _ := args["priority"].(string)
		description, _ := args["description"].(string)

		if title == "" {
			return mcp.NewToolResultError("title is required"), nil
		}
		return mcp.NewToolResultText(tsk.AddTask(title, dueDate, priority, description)), nil
	}
}

func getTasksTool() mcp.Tool {
	return mcp.NewTool("get_tasks",
		mcp.WithDescription("List tasks, optionally filtered by status (pending, in_progress, completed)."),
		mcp.WithString("status", mcp.Description("Status filter. Optional.")),
	)
}

func handleGetTasks(tsk *tasks.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, _ := req.Params.Arguments.(map[string]any)
		status, _ := args["status"].(string)
		return mcp.NewToolResultText(tsk.ListTasks(status)), nil
	}
}

func updateTaskStatusTool() mcp.Tool {
	return mcp.NewTool("update_task_status",
		mcp.WithDescription("Update a task's status by its numeric ID."),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("Task ID")),
		mcp.WithString("status", mcp.Required(), mcp.Description("New status")),
	)
}

func handleUpdateTaskStatus(tsk *tasks.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, _ := req.Params.Arguments.(map[string]any)
		id, ok := args["id"].(float64)
		status, _ := args["status"].(string)
		if !ok || status == "" {
			return mcp.NewToolResultError("id and status are required"), nil
		}
		return mcp.NewToolResultText(tsk.UpdateStatus(int(id), status)), nil
	}
}

func findAvailableTimeTool() mcp.Tool {
	return mcp.NewTool("find_available_time",
		mcp.WithDescription("Find free weekday business-hour slots over the next days."),
		mcp.WithNumber("duration_hours", mcp.Description("Slot duration in hours. Default 1.")),
		mcp.WithNumber("days_ahead", mcp.Description("Search horizon in days. Default 7.")),
	)
}

func handleFindAvailableTime(store *schedule.Store) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, _ := req.Params.Arguments.(map[string]any)

		duration := time.Hour
		if hours, ok := args["duration_hours"].(float64); ok && hours > 0 {
			duration = time.Duration(hours * float64(time.Hour))
		}
		daysAhead := avail.DefaultDaysAhead
		if days, ok := args["days_ahead"].(float64); ok && days > 0 {
			daysAhead = int(days)
		}

		slots := avail.FindAvailableTime(store.Events(), duration, time.Now(), daysAhead)
		return mcp.NewToolResultText(avail.FormatSlots(slots)), nil
	}
}

func suggestMeetingTimeTool() mcp.Tool {
	return mcp.NewTool("suggest_meeting_time",
		mcp.WithDescription("Suggest the next available meeting slot."),
		mcp.WithNumber("duration_hours", mcp.Description("Slot duration in hours. Default 1.")),
	)
}

func handleSuggestMeetingTime(store *schedule.Store) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, _ := req.Params.Arguments.(map[string]any)

		duration := time.Hour
		if hours, ok := args["duration_hours"].(float64); ok && hours > 0 {
			duration = time.Duration(hours * float64(time.Hour))
		}
		return mcp.NewToolResultText(avail.SuggestMeetingTime(store.Events(), duration)), nil
	}
}
