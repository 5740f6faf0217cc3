package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
	"golang.org/x/term"

	"github.com/AbhimanyuAhuja12/saleslog-cli/internal/api"
	"github.com/AbhimanyuAhuja12/saleslog-cli/internal/cli/interactive"
	"github.com/AbhimanyuAhuja12/saleslog-cli/internal/models"
	"github.com/AbhimanyuAhuja12/saleslog-cli/internal/mutate"
	"github.com/AbhimanyuAhuja12/saleslog-cli/internal/query"
	"github.com/AbhimanyuAhuja12/saleslog-cli/internal/store"
)

// newOrchestrator wires the client, store and error reporting for a command.
func newOrchestrator() *mutate.Orchestrator {
	client := api.NewClient()
	st := store.New(client)
	o := mutate.New(client, st)
	o.Reporter = func(err error) {
		fmt.Printf("❌ %v\n", err)
	}
	st.Reporter = o.Reporter
	return o
}

// NewListCommand lists tasks with the same filter/sort semantics as the UI.
func NewListCommand() *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "List sales log entries",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "search", Aliases: []string{"q"}, Usage: "Search entity, contact and note"},
			&cli.StringFlag{Name: "type", Usage: "Filter by task type (Meeting, Call, Video Call)"},
			&cli.StringFlag{Name: "status", Usage: "Filter by status (Open, Closed)"},
			&cli.StringFlag{Name: "contact", Usage: "Filter by contact person (substring)"},
			&cli.StringFlag{Name: "entity", Usage: "Filter by entity name (substring)"},
			&cli.StringFlag{Name: "sort", Value: "date", Usage: "Sort column (date, entity_name, task_type, time, contact_person, note, status)"},
			&cli.BoolFlag{Name: "desc", Value: true, Usage: "Sort descending"},
		},
		Action: func(c *cli.Context) error {
			o := newOrchestrator()
			if err := o.Store.Refresh(); err != nil {
				return err
			}

			filters := query.Filters{
				TaskType:      c.String("type"),
				Status:        c.String("status"),
				ContactPerson: c.String("contact"),
				EntityName:    c.String("entity"),
			}
			direction := query.Asc
			if c.Bool("desc") {
				direction = query.Desc
			}
			sortSpec := query.Sort{Key: query.Column(c.String("sort")), Direction: direction}

			tasks := query.Apply(o.Store.Tasks(), c.String("search"), filters, sortSpec)
			if len(tasks) == 0 {
				fmt.Println("📋 No tasks found.")
				fmt.Println("💡 Create one with 'saleslog create -i'")
				return nil
			}

			displayTaskList(tasks)
			return nil
		},
	}
}

// NewCreateCommand creates a new task, interactively or from flags.
func NewCreateCommand() *cli.Command {
	return &cli.Command{
		Name:    "create",
		Aliases: []string{"add"},
		Usage:   "Create a new sales log entry",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "interactive", Aliases: []string{"i"}, Usage: "Prompt for each field"},
			&cli.StringFlag{Name: "entity", Usage: "Entity name"},
			&cli.StringFlag{Name: "type", Value: "Call", Usage: "Task type (Meeting, Call, Video Call)"},
			&cli.StringFlag{Name: "time", Usage: "Time of day (HH:MM)"},
			&cli.StringFlag{Name: "contact", Usage: "Contact person"},
			&cli.StringFlag{Name: "note", Usage: "Optional note"},
			&cli.StringFlag{Name: "status", Value: "Open", Usage: "Status (Open, Closed)"},
			&cli.StringFlag{Name: "priority", Usage: "Optional priority"},
			&cli.StringFlag{Name: "due", Usage: "Optional due date (YYYY-MM-DD)"},
		},
		Action: func(c *cli.Context) error {
			var draft models.Draft
			if c.Bool("interactive") {
				var err error
				draft, err = interactive.CreateTaskInteractive()
				if err != nil {
					return fmt.Errorf("interactive task creation failed: %w", err)
				}
			} else {
				taskType, err := normalizeTaskType(c.String("type"))
				if err != nil {
					return err
				}
				status, err := normalizeStatus(c.String("status"))
				if err != nil {
					return err
				}
				draft = models.Draft{
					EntityName:    c.String("entity"),
					TaskType:      taskType,
					Time:          c.String("time"),
					ContactPerson: c.String("contact"),
					Note:          c.String("note"),
					Status:        status,
					Priority:      c.String("priority"),
					DueDate:       c.String("due"),
				}
			}

			o := newOrchestrator()
			if err := o.Create(draft); err != nil {
				return err
			}
			fmt.Printf("✅ Created task for %s (%s %s)\n", draft.EntityName, taskTypeIcon(draft.TaskType), draft.TaskType)
			return nil
		},
	}
}

// NewEditCommand updates only the fields given as flags.
func NewEditCommand() *cli.Command {
	return &cli.Command{
		Name:      "edit",
		Usage:     "Edit fields of a task",
		ArgsUsage: "[id]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "entity", Usage: "New entity name"},
			&cli.StringFlag{Name: "type", Usage: "New task type"},
			&cli.StringFlag{Name: "time", Usage: "New time (HH:MM)"},
			&cli.StringFlag{Name: "contact", Usage: "New contact person"},
			&cli.StringFlag{Name: "note", Usage: "New note"},
			&cli.StringFlag{Name: "status", Usage: "New status"},
			&cli.StringFlag{Name: "priority", Usage: "New priority"},
			&cli.StringFlag{Name: "due", Usage: "New due date (YYYY-MM-DD)"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("task ID is required")
			}

			fields := make(map[string]interface{})
			if c.IsSet("entity") {
				fields["entity_name"] = c.String("entity")
			}
			if c.IsSet("type") {
				taskType, err := normalizeTaskType(c.String("type"))
				if err != nil {
					return err
				}
				fields["task_type"] = taskType
			}
			if c.IsSet("time") {
				fields["time"] = c.String("time")
			}
			if c.IsSet("contact") {
				fields["contact_person"] = c.String("contact")
			}
			if c.IsSet("note") {
				fields["note"] = c.String("note")
			}
			if c.IsSet("status") {
				status, err := normalizeStatus(c.String("status"))
				if err != nil {
					return err
				}
				fields["status"] = status
			}
			if c.IsSet("priority") {
				fields["priority"] = c.String("priority")
			}
			if c.IsSet("due") {
				fields["due_date"] = c.String("due")
			}
			if len(fields) == 0 {
				fmt.Println("Please provide at least one field flag to change.")
				return nil
			}

			o := newOrchestrator()
			task, err := resolveTask(o.Store, c.Args().First())
			if err != nil {
				return err
			}
			if err := o.Update(task.ID, fields); err != nil {
				return err
			}
			fmt.Println("✅ Task modified successfully.")
			return nil
		},
	}
}

// NewNoteCommand sets or clears the note of a task.
func NewNoteCommand() *cli.Command {
	return &cli.Command{
		Name:      "note",
		Usage:     "Set the note on a task (empty text clears it)",
		ArgsUsage: "[id] [text...]",
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("task ID is required")
			}

			o := newOrchestrator()
			task, err := resolveTask(o.Store, c.Args().First())
			if err != nil {
				return err
			}

			note := strings.Join(c.Args().Tail(), " ")
			if err := o.Update(task.ID, map[string]interface{}{"note": note}); err != nil {
				return err
			}
			if note == "" {
				fmt.Printf("✅ Cleared note on %s\n", task.EntityName)
			} else {
				fmt.Printf("✅ Updated note on %s\n", task.EntityName)
			}
			return nil
		},
	}
}

// NewStatusCommand flips a task between Open and Closed.
func NewStatusCommand() *cli.Command {
	return &cli.Command{
		Name:      "status",
		Usage:     "Set a task's status",
		ArgsUsage: "[id] [open|closed]",
		Action: func(c *cli.Context) error {
			if c.NArg() < 2 {
				return fmt.Errorf("usage: saleslog status <id> <open|closed>")
			}
			status, err := normalizeStatus(c.Args().Get(1))
			if err != nil {
				return err
			}

			o := newOrchestrator()
			task, err := resolveTask(o.Store, c.Args().First())
			if err != nil {
				return err
			}
			if err := o.Update(task.ID, map[string]interface{}{"status": status}); err != nil {
				return err
			}
			fmt.Printf("✅ %s is now %s %s\n", task.EntityName, statusIcon(status), status)
			return nil
		},
	}
}

// NewDeleteCommand deletes a task after confirmation.
func NewDeleteCommand() *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Aliases:   []string{"rm", "del"},
		Usage:     "Delete a task",
		ArgsUsage: "[id]",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "yes", Aliases: []string{"y"}, Usage: "Skip confirmation"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("task ID is required")
			}

			o := newOrchestrator()
			task, err := resolveTask(o.Store, c.Args().First())
			if err != nil {
				return err
			}

			if !c.Bool("yes") && !askForConfirmation(fmt.Sprintf("Delete task for %q?", task.EntityName)) {
				fmt.Println("🚫 Delete operation cancelled.")
				return nil
			}

			if err := o.Delete(task.ID); err != nil {
				return err
			}
			fmt.Println("✅ Task successfully deleted.")
			return nil
		},
	}
}

// NewDuplicateCommand copies a task as a fresh Open entry dated today.
func NewDuplicateCommand() *cli.Command {
	return &cli.Command{
		Name:      "duplicate",
		Aliases:   []string{"dup"},
		Usage:     "Duplicate a task (status reset to Open, dated today)",
		ArgsUsage: "[id]",
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("task ID is required")
			}

			o := newOrchestrator()
			task, err := resolveTask(o.Store, c.Args().First())
			if err != nil {
				return err
			}
			if err := o.Duplicate(*task); err != nil {
				return err
			}
			fmt.Printf("✅ Duplicated as %q\n", task.EntityName+" (Copy)")
			return nil
		},
	}
}

// displayTaskList shows tasks in a responsive table, compact on narrow
// terminals.
func displayTaskList(tasks []models.Task) {
	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
	}

	fmt.Printf("📋 Sales Log (%d)\n\n", len(tasks))

	if width < 100 {
		displayTaskListCompact(tasks)
		return
	}
	displayTaskListTable(tasks, width)
}

func displayTaskListCompact(tasks []models.Task) {
	for i, t := range tasks {
		fmt.Printf("%s %s %s  %s\n", statusIcon(t.Status), taskTypeIcon(t.TaskType), t.ID.String()[:8], t.EntityName)
		fmt.Printf("   %s %s · %s", t.Date, formatTime(t.Time), t.ContactPerson)
		if t.Note != "" {
			fmt.Printf(" · %s", truncateString(t.Note, 40))
		}
		fmt.Println()
		if i < len(tasks)-1 {
			fmt.Println("   ─────────────────────────────────────")
		}
	}
}

func displayTaskListTable(tasks []models.Task, termWidth int) {
	idWidth := 8
	dateWidth := 10
	typeWidth := 12
	timeWidth := 8
	statusWidth := 8
	contactWidth := 18

	usedWidth := idWidth + dateWidth + typeWidth + timeWidth + statusWidth + contactWidth + 21
	entityWidth := (termWidth - usedWidth) / 2
	if entityWidth < 14 {
		entityWidth = 14
	}
	noteWidth := termWidth - usedWidth - entityWidth
	if noteWidth < 10 {
		noteWidth = 10
	}

	fmt.Printf("%-*s  %-*s  %-*s  %-*s  %-*s  %-*s  %-*s  %-*s\n",
		idWidth, "ID",
		dateWidth, "DATE",
		entityWidth, "ENTITY",
		typeWidth, "TYPE",
		timeWidth, "TIME",
		contactWidth, "CONTACT",
		noteWidth, "NOTE",
		statusWidth, "STATUS")
	fmt.Println(strings.Repeat("─", termWidth-2))

	for _, t := range tasks {
		fmt.Printf("%-*s  %-*s  %-*s  %s %-*s  %-*s  %-*s  %-*s  %s %-*s\n",
			idWidth, t.ID.String()[:idWidth],
			dateWidth, t.Date,
			entityWidth, truncateString(t.EntityName, entityWidth),
			taskTypeIcon(t.TaskType),
			typeWidth-3, truncateString(string(t.TaskType), typeWidth-3),
			timeWidth, formatTime(t.Time),
			contactWidth, truncateString(t.ContactPerson, contactWidth),
			noteWidth, truncateString(t.Note, noteWidth),
			statusIcon(t.Status),
			statusWidth-3, t.Status)
	}
}
