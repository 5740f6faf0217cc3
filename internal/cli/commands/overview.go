package commands

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/urfave/cli/v2"

	"github.com/AbhimanyuAhuja12/saleslog-cli/internal/models"
)

// NewOverviewCommand renders a markdown summary of the current log.
func NewOverviewCommand() *cli.Command {
	return &cli.Command{
		Name:  "overview",
		Usage: "Show a summary of the sales log",
		Action: func(c *cli.Context) error {
			o := newOrchestrator()
			if err := o.Store.Refresh(); err != nil {
				return err
			}
			tasks := o.Store.Tasks()

			md := buildOverviewMarkdown(tasks)
			out, err := glamour.Render(md, "auto")
			if err != nil {
				// Plain markdown still reads fine if the renderer fails.
				fmt.Println(md)
				return nil
			}
			fmt.Print(out)
			return nil
		},
	}
}

func buildOverviewMarkdown(tasks []models.Task) string {
	var b strings.Builder
	b.WriteString("# Sales Log Overview\n\n")
	fmt.Fprintf(&b, "**%d** tasks on record.\n\n", len(tasks))

	open, closed := 0, 0
	byType := map[models.TaskType]int{}
	for _, t := range tasks {
		if t.Status == models.StatusOpen {
			open++
		} else {
			closed++
		}
		byType[t.TaskType]++
	}

	b.WriteString("## By status\n\n")
	fmt.Fprintf(&b, "- 🟠 Open: %d\n", open)
	fmt.Fprintf(&b, "- ⚪ Closed: %d\n\n", closed)

	b.WriteString("## By task type\n\n")
	for _, tt := range models.TaskTypes() {
		fmt.Fprintf(&b, "- %s %s: %d\n", taskTypeIcon(tt), tt, byType[tt])
	}

	var openRows []string
	for _, t := range tasks {
		if t.Status == models.StatusOpen {
			openRows = append(openRows, fmt.Sprintf("| %s | %s | %s | %s |", t.Date, t.EntityName, t.TaskType, t.ContactPerson))
		}
	}
	if len(openRows) > 0 {
		b.WriteString("\n## Open tasks\n\n")
		b.WriteString("| Date | Entity | Type | Contact |\n")
		b.WriteString("|------|--------|------|---------|\n")
		b.WriteString(strings.Join(openRows, "\n"))
		b.WriteString("\n")
	}

	return b.String()
}
