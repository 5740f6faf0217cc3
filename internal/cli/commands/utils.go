package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/AbhimanyuAhuja12/saleslog-cli/internal/models"
	"github.com/AbhimanyuAhuja12/saleslog-cli/internal/store"
)

// Helper functions shared across commands

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

func taskTypeIcon(t models.TaskType) string {
	switch t {
	case models.TaskTypeMeeting:
		return "📍"
	case models.TaskTypeCall:
		return "📞"
	case models.TaskTypeVideoCall:
		return "📹"
	}
	return "📋"
}

func statusIcon(s models.Status) string {
	if s == models.StatusOpen {
		return "🟠"
	}
	return "⚪"
}

// formatTime renders a wire HH:MM value as 12-hour clock text.
func formatTime(hhmm string) string {
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return hhmm
	}
	var hour int
	if _, err := fmt.Sscanf(parts[0], "%d", &hour); err != nil {
		return hhmm
	}
	ampm := "AM"
	if hour >= 12 {
		ampm = "PM"
	}
	display := hour % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%s %s", display, parts[1], ampm)
}

func askForConfirmation(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

// resolveTask refreshes the store and resolves an ID prefix to one task.
func resolveTask(st *store.Store, idPrefix string) (*models.Task, error) {
	if err := st.Refresh(); err != nil {
		return nil, err
	}
	task := st.Find(idPrefix)
	if task == nil {
		return nil, fmt.Errorf("no task matches ID %q (prefix must be unique)", idPrefix)
	}
	return task, nil
}

// normalizeStatus accepts user-friendly status spellings.
func normalizeStatus(s string) (models.Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "open":
		return models.StatusOpen, nil
	case "closed", "close", "done":
		return models.StatusClosed, nil
	}
	return "", fmt.Errorf("unknown status %q (use Open or Closed)", s)
}

// normalizeTaskType accepts user-friendly task type spellings.
func normalizeTaskType(s string) (models.TaskType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "meeting":
		return models.TaskTypeMeeting, nil
	case "call":
		return models.TaskTypeCall, nil
	case "video call", "video-call", "video":
		return models.TaskTypeVideoCall, nil
	}
	return "", fmt.Errorf("unknown task type %q (use Meeting, Call or Video Call)", s)
}
