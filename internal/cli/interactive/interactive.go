// Package interactive collects task drafts through terminal prompts.
package interactive

import (
	"fmt"
	"regexp"

	"github.com/AlecAivazis/survey/v2"

	"github.com/AbhimanyuAhuja12/saleslog-cli/internal/models"
)

// Zero-padded hours only, so time strings keep their lexicographic order.
var timeRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

func validTime(ans interface{}) error {
	s, ok := ans.(string)
	if !ok || !timeRe.MatchString(s) {
		return fmt.Errorf("time must be HH:MM (24-hour, zero-padded)")
	}
	return nil
}

// CreateTaskInteractive prompts for every draft field. The date is stamped at
// submission time by the orchestrator, so it is not asked for.
func CreateTaskInteractive() (models.Draft, error) {
	var answers struct {
		EntityName string
		TaskType   string
		Time       string
		Contact    string
		Note       string
		Status     string
	}

	questions := []*survey.Question{
		{
			Name:     "entityName",
			Prompt:   &survey.Input{Message: "Entity name:"},
			Validate: survey.Required,
		},
		{
			Name: "taskType",
			Prompt: &survey.Select{
				Message: "Task type:",
				Options: []string{"Meeting", "Call", "Video Call"},
				Default: "Call",
			},
		},
		{
			Name:     "time",
			Prompt:   &survey.Input{Message: "Time (HH:MM):"},
			Validate: survey.ComposeValidators(survey.Required, validTime),
		},
		{
			Name:     "contact",
			Prompt:   &survey.Input{Message: "Contact person:"},
			Validate: survey.Required,
		},
		{
			Name:   "note",
			Prompt: &survey.Input{Message: "Note (optional):"},
		},
		{
			Name: "status",
			Prompt: &survey.Select{
				Message: "Status:",
				Options: []string{"Open", "Closed"},
				Default: "Open",
			},
		},
	}

	if err := survey.Ask(questions, &answers); err != nil {
		return models.Draft{}, err
	}

	return models.Draft{
		EntityName:    answers.EntityName,
		TaskType:      models.TaskType(answers.TaskType),
		Time:          answers.Time,
		ContactPerson: answers.Contact,
		Note:          answers.Note,
		Status:        models.Status(answers.Status),
	}, nil
}
