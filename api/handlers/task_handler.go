package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/AbhimanyuAhuja12/saleslog-cli/pkg/models"
)

// DB is the shared database handle, set once at startup.
var DB *gorm.DB

// Init wires the database handle used by all handlers.
func Init(db *gorm.DB) {
	DB = db
}

// CreateTaskInput DTO for creating a new task
type CreateTaskInput struct {
	EntityName    string `json:"entity_name" binding:"required"`
	TaskType      string `json:"task_type" binding:"required"`
	Time          string `json:"time" binding:"required"`
	ContactPerson string `json:"contact_person" binding:"required"`
	Note          string `json:"note"`
	Status        string `json:"status"`
	Date          string `json:"date"`
	Priority      string `json:"priority"`
	DueDate       string `json:"due_date"`
}

// CreateTask creates a new task in the database.
func CreateTask(c *gin.Context) {
	var input CreateTaskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !ValidTaskType(input.TaskType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task_type"})
		return
	}
	if !ValidTime(input.Time) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "time must be HH:MM"})
		return
	}
	if input.Status == "" {
		input.Status = string(models.StatusOpen)
	}
	if !ValidStatus(input.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		return
	}

	date := datatypes.Date(time.Now())
	if input.Date != "" {
		var err error
		date, err = ParseDate(input.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	task := models.Task{
		EntityName:    input.EntityName,
		TaskType:      input.TaskType,
		Time:          input.Time,
		ContactPerson: input.ContactPerson,
		Note:          input.Note,
		Status:        input.Status,
		Date:          date,
		Priority:      NormalizePriority(input.Priority),
	}

	if input.DueDate != "" {
		due, err := ParseDate(input.DueDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		task.DueDate = &due
	}

	if err := DB.Create(&task).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task"})
		return
	}

	c.JSON(http.StatusCreated, task.ToDict())
}

// ListTasks retrieves tasks with pagination, newest date first.
func ListTasks(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if limit < 1 || limit > 500 {
		limit = 100
	}

	var total int64
	if err := DB.Model(&models.Task{}).Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tasks"})
		return
	}

	var tasks []models.Task
	if err := DB.Order("date DESC, created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&tasks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tasks"})
		return
	}

	out := make([]map[string]interface{}, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ToDict())
	}

	pages := (total + int64(limit) - 1) / int64(limit)
	c.JSON(http.StatusOK, gin.H{
		"tasks": out,
		"pagination": gin.H{
			"page":  page,
			"limit": limit,
			"total": total,
			"pages": pages,
		},
	})
}

// GetTask retrieves a single task by its ID.
func GetTask(c *gin.Context) {
	id := c.Param("id")
	var task models.Task
	if err := DB.First(&task, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	c.JSON(http.StatusOK, task.ToDict())
}

// UpdateTaskInput DTO for updating a task. Pointer fields distinguish
// "not sent" from "sent empty" so updates stay partial.
type UpdateTaskInput struct {
	EntityName    *string `json:"entity_name"`
	TaskType      *string `json:"task_type"`
	Time          *string `json:"time"`
	ContactPerson *string `json:"contact_person"`
	Note          *string `json:"note"`
	Status        *string `json:"status"`
	Date          *string `json:"date"`
	Priority      *string `json:"priority"`
	DueDate       *string `json:"due_date"`
}

// UpdateTask merges the provided fields into an existing task.
func UpdateTask(c *gin.Context) {
	id := c.Param("id")
	var task models.Task
	if err := DB.First(&task, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	var input UpdateTaskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.EntityName != nil {
		if *input.EntityName == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "entity_name cannot be empty"})
			return
		}
		task.EntityName = *input.EntityName
	}
	if input.TaskType != nil {
		if !ValidTaskType(*input.TaskType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task_type"})
			return
		}
		task.TaskType = *input.TaskType
	}
	if input.Time != nil {
		if !ValidTime(*input.Time) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "time must be HH:MM"})
			return
		}
		task.Time = *input.Time
	}
	if input.ContactPerson != nil {
		task.ContactPerson = *input.ContactPerson
	}
	if input.Note != nil {
		task.Note = *input.Note
	}
	if input.Status != nil {
		if !ValidStatus(*input.Status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
			return
		}
		task.Status = *input.Status
	}
	if input.Date != nil {
		date, err := ParseDate(*input.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		task.Date = date
	}
	if input.Priority != nil {
		task.Priority = NormalizePriority(*input.Priority)
	}
	if input.DueDate != nil {
		if *input.DueDate == "" {
			task.DueDate = nil
		} else {
			due, err := ParseDate(*input.DueDate)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			task.DueDate = &due
		}
	}

	if err := DB.Save(&task).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task"})
		return
	}

	c.JSON(http.StatusOK, task.ToDict())
}

// DeleteTask deletes a task from the database.
func DeleteTask(c *gin.Context) {
	id := c.Param("id")
	var task models.Task
	if err := DB.First(&task, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	if err := DB.Delete(&task).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete task"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}
