package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/google/uuid"

	"github.com/AbhimanyuAhuja12/saleslog-cli/internal/config"
	"github.com/AbhimanyuAhuja12/saleslog-cli/internal/models"
)

const defaultBaseURL = "http://localhost:8080/api"

// ErrTransport covers network failures and non-2xx responses. The error body
// of a failed response is carried in the message but never parsed.
var ErrTransport = errors.New("transport failure")

// ErrMalformed covers responses that were 2xx but could not be decoded into
// the expected shape.
var ErrMalformed = errors.New("malformed response")

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a new API client. The base URL comes from the
// API_BASE_URL environment variable, then the config file, then the default.
func NewClient() *Client {
	baseURL := os.Getenv("API_BASE_URL")
	if baseURL == "" {
		if cfg, err := config.LoadConfig(); err == nil && cfg.APIBaseURL != "" {
			baseURL = cfg.APIBaseURL
		}
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{},
	}
}

// makeRequest makes an HTTP request and returns the response body
func (c *Client) makeRequest(method, endpoint string, body interface{}) ([]byte, error) {
	url := c.BaseURL + endpoint

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response body: %v", ErrTransport, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d: %s", ErrTransport, resp.StatusCode, string(respBody))
	}

	return respBody, nil
}

// decodeTaskList normalizes the two accepted shapes of GET /tasks, a bare
// JSON array or an envelope object with a "tasks" key, into one slice.
func decodeTaskList(data []byte) ([]models.Task, error) {
	var tasks []models.Task
	if err := json.Unmarshal(data, &tasks); err == nil {
		return tasks, nil
	}

	var envelope models.TaskListResponse
	if err := json.Unmarshal(data, &envelope); err == nil && envelope.Tasks != nil {
		return envelope.Tasks, nil
	}

	return nil, fmt.Errorf("%w: expected a task array or {\"tasks\": [...]}", ErrMalformed)
}

// ListTasks fetches the full task collection.
func (c *Client) ListTasks() ([]models.Task, error) {
	respBody, err := c.makeRequest("GET", "/tasks", nil)
	if err != nil {
		return nil, err
	}
	return decodeTaskList(respBody)
}

// CreateTask submits a draft. The server assigns the ID.
func (c *Client) CreateTask(draft models.Draft) (*models.Task, error) {
	respBody, err := c.makeRequest("POST", "/tasks", draft)
	if err != nil {
		return nil, err
	}

	var task models.Task
	if err := json.Unmarshal(respBody, &task); err != nil {
		return nil, fmt.Errorf("%w: failed to unmarshal created task: %v", ErrMalformed, err)
	}

	return &task, nil
}

// UpdateTask merges only the given fields into the task server-side.
// Callers pass exactly the fields they mean to change.
func (c *Client) UpdateTask(id uuid.UUID, fields map[string]interface{}) error {
	_, err := c.makeRequest("PUT", "/tasks/"+id.String(), fields)
	return err
}

// DeleteTask removes the task.
func (c *Client) DeleteTask(id uuid.UUID) error {
	_, err := c.makeRequest("DELETE", "/tasks/"+id.String(), nil)
	return err
}
