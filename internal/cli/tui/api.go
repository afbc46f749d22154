package tui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/haskel/mentalload/internal/catalog"
	"github.com/haskel/mentalload/internal/rating"
	"github.com/haskel/mentalload/internal/results"
	"github.com/haskel/mentalload/internal/session"
)

// Messages for tea.Cmd
type sessionMsg struct {
	view *session.View
	err  error
}

type tasksMsg struct {
	view     *session.View
	sections []catalog.Section
	err      error
}

type ratingMsg struct {
	view   *session.View
	taskID string
	err    error
}

type resultsMsg struct {
	view   *session.View
	report *results.Report
	err    error
}

type exportMsg struct {
	path string
	err  error
}

// API client for TUI
type apiClient struct {
	baseURL  string
	client   *http.Client
	user     string
	password string
}

func newAPIClient(cfg Config) *apiClient {
	return &apiClient{
		baseURL: cfg.ServerURL,
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
		user:     cfg.User,
		password: cfg.Password,
	}
}

// send performs one request and returns the raw body of a 2xx answer.
func (c *apiClient) send(method, path string, body any) ([]byte, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequest(method, c.baseURL+path, &buf)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.user != "" && c.password != "" {
		req.SetBasicAuth(c.user, c.password)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 300 {
		var e struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(data, &e) == nil && e.Error != "" {
			return nil, fmt.Errorf("%s (status %d)", e.Error, resp.StatusCode)
		}
		return nil, fmt.Errorf("server returned status %d", resp.StatusCode)
	}

	return data, nil
}

// call performs a request and decodes the JSON answer into out.
func (c *apiClient) call(method, path string, body, out any) error {
	data, err := c.send(method, path, body)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

func sessionPath(id string) string {
	return "/sessions/" + url.PathEscape(id)
}

func (c *apiClient) moveTo(id string, stage session.Stage) (*session.View, error) {
	var view session.View
	err := c.call(http.MethodPost, sessionPath(id)+"/stage", map[string]string{"stage": string(stage)}, &view)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// sections lists the tasks that apply to the session's household.
func (c *apiClient) sections(id string) ([]catalog.Section, error) {
	var tasks struct {
		Sections []catalog.Section `json:"sections"`
	}
	if err := c.call(http.MethodGet, sessionPath(id)+"/tasks", nil, &tasks); err != nil {
		return nil, err
	}
	return tasks.Sections, nil
}

// createSession starts a fresh session on the server.
func createSession(c *apiClient) tea.Cmd {
	return func() tea.Msg {
		var view session.View
		if err := c.call(http.MethodPost, "/sessions", nil, &view); err != nil {
			return sessionMsg{err: err}
		}
		return sessionMsg{view: &view}
	}
}

func moveTo(c *apiClient, id string, stage session.Stage) tea.Cmd {
	return func() tea.Msg {
		view, err := c.moveTo(id, stage)
		return sessionMsg{view: view, err: err}
	}
}

// giveConsent records agreement and moves on to the household setup.
func giveConsent(c *apiClient, id string) tea.Cmd {
	return func() tea.Msg {
		if err := c.call(http.MethodPost, sessionPath(id)+"/consent", map[string]bool{"agreed": true}, nil); err != nil {
			return sessionMsg{err: err}
		}
		view, err := c.moveTo(id, session.StageSetup)
		return sessionMsg{view: view, err: err}
	}
}

// saveHousehold stores the household, enters the questionnaire and loads
// the tasks that apply.
func saveHousehold(c *apiClient, id string, h catalog.Household) tea.Cmd {
	return func() tea.Msg {
		if err := c.call(http.MethodPut, sessionPath(id)+"/household", h, nil); err != nil {
			return tasksMsg{err: err}
		}
		view, err := c.moveTo(id, session.StageQuestionnaire)
		if err != nil {
			return tasksMsg{err: err}
		}

		sections, err := c.sections(id)
		if err != nil {
			return tasksMsg{err: err}
		}
		return tasksMsg{view: view, sections: sections}
	}
}

// reopenQuestionnaire moves back from the results and reloads the tasks.
func reopenQuestionnaire(c *apiClient, id string) tea.Cmd {
	return func() tea.Msg {
		view, err := c.moveTo(id, session.StageQuestionnaire)
		if err != nil {
			return tasksMsg{err: err}
		}
		sections, err := c.sections(id)
		if err != nil {
			return tasksMsg{err: err}
		}
		return tasksMsg{view: view, sections: sections}
	}
}

func saveRating(c *apiClient, id string, in rating.Input) tea.Cmd {
	return func() tea.Msg {
		body := map[string]any{
			"responsibility": in.Responsibility,
			"burden":         in.Burden,
			"fairness":       in.Fairness,
			"not_applicable": in.NotApplicable,
		}
		var view session.View
		path := sessionPath(id) + "/ratings/" + url.PathEscape(in.TaskID)
		if err := c.call(http.MethodPut, path, body, &view); err != nil {
			return ratingMsg{taskID: in.TaskID, err: err}
		}
		return ratingMsg{view: &view, taskID: in.TaskID}
	}
}

// showResults enters the results stage and fetches the report.
func showResults(c *apiClient, id string) tea.Cmd {
	return func() tea.Msg {
		view, err := c.moveTo(id, session.StageResults)
		if err != nil {
			return resultsMsg{err: err}
		}

		var report results.Report
		if err := c.call(http.MethodGet, sessionPath(id)+"/results", nil, &report); err != nil {
			return resultsMsg{err: err}
		}
		return resultsMsg{view: view, report: &report}
	}
}

func exportCSV(c *apiClient, id, path string) tea.Cmd {
	return func() tea.Msg {
		data, err := c.send(http.MethodGet, sessionPath(id)+"/export", nil)
		if err != nil {
			return exportMsg{err: err}
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return exportMsg{err: fmt.Errorf("failed to save export: %w", err)}
		}
		return exportMsg{path: path}
	}
}
