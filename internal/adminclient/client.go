package adminclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/navalnorth/back-chillz/internal/quiz"
)

// APIError carries the status and message of a non-2xx server response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("server returned status %d: %s", e.StatusCode, e.Message)
}

type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

func NewHTTPClient(baseURL string, httpClient *http.Client) *HTTPClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// LoggedIn reports whether a bearer token is held from a previous Login.
func (c *HTTPClient) LoggedIn() bool {
	return c.token != ""
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) error {
	var response struct {
		Token string `json:"token"`
	}
	err := c.doJSON(ctx, http.MethodPost, "/api/users/login", map[string]string{
		"username": username,
		"password": password,
	}, &response)
	if err != nil {
		return err
	}

	c.token = response.Token
	return nil
}

func (c *HTTPClient) ListQuizzes(ctx context.Context) ([]quiz.Quiz, error) {
	var quizzes []quiz.Quiz
	if err := c.doJSON(ctx, http.MethodGet, "/quiz", nil, &quizzes); err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (c *HTTPClient) ListAvailable(ctx context.Context) ([]quiz.Quiz, error) {
	var quizzes []quiz.Quiz
	if err := c.doJSON(ctx, http.MethodGet, "/quiz/dispo/all", nil, &quizzes); err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (c *HTTPClient) SetAvailability(ctx context.Context, quizID int64, dispo int) error {
	body := []quiz.AvailabilityChange{{QuizID: quizID, Dispo: dispo}}
	return c.doJSON(ctx, http.MethodPut, "/quiz/update", body, nil)
}

// CheckUser returns the user's unanswered quizzes, or the server's message
// when every available quiz is already answered.
func (c *HTTPClient) CheckUser(ctx context.Context, username string) ([]quiz.Quiz, string, error) {
	payload, err := c.do(ctx, http.MethodGet, "/quiz/check/"+username, nil)
	if err != nil {
		return nil, "", err
	}

	var quizzes []quiz.Quiz
	if err := json.Unmarshal(payload, &quizzes); err == nil {
		return quizzes, "", nil
	}

	var message struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(payload, &message); err != nil {
		return nil, "", fmt.Errorf("unexpected response shape: %w", err)
	}
	return nil, message.Message, nil
}

func (c *HTTPClient) doJSON(ctx context.Context, method, path string, body, out any) error {
	payload, err := c.do(ctx, method, path, body)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(payload, out)
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var serverMessage struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(payload, &serverMessage) == nil {
			apiErr.Message = serverMessage.Message
		}
		return nil, apiErr
	}

	return payload, nil
}
