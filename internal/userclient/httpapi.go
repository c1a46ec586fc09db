package userclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"

	"quiz-web/internal/pagination"
	"quiz-web/internal/quiz"
)

var ErrServiceUnavailable = errors.New("quiz service unavailable")

type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if strings.TrimSpace(e.Message) == "" {
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	}
	return e.Message
}

// HTTPClient talks to quiz-service. It keeps the session cookie between
// calls, so random play continues across requests.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

type QuizPage struct {
	Quizzes    []quiz.Quiz           `json:"quizzes"`
	Pagination pagination.Pagination `json:"pagination"`
	Search     string                `json:"search"`
}

// RandomStep is either the next quiz of the session or, with NoMore set, the
// end of it.
type RandomStep struct {
	Quiz   Question `json:"quiz"`
	Score  int      `json:"score"`
	NoMore bool     `json:"no_more"`
}

// Question is a quiz as the server shows it before it is answered.
type Question struct {
	ID       int64  `json:"id"`
	Question string `json:"question"`
}

// RandomResult carries the full quiz, so the correct answer is only known
// once the player has checked.
type RandomResult struct {
	Quiz   quiz.Quiz `json:"quiz"`
	Result bool      `json:"result"`
	Score  int       `json:"score"`
	Answer string    `json:"answer"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func NewHTTPClient(baseURL string, httpClient *http.Client) *HTTPClient {
	baseURL = strings.TrimSpace(baseURL)
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		baseURL = defaultServer
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if httpClient.Jar == nil {
		jar, _ := cookiejar.New(nil)
		clone := *httpClient
		clone.Jar = jar
		httpClient = &clone
	}

	return &HTTPClient{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

func (c *HTTPClient) ListQuizzes(ctx context.Context, search string, page int) (QuizPage, error) {
	query := url.Values{}
	if strings.TrimSpace(search) != "" {
		query.Set("search", search)
	}
	if page > 1 {
		query.Set(pagination.PageParam, strconv.Itoa(page))
	}

	path := "/quizzes"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var payload QuizPage
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &payload); err != nil {
		return QuizPage{}, err
	}
	return payload, nil
}

func (c *HTTPClient) RandomPlay(ctx context.Context) (RandomStep, error) {
	var payload RandomStep
	if err := c.doJSON(ctx, http.MethodGet, "/quizzes/randomplay", nil, &payload); err != nil {
		return RandomStep{}, err
	}
	return payload, nil
}

func (c *HTTPClient) RandomCheck(ctx context.Context, quizID int64, answer string) (RandomResult, error) {
	query := url.Values{}
	query.Set("answer", answer)

	var payload RandomResult
	path := "/quizzes/randomcheck/" + strconv.FormatInt(quizID, 10) + "?" + query.Encode()
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &payload); err != nil {
		return RandomResult{}, err
	}
	return payload, nil
}

func (c *HTTPClient) doJSON(ctx context.Context, method, path string, requestBody any, responseBody any) error {
	fullURL := c.baseURL + path

	var body io.Reader
	if requestBody != nil {
		encoded, err := json.Marshal(requestBody)
		if err != nil {
			return err
		}
		body = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return err
	}
	if requestBody != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer response.Body.Close()

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		apiErr := APIError{StatusCode: response.StatusCode}
		var payload errorResponse
		if err := json.NewDecoder(response.Body).Decode(&payload); err == nil && strings.TrimSpace(payload.Error) != "" {
			apiErr.Message = payload.Error
		}
		if apiErr.Message == "" {
			apiErr.Message = response.Status
		}
		return &apiErr
	}

	if responseBody == nil {
		return nil
	}
	return json.NewDecoder(response.Body).Decode(responseBody)
}
