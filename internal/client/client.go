package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Пути эндпоинтов management API.
const (
	pathGroups    = "/api/v1/master/groups"
	pathWorkers   = "/api/v1/master/workers"
	pathInputs    = "/api/v1/m/%s/system/inputs"
	pathOutputs   = "/api/v1/m/%s/system/outputs"
	pathPipelines = "/api/v1/m/%s/system/pipelines"
	pathRoutes    = "/api/v1/m/%s/routes"
)

// requestTimeout — таймаут одного HTTP-запроса.
const requestTimeout = 30 * time.Second

// listEnvelope — стандартный конверт списочных ответов API.
type listEnvelope struct {
	Items json.RawMessage `json:"items"`
}

// Client — клиент management API. Базовый URL и токен фиксируются
// при создании; смена кредов требует нового экземпляра.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// New создаёт клиент для management API. Завершающий слэш
// базового URL отбрасывается.
func New(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// ListGroups возвращает все группы воркеров.
func (c *Client) ListGroups() ([]Group, error) {
	var groups []Group
	err := c.list(pathGroups, &groups)
	return groups, err
}

// ListWorkers возвращает всех воркеров по всем группам.
func (c *Client) ListWorkers() ([]Worker, error) {
	var workers []Worker
	err := c.list(pathWorkers, &workers)
	return workers, err
}

// ListInputs возвращает источники данных группы.
func (c *Client) ListInputs(groupID string) ([]Input, error) {
	var inputs []Input
	err := c.list(fmt.Sprintf(pathInputs, groupID), &inputs)
	return inputs, err
}

// ListOutputs возвращает назначения данных группы.
func (c *Client) ListOutputs(groupID string) ([]Output, error) {
	var outputs []Output
	err := c.list(fmt.Sprintf(pathOutputs, groupID), &outputs)
	return outputs, err
}

// ListPipelines возвращает pipelines группы.
func (c *Client) ListPipelines(groupID string) ([]Pipeline, error) {
	var pipelines []Pipeline
	err := c.list(fmt.Sprintf(pathPipelines, groupID), &pipelines)
	return pipelines, err
}

// ListRoutes возвращает правила маршрутизации группы в порядке
// применения. API отдаёт таблицы маршрутов; правила разворачиваются
// в единый срез с сохранением исходного порядка.
func (c *Client) ListRoutes(groupID string) ([]RouteRule, error) {
	var tables []routeTable
	if err := c.list(fmt.Sprintf(pathRoutes, groupID), &tables); err != nil {
		return nil, err
	}

	var rules []RouteRule
	for _, t := range tables {
		rules = append(rules, t.Routes...)
	}
	return rules, nil
}

// --- HTTP helpers ---

// list выполняет GET и распаковывает конверт {"items": [...]} в result.
func (c *Client) list(path string, result any) error {
	req, err := http.NewRequest(http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return &RequestError{Endpoint: path, Message: "failed to create request", Err: err}
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &RequestError{Endpoint: path, Message: "request failed, check the URL and network connection", Err: err}
	}
	defer resp.Body.Close()

	if err := c.checkError(path, resp); err != nil {
		return err
	}

	var env listEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return &RequestError{Endpoint: path, StatusCode: resp.StatusCode, Message: "invalid JSON response", Err: err}
	}

	// Отсутствующее поле items — пустой список.
	if len(env.Items) == 0 || bytes.Equal(env.Items, []byte("null")) {
		return nil
	}

	if err := json.Unmarshal(env.Items, result); err != nil {
		return &RequestError{Endpoint: path, StatusCode: resp.StatusCode, Message: "unexpected items shape", Err: err}
	}
	return nil
}

// checkError классифицирует не-2xx статусы в *RequestError.
func (c *Client) checkError(path string, resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return &RequestError{
			Endpoint:   path,
			StatusCode: resp.StatusCode,
			Message:    "token is invalid or expired, generate a new one in the platform settings",
			Err:        ErrAuth,
		}
	case http.StatusNotFound:
		return &RequestError{
			Endpoint:   path,
			StatusCode: resp.StatusCode,
			Message:    "not found, re-check the group id against the group listing",
			Err:        ErrNotFound,
		}
	}

	msg := strings.TrimSpace(string(readBody(resp.Body)))
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}
	return &RequestError{Endpoint: path, StatusCode: resp.StatusCode, Message: msg}
}

// readBody читает тело ответа с ограничением, чтобы не раздувать
// сообщение об ошибке.
func readBody(r io.Reader) []byte {
	body, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil {
		return nil
	}
	return body
}
