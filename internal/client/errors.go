package client

import (
	"errors"
	"fmt"
)

// Ошибки классификации HTTP-статусов.
var (
	// ErrAuth — токен невалиден или истёк (401/403).
	ErrAuth = errors.New("authentication failed")

	// ErrNotFound — ресурс не найден (404), обычно неверный group id.
	ErrNotFound = errors.New("resource not found")
)

// RequestError — ошибка HTTP-запроса к management API.
type RequestError struct {
	Endpoint   string // путь эндпоинта
	StatusCode int    // HTTP-статус; 0 при сетевом сбое
	Message    string // короткое описание для оператора
	Err        error  // базовая ошибка, если есть
}

// Error реализует интерфейс error.
func (e *RequestError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("GET %s: HTTP %d: %s", e.Endpoint, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("GET %s: %s", e.Endpoint, e.Message)
}

// Unwrap возвращает базовую ошибку.
func (e *RequestError) Unwrap() error {
	return e.Err
}
