// Package client реализует HTTP-клиент для management API платформы.
//
// # Обзор
//
// Клиент выполняет только чтение: шесть GET-эндпоинтов, возвращающих
// конфигурацию топологии — группы воркеров, воркеры, источники,
// назначения, pipelines и маршруты. Каждый запрос авторизуется
// bearer-токеном, заданным при создании клиента.
//
//	c := client.New("https://instance.example.cloud", token)
//	groups, err := c.ListGroups()
//
// # Формат ответов
//
// API оборачивает списки в конверт {"items": [...]}. Клиент снимает
// конверт и возвращает типизированный срез. Отсутствующее или null
// поле items трактуется как пустой список, не как ошибка.
//
// # Ошибки
//
// Любой сбой — сетевой или HTTP — возвращается как *RequestError
// с кодом статуса (если есть). 401/403 дополнительно оборачивают
// ErrAuth, 404 — ErrNotFound, чтобы вызывающий мог классифицировать
// ошибку через errors.Is. Повторных попыток нет: каждый сбой
// терминален для своего шага отчёта.
package client
