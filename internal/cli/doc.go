// Package cli реализует интерактивную сессию Fleetview.
//
// # Обзор
//
// Сессия разделена на два слоя:
//
// ## Dispatch
//
// Чистый диспетчер команд: функция (State, команда, аргумент) →
// (State, Result). Не читает терминал и не пишет в него, поэтому
// тестируется без интерактивного ввода. State держит активный клиент
// management API; смена кредов возвращает пустое состояние, и старый
// клиент вместе с токеном отбрасывается.
//
// ## Terminal
//
// Фронтенд: печать меню, чтение команд, запрос базового URL и
// bearer-токена. Токен читается без эха через golang.org/x/term
// и никогда не выводится и не логируется.
package cli
