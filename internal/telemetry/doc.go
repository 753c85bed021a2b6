// Package telemetry обеспечивает наблюдаемость инструмента.
//
// Включает structured logging через slog: единый формат лог-записей,
// уровень и формат задаются переменными LOG_LEVEL и LOG_FORMAT.
// Логи пишутся в stderr, чтобы не смешиваться с отчётами в stdout.
package telemetry
