// Package report строит текстовые отчёты о топологии платформы.
//
// # Обзор
//
// Три основных представления плюс сводка:
//   - GroupsAndWorkers — группы воркеров и воркеры, сгруппированные
//     по группам; воркеры с неизвестной группой попадают в бакет
//     "unassigned".
//   - GroupDetail — четыре секции конфигурации группы в фиксированном
//     порядке: Sources, Destinations, Pipelines, Routes.
//   - FlowDiagram — ASCII-диаграмма потока данных по правилам
//     маршрутизации, одна строка на правило в исходном порядке.
//   - Summary — сводка по всему окружению с общими счётчиками.
//
// Все функции принимают клиент явным параметром через узкий интерфейс
// API и возвращают готовые строки; пакет не пишет в stdout.
//
// # Политика ошибок
//
// Сбой глобальных списков (группы, воркеры) фатален для отчёта и
// возвращается как ошибка. Сбой одного ресурса группы изолируется
// на границе своей секции: секция выводит одну строку ошибки,
// остальные секции отчёта строятся дальше.
package report
