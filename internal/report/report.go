package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shaiso/Fleetview/internal/client"
)

// API — операции management API, нужные отчётам. Клиент передаётся
// явным параметром; пакет не держит глобального состояния.
type API interface {
	ListGroups() ([]client.Group, error)
	ListWorkers() ([]client.Worker, error)
	ListInputs(groupID string) ([]client.Input, error)
	ListOutputs(groupID string) ([]client.Output, error)
	ListPipelines(groupID string) ([]client.Pipeline, error)
	ListRoutes(groupID string) ([]client.RouteRule, error)
}

// GroupsAndWorkers строит отчёт по группам и воркерам. Воркеры
// группируются по group id; воркеры с неизвестной группой выводятся
// один раз в бакете "unassigned". Сбой любого из двух глобальных
// списков фатален для отчёта.
func GroupsAndWorkers(api API) (string, error) {
	groups, err := api.ListGroups()
	if err != nil {
		return "", fmt.Errorf("failed to fetch groups: %w", err)
	}
	workers, err := api.ListWorkers()
	if err != nil {
		return "", fmt.Errorf("failed to fetch workers: %w", err)
	}

	known := make(map[string]bool, len(groups))
	for _, g := range groups {
		known[g.ID] = true
	}

	byGroup := make(map[string][]client.Worker)
	var unassigned []client.Worker
	for _, w := range workers {
		if known[w.Group] {
			byGroup[w.Group] = append(byGroup[w.Group], w)
		} else {
			unassigned = append(unassigned, w)
		}
	}

	var b strings.Builder
	writeHeader(&b, "WORKER GROUPS")

	rows := make([][]string, len(groups))
	for i, g := range groups {
		rows[i] = []string{
			g.ID,
			g.DisplayName(),
			g.ProductType(),
			strconv.Itoa(len(byGroup[g.ID])),
			valueOr(g.ConfigVersion, "-"),
		}
	}
	b.WriteString("\n")
	writeTable(&b, 4, []string{"ID", "NAME", "PRODUCT", "WORKERS", "CONFIG VER"}, rows)

	for _, g := range groups {
		gw := byGroup[g.ID]
		writeSubheader(&b, fmt.Sprintf("Group: %s (%d workers)", g.DisplayName(), len(gw)))
		if len(gw) == 0 {
			writeLine(&b, 6, "no workers in this group.")
			continue
		}
		writeWorkerTable(&b, gw)
	}

	if len(unassigned) > 0 {
		writeSubheader(&b, fmt.Sprintf("Unassigned workers (%d)", len(unassigned)))
		writeWorkerTable(&b, unassigned)
	}

	return b.String(), nil
}

func writeWorkerTable(b *strings.Builder, workers []client.Worker) {
	rows := make([][]string, len(workers))
	for i, w := range workers {
		rows[i] = []string{
			w.DisplayHostname(),
			w.DisplayStatus(),
			valueOr(w.DisplayVersion(), "-"),
			valueOr(w.Info.Host.IP, "-"),
		}
	}
	writeTable(b, 6, []string{"HOSTNAME", "STATUS", "VERSION", "IP"}, rows)
}

// Summary строит сводку по всему окружению: счётчики групп, воркеров
// и сумм по четырём ресурсам каждой группы, плюс обзорная диаграмма
// потока данных. Сбой ресурса группы выводится отдельной строкой,
// остальные счётчики всё равно собираются.
func Summary(api API) (string, error) {
	groups, err := api.ListGroups()
	if err != nil {
		return "", fmt.Errorf("failed to fetch groups: %w", err)
	}
	workers, err := api.ListWorkers()
	if err != nil {
		return "", fmt.Errorf("failed to fetch workers: %w", err)
	}

	var totalInputs, totalOutputs, totalPipelines, totalRoutes int
	var notes []string

	for _, g := range groups {
		if inputs, err := api.ListInputs(g.ID); err != nil {
			notes = append(notes, fmt.Sprintf("group %s: sources: %v", g.ID, err))
		} else {
			totalInputs += len(inputs)
		}
		if outputs, err := api.ListOutputs(g.ID); err != nil {
			notes = append(notes, fmt.Sprintf("group %s: destinations: %v", g.ID, err))
		} else {
			totalOutputs += len(outputs)
		}
		if pipelines, err := api.ListPipelines(g.ID); err != nil {
			notes = append(notes, fmt.Sprintf("group %s: pipelines: %v", g.ID, err))
		} else {
			totalPipelines += len(pipelines)
		}
		if rules, err := api.ListRoutes(g.ID); err != nil {
			notes = append(notes, fmt.Sprintf("group %s: routes: %v", g.ID, err))
		} else {
			totalRoutes += len(rules)
		}
	}

	online := 0
	for _, w := range workers {
		if w.Online() {
			online++
		}
	}

	var b strings.Builder
	writeHeader(&b, "ENVIRONMENT SUMMARY")
	b.WriteString("\n")
	writeLine(&b, 4, fmt.Sprintf("Worker Groups:   %d", len(groups)))
	writeLine(&b, 4, fmt.Sprintf("Workers:         %d (%d online)", len(workers), online))
	writeLine(&b, 4, fmt.Sprintf("Sources:         %d", totalInputs))
	writeLine(&b, 4, fmt.Sprintf("Destinations:    %d", totalOutputs))
	writeLine(&b, 4, fmt.Sprintf("Pipelines:       %d", totalPipelines))
	writeLine(&b, 4, fmt.Sprintf("Routes:          %d", totalRoutes))
	b.WriteString("\n")
	writeOverviewBoxes(&b, totalInputs, totalRoutes, totalPipelines, totalOutputs)

	for _, n := range notes {
		writeLine(&b, 4, "! "+n)
	}

	return b.String(), nil
}

// writeOverviewBoxes рисует обзорную цепочку потока данных.
func writeOverviewBoxes(b *strings.Builder, sources, routes, pipelines, outputs int) {
	writeLine(b, 4, "+-------------+    +-------------+    +-------------+    +--------------+")
	writeLine(b, 4, "|   SOURCES   | => |   ROUTES    | => |  PIPELINES  | => | DESTINATIONS |")
	writeLine(b, 4, fmt.Sprintf("| %s | => | %s | => | %s | => | %s |",
		center(strconv.Itoa(sources), 11),
		center(strconv.Itoa(routes), 11),
		center(strconv.Itoa(pipelines), 11),
		center(strconv.Itoa(outputs), 12)))
	writeLine(b, 4, "+-------------+    +-------------+    +-------------+    +--------------+")
}
