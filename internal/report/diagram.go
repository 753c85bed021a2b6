package report

import (
	"fmt"
	"strings"
)

// FlowDiagram строит ASCII-диаграмму потока данных группы по её
// правилам маршрутизации: одна строка-ребро на правило, в исходном
// порядке. Одинаковые правила выводятся отдельными строками —
// диаграмма отражает конфигурацию как есть, включая дублирование.
func FlowDiagram(api API, groupID string) (string, error) {
	rules, err := api.ListRoutes(groupID)
	if err != nil {
		return "", fmt.Errorf("failed to fetch routes: %w", err)
	}

	var b strings.Builder
	writeHeader(&b, "DATA FLOW: "+groupID)

	if len(rules) == 0 {
		writeLine(&b, 4, "no routes configured.")
		return b.String(), nil
	}

	b.WriteString("\n")
	for _, r := range rules {
		line := fmt.Sprintf("[%s] --(%s)--> [%s]", r.DisplayName(), r.FilterExpr(), r.OutputID())
		if r.Disabled {
			line += "  (disabled)"
		}
		writeLine(&b, 4, line)
	}

	return b.String(), nil
}
