package report

import (
	"strconv"
	"strings"
)

// GroupDetail строит детальный отчёт по одной группе. Четыре секции
// запрашиваются последовательно, порядок фиксирован: Sources,
// Destinations, Pipelines, Routes. Сбой одной секции выводится
// строкой ошибки внутри неё и не прерывает остальные. Пустая секция
// выводит "no items configured.", заголовок не опускается.
func GroupDetail(api API, groupID string) string {
	var b strings.Builder
	writeHeader(&b, "GROUP DETAILS: "+groupID)

	writeSubheader(&b, "Sources")
	if inputs, err := api.ListInputs(groupID); err != nil {
		writeSectionError(&b, err)
	} else if len(inputs) == 0 {
		writeLine(&b, 6, "no items configured.")
	} else {
		rows := make([][]string, len(inputs))
		for i, in := range inputs {
			rows[i] = []string{in.ID, in.Type, statusLabel(in.Disabled), in.Endpoint()}
		}
		writeTable(&b, 6, []string{"ID", "TYPE", "STATUS", "PORT/HOST"}, rows)
	}

	writeSubheader(&b, "Destinations")
	if outputs, err := api.ListOutputs(groupID); err != nil {
		writeSectionError(&b, err)
	} else if len(outputs) == 0 {
		writeLine(&b, 6, "no items configured.")
	} else {
		rows := make([][]string, len(outputs))
		for i, out := range outputs {
			rows[i] = []string{out.ID, out.Type, statusLabel(out.Disabled), valueOr(out.Pipeline, "-")}
		}
		writeTable(&b, 6, []string{"ID", "TYPE", "STATUS", "PIPELINE"}, rows)
	}

	writeSubheader(&b, "Pipelines")
	if pipelines, err := api.ListPipelines(groupID); err != nil {
		writeSectionError(&b, err)
	} else if len(pipelines) == 0 {
		writeLine(&b, 6, "no items configured.")
	} else {
		rows := make([][]string, len(pipelines))
		for i, p := range pipelines {
			rows[i] = []string{p.ID, strconv.Itoa(len(p.Conf.Functions)), statusLabel(p.Conf.Disabled)}
		}
		writeTable(&b, 6, []string{"ID", "FUNCTIONS", "STATUS"}, rows)
	}

	writeSubheader(&b, "Routes")
	if rules, err := api.ListRoutes(groupID); err != nil {
		writeSectionError(&b, err)
	} else if len(rules) == 0 {
		writeLine(&b, 6, "no items configured.")
	} else {
		rows := make([][]string, len(rules))
		for i, r := range rules {
			rows[i] = []string{r.DisplayName(), r.FilterExpr(), r.PipelineID(), r.OutputID(), yesNo(r.Final)}
		}
		writeTable(&b, 6, []string{"NAME", "FILTER", "PIPELINE", "OUTPUT", "FINAL"}, rows)
	}

	return b.String()
}
