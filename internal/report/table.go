package report

import (
	"fmt"
	"strings"
	"text/tabwriter"
)

// headerWidth — ширина заголовков разделов.
const headerWidth = 70

// writeHeader выводит заголовок раздела.
func writeHeader(b *strings.Builder, title string) {
	line := strings.Repeat("=", headerWidth)
	b.WriteString("\n" + line + "\n")
	b.WriteString(" " + title + "\n")
	b.WriteString(line + "\n")
}

// writeSubheader выводит заголовок подраздела.
func writeSubheader(b *strings.Builder, title string) {
	b.WriteString("\n  --- " + title + " ---\n")
}

// writeTable выводит таблицу через tabwriter с отступом слева.
func writeTable(b *strings.Builder, indent int, headers []string, rows [][]string) {
	prefix := strings.Repeat(" ", indent)
	tw := tabwriter.NewWriter(b, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, prefix+strings.Join(headers, "\t"))

	dashes := make([]string, len(headers))
	for i, h := range headers {
		dashes[i] = strings.Repeat("-", len(h))
	}
	fmt.Fprintln(tw, prefix+strings.Join(dashes, "\t"))

	for _, row := range rows {
		fmt.Fprintln(tw, prefix+strings.Join(row, "\t"))
	}

	tw.Flush()
}

// writeLine выводит одну строку с отступом.
func writeLine(b *strings.Builder, indent int, line string) {
	b.WriteString(strings.Repeat(" ", indent) + line + "\n")
}

// writeSectionError выводит строку ошибки секции.
func writeSectionError(b *strings.Builder, err error) {
	writeLine(b, 6, "! error: "+err.Error())
}

// statusLabel переводит флаг disabled в подпись статуса.
func statusLabel(disabled bool) string {
	if disabled {
		return "disabled"
	}
	return "enabled"
}

// yesNo переводит булево в yes/no.
func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

// valueOr возвращает s либо заглушку, если s пустая.
func valueOr(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// center выравнивает s по центру поля заданной ширины.
func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	right := width - len(s) - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}
