package client

import (
	"fmt"
	"strconv"
	"strings"
)

// --- Response types ---

// Group — группа воркеров (fleet).
type Group struct {
	ID            string `json:"id"`
	Name          string `json:"name,omitempty"`
	Product       string `json:"product,omitempty"`
	WorkerCount   int    `json:"workerCount,omitempty"`
	ConfigVersion string `json:"configVersion,omitempty"`
}

// DisplayName возвращает имя группы, либо ID если имя не задано.
func (g Group) DisplayName() string {
	if g.Name != "" {
		return g.Name
	}
	return g.ID
}

// ProductType возвращает тип продукта, по умолчанию "stream".
func (g Group) ProductType() string {
	if g.Product != "" {
		return g.Product
	}
	return "stream"
}

// Worker — процесс-воркер, принадлежащий группе.
//
// API отдаёт воркеров в двух вариантах: плоские поля hostname/status
// либо вложенный объект info плюс флаг connected. Плоское поле имеет
// приоритет, вложенное — запасной вариант.
type Worker struct {
	ID        string     `json:"id"`
	Group     string     `json:"group"`
	Hostname  string     `json:"hostname,omitempty"`
	Status    string     `json:"status,omitempty"`
	Connected bool       `json:"connected,omitempty"`
	Info      WorkerInfo `json:"info,omitempty"`
}

// WorkerInfo — вложенные сведения о воркере.
type WorkerInfo struct {
	Hostname string     `json:"hostname,omitempty"`
	Version  string     `json:"version,omitempty"`
	Cribl    CriblInfo  `json:"cribl,omitempty"`
	Host     WorkerHost `json:"host,omitempty"`
}

// CriblInfo — сведения о версии платформы на воркере. API вкладывает
// версию как info.cribl.version.
type CriblInfo struct {
	Version string `json:"version,omitempty"`
}

// WorkerHost — сетевые сведения хоста воркера.
type WorkerHost struct {
	IP string `json:"ip,omitempty"`
}

// DisplayHostname возвращает hostname воркера с учётом запасных полей.
func (w Worker) DisplayHostname() string {
	if w.Hostname != "" {
		return w.Hostname
	}
	if w.Info.Hostname != "" {
		return w.Info.Hostname
	}
	return w.ID
}

// DisplayStatus возвращает статус воркера. Если явный статус не задан,
// выводится из флага connected.
func (w Worker) DisplayStatus() string {
	if w.Status != "" {
		return w.Status
	}
	if w.Connected {
		return "online"
	}
	return "offline"
}

// DisplayVersion возвращает версию платформы на воркере. Плоское поле
// info.version имеет приоритет, вложенное info.cribl.version —
// запасной вариант.
func (w Worker) DisplayVersion() string {
	if w.Info.Version != "" {
		return w.Info.Version
	}
	return w.Info.Cribl.Version
}

// Online сообщает, в сети ли воркер: флаг connected либо явный
// статус "online" без учёта регистра.
func (w Worker) Online() bool {
	return w.Connected || strings.EqualFold(w.Status, "online")
}

// Input — источник данных, привязанный к группе.
type Input struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Disabled    bool   `json:"disabled,omitempty"`
	Port        int    `json:"port,omitempty"`
	Host        string `json:"host,omitempty"`
	Description string `json:"description,omitempty"`
}

// Endpoint возвращает порт/хост источника для отображения.
func (i Input) Endpoint() string {
	switch {
	case i.Host != "" && i.Port != 0:
		return fmt.Sprintf("%s:%d", i.Host, i.Port)
	case i.Port != 0:
		return strconv.Itoa(i.Port)
	case i.Host != "":
		return i.Host
	}
	return "-"
}

// Output — назначение данных, привязанное к группе.
type Output struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Disabled    bool   `json:"disabled,omitempty"`
	Pipeline    string `json:"pipeline,omitempty"`
	Description string `json:"description,omitempty"`
}

// Pipeline — конвейер обработки внутри группы.
type Pipeline struct {
	ID   string       `json:"id"`
	Conf PipelineConf `json:"conf,omitempty"`
}

// PipelineConf — конфигурация pipeline.
type PipelineConf struct {
	Description string        `json:"description,omitempty"`
	Disabled    bool          `json:"disabled,omitempty"`
	Functions   []FunctionRef `json:"functions,omitempty"`
}

// FunctionRef — ссылка на функцию обработки в pipeline.
type FunctionRef struct {
	ID string `json:"id"`
}

// routeTable — таблица маршрутов, как её отдаёт API:
// один объект с упорядоченным массивом правил.
type routeTable struct {
	ID     string      `json:"id"`
	Routes []RouteRule `json:"routes"`
}

// RouteRule — одно правило маршрутизации. Порядок правил значим:
// платформа применяет их по принципу первого совпадения.
type RouteRule struct {
	ID          string `json:"id"`
	Name        string `json:"name,omitempty"`
	Filter      string `json:"filter,omitempty"`
	Pipeline    string `json:"pipeline,omitempty"`
	Output      string `json:"output,omitempty"`
	Disabled    bool   `json:"disabled,omitempty"`
	Final       bool   `json:"final,omitempty"`
	Description string `json:"description,omitempty"`
}

// DisplayName возвращает имя правила, либо ID если имя не задано.
func (r RouteRule) DisplayName() string {
	if r.Name != "" {
		return r.Name
	}
	return r.ID
}

// FilterExpr возвращает фильтр правила, по умолчанию "*".
func (r RouteRule) FilterExpr() string {
	if r.Filter != "" {
		return r.Filter
	}
	return "*"
}

// PipelineID возвращает pipeline правила, по умолчанию "passthru".
func (r RouteRule) PipelineID() string {
	if r.Pipeline != "" {
		return r.Pipeline
	}
	return "passthru"
}

// OutputID возвращает назначение правила, по умолчанию "default".
func (r RouteRule) OutputID() string {
	if r.Output != "" {
		return r.Output
	}
	return "default"
}
