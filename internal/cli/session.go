package cli

import (
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/shaiso/Fleetview/internal/report"
	"github.com/shaiso/Fleetview/internal/telemetry"
)

// Команды меню.
const (
	CmdSummary = "1"
	CmdGroups  = "2"
	CmdDetail  = "3"
	CmdDiagram = "4"
	CmdCreds   = "5"
	CmdQuit    = "q"
)

// State — состояние сессии: активный клиент management API.
// Смена кредов сбрасывает клиент; новый создаёт вызывающий.
type State struct {
	API report.API
}

// Result — результат одной команды.
type Result struct {
	Output     string // готовый отчёт для stdout
	Err        error  // ошибка действия, если была
	Quit       bool   // оператор завершает работу
	ResetCreds bool   // оператор запросил смену кредов
}

// Dispatch выполняет одну команду меню. Функция чистая относительно
// терминала: ввод и вывод здесь не происходят, только вызовы API
// через состояние и сборка отчёта. Это позволяет тестировать
// диспетчер без интерактивной сессии.
func Dispatch(st State, cmd, arg string) (State, Result) {
	log := telemetry.WithReportID(slog.Default(), uuid.NewString())

	cmd = strings.ToLower(strings.TrimSpace(cmd))
	arg = strings.TrimSpace(arg)

	switch cmd {
	case CmdSummary:
		log.Info("building environment summary")
		out, err := report.Summary(st.API)
		if err != nil {
			log.Error("summary failed", "error", err)
		}
		return st, Result{Output: out, Err: err}

	case CmdGroups:
		log.Info("building groups and workers report")
		out, err := report.GroupsAndWorkers(st.API)
		if err != nil {
			log.Error("groups report failed", "error", err)
		}
		return st, Result{Output: out, Err: err}

	case CmdDetail:
		if arg == "" {
			return st, Result{Output: "group id is required; list groups with option 2 first.\n"}
		}
		log = telemetry.WithGroupID(log, arg)
		log.Info("building group detail report")
		return st, Result{Output: report.GroupDetail(st.API, arg)}

	case CmdDiagram:
		if arg == "" {
			return st, Result{Output: "group id is required; list groups with option 2 first.\n"}
		}
		log = telemetry.WithGroupID(log, arg)
		log.Info("building flow diagram")
		out, err := report.FlowDiagram(st.API, arg)
		if err != nil {
			log.Error("flow diagram failed", "error", err)
		}
		return st, Result{Output: out, Err: err}

	case CmdCreds:
		log.Info("credentials reset requested")
		// Старый клиент отбрасывается вместе с токеном.
		return State{}, Result{ResetCreds: true}

	case CmdQuit, "quit", "exit":
		return st, Result{Quit: true}
	}

	return st, Result{Output: "unknown option, try again.\n"}
}
