// Fleetview — интерактивный обзор топологии log-платформы:
// группы воркеров, воркеры, источники, назначения, pipelines,
// маршруты и диаграммы потока данных через management API.
//
// Использование:
//
//	fleetview
//
// Креды (базовый URL и bearer-токен) запрашиваются при запуске;
// токен читается скрыто и нигде не сохраняется.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shaiso/Fleetview/internal/cli"
	"github.com/shaiso/Fleetview/internal/telemetry"
)

// version задаётся через ldflags при сборке.
var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:           "fleetview",
		Short:         "Fleetview — log platform topology explorer",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			telemetry.SetupLogger()
			return cli.NewTerminal().Run()
		},
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
