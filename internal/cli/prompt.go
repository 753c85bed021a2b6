package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/shaiso/Fleetview/internal/client"
)

// Terminal — интерактивный фронтенд: меню, чтение команд и кредов.
// Вся логика действий живёт в Dispatch; терминал только собирает
// ввод и печатает вывод.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
}

// NewTerminal создаёт терминал на stdin/stdout.
func NewTerminal() *Terminal {
	return &Terminal{
		in:  bufio.NewReader(os.Stdin),
		out: os.Stdout,
	}
}

// Run запускает сессию: запрос кредов, затем цикл меню. Смена кредов
// возвращает к запросу с новым клиентом; старый клиент и его токен
// больше не используются.
func (t *Terminal) Run() error {
	for {
		baseURL, token, err := t.promptCredentials()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		st := State{API: client.New(baseURL, token)}

		quit, err := t.loop(st)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

// loop крутит цикл меню до выхода или смены кредов.
// Возвращает true при выходе.
func (t *Terminal) loop(st State) (bool, error) {
	for {
		t.printMenu()

		cmd, err := t.readLine("select option: ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return true, nil
			}
			return false, err
		}

		var arg string
		c := strings.ToLower(strings.TrimSpace(cmd))
		if c == CmdDetail || c == CmdDiagram {
			arg, err = t.readLine("group id: ")
			if err != nil {
				if errors.Is(err, io.EOF) {
					return true, nil
				}
				return false, err
			}
		}

		var res Result
		st, res = Dispatch(st, c, arg)

		if res.Output != "" {
			fmt.Fprint(t.out, res.Output)
		}
		if res.Err != nil {
			fmt.Fprintln(t.out, "error: "+res.Err.Error())
		}
		if res.Quit {
			fmt.Fprintln(t.out, "bye.")
			return true, nil
		}
		if res.ResetCreds {
			return false, nil
		}
	}
}

func (t *Terminal) printMenu() {
	fmt.Fprint(t.out, `
--------------------------------------------------
    MENU
--------------------------------------------------
    1. Environment summary
    2. Worker groups and workers
    3. Group details (sources, destinations, pipelines, routes)
    4. Data flow diagram
    5. Change credentials
    Q. Quit
--------------------------------------------------
`)
}

// promptCredentials запрашивает базовый URL и bearer-токен.
// Токен читается без эха и нигде не печатается и не логируется.
func (t *Terminal) promptCredentials() (string, string, error) {
	var baseURL string
	for {
		u, err := t.readLine("base URL (https://...): ")
		if err != nil {
			return "", "", err
		}
		u = strings.TrimSpace(u)
		if u == "" {
			fmt.Fprintln(t.out, "URL cannot be empty.")
			continue
		}
		if !strings.HasPrefix(u, "http://") && !strings.HasPrefix(u, "https://") {
			fmt.Fprintln(t.out, "URL must start with http:// or https://")
			continue
		}
		baseURL = u
		break
	}

	for {
		token, err := t.readToken("bearer token (hidden): ")
		if err != nil {
			return "", "", err
		}
		if token == "" {
			fmt.Fprintln(t.out, "token cannot be empty.")
			continue
		}
		return baseURL, token, nil
	}
}

func (t *Terminal) readLine(prompt string) (string, error) {
	fmt.Fprint(t.out, prompt)
	line, err := t.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (t *Terminal) readToken(prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		// stdin не терминал (pipe в тестах и скриптах) — обычная строка.
		return t.readLine(prompt)
	}

	fmt.Fprint(t.out, prompt)
	b, err := term.ReadPassword(fd)
	fmt.Fprintln(t.out)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}
