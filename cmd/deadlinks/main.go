package main

import (
	"fmt"
	"os"
)

func main() {
	// Коды выхода из cli.Exit обрабатывает сам urfave/cli: 1 — есть битые ссылки, 2 — ошибка
	app := newApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitFatal)
	}
}
