// Command regionview is an interactive terminal viewer for regions.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gogpu/region"
	"github.com/gogpu/region/internal/view"
)

func main() {
	debug := flag.String("debug", "", "write region debug logs to this file")
	flag.Parse()

	if *debug != "" {
		f, err := os.OpenFile(*debug, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		region.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if _, err := tea.NewProgram(view.New(), tea.WithAltScreen()).Run(); err != nil {
		log.Fatal(err)
	}
}
