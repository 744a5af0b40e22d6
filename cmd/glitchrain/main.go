package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/glitchrain/internal/engine"
	"github.com/san-kum/glitchrain/internal/tui"
)

var (
	benchTicks  int
	benchSeed   int64
	benchWidth  int
	benchHeight int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "glitchrain",
		Short: "glitchy digital rain for your terminal",
		RunE:  runRain,
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "run the engine headless and plot stream population",
		RunE:  runBench,
	}
	benchCmd.Flags().IntVar(&benchTicks, "ticks", 200, "ticks to simulate")
	benchCmd.Flags().Int64Var(&benchSeed, "seed", time.Now().UnixNano(), "random seed")
	benchCmd.Flags().IntVar(&benchWidth, "width", 80, "synthetic terminal width")
	benchCmd.Flags().IntVar(&benchHeight, "height", 24, "synthetic terminal height")

	rootCmd.AddCommand(benchCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// runRain starts the printer goroutine and hands the terminal to Bubble
// Tea. The program quits only after the printer loop has stopped, so raw
// mode is never left behind while draws are still in flight.
func runRain(cmd *cobra.Command, args []string) error {
	size := &tui.TermSize{}
	eng := engine.New(engine.Options{Size: size.Size})
	go eng.Run()

	p := tea.NewProgram(tui.NewModel(eng, size), tea.WithAltScreen())
	_, runErr := p.Run()

	// belt and braces for the signal/error paths; the normal quit path has
	// already joined the printer before tea.Quit fired
	eng.Stop()
	<-eng.Done()

	if runErr != nil {
		return fmt.Errorf("terminal session: %w", runErr)
	}
	return eng.Err()
}

func runBench(cmd *cobra.Command, args []string) error {
	if benchTicks <= 0 {
		return fmt.Errorf("ticks must be positive, got %d", benchTicks)
	}
	eng := engine.New(engine.Options{
		Size: engine.FixedSize(benchWidth, benchHeight),
		Seed: benchSeed,
	})

	pop := make([]float64, benchTicks)
	for i := range pop {
		eng.Tick()
		pop[i] = float64(eng.Population())
	}

	fmt.Printf("bench: %dx%d terminal, seed %d\n\n", benchWidth, benchHeight, benchSeed)
	graph := asciigraph.Plot(pop,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("stream population per tick"),
	)
	fmt.Println(graph)
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TICKS\tSPAWNED\tEVICTED\tPOPULATION")
	fmt.Fprintf(w, "%d\t%d\t%d\t%d\n", benchTicks, eng.Spawned(), eng.Evicted(), eng.Population())
	return w.Flush()
}
