package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/DaudiPaul1/Cashpilot-sub000/internal/domain"
	"github.com/DaudiPaul1/Cashpilot-sub000/internal/insights"
	"github.com/DaudiPaul1/Cashpilot-sub000/internal/logger"
)

func main() {
	log := logger.New()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "analyze":
		runAnalyze(log, section(""))
	case "score":
		runAnalyze(log, section("health"))
	case "risk":
		runAnalyze(log, section("risk"))
	case "strategy":
		runAnalyze(log, section("strategy"))
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Financial Insights CLI")
	fmt.Println("\nUsage:")
	fmt.Println("  insights <command> [options]")
	fmt.Println("\nCommands:")
	fmt.Println("  analyze   Run the full analysis and print the report")
	fmt.Println("  score     Print only the health score section")
	fmt.Println("  risk      Print only the risk assessment section")
	fmt.Println("  strategy  Print only the data-source strategy section")
	fmt.Println("  help      Show this help message")
	fmt.Println("\nRun 'insights <command> -h' for more information on a command.")
}

type section string

func runAnalyze(log zerolog.Logger, pick section) {
	fs := newAnalyzeFlags()
	fs.fs.Parse(os.Args[2:])

	if *fs.transactions == "" {
		log.Fatal().Msg("Error: --transactions is required")
	}

	txs, err := loadTransactions(*fs.transactions)
	if err != nil {
		log.Fatal().Err(err).Msg("Loading transactions failed")
	}

	var orders []domain.Order
	if *fs.orders != "" {
		orders, err = loadOrders(*fs.orders)
		if err != nil {
			log.Fatal().Err(err).Msg("Loading orders failed")
		}
	}

	report := insights.NewAnalyzer(log).Analyze(txs, orders)

	var out any = report
	switch pick {
	case "health":
		out = report.Health
	case "risk":
		out = report.Risk
	case "strategy":
		out = report.Strategy
	}

	if err := printJSON(out, *fs.pretty); err != nil {
		log.Fatal().Err(err).Msg("Encoding report failed")
	}
}

func printJSON(v any, pretty bool) error {
	enc := json.NewEncoder(os.Stdout)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
