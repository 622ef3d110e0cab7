package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/DaudiPaul1/Cashpilot-sub000/internal/domain"
)

type analyzeFlags struct {
	fs           *flag.FlagSet
	transactions *string
	orders       *string
	pretty       *bool
}

func newAnalyzeFlags() analyzeFlags {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	return analyzeFlags{
		fs:           fs,
		transactions: fs.String("transactions", "", "Path to a JSON array of transactions"),
		orders:       fs.String("orders", "", "Path to a JSON array of platform orders (optional)"),
		pretty:       fs.Bool("pretty", false, "Indent the JSON output"),
	}
}

// loadTransactions maps a persisted JSON array into the Transaction shape
// the core consumes. Mapping rows is the caller's responsibility by
// contract; for this CLI the caller is us.
func loadTransactions(path string) ([]domain.Transaction, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loadTransactions: %w", err)
	}
	var txs []domain.Transaction
	if err := json.Unmarshal(data, &txs); err != nil {
		return nil, fmt.Errorf("loadTransactions: parse %s: %w", path, err)
	}
	return txs, nil
}

func loadOrders(path string) ([]domain.Order, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loadOrders: %w", err)
	}
	var orders []domain.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		return nil, fmt.Errorf("loadOrders: parse %s: %w", path, err)
	}
	return orders, nil
}
