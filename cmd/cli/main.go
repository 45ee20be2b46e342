package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/fatih/color"

	infraexchange "github.com/fintech-ro/bancar/infra/exchange"
	"github.com/fintech-ro/bancar/pkg/config"
	accountsvc "github.com/fintech-ro/bancar/pkg/service/account"
)

func main() {
	argsLen := len(os.Args)
	if argsLen < 2 {
		fmt.Println("Usage: cli <command> [arguments]")
		fmt.Println("Commands:")
		fmt.Println("  demo                                 run a scripted account session")
		fmt.Println("  convert <amount> <ron-to-eur|eur-to-ron>")
		return
	}
	cmd := os.Args[1]

	// The CLI drives an in-process service; keep its internal logging quiet so
	// only the command output reaches the terminal.
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	rates := infraexchange.NewBNR(&config.Exchange{}, logger)
	svc := accountsvc.New(rates, nil, logger)

	switch cmd {
	case "demo":
		runDemo(svc)
	case "convert":
		if argsLen < 4 {
			fmt.Println("Usage: convert <amount> <ron-to-eur|eur-to-ron>")
			return
		}
		amount, err := strconv.ParseFloat(os.Args[2], 64)
		if err != nil {
			color.Red("Invalid amount: %v", err)
			return
		}
		runConvert(svc, amount, os.Args[3])
	default:
		fmt.Println("Unknown command:", cmd)
	}
}

func runDemo(svc *accountsvc.Service) {
	bold := color.New(color.Bold)

	bold.Println("Opening account with 10000.00")
	snap, err := svc.Open(10000)
	if err != nil {
		color.Red("Error opening account: %v", err)
		return
	}
	id := snap.ID
	color.Green("Account created: ID=%s, Balance=%.2f", id, snap.Balance)

	steps := []struct {
		label string
		run   func() (accountsvc.Snapshot, error)
	}{
		{"Depositing 5000.00", func() (accountsvc.Snapshot, error) { return svc.Deposit(id, 5000) }},
		{"Withdrawing 2000.00", func() (accountsvc.Snapshot, error) { return svc.Withdraw(id, 2000) }},
		{"Depositing 3000.00", func() (accountsvc.Snapshot, error) { return svc.Deposit(id, 3000) }},
	}
	for _, step := range steps {
		bold.Println(step.label)
		snap, err = step.run()
		if err != nil {
			color.Red("Error: %v", err)
			return
		}
		color.Green("New balance: %.2f", snap.Balance)
	}

	bold.Println("Transferring 4000.00 to a fresh account")
	dest, err := svc.Open(0)
	if err != nil {
		color.Red("Error opening destination account: %v", err)
		return
	}
	snap, err = svc.Transfer(id, dest.ID, 4000)
	if err != nil {
		color.Red("Error transferring: %v", err)
		return
	}
	destSnap, _ := svc.Balance(dest.ID)
	color.Green("Source balance: %.2f, destination balance: %.2f", snap.Balance, destSnap.Balance)

	report, err := svc.Report(id)
	if err != nil {
		color.Red("Error generating report: %v", err)
		return
	}
	fmt.Println()
	fmt.Print(report)
}

func runConvert(svc *accountsvc.Service, amount float64, direction string) {
	// Conversions are account-scoped, so a throwaway account carries the rate
	// provider for the one-shot calculation.
	snap, err := svc.Open(0)
	if err != nil {
		color.Red("Error: %v", err)
		return
	}

	var converted float64
	switch direction {
	case "ron-to-eur":
		converted, err = svc.ConvertRonToEur(snap.ID, amount)
	case "eur-to-ron":
		converted, err = svc.ConvertEurToRon(snap.ID, amount)
	default:
		fmt.Println("Unknown direction:", direction)
		return
	}
	if err != nil {
		color.Red("Error converting: %v", err)
		return
	}
	color.Green("%.2f %s = %.2f", amount, direction, converted)
}
