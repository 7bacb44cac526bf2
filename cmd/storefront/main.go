package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - show:  Print a storefront grouped by category
// - order: Compose a WhatsApp order for a cart and log it

const defaultAPIURL = "http://localhost:8080"

type cliFlags struct {
	Show  showFlags
	Order orderFlags
}

type showFlags struct {
	cmd      *flag.FlagSet
	api      *string
	slug     *string
	currency *string
}

type orderFlags struct {
	cmd       *flag.FlagSet
	api       *string
	slug      *string
	items     cartItems
	name      *string
	phone     *string
	note      *string
	currency  *string
	signature *string
}

func main() {
	showCmd := flag.NewFlagSet("show", flag.ExitOnError)
	orderCmd := flag.NewFlagSet("order", flag.ExitOnError)

	flags := cliFlags{
		Show: showFlags{
			cmd:      showCmd,
			api:      showCmd.String("api", defaultAPIURL, "Catalog API base URL"),
			slug:     showCmd.String("slug", "", "Storefront slug"),
			currency: showCmd.String("currency", "", "Currency symbol (default from the composer)"),
		},
		Order: orderFlags{
			cmd:       orderCmd,
			api:       orderCmd.String("api", defaultAPIURL, "Catalog API base URL"),
			slug:      orderCmd.String("slug", "", "Storefront slug"),
			name:      orderCmd.String("name", "", "Customer name"),
			phone:     orderCmd.String("phone", "", "Customer phone"),
			note:      orderCmd.String("note", "", "Delivery address or instructions"),
			currency:  orderCmd.String("currency", "", "Currency symbol (default from the composer)"),
			signature: orderCmd.String("signature", "", "Message signature line"),
		},
	}
	orderCmd.Var(&flags.Order.items, "item", "Cart line as productID=quantity, repeatable")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runSubcommand(ctx context.Context, flags *cliFlags) error {
	switch os.Args[1] {
	case "show":
		return handleShow(ctx, flags)
	case "order":
		return handleOrder(ctx, flags)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func handleShow(ctx context.Context, flags *cliFlags) error {
	if err := flags.Show.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse show flags")
	}
	if *flags.Show.slug == "" {
		return errors.New("-slug is required")
	}

	return runShow(ctx, os.Stdout, &flags.Show)
}

func handleOrder(ctx context.Context, flags *cliFlags) error {
	if err := flags.Order.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse order flags")
	}
	if *flags.Order.slug == "" {
		return errors.New("-slug is required")
	}

	return runOrder(ctx, os.Stdout, &flags.Order)
}

func printUsage() {
	fmt.Println("Usage: storefront <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  show     Print a storefront grouped by category")
	fmt.Println("  order    Compose a WhatsApp order and log it")
	fmt.Println("")
	fmt.Println("Use 'storefront <command> -h' for more information about a command.")
}
