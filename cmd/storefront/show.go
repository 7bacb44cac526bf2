package main

import (
	"context"
	"fmt"
	"io"

	"whatsorder/internal/storefront"
	"whatsorder/internal/storefront/client"
)

func composerOptions(currency, signature string) []storefront.Option {
	var opts []storefront.Option
	if currency != "" {
		opts = append(opts, storefront.WithCurrencySymbol(currency))
	}
	if signature != "" {
		opts = append(opts, storefront.WithSignature(signature))
	}

	return opts
}

func runShow(ctx context.Context, w io.Writer, flags *showFlags) error {
	sf, err := client.New(*flags.api).LoadStorefront(ctx, *flags.slug)
	if err != nil {
		return err
	}

	composer := storefront.NewComposer(composerOptions(*flags.currency, "")...)

	fmt.Fprintf(w, "%s (%s)\n", sf.Business.Name, sf.Business.Slug)
	if sf.Business.Description != nil {
		fmt.Fprintln(w, *sf.Business.Description)
	}

	for _, section := range storefront.GroupByCategory(sf) {
		fmt.Fprintf(w, "\n%s\n", section.Title)
		for _, p := range section.Products {
			fmt.Fprintf(w, "  [%d] %-40s %s\n", p.ID, p.Name, composer.FormatAmount(p.Price))
		}
	}

	if len(sf.Services) > 0 {
		fmt.Fprintln(w, "\nServices")
		for _, s := range sf.Services {
			fmt.Fprintf(w, "  %-44s from %s\n", s.Name, composer.FormatAmount(s.StartingPrice))
		}
	}

	return nil
}
