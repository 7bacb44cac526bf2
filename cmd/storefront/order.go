package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"whatsorder/internal/storefront"
	"whatsorder/internal/storefront/client"

	"github.com/pkg/errors"
)

type cartItem struct {
	productID int64
	quantity  int
}

// cartItems collects repeated -item productID=quantity flags.
type cartItems []cartItem

func (c *cartItems) String() string {
	parts := make([]string, 0, len(*c))
	for _, item := range *c {
		parts = append(parts, fmt.Sprintf("%d=%d", item.productID, item.quantity))
	}

	return strings.Join(parts, ",")
}

func (c *cartItems) Set(value string) error {
	idPart, qtyPart, ok := strings.Cut(value, "=")
	if !ok {
		qtyPart = "1"
	}

	id, err := strconv.ParseInt(strings.TrimSpace(idPart), 10, 64)
	if err != nil || id <= 0 {
		return errors.Errorf("invalid product id %q", idPart)
	}
	qty, err := strconv.Atoi(strings.TrimSpace(qtyPart))
	if err != nil || qty <= 0 {
		return errors.Errorf("invalid quantity %q", qtyPart)
	}

	*c = append(*c, cartItem{productID: id, quantity: qty})

	return nil
}

func runOrder(ctx context.Context, w io.Writer, flags *orderFlags) error {
	if len(flags.items) == 0 {
		return errors.New("at least one -item is required")
	}

	api := client.New(*flags.api)
	composer := storefront.NewComposer(composerOptions(*flags.currency, *flags.signature)...)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	session, err := storefront.Open(ctx, api, *flags.slug, composer, api, storefront.WithLogger(logger))
	if err != nil {
		return err
	}

	for _, item := range flags.items {
		current := session.Quantity(item.productID)
		if _, err := session.SetQuantity(item.productID, current+item.quantity); err != nil {
			return errors.Wrapf(err, "product %d", item.productID)
		}
	}

	if err := session.OpenCheckout(); err != nil {
		return err
	}

	submission, err := session.Submit(ctx, storefront.Customer{
		Name:  *flags.name,
		Phone: *flags.phone,
		Note:  *flags.note,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(w, submission.Message)
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, submission.DeepLink)

	// The process must outlive the background order log call.
	<-submission.Logged()

	return nil
}
