package main

import (
	"context"
	"easepay/client/easepay"
	"easepay/config"
	httpclient "easepay/http_client"
	"easepay/logger"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"

	"github.com/fatih/color"
)

const usage = `usage: easepay <command> [args]

commands:
  health
  payment create
  payment get <id>
  payment status <id>
  payment history
  store get
  store update <json>
  store transactions
  wallet balance
  users`

var errUsage = errors.New(usage)

func main() {
	cfg := config.MustLoad()
	log := logger.SetupLogger(cfg.Env, os.Stderr)
	slog.SetDefault(log)

	gateway := easepay.NewClient(
		cfg.Easepay.PublicKey,
		cfg.Easepay.SecretKey,
		easepay.WithBaseUrl(cfg.Easepay.BaseUrl),
		easepay.WithHttpClient(&http.Client{Timeout: cfg.Easepay.Timeout}),
		easepay.WithLogger(log),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	resp, err := run(ctx, gateway, os.Args[1:])
	if err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, usage)
		} else {
			logFailure(log, err)
		}
		os.Exit(1)
	}
	defer resp.Body.Close()
	if err := printResponse(os.Stdout, resp); err != nil {
		slog.Error("[Easepay] Failed to read response", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, c *easepay.Client, args []string) (*http.Response, error) {
	if len(args) == 0 {
		return nil, errUsage
	}
	switch args[0] {
	case "health":
		return raw(c.CheckStatus(ctx))
	case "users":
		return raw(c.GetUsers(ctx))
	case "wallet":
		if len(args) == 2 && args[1] == "balance" {
			return raw(c.GetWalletBalance(ctx))
		}
	case "payment":
		return runPayment(ctx, c, args[1:])
	case "store":
		return runStore(ctx, c, args[1:])
	}
	return nil, errUsage
}

func runPayment(ctx context.Context, c *easepay.Client, args []string) (*http.Response, error) {
	switch {
	case len(args) == 1 && args[0] == "create":
		return raw(c.CreatePayment(ctx))
	case len(args) == 1 && args[0] == "history":
		return raw(c.GetPaymentHistory(ctx))
	case len(args) == 2 && args[0] == "get":
		return raw(c.GetPaymentDetails(ctx, args[1]))
	case len(args) == 2 && args[0] == "status":
		return raw(c.GetPaymentStatus(ctx, args[1]))
	}
	return nil, errUsage
}

func runStore(ctx context.Context, c *easepay.Client, args []string) (*http.Response, error) {
	switch {
	case len(args) == 1 && args[0] == "get":
		return raw(c.GetStoreInfo(ctx))
	case len(args) == 1 && args[0] == "transactions":
		return raw(c.GetStoreTransactions(ctx))
	case len(args) == 2 && args[0] == "update":
		var info easepay.StoreInfo
		if err := json.Unmarshal([]byte(args[1]), &info); err != nil {
			return nil, fmt.Errorf("invalid store json: %w", err)
		}
		return raw(c.UpdateStoreInfo(ctx, &info))
	}
	return nil, errUsage
}

func logFailure(logger *slog.Logger, err error) {
	logger.Error("[Easepay] Request failed", "error", httpclient.Redact(err.Error()))
}

type rawResponse interface {
	Raw() *http.Response
}

func raw(resp rawResponse, err error) (*http.Response, error) {
	if err != nil {
		return nil, err
	}
	return resp.Raw(), nil
}

func printResponse(w io.Writer, resp *http.Response) error {
	status := color.New(color.FgGreen)
	switch {
	case resp.StatusCode >= 500:
		status = color.New(color.FgRed, color.Bold)
	case resp.StatusCode >= 400:
		status = color.New(color.FgYellow)
	}
	status.Fprintln(w, resp.Status)
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, string(body))
	return nil
}
