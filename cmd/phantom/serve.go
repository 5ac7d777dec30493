package main

import (
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ja7ad/phantom/internal/metrics"
	"github.com/ja7ad/phantom/internal/tui"
	"github.com/ja7ad/phantom/internal/web"
)

// errNotTerminal is returned by form when stdin or stdout is redirected.
var errNotTerminal = errors.New("form needs an interactive terminal, use calc instead")

func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculator as a web form and JSON API",
		Long: `Serve the calculator over HTTP:

  GET  /                  the form
  POST /                  submit the form
  POST /api/v1/estimate   JSON estimate
  GET  /api/v1/report     download a report (format=csv|json|html|xlsx|pdf)
  GET  /healthz           liveness
  GET  /metrics           Prometheus metrics`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("addr") {
				a.cfg.HTTP.Addr = addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			m, err := metrics.New(prometheus.DefaultRegisterer)
			if err != nil {
				return err
			}
			return web.New(a.cfg, a.calc, m, prometheus.DefaultGatherer).Run(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	return cmd
}

func newFormCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "form",
		Short: "Fill in the calculator form in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
				return errNotTerminal
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM)
			defer stop()

			model := tui.NewFormModel(a.calc, a.cfg.Currency, a.cfg.DefaultTariffText())
			return tui.Run(ctx, model, os.Stdin, os.Stdout)
		},
	}
}
