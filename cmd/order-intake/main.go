package main

import (
	"context"
	"log"
	"net/http"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"

	"github.com/greengrove/order-intake/internal/order-intake/core/app"
	"github.com/greengrove/order-intake/internal/order-intake/infra/adapters/blocklist"
	"github.com/greengrove/order-intake/internal/order-intake/infra/adapters/dnscheck"
	"github.com/greengrove/order-intake/internal/order-intake/infra/adapters/sesmail"
	"github.com/greengrove/order-intake/internal/order-intake/infra/adapters/turnstile"
	"github.com/greengrove/order-intake/internal/order-intake/infra/httpx"
	"github.com/greengrove/order-intake/internal/pkg/config"
	"github.com/greengrove/order-intake/internal/pkg/telemetry"
)

func main() {
	ctx := context.Background()

	telemetry.InitLogger("order-intake")

	shutdown, err := telemetry.SetupTracer(ctx, "order-intake")
	if err != nil {
		log.Fatalf("tracer setup failed: %v", err)
	}
	defer shutdown(context.Background())

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		log.Fatalf("could not load AWS configuration: %v", err)
	}

	hours, err := app.NewBusinessHours(nil)
	if err != nil {
		log.Fatalf("business hours setup failed: %v", err)
	}

	orders := app.NewOrderService(
		hours,
		turnstile.NewClient(cfg.TurnstileSecret),
		dnscheck.NewResolver(0),
		blocklist.NewStatic(),
		sesmail.NewDispatcher(sesv2.NewFromConfig(awsCfg), cfg.BusinessEmail, cfg.NoReplyEmail, cfg.SupportEmail),
	)

	router := httpx.NewRouter(httpx.NewHandler(orders))

	log.Printf("order intake listening on %s", cfg.HTTPAddr)
	if err := http.ListenAndServe(cfg.HTTPAddr, router); err != nil {
		log.Fatalf("http server failed: %v", err)
	}
}
