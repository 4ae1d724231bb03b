// Lambda entrypoint. The same chi router served by cmd/order-intake is
// bridged to API Gateway proxy events; the /api prefix is the gateway
// stage and never reaches the router.
package main

import (
	"context"
	"log"

	// The provided.al2 runtime image ships no zoneinfo; the business-hours
	// gate needs America/New_York.
	_ "time/tzdata"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"

	"github.com/greengrove/order-intake/internal/order-intake/core/app"
	"github.com/greengrove/order-intake/internal/order-intake/infra/adapters/blocklist"
	"github.com/greengrove/order-intake/internal/order-intake/infra/adapters/dnscheck"
	"github.com/greengrove/order-intake/internal/order-intake/infra/adapters/sesmail"
	"github.com/greengrove/order-intake/internal/order-intake/infra/adapters/turnstile"
	"github.com/greengrove/order-intake/internal/order-intake/infra/httpx"
	"github.com/greengrove/order-intake/internal/pkg/config"
	"github.com/greengrove/order-intake/internal/pkg/telemetry"
)

var chiLambda *chiadapter.ChiLambda

func main() {
	ctx := context.Background()

	telemetry.InitLogger("order-intake")

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

	chiLambda = chiadapter.New(httpx.NewRouter(httpx.NewHandler(orders)))
	lambda.Start(handleRequest)
}

func handleRequest(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return chiLambda.ProxyWithContext(ctx, req)
}
