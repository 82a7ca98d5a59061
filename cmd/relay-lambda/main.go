// Friendship Lights relay, packaged as an AWS Lambda function behind a
// function URL. Configuration comes from the environment only.
package main

import (
	"fmt"
	"os"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/nerrad567/friendship-lights/internal/app"
	"github.com/nerrad567/friendship-lights/internal/infrastructure/config"
	"github.com/nerrad567/friendship-lights/internal/infrastructure/logging"
)

var version = "dev"

func main() {
	relay, err := build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	lambda.Start(relay.Server.LambdaHandler())
}

// build loads configuration from the environment and wires the relay.
// The function instance is frozen between invocations, so sinks stay
// connected for its lifetime.
func build() (*app.App, error) {
	cfg, err := config.Load(os.Getenv("FRIENDSHIP_CONFIG"))
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	log := logging.New(cfg.Logging, version)
	log.Info("lambda cold start", "version", version)

	return app.Build(cfg, log, version, app.Options{})
}
