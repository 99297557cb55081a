// internal/wire/wire.go
package wire

import (
	"go.uber.org/zap"

	"cinema-client/internal/api"
	"cinema-client/internal/booking"
	"cinema-client/pkg/httpclient"
	"cinema-client/pkg/utils"
)

// App holds all dependencies
type App struct {
	Config *utils.Config
	Log    *zap.Logger
	API    *api.Client
	Flow   *booking.Flow
}

// Wiring initializes all dependencies
func Wiring(config *utils.Config, logger *zap.Logger) (*App, error) {
	httpClient, err := httpclient.New(config.API, logger)
	if err != nil {
		return nil, err
	}

	client := api.NewClient(config.API.BaseURL, httpClient, logger)
	flow := booking.NewFlow(client.Reservations, logger)

	return &App{
		Config: config,
		Log:    logger,
		API:    client,
		Flow:   flow,
	}, nil
}
