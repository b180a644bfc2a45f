package app

import (
	"fmt"

	trackingHTTP "github.com/allisson/leadmail/internal/tracking/http"
	trackingService "github.com/allisson/leadmail/internal/tracking/service"
	trackingUseCase "github.com/allisson/leadmail/internal/tracking/usecase"
)

// TrackingUseCase returns the open/click tracking use case instance.
func (c *Container) TrackingUseCase() (trackingUseCase.TrackingUseCase, error) {
	var err error
	c.trackingUseCaseInit.Do(func() {
		c.trackingUseCase, err = c.initTrackingUseCase()
		if err != nil {
			c.initErrors["trackingUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["trackingUseCase"]; exists {
		return nil, storedErr
	}
	return c.trackingUseCase, nil
}

// TrackingHandler returns the HTTP handler for tracking pixels and click redirects.
func (c *Container) TrackingHandler() (*trackingHTTP.TrackingHandler, error) {
	var err error
	c.trackingHandlerInit.Do(func() {
		c.trackingHandler, err = c.initTrackingHandler()
		if err != nil {
			c.initErrors["trackingHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["trackingHandler"]; exists {
		return nil, storedErr
	}
	return c.trackingHandler, nil
}

// initTrackingUseCase deduplicates through Redis when it is configured and falls back to
// the database's own first-write-wins update otherwise.
func (c *Container) initTrackingUseCase() (trackingUseCase.TrackingUseCase, error) {
	recordRepository, err := c.SendRecordRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get send record repository for tracking use case: %w", err)
	}
	redisClient, err := c.RedisClient()
	if err != nil {
		return nil, fmt.Errorf("failed to get redis client for tracking use case: %w", err)
	}

	var deduper trackingUseCase.Deduper
	if redisClient != nil {
		deduper = trackingService.NewRedisDeduper(redisClient, c.config.TrackingDedupTTL)
	}

	useCase := trackingUseCase.NewTrackingUseCase(recordRepository, deduper, c.Logger())

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for tracking use case: %w", err)
		}
		return trackingUseCase.NewTrackingUseCaseWithMetrics(useCase, businessMetrics), nil
	}

	return useCase, nil
}

func (c *Container) initTrackingHandler() (*trackingHTTP.TrackingHandler, error) {
	useCase, err := c.TrackingUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get tracking use case for tracking handler: %w", err)
	}
	return trackingHTTP.NewTrackingHandler(useCase, c.Logger()), nil
}
