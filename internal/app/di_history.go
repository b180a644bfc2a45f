package app

import (
	"fmt"

	historyHTTP "github.com/allisson/leadmail/internal/history/http"
	historyMySQL "github.com/allisson/leadmail/internal/history/repository/mysql"
	historyPostgreSQL "github.com/allisson/leadmail/internal/history/repository/postgresql"
	historyUseCase "github.com/allisson/leadmail/internal/history/usecase"
)

// SendRecordRepository returns the send record repository instance.
func (c *Container) SendRecordRepository() (historyUseCase.SendRecordRepository, error) {
	var err error
	c.sendRecordRepositoryInit.Do(func() {
		c.sendRecordRepository, err = c.initSendRecordRepository()
		if err != nil {
			c.initErrors["sendRecordRepository"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["sendRecordRepository"]; exists {
		return nil, storedErr
	}
	return c.sendRecordRepository, nil
}

// HistoryUseCase returns the send history use case instance.
func (c *Container) HistoryUseCase() (historyUseCase.HistoryUseCase, error) {
	var err error
	c.historyUseCaseInit.Do(func() {
		c.historyUseCase, err = c.initHistoryUseCase()
		if err != nil {
			c.initErrors["historyUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["historyUseCase"]; exists {
		return nil, storedErr
	}
	return c.historyUseCase, nil
}

// HistoryHandler returns the HTTP handler for send history.
func (c *Container) HistoryHandler() (*historyHTTP.HistoryHandler, error) {
	var err error
	c.historyHandlerInit.Do(func() {
		c.historyHandler, err = c.initHistoryHandler()
		if err != nil {
			c.initErrors["historyHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["historyHandler"]; exists {
		return nil, storedErr
	}
	return c.historyHandler, nil
}

func (c *Container) initSendRecordRepository() (historyUseCase.SendRecordRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for send record repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return historyPostgreSQL.NewSendRecordRepository(db), nil
	case "mysql":
		return historyMySQL.NewSendRecordRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

func (c *Container) initHistoryUseCase() (historyUseCase.HistoryUseCase, error) {
	recordRepository, err := c.SendRecordRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get send record repository for history use case: %w", err)
	}
	campaignRepository, err := c.CampaignRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get campaign repository for history use case: %w", err)
	}
	return historyUseCase.NewHistoryUseCase(recordRepository, campaignRepository), nil
}

func (c *Container) initHistoryHandler() (*historyHTTP.HistoryHandler, error) {
	useCase, err := c.HistoryUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get history use case for history handler: %w", err)
	}
	return historyHTTP.NewHistoryHandler(useCase, c.Logger()), nil
}
