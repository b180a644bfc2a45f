package app

import (
	"fmt"

	campaignHTTP "github.com/allisson/leadmail/internal/campaign/http"
	campaignMySQL "github.com/allisson/leadmail/internal/campaign/repository/mysql"
	campaignPostgreSQL "github.com/allisson/leadmail/internal/campaign/repository/postgresql"
	campaignUseCase "github.com/allisson/leadmail/internal/campaign/usecase"
	queueMySQL "github.com/allisson/leadmail/internal/queue/repository/mysql"
	queuePostgreSQL "github.com/allisson/leadmail/internal/queue/repository/postgresql"
	queueUseCase "github.com/allisson/leadmail/internal/queue/usecase"
)

// CampaignRepository returns the campaign repository instance.
func (c *Container) CampaignRepository() (campaignUseCase.CampaignRepository, error) {
	var err error
	c.campaignRepositoryInit.Do(func() {
		c.campaignRepository, err = c.initCampaignRepository()
		if err != nil {
			c.initErrors["campaignRepository"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["campaignRepository"]; exists {
		return nil, storedErr
	}
	return c.campaignRepository, nil
}

// TaskRepository returns the recipient task repository instance.
func (c *Container) TaskRepository() (queueUseCase.TaskRepository, error) {
	var err error
	c.taskRepositoryInit.Do(func() {
		c.taskRepository, err = c.initTaskRepository()
		if err != nil {
			c.initErrors["taskRepository"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["taskRepository"]; exists {
		return nil, storedErr
	}
	return c.taskRepository, nil
}

// Aggregator returns the campaign counter aggregator.
func (c *Container) Aggregator() (campaignUseCase.Aggregator, error) {
	var err error
	c.aggregatorInit.Do(func() {
		c.aggregator, err = c.initAggregator()
		if err != nil {
			c.initErrors["aggregator"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["aggregator"]; exists {
		return nil, storedErr
	}
	return c.aggregator, nil
}

// QueueUseCase returns the recipient queue.
func (c *Container) QueueUseCase() (queueUseCase.QueueUseCase, error) {
	var err error
	c.queueUseCaseInit.Do(func() {
		c.queueUseCase, err = c.initQueueUseCase()
		if err != nil {
			c.initErrors["queueUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["queueUseCase"]; exists {
		return nil, storedErr
	}
	return c.queueUseCase, nil
}

// CampaignUseCase returns the campaign use case instance.
func (c *Container) CampaignUseCase() (campaignUseCase.CampaignUseCase, error) {
	var err error
	c.campaignUseCaseInit.Do(func() {
		c.campaignUseCase, err = c.initCampaignUseCase()
		if err != nil {
			c.initErrors["campaignUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["campaignUseCase"]; exists {
		return nil, storedErr
	}
	return c.campaignUseCase, nil
}

// CampaignHandler returns the HTTP handler for campaign operations.
func (c *Container) CampaignHandler() (*campaignHTTP.CampaignHandler, error) {
	var err error
	c.campaignHandlerInit.Do(func() {
		c.campaignHandler, err = c.initCampaignHandler()
		if err != nil {
			c.initErrors["campaignHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["campaignHandler"]; exists {
		return nil, storedErr
	}
	return c.campaignHandler, nil
}

func (c *Container) initCampaignRepository() (campaignUseCase.CampaignRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for campaign repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return campaignPostgreSQL.NewCampaignRepository(db), nil
	case "mysql":
		return campaignMySQL.NewCampaignRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

func (c *Container) initTaskRepository() (queueUseCase.TaskRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for task repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return queuePostgreSQL.NewTaskRepository(db), nil
	case "mysql":
		return queueMySQL.NewTaskRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

func (c *Container) initAggregator() (campaignUseCase.Aggregator, error) {
	campaignRepository, err := c.CampaignRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get campaign repository for aggregator: %w", err)
	}
	return campaignUseCase.NewAggregator(campaignRepository, c.Logger()), nil
}

func (c *Container) initQueueUseCase() (queueUseCase.QueueUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for queue use case: %w", err)
	}
	taskRepository, err := c.TaskRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get task repository for queue use case: %w", err)
	}
	aggregator, err := c.Aggregator()
	if err != nil {
		return nil, fmt.Errorf("failed to get aggregator for queue use case: %w", err)
	}

	return queueUseCase.NewQueueUseCase(
		queueUseCase.Config{
			LeaseTimeout: c.config.DispatchLeaseTimeout,
			MaxAttempts:  c.config.DispatchMaxAttempts,
		},
		txManager,
		taskRepository,
		aggregator,
		c.Logger(),
	), nil
}

// initCampaignUseCase wires the campaign use case and wraps it with metrics when enabled.
func (c *Container) initCampaignUseCase() (campaignUseCase.CampaignUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for campaign use case: %w", err)
	}
	campaignRepository, err := c.CampaignRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get campaign repository for campaign use case: %w", err)
	}
	contacts, err := c.ContactUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get contact use case for campaign use case: %w", err)
	}
	queue, err := c.QueueUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get queue for campaign use case: %w", err)
	}
	aggregator, err := c.Aggregator()
	if err != nil {
		return nil, fmt.Errorf("failed to get aggregator for campaign use case: %w", err)
	}

	useCase := campaignUseCase.NewCampaignUseCase(
		campaignUseCase.Config{ActivationGracePeriod: c.config.ActivationGracePeriod},
		txManager,
		campaignRepository,
		contacts,
		queue,
		aggregator,
		c.Logger(),
	)

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for campaign use case: %w", err)
		}
		return campaignUseCase.NewCampaignUseCaseWithMetrics(useCase, businessMetrics), nil
	}

	return useCase, nil
}

func (c *Container) initCampaignHandler() (*campaignHTTP.CampaignHandler, error) {
	useCase, err := c.CampaignUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get campaign use case for campaign handler: %w", err)
	}
	return campaignHTTP.NewCampaignHandler(useCase, c.Logger()), nil
}
