package app

import (
	"fmt"
	"os"

	dispatchService "github.com/allisson/leadmail/internal/dispatch/service"
	dispatchUseCase "github.com/allisson/leadmail/internal/dispatch/usecase"
	"github.com/allisson/leadmail/internal/scheduler"
)

// MailTransport returns the outbound mail transport selected by MAIL_TRANSPORT.
func (c *Container) MailTransport() (dispatchService.Transport, error) {
	var err error
	c.mailTransportInit.Do(func() {
		c.mailTransport, err = c.initMailTransport()
		if err != nil {
			c.initErrors["mailTransport"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["mailTransport"]; exists {
		return nil, storedErr
	}
	return c.mailTransport, nil
}

// DispatchPool returns the pool of send workers.
func (c *Container) DispatchPool() (*dispatchUseCase.Pool, error) {
	var err error
	c.dispatchPoolInit.Do(func() {
		c.dispatchPool, err = c.initDispatchPool()
		if err != nil {
			c.initErrors["dispatchPool"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["dispatchPool"]; exists {
		return nil, storedErr
	}
	return c.dispatchPool, nil
}

// Scheduler returns the cron scheduler running activation and lease reclaim.
func (c *Container) Scheduler() (*scheduler.Scheduler, error) {
	var err error
	c.schedulerInit.Do(func() {
		c.scheduler, err = c.initScheduler()
		if err != nil {
			c.initErrors["scheduler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["scheduler"]; exists {
		return nil, storedErr
	}
	return c.scheduler, nil
}

func (c *Container) initMailTransport() (dispatchService.Transport, error) {
	switch c.config.MailTransport {
	case "log":
		return dispatchService.NewLogTransport(c.Logger()), nil
	case "sendgrid":
		if c.config.SendGridAPIKey == "" {
			return nil, fmt.Errorf("SENDGRID_API_KEY is required for the sendgrid transport")
		}
		return dispatchService.NewSendGridTransport(
			c.config.SendGridAPIKey,
			"",
			c.config.MailFromEmail,
			c.config.MailFromName,
		), nil
	case "smtp":
		if c.config.SMTPHost == "" {
			return nil, fmt.Errorf("SMTP_HOST is required for the smtp transport")
		}
		return dispatchService.NewSMTPTransport(
			c.config.SMTPHost,
			c.config.SMTPPort,
			c.config.SMTPUsername,
			c.config.SMTPPassword,
			c.config.MailFromEmail,
			c.config.MailFromName,
		), nil
	default:
		return nil, fmt.Errorf("unsupported mail transport: %s", c.config.MailTransport)
	}
}

func (c *Container) initDispatchPool() (*dispatchUseCase.Pool, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for dispatch pool: %w", err)
	}
	queue, err := c.QueueUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get queue for dispatch pool: %w", err)
	}
	campaignRepository, err := c.CampaignRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get campaign repository for dispatch pool: %w", err)
	}
	recordRepository, err := c.SendRecordRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get send record repository for dispatch pool: %w", err)
	}
	contactRepository, err := c.ContactRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get contact repository for dispatch pool: %w", err)
	}
	transport, err := c.MailTransport()
	if err != nil {
		return nil, fmt.Errorf("failed to get mail transport for dispatch pool: %w", err)
	}
	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for dispatch pool: %w", err)
	}

	hostname, err := os.Hostname()
	if err != nil || hostname == "" {
		hostname = "worker"
	}

	return dispatchUseCase.NewPool(
		dispatchUseCase.PoolConfig{
			Workers:      c.config.DispatchWorkers,
			WorkerPrefix: fmt.Sprintf("%s-%d", hostname, os.Getpid()),
			SendInterval: c.config.DispatchSendInterval,
			SendBurst:    c.config.DispatchSendBurst,
		},
		dispatchUseCase.Config{
			PollInterval:     c.config.DispatchPollInterval,
			TransportTimeout: c.config.DispatchTransportTimeout,
			BaseURL:          c.config.PublicBaseURL,
			Retry: dispatchUseCase.RetryPolicy{
				MaxAttempts: c.config.DispatchMaxAttempts,
				BaseDelay:   c.config.DispatchRetryBaseDelay,
				MaxDelay:    c.config.DispatchRetryMaxDelay,
			},
		},
		dispatchUseCase.Dependencies{
			TxManager: txManager,
			Queue:     queue,
			Campaigns: campaignRepository,
			Records:   recordRepository,
			Contacts:  contactRepository,
			Transport: transport,
			Metrics:   businessMetrics,
			Logger:    c.Logger(),
		},
	), nil
}

func (c *Container) initScheduler() (*scheduler.Scheduler, error) {
	campaigns, err := c.CampaignUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get campaign use case for scheduler: %w", err)
	}
	queue, err := c.QueueUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get queue for scheduler: %w", err)
	}

	return scheduler.New(
		scheduler.Config{
			ActivationSpec: c.config.SchedulerActivationSpec,
			ReclaimSpec:    c.config.SchedulerReclaimSpec,
		},
		campaigns,
		queue,
		c.Logger(),
	)
}
