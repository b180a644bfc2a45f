package app

import (
	"fmt"

	contactHTTP "github.com/allisson/leadmail/internal/contact/http"
	contactMySQL "github.com/allisson/leadmail/internal/contact/repository/mysql"
	contactPostgreSQL "github.com/allisson/leadmail/internal/contact/repository/postgresql"
	contactUseCase "github.com/allisson/leadmail/internal/contact/usecase"
)

// ContactRepository returns the contact repository instance.
func (c *Container) ContactRepository() (contactUseCase.ContactRepository, error) {
	var err error
	c.contactRepositoryInit.Do(func() {
		c.contactRepository, err = c.initContactRepository()
		if err != nil {
			c.initErrors["contactRepository"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["contactRepository"]; exists {
		return nil, storedErr
	}
	return c.contactRepository, nil
}

// ContactUseCase returns the contact use case instance.
func (c *Container) ContactUseCase() (contactUseCase.ContactUseCase, error) {
	var err error
	c.contactUseCaseInit.Do(func() {
		c.contactUseCase, err = c.initContactUseCase()
		if err != nil {
			c.initErrors["contactUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["contactUseCase"]; exists {
		return nil, storedErr
	}
	return c.contactUseCase, nil
}

// ContactHandler returns the HTTP handler for contact operations.
func (c *Container) ContactHandler() (*contactHTTP.ContactHandler, error) {
	var err error
	c.contactHandlerInit.Do(func() {
		c.contactHandler, err = c.initContactHandler()
		if err != nil {
			c.initErrors["contactHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["contactHandler"]; exists {
		return nil, storedErr
	}
	return c.contactHandler, nil
}

// initContactRepository creates the contact repository for the configured driver.
func (c *Container) initContactRepository() (contactUseCase.ContactRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for contact repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return contactPostgreSQL.NewContactRepository(db), nil
	case "mysql":
		return contactMySQL.NewContactRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

func (c *Container) initContactUseCase() (contactUseCase.ContactUseCase, error) {
	contactRepository, err := c.ContactRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get contact repository for contact use case: %w", err)
	}
	return contactUseCase.NewContactUseCase(contactRepository), nil
}

func (c *Container) initContactHandler() (*contactHTTP.ContactHandler, error) {
	useCase, err := c.ContactUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get contact use case for contact handler: %w", err)
	}
	return contactHTTP.NewContactHandler(useCase, c.Logger()), nil
}
