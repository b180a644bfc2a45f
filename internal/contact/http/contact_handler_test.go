package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	contactDomain "github.com/allisson/leadmail/internal/contact/domain"
	"github.com/allisson/leadmail/internal/contact/http/dto"
	"github.com/allisson/leadmail/internal/contact/usecase/mocks"
)

func setupTestContactHandler(t *testing.T) (*ContactHandler, *mocks.MockContactUseCase) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	mockUseCase := mocks.NewMockContactUseCase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewContactHandler(mockUseCase, logger), mockUseCase
}

func newTestContact() *contactDomain.Contact {
	now := time.Now().UTC()
	return &contactDomain.Contact{
		ID:        uuid.Must(uuid.NewV7()),
		Name:      "Ana Silva",
		Email:     "ana@example.com",
		Status:    contactDomain.StatusNew,
		LeadScore: 10,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestContactHandler_CreateHandler(t *testing.T) {
	t.Run("Success_ValidRequest", func(t *testing.T) {
		handler, mockUseCase := setupTestContactHandler(t)
		contact := newTestContact()

		mockUseCase.EXPECT().
			Create(mock.Anything, contactDomain.CreateContactInput{
				Name:      "Ana Silva",
				Email:     "ana@example.com",
				LeadScore: 10,
			}).
			Return(contact, nil).
			Once()

		c, w := createTestContext(http.MethodPost, "/v1/contacts", dto.CreateContactRequest{
			Name:      "Ana Silva",
			Email:     "ana@example.com",
			LeadScore: 10,
		})

		handler.CreateHandler(c)

		assert.Equal(t, http.StatusCreated, w.Code)

		var response dto.ContactResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, contact.ID.String(), response.ID)
		assert.Equal(t, "new", response.Status)
	})

	t.Run("Error_InvalidEmail", func(t *testing.T) {
		handler, _ := setupTestContactHandler(t)

		c, w := createTestContext(http.MethodPost, "/v1/contacts", dto.CreateContactRequest{
			Name:  "Ana Silva",
			Email: "not-an-email",
		})

		handler.CreateHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Error_UnknownStatus", func(t *testing.T) {
		handler, _ := setupTestContactHandler(t)

		c, w := createTestContext(http.MethodPost, "/v1/contacts", dto.CreateContactRequest{
			Name:   "Ana Silva",
			Email:  "ana@example.com",
			Status: "won",
		})

		handler.CreateHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Error_DuplicateEmail", func(t *testing.T) {
		handler, mockUseCase := setupTestContactHandler(t)

		mockUseCase.EXPECT().
			Create(mock.Anything, mock.Anything).
			Return(nil, contactDomain.ErrContactAlreadyExists).
			Once()

		c, w := createTestContext(http.MethodPost, "/v1/contacts", dto.CreateContactRequest{
			Name:  "Ana Silva",
			Email: "ana@example.com",
		})

		handler.CreateHandler(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestContactHandler_GetHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockUseCase := setupTestContactHandler(t)
		contact := newTestContact()

		mockUseCase.EXPECT().Get(mock.Anything, contact.ID).Return(contact, nil).Once()

		c, w := createTestContext(http.MethodGet, "/v1/contacts/"+contact.ID.String(), nil)
		c.Params = gin.Params{{Key: "id", Value: contact.ID.String()}}

		handler.GetHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Error_InvalidUUID", func(t *testing.T) {
		handler, _ := setupTestContactHandler(t)

		c, w := createTestContext(http.MethodGet, "/v1/contacts/abc", nil)
		c.Params = gin.Params{{Key: "id", Value: "abc"}}

		handler.GetHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		handler, mockUseCase := setupTestContactHandler(t)
		id := uuid.Must(uuid.NewV7())

		mockUseCase.EXPECT().Get(mock.Anything, id).Return(nil, contactDomain.ErrContactNotFound).Once()

		c, w := createTestContext(http.MethodGet, "/v1/contacts/"+id.String(), nil)
		c.Params = gin.Params{{Key: "id", Value: id.String()}}

		handler.GetHandler(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestContactHandler_ListHandler(t *testing.T) {
	t.Run("Success_WithFilters", func(t *testing.T) {
		handler, mockUseCase := setupTestContactHandler(t)
		contact := newTestContact()

		mockUseCase.EXPECT().
			List(mock.Anything, contactDomain.ListFilter{
				Status: contactDomain.StatusNew,
				Search: "ana",
				Offset: 5,
				Limit:  5,
			}).
			Return([]*contactDomain.Contact{contact}, int64(6), nil).
			Once()

		c, w := createTestContext(http.MethodGet, "/v1/contacts?status=new&search=ana&page=2&limit=5", nil)

		handler.ListHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.ListContactsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Len(t, response.Data, 1)
		assert.Equal(t, 2, response.Pagination.Page)
		assert.Equal(t, int64(6), response.Pagination.TotalItems)
		assert.Equal(t, int64(2), response.Pagination.TotalPages)
	})

	t.Run("Error_InvalidStatus", func(t *testing.T) {
		handler, _ := setupTestContactHandler(t)

		c, w := createTestContext(http.MethodGet, "/v1/contacts?status=won", nil)

		handler.ListHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Error_InvalidLimit", func(t *testing.T) {
		handler, _ := setupTestContactHandler(t)

		c, w := createTestContext(http.MethodGet, "/v1/contacts?limit=500", nil)

		handler.ListHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestContactHandler_UpdateHandler(t *testing.T) {
	t.Run("Success_PartialUpdate", func(t *testing.T) {
		handler, mockUseCase := setupTestContactHandler(t)
		contact := newTestContact()
		contact.Status = contactDomain.StatusQualified

		mockUseCase.EXPECT().
			Update(mock.Anything, contact.ID, mock.MatchedBy(func(in contactDomain.UpdateContactInput) bool {
				return in.Status != nil && *in.Status == contactDomain.StatusQualified && in.Name == nil
			})).
			Return(contact, nil).
			Once()

		c, w := createTestContext(http.MethodPut, "/v1/contacts/"+contact.ID.String(), map[string]string{
			"status": "qualified",
		})
		c.Params = gin.Params{{Key: "id", Value: contact.ID.String()}}

		handler.UpdateHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Error_LeadScoreOutOfRange", func(t *testing.T) {
		handler, _ := setupTestContactHandler(t)
		id := uuid.Must(uuid.NewV7())

		c, w := createTestContext(http.MethodPut, "/v1/contacts/"+id.String(), map[string]int{
			"lead_score": 150,
		})
		c.Params = gin.Params{{Key: "id", Value: id.String()}}

		handler.UpdateHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestContactHandler_DeleteHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockUseCase := setupTestContactHandler(t)
		id := uuid.Must(uuid.NewV7())

		mockUseCase.EXPECT().Delete(mock.Anything, id).Return(nil).Once()

		c, w := createTestContext(http.MethodDelete, "/v1/contacts/"+id.String(), nil)
		c.Params = gin.Params{{Key: "id", Value: id.String()}}

		handler.DeleteHandler(c)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.Bytes())
	})
}

func TestContactHandler_StatsHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockUseCase := setupTestContactHandler(t)

		mockUseCase.EXPECT().Stats(mock.Anything).Return(&contactDomain.Stats{
			Total: 3,
			ByStatus: map[contactDomain.Status]int64{
				contactDomain.StatusNew:       1,
				contactDomain.StatusContacted: 2,
				contactDomain.StatusQualified: 0,
				contactDomain.StatusProposal:  0,
				contactDomain.StatusClosed:    0,
			},
		}, nil).Once()

		c, w := createTestContext(http.MethodGet, "/v1/contacts/stats", nil)
		handler.StatsHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.ContactStatsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, int64(3), response.Total)
		assert.Equal(t, int64(2), response.ByStatus["contacted"])
		assert.Len(t, response.ByStatus, 5)
	})

	t.Run("Error_UseCase", func(t *testing.T) {
		handler, mockUseCase := setupTestContactHandler(t)
		mockUseCase.EXPECT().Stats(mock.Anything).Return(nil, assert.AnError).Once()

		c, w := createTestContext(http.MethodGet, "/v1/contacts/stats", nil)
		handler.StatsHandler(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
