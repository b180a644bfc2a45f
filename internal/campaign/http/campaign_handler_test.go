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

	campaignDomain "github.com/allisson/leadmail/internal/campaign/domain"
	"github.com/allisson/leadmail/internal/campaign/http/dto"
	"github.com/allisson/leadmail/internal/campaign/usecase/mocks"
)

func setupTestCampaignHandler(t *testing.T) (*CampaignHandler, *mocks.MockCampaignUseCase) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	mockUseCase := mocks.NewMockCampaignUseCase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewCampaignHandler(mockUseCase, logger), mockUseCase
}

func newTestCampaign(status campaignDomain.Status) *campaignDomain.Campaign {
	now := time.Now().UTC()
	return &campaignDomain.Campaign{
		ID:              uuid.Must(uuid.NewV7()),
		Name:            "Spring launch",
		Subject:         "Hello [name]",
		Content:         "<p>Hi [name]</p>",
		Status:          status,
		TotalRecipients: 2,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func withID(c *gin.Context, id string) {
	c.Params = gin.Params{{Key: "id", Value: id}}
}

func TestCampaignHandler_CreateHandler(t *testing.T) {
	recipient := uuid.Must(uuid.NewV7())

	t.Run("Success_SendsImmediately", func(t *testing.T) {
		handler, mockUseCase := setupTestCampaignHandler(t)
		campaign := newTestCampaign(campaignDomain.StatusSending)

		mockUseCase.EXPECT().
			Create(mock.Anything, mock.MatchedBy(func(in campaignDomain.CreateCampaignInput) bool {
				return in.Name == "Spring launch" &&
					len(in.RecipientIDs) == 1 &&
					in.RecipientIDs[0] == recipient &&
					!in.Draft
			})).
			Return(campaign, nil).
			Once()

		c, w := createTestContext(http.MethodPost, "/v1/campaigns", dto.CreateCampaignRequest{
			Name:         "Spring launch",
			Subject:      "Hello [name]",
			Content:      "<p>Hi [name]</p>",
			RecipientIDs: []string{recipient.String()},
		})

		handler.CreateHandler(c)

		assert.Equal(t, http.StatusCreated, w.Code)

		var response dto.CampaignResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, campaign.ID.String(), response.ID)
		assert.Equal(t, "sending", response.Status)
	})

	t.Run("Error_NoRecipients", func(t *testing.T) {
		handler, _ := setupTestCampaignHandler(t)

		c, w := createTestContext(http.MethodPost, "/v1/campaigns", dto.CreateCampaignRequest{
			Name:    "Spring launch",
			Subject: "Hello",
			Content: "<p>Hi</p>",
		})

		handler.CreateHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Error_MalformedRecipientID", func(t *testing.T) {
		handler, _ := setupTestCampaignHandler(t)

		c, w := createTestContext(http.MethodPost, "/v1/campaigns", dto.CreateCampaignRequest{
			Name:         "Spring launch",
			Subject:      "Hello",
			Content:      "<p>Hi</p>",
			RecipientIDs: []string{"42"},
		})

		handler.CreateHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Error_UnknownRecipients", func(t *testing.T) {
		handler, mockUseCase := setupTestCampaignHandler(t)

		mockUseCase.EXPECT().
			Create(mock.Anything, mock.Anything).
			Return(nil, campaignDomain.ErrRecipientsNotFound).
			Once()

		c, w := createTestContext(http.MethodPost, "/v1/campaigns", dto.CreateCampaignRequest{
			Name:         "Spring launch",
			Subject:      "Hello",
			Content:      "<p>Hi</p>",
			RecipientIDs: []string{recipient.String()},
		})

		handler.CreateHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestCampaignHandler_ListHandler(t *testing.T) {
	t.Run("Success_DefaultsAndFilters", func(t *testing.T) {
		handler, mockUseCase := setupTestCampaignHandler(t)

		mockUseCase.EXPECT().
			List(mock.Anything, campaignDomain.ListFilter{
				Status:   campaignDomain.StatusCompleted,
				Search:   "launch",
				SortBy:   campaignDomain.SortByName,
				SortDesc: false,
				Offset:   0,
				Limit:    10,
			}).
			Return([]*campaignDomain.Campaign{newTestCampaign(campaignDomain.StatusCompleted)}, int64(1), nil).
			Once()

		c, w := createTestContext(
			http.MethodGet,
			"/v1/campaigns?status=completed&search=launch&sort_by=name&order=asc",
			nil,
		)

		handler.ListHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.ListCampaignsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Len(t, response.Data, 1)
		assert.Equal(t, 10, response.Pagination.Limit)
		assert.Equal(t, int64(1), response.Pagination.TotalPages)
	})

	t.Run("Error_InvalidSortField", func(t *testing.T) {
		handler, _ := setupTestCampaignHandler(t)

		c, w := createTestContext(http.MethodGet, "/v1/campaigns?sort_by=subject", nil)

		handler.ListHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Error_InvalidOrder", func(t *testing.T) {
		handler, _ := setupTestCampaignHandler(t)

		c, w := createTestContext(http.MethodGet, "/v1/campaigns?order=sideways", nil)

		handler.ListHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestCampaignHandler_UpdateHandler(t *testing.T) {
	t.Run("Error_WhileSending", func(t *testing.T) {
		handler, mockUseCase := setupTestCampaignHandler(t)
		id := uuid.Must(uuid.NewV7())

		mockUseCase.EXPECT().
			Update(mock.Anything, id, mock.Anything).
			Return(nil, campaignDomain.ErrCampaignNotEditable).
			Once()

		c, w := createTestContext(http.MethodPut, "/v1/campaigns/"+id.String(), map[string]string{
			"subject": "New subject",
		})
		withID(c, id.String())

		handler.UpdateHandler(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Error_ScheduleAndClear", func(t *testing.T) {
		handler, _ := setupTestCampaignHandler(t)
		id := uuid.Must(uuid.NewV7())

		c, w := createTestContext(http.MethodPut, "/v1/campaigns/"+id.String(), map[string]any{
			"scheduled_at":   time.Now().Add(time.Hour).UTC(),
			"clear_schedule": true,
		})
		withID(c, id.String())

		handler.UpdateHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestCampaignHandler_Actions(t *testing.T) {
	t.Run("Success_Send", func(t *testing.T) {
		handler, mockUseCase := setupTestCampaignHandler(t)
		campaign := newTestCampaign(campaignDomain.StatusSending)

		mockUseCase.EXPECT().SendNow(mock.Anything, campaign.ID).Return(campaign, nil).Once()

		c, w := createTestContext(http.MethodPost, "/v1/campaigns/"+campaign.ID.String()+"/send", nil)
		withID(c, campaign.ID.String())

		handler.SendHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Error_CancelCompleted", func(t *testing.T) {
		handler, mockUseCase := setupTestCampaignHandler(t)
		id := uuid.Must(uuid.NewV7())

		mockUseCase.EXPECT().Cancel(mock.Anything, id).Return(nil, campaignDomain.ErrCampaignNotCancellable).Once()

		c, w := createTestContext(http.MethodPost, "/v1/campaigns/"+id.String()+"/cancel", nil)
		withID(c, id.String())

		handler.CancelHandler(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Error_DeleteWhileSending", func(t *testing.T) {
		handler, mockUseCase := setupTestCampaignHandler(t)
		id := uuid.Must(uuid.NewV7())

		mockUseCase.EXPECT().Delete(mock.Anything, id).Return(campaignDomain.ErrCampaignSending).Once()

		c, w := createTestContext(http.MethodDelete, "/v1/campaigns/"+id.String(), nil)
		withID(c, id.String())

		handler.DeleteHandler(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Error_InvalidID", func(t *testing.T) {
		handler, _ := setupTestCampaignHandler(t)

		c, w := createTestContext(http.MethodGet, "/v1/campaigns/nope", nil)
		withID(c, "nope")

		handler.GetHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestCampaignHandler_StatsHandler(t *testing.T) {
	handler, mockUseCase := setupTestCampaignHandler(t)

	mockUseCase.EXPECT().Stats(mock.Anything).Return(&campaignDomain.Stats{
		TotalCampaigns:    3,
		TotalEmailsSent:   8,
		TotalEmailsFailed: 2,
		SuccessRate:       80,
		ByStatus: map[campaignDomain.Status]int64{
			campaignDomain.StatusCompleted: 2,
			campaignDomain.StatusDraft:     1,
		},
	}, nil).Once()

	c, w := createTestContext(http.MethodGet, "/v1/campaigns/stats", nil)

	handler.StatsHandler(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.StatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, float64(80), response.SuccessRate)
	assert.Equal(t, int64(2), response.ByStatus["completed"])
}
