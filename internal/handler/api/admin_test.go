//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"dropengine/internal/domain/cycle"
	"dropengine/internal/domain/drop"
	"dropengine/internal/handler/api"
	resdto "dropengine/internal/handler/dto/response"
	"dropengine/internal/usecase"
	"dropengine/internal/usecase/readmodel"
	"dropengine/tests/common/builder"
	"dropengine/tests/common/httptest"
	usecasemock "dropengine/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *usecasemock.MockDropCommands
	handler      *api.AdminHandler
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = usecasemock.NewMockDropCommands(s.mockCtrl)
	s.handler = api.NewAdminHandler(s.mockCommands)

	admin := s.router.Group("/admin/drops")
	admin.POST("/tick", s.handler.Tick)
	admin.POST("/force", s.handler.ForceDrop)
	admin.POST("/reset-pool", s.handler.ResetPool)
	admin.POST("/reset-history", s.handler.ResetHistory)
	admin.POST("/reset-cycle", s.handler.ResetCycle)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

// detachedCtx matches a context that can never be cancelled.
var detachedCtx = gomock.Cond(func(ctx context.Context) bool {
	return ctx.Done() == nil
})

func (s *AdminHandlerTestSuite) TestTick() {
	s.Run("success: scheduled spawn", func() {
		next := handlerTime.Add(2 * time.Hour)
		s.mockCommands.EXPECT().Tick(detachedCtx).
			Return(usecase.TickReport{Action: usecase.TickScheduled, CycleReset: true, NextSpawn: &next}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/drops/tick", nil, "")

		var response resdto.TickResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("scheduled", response.Action)
		s.True(response.CycleReset)
		s.Require().NotNil(response.NextSpawn)
		s.True(next.Equal(*response.NextSpawn))
		s.Nil(response.Result)
	})

	s.Run("success: drop result is included", func() {
		won := builder.NewPrizeBuilder().WithID("bit_frame").WithRemaining(2).Build()
		s.mockCommands.EXPECT().Tick(detachedCtx).Return(usecase.TickReport{
			Action: usecase.TickDropped,
			Result: &drop.Result{Outcome: drop.OutcomeWon, Handle: "msg-1", WinnerID: "alice", Prize: &won, Rejected: 1},
		}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/drops/tick", nil, "")

		var response resdto.TickResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("dropped", response.Action)
		s.Require().NotNil(response.Result)
		s.Equal(resdto.DropResultResponse{
			Outcome:  "won",
			Handle:   "msg-1",
			WinnerID: "alice",
			Prize: &resdto.PrizeStockResponse{
				ID: "bit_frame", Name: "bit_frame", Rarity: "Common", Weight: 10, Remaining: 2,
			},
			Rejected: 1,
		}, *response.Result)
	})
}

func (s *AdminHandlerTestSuite) TestForceDrop() {
	testCases := []struct {
		name   string
		result drop.Result
		want   resdto.DropResultResponse
	}{
		{
			name:   "vanished",
			result: drop.Result{Outcome: drop.OutcomeVanished, Handle: "msg-2"},
			want:   resdto.DropResultResponse{Outcome: "vanished", Handle: "msg-2"},
		},
		{
			name:   "skipped",
			result: drop.Skipped("prize pool is empty"),
			want:   resdto.DropResultResponse{Outcome: "skipped", Reason: "prize pool is empty"},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mockCommands.EXPECT().ForceDrop(detachedCtx).Return(tc.result).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/drops/force", nil, "")

			var response resdto.DropResultResponse
			httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
			s.Equal(tc.want, response)
		})
	}
}

func (s *AdminHandlerTestSuite) TestResets() {
	s.Run("reset pool", func() {
		s.mockCommands.EXPECT().ResetPool(detachedCtx).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/drops/reset-pool", nil, "")

		var response resdto.MessageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Prize pool reset to defaults", response.Message)
	})

	s.Run("reset history", func() {
		s.mockCommands.EXPECT().ResetHistory(detachedCtx).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/drops/reset-history", nil, "")

		var response resdto.MessageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Winner history cleared", response.Message)
	})

	s.Run("reset cycle", func() {
		next := handlerTime.Add(time.Minute)
		s.mockCommands.EXPECT().ResetCycleNow(detachedCtx).
			Return(readmodel.CycleView{Phase: cycle.PhaseNotStarted, NextSpawnTime: &next}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/drops/reset-cycle", nil, "")

		var response resdto.CycleResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("not_started", response.Phase)
		s.Equal(0, response.ClaimsThisCycle)
		s.Nil(response.DailyQuota)
		s.Require().NotNil(response.NextSpawnTime)
		s.True(next.Equal(*response.NextSpawnTime))
	})
}
