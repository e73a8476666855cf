//go:build e2e

package drops_test

import (
	"context"
	"encoding/json"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"
	"time"

	resdto "dropengine/internal/handler/dto/response"
	"dropengine/tests/common/authtest"
	"dropengine/tests/common/dbtest"
	"dropengine/tests/common/httptest"
	"dropengine/tests/e2e"

	"github.com/stretchr/testify/suite"
)

const (
	statusURL  = "/api/drops/status"
	historyURL = "/api/drops/history"
	cycleURL   = "/api/drops/cycle"
	activeURL  = "/api/drops/active"
	claimsURL  = "/api/drops/claims"
	forceURL   = "/api/admin/drops/force"
	snapshotID = "e2e"
)

type dropsSuite struct {
	e2e.SharedSuite
	adminToken string
}

func TestDropsSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(dropsSuite))
}

func (s *dropsSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.adminToken = authtest.LoginAdmin(s.T(), s.Router, "admin", authtest.TestPassword)
}

// startForcedDrop fires a forced drop in the background and waits for it to
// accept claims. The returned channel yields the admin response once the drop
// resolves.
func (s *dropsSuite) startForcedDrop() (string, <-chan *nethttptest.ResponseRecorder) {
	done := make(chan *nethttptest.ResponseRecorder, 1)
	go func() {
		done <- httptest.PerformRequest(s.T(), s.Router, http.MethodPost, forceURL, nil, s.adminToken)
	}()

	var active resdto.ActiveDropResponse
	s.Require().Eventually(func() bool {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, activeURL, nil, "")
		active = resdto.ActiveDropResponse{}
		return w.Code == http.StatusOK && json.Unmarshal(w.Body.Bytes(), &active) == nil && active.Open
	}, 3*time.Second, 20*time.Millisecond, "forced drop never opened")

	s.Equal(int(e2e.ResponseWindow/time.Second), active.WindowSeconds)
	s.True(active.Forced)
	return active.Handle, done
}

func (s *dropsSuite) awaitResult(done <-chan *nethttptest.ResponseRecorder) resdto.DropResultResponse {
	var w *nethttptest.ResponseRecorder
	select {
	case w = <-done:
	case <-time.After(e2e.ResponseWindow + 5*time.Second):
		s.FailNow("forced drop did not resolve")
	}

	var result resdto.DropResultResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &result)
	return result
}

func (s *dropsSuite) snapshot() map[string]any {
	var doc map[string]any
	s.Require().NoError(json.Unmarshal(dbtest.SnapshotDocument(s.T(), s.DB, snapshotID), &doc))
	return doc
}

func (s *dropsSuite) TestStatusListsDefaultCatalog() {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, statusURL, nil, "")

	var resp resdto.StatusResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
	s.Len(resp.Prizes, 6)
	s.Equal(28, resp.TotalRemaining)
	s.Equal("Common", resp.Prizes[0].Rarity)
	s.Equal("golden_door", resp.Prizes[5].ID)
}

func (s *dropsSuite) TestClaimWithoutOpenDrop() {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, claimsURL,
		map[string]any{"userId": "alice", "handle": "nothing-open"}, "")
	httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "No drop is open")
}

func (s *dropsSuite) TestForcedDropWon() {
	handle, done := s.startForcedDrop()

	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, claimsURL,
		map[string]any{"userId": "alice", "handle": handle}, "")
	var accepted resdto.ClaimAcceptedResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusAccepted, &accepted)
	s.Equal(handle, accepted.Handle)

	result := s.awaitResult(done)
	s.Equal("won", result.Outcome)
	s.Equal("alice", result.WinnerID)
	s.Equal(handle, result.Handle)
	s.Require().NotNil(result.Prize)

	s.Run("history records the winner", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, historyURL, nil, "")
		var history resdto.HistoryResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &history)
		s.Equal(1, history.Total)
		s.Require().Len(history.Winners, 1)
		s.Equal("alice", history.Winners[0].UserID)
		s.Equal(result.Prize.ID, history.Winners[0].PrizeID)
	})

	s.Run("stock and cycle are updated", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, statusURL, nil, "")
		var status resdto.StatusResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &status)
		s.Equal(27, status.TotalRemaining)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, cycleURL, nil, "")
		var cycle resdto.CycleResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &cycle)
		s.Equal(1, cycle.ClaimsThisCycle)
	})

	s.Run("snapshot row is persisted", func() {
		doc := s.snapshot()
		winners, _ := doc["winners"].([]any)
		s.Len(winners, 1)
		meta, _ := doc["meta"].(map[string]any)
		s.Equal(float64(1), meta["claims_this_cycle"])
	})

	s.Run("drop is closed", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, claimsURL,
			map[string]any{"userId": "bob", "handle": handle}, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "")
	})
}

func (s *dropsSuite) TestForcedDropVanishes() {
	_, done := s.startForcedDrop()

	result := s.awaitResult(done)
	s.Equal("vanished", result.Outcome)
	s.Empty(result.WinnerID)

	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, statusURL, nil, "")
	var status resdto.StatusResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &status)
	s.Equal(28, status.TotalRemaining)

	meta, _ := s.snapshot()["meta"].(map[string]any)
	s.Equal(float64(0), meta["claims_this_cycle"])
}

func (s *dropsSuite) TestRestoresSnapshotFromPostgres() {
	dbtest.PutSnapshotDocument(s.T(), s.DB, snapshotID, []byte(`{
		"prizes": {"golden_door": {"remaining": 0}, "retired_prize": {"remaining": 4}},
		"winners": [{"user_id": "carol", "prize_id": "golden_door", "prize_name": "Golden Door", "timestamp": 1717243200}],
		"meta": {"claims_this_cycle": 0, "daily_quota": null}
	}`))

	s.Engine.Start(context.Background())

	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, statusURL, nil, "")
	var status resdto.StatusResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &status)
	s.Equal(27, status.TotalRemaining)

	w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, historyURL, nil, "")
	var history resdto.HistoryResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &history)
	s.Require().Len(history.Winners, 1)
	s.Equal("carol", history.Winners[0].UserID)

	prizes, _ := s.snapshot()["prizes"].(map[string]any)
	s.NotContains(prizes, "retired_prize", "retired ids are pruned and the snapshot rewritten")
}
