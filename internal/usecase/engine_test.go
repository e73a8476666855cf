//go:build unit

package usecase_test

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"dropengine/internal/domain/cycle"
	"dropengine/internal/domain/drop"
	"dropengine/internal/domain/eligibility"
	"dropengine/internal/domain/prize"
	"dropengine/internal/infra"
	"dropengine/internal/pkg/clock"
	"dropengine/internal/usecase"
	"dropengine/internal/usecase/readmodel"
	"dropengine/tests/common/builder"
	usecasemock "dropengine/tests/mock/usecase"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// firstPick always draws the first drawable entry and the low end of every
// range.
type firstPick struct{}

func (firstPick) Float64() float64                                  { return 0 }
func (firstPick) IntBetween(lo, _ int) int                          { return lo }
func (firstPick) DurationBetween(lo, _ time.Duration) time.Duration { return lo }

var errNotFound = infra.RepositoryError{Kind: infra.KindNotFound}

func testEngineConfig() usecase.EngineConfig {
	return usecase.EngineConfig{
		ResponseWindow:  testWindow,
		QuotaMin:        3,
		QuotaMax:        3,
		SpawnMin:        time.Hour,
		SpawnMax:        12 * time.Hour,
		InitialMin:      time.Minute,
		InitialMax:      2 * time.Minute,
		ForcedMin:       2 * time.Minute,
		ForcedMax:       3 * time.Minute,
		CycleLength:     24 * time.Hour,
		BypassUsers:     []string{"streamer"},
		HistoryPageSize: 5,
	}
}

func testCatalog() prize.Catalog {
	return builder.Catalog(
		builder.NewPrizeBuilder().WithID("common").AsAlwaysOK().WithRemaining(5),
		builder.NewPrizeBuilder().WithID("rare").WithRarity(prize.RarityRare).AsMandatorySkip().WithRemaining(1),
		builder.NewPrizeBuilder().WithID("uncommon").WithRarity(prize.RarityUncommon).WithWeight(0).WithRemaining(2),
	)
}

type EngineTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	clock     *clock.MockClock
	store     *usecasemock.MockSnapshotStore
	notifier  *usecasemock.MockNotifier
	reactions *usecasemock.MockReactionSource
	engine    *usecase.Engine

	mu       sync.Mutex
	saved    []*usecase.Snapshot
	claims   []string
	announce int
}

func (s *EngineTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.clock = clock.NewMockClock(t0)
	s.store = usecasemock.NewMockSnapshotStore(s.mockCtrl)
	s.notifier = usecasemock.NewMockNotifier(s.mockCtrl)
	s.reactions = usecasemock.NewMockReactionSource(s.mockCtrl)
	s.saved = nil
	s.claims = nil
	s.announce = 0

	s.store.EXPECT().Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, snap *usecase.Snapshot) error {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.saved = append(s.saved, snap)
			return nil
		}).AnyTimes()
	s.reactions.EXPECT().Open(gomock.Any()).
		DoAndReturn(func(handle drop.Handle) <-chan drop.Attempt {
			s.mu.Lock()
			defer s.mu.Unlock()
			ch := make(chan drop.Attempt, len(s.claims)+1)
			for _, userID := range s.claims {
				ch <- drop.Attempt{UserID: userID, At: s.clock.Now(), Handle: handle}
			}
			s.claims = nil
			return ch
		}).AnyTimes()
	s.reactions.EXPECT().Close(gomock.Any()).AnyTimes()

	s.engine = s.newEngine(testCatalog(), nil)
}

func (s *EngineTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

func (s *EngineTestSuite) newEngine(catalog prize.Catalog, metrics usecase.Metrics) *usecase.Engine {
	return usecase.NewEngine(testEngineConfig(), catalog, s.store, s.notifier, s.reactions, metrics,
		s.clock, firstPick{}, slog.New(slog.DiscardHandler))
}

// start restores from snapshot, or from nothing when snapshot is nil.
func (s *EngineTestSuite) start(snapshot *usecase.Snapshot) {
	if snapshot == nil {
		s.store.EXPECT().Load(gomock.Any()).Return(nil, errNotFound)
	} else {
		s.store.EXPECT().Load(gomock.Any()).Return(snapshot, nil)
	}
	s.engine.Start(context.Background())
}

func (s *EngineTestSuite) savedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.saved)
}

func (s *EngineTestSuite) lastSaved() *usecase.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Require().NotEmpty(s.saved)
	return s.saved[len(s.saved)-1]
}

func (s *EngineTestSuite) queueClaims(userIDs ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.claims = append(s.claims, userIDs...)
}

func (s *EngineTestSuite) expectAnnounceDrops(times int) {
	s.notifier.EXPECT().AnnounceDrop(gomock.Any(), testWindow).
		DoAndReturn(func(context.Context, time.Duration) (drop.Announcement, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.announce++
			return drop.Announcement{Handle: drop.Handle(fmt.Sprintf("msg-%d", s.announce)), ChannelRef: "drops"}, nil
		}).Times(times)
}

func (s *EngineTestSuite) expectWinners(times int) {
	s.notifier.EXPECT().AnnounceWinner(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(times)
}

// armSpawn runs the scheduling tick and moves the clock to the spawn it set.
func (s *EngineTestSuite) armSpawn() {
	report := s.engine.Tick(context.Background())
	s.Require().Equal(usecase.TickScheduled, report.Action)
	s.Require().NotNil(report.NextSpawn)
	s.clock.Set(*report.NextSpawn)
}

func (s *EngineTestSuite) stock(id prize.ID) int {
	for _, v := range s.engine.Status() {
		if v.ID == id.String() {
			return v.Remaining
		}
	}
	s.FailNow("prize not in status", id)
	return 0
}

func (s *EngineTestSuite) TestStart() {
	s.Run("missing snapshot starts from defaults and saves them", func() {
		s.start(nil)

		s.Equal(1, s.savedCount())
		want := map[prize.ID]int{"common": 5, "rare": 1, "uncommon": 2}
		if diff := cmp.Diff(want, s.lastSaved().Stock); diff != "" {
			s.T().Errorf("saved stock mismatch (-want +got):\n%s", diff)
		}
		s.Equal(cycle.PhaseNotStarted, s.engine.CycleStatus().Phase)
	})
}

func (s *EngineTestSuite) TestStart_CorruptSnapshotIsNotOverwritten() {
	s.store.EXPECT().Load(gomock.Any()).Return(nil, infra.RepositoryError{Kind: infra.KindCorrupt})

	s.engine.Start(context.Background())

	s.Zero(s.savedCount())
	s.Equal(5, s.stock("common"))
	s.Zero(s.engine.History(1).Total)
}

func (s *EngineTestSuite) TestStart_RestoresSnapshot() {
	first := t0.Add(-2 * time.Hour)
	snap := builder.NewSnapshotBuilder().
		WithStock("common", 2).
		WithStock("rare", 0).
		WithWinner(builder.NewWinnerBuilder().WithUser("alice").WithPrize("rare").At(first)).
		WithCycle(first, 24*time.Hour, 3, 1).
		WithNextSpawn(t0.Add(time.Hour)).
		Build()

	s.start(snap)

	s.Zero(s.savedCount(), "a clean snapshot is not rewritten")
	s.Equal(2, s.stock("common"))
	s.Equal(0, s.stock("rare"))
	s.Equal(2, s.stock("uncommon"), "missing ids keep catalog stock")

	view := s.engine.CycleStatus()
	s.Equal(cycle.PhaseActive, view.Phase)
	s.Equal(1, view.ClaimsThisCycle)
	s.Require().NotNil(view.Remaining)
	s.Equal(2, *view.Remaining)
	s.Require().NotNil(view.ResetIn)
	s.Equal(int64((22 * time.Hour).Seconds()), *view.ResetIn)
	s.Require().NotNil(view.NextSpawnIn)
	s.Equal(int64(3600), *view.NextSpawnIn)

	ok, reason := s.engine.Check("alice")
	s.False(ok)
	s.Equal(eligibility.ReasonMandatorySkip, reason)
}

func (s *EngineTestSuite) TestStart_InvalidCycleIsCleared() {
	quota := 2
	first := t0.Add(-time.Hour)
	reset := first.Add(24 * time.Hour)
	cases := []struct {
		name  string
		state cycle.State
	}{
		{name: "claims over quota", state: builder.NewSnapshotBuilder().WithCycle(first, 24*time.Hour, 2, 5).Build().Cycle},
		{name: "exhausted quota without anchors", state: cycle.State{DailyQuota: &quota, ClaimsThisCycle: 2}},
		{name: "first spawn without reset time", state: cycle.State{DailyQuota: &quota, FirstSpawnTime: &first}},
		{name: "anchors without quota", state: cycle.State{FirstSpawnTime: &first, CycleResetTime: &reset}},
		{name: "reset time without first spawn", state: cycle.State{DailyQuota: &quota, CycleResetTime: &reset}},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.SetupTest()
			snap := builder.NewSnapshotBuilder().
				WithStock("common", 4).
				WithRawCycle(tc.state).
				Build()

			s.start(snap)

			s.Equal(1, s.savedCount())
			saved := s.lastSaved()
			s.Equal(cycle.State{}, saved.Cycle)
			s.Equal(4, saved.Stock["common"], "stock survives a discarded cycle")

			report := s.engine.Tick(context.Background())
			s.Equal(usecase.TickScheduled, report.Action, "a cleared cycle schedules again")
			s.Require().NotNil(report.NextSpawn)
			s.Equal(t0.Add(time.Minute), *report.NextSpawn)
		})
	}
}

func (s *EngineTestSuite) TestStart_PrunesRetiredPrizes() {
	snap := builder.NewSnapshotBuilder().
		WithStock("common", 3).
		WithStock("retired", 7).
		Build()

	s.start(snap)

	s.Equal(1, s.savedCount())
	_, kept := s.lastSaved().Stock["retired"]
	s.False(kept)
}

func (s *EngineTestSuite) TestTick_SchedulesInitialSpawn() {
	s.start(nil)

	report := s.engine.Tick(context.Background())

	s.Equal(usecase.TickScheduled, report.Action)
	s.Require().NotNil(report.NextSpawn)
	s.Equal(t0.Add(time.Minute), *report.NextSpawn)

	report = s.engine.Tick(context.Background())
	s.Equal(usecase.TickWaiting, report.Action)
	s.Equal(t0.Add(time.Minute), *report.NextSpawn)
}

func (s *EngineTestSuite) TestTick_CanceledContextIsIdle() {
	s.start(nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report := s.engine.Tick(ctx)

	s.Equal(usecase.TickIdle, report.Action)
	s.Nil(s.engine.NextSpawn())
}

func (s *EngineTestSuite) TestTick_WonDrop() {
	s.start(nil)
	s.armSpawn()
	openedAt := s.clock.Now()

	s.expectAnnounceDrops(1)
	s.notifier.EXPECT().
		AnnounceWinner(gomock.Any(), drop.Handle("msg-1"), "alice", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ drop.Handle, _ string, won prize.Definition) error {
			s.Equal(prize.ID("common"), won.ID)
			s.Equal(4, won.Remaining, "announced after depletion")
			return nil
		})
	s.queueClaims("alice")

	report := s.engine.Tick(context.Background())

	s.Equal(usecase.TickDropped, report.Action)
	s.Require().NotNil(report.Result)
	s.Equal(drop.OutcomeWon, report.Result.Outcome)
	s.Equal("alice", report.Result.WinnerID)
	s.Require().NotNil(report.Result.Prize)
	s.Equal(4, report.Result.Prize.Remaining)
	s.Equal(4, s.stock("common"))

	history := s.engine.History(1)
	s.Require().Len(history.Entries, 1)
	s.Equal("alice", history.Entries[0].UserID)
	s.Equal("msg-1", history.Entries[0].MessageRef)
	s.Equal("drops", history.Entries[0].ChannelRef)

	view := s.engine.CycleStatus()
	s.Equal(1, view.ClaimsThisCycle)
	s.Require().NotNil(view.FirstSpawnTime)
	s.Equal(openedAt, *view.FirstSpawnTime)
	s.Equal(openedAt.Add(24*time.Hour), *view.CycleResetTime)
	s.Equal(3, *view.DailyQuota)

	s.Require().NotNil(report.NextSpawn)
	s.Equal(openedAt.Add(time.Hour), *report.NextSpawn)
	s.Nil(s.engine.ActiveDrop())

	saved := s.lastSaved()
	s.Equal(4, saved.Stock["common"])
	s.Len(saved.Winners, 1)
}

func (s *EngineTestSuite) TestTick_VanishedDropChangesNothingButSchedule() {
	s.start(nil)
	s.armSpawn()
	stockBefore := s.engine.Status()

	s.expectAnnounceDrops(1)
	s.notifier.EXPECT().AnnounceVanished(gomock.Any(), drop.Handle("msg-1")).Return(nil)

	pending := s.clock.Waiters()
	done := make(chan usecase.TickReport, 1)
	go func() { done <- s.engine.Tick(context.Background()) }()
	s.Require().Eventually(func() bool { return s.clock.Waiters() > pending }, time.Second, time.Millisecond)

	active := s.engine.ActiveDrop()
	s.Require().NotNil(active)
	s.Equal("msg-1", active.Handle)
	s.Equal(30, active.WindowSeconds)
	s.Len(s.engine.Status(), 3, "readers are not blocked by the open window")

	s.clock.Add(testWindow)

	var report usecase.TickReport
	select {
	case report = <-done:
	case <-time.After(2 * time.Second):
		s.FailNow("tick did not return")
	}

	s.Require().NotNil(report.Result)
	s.Equal(drop.OutcomeVanished, report.Result.Outcome)
	if diff := cmp.Diff(stockBefore, s.engine.Status()); diff != "" {
		s.T().Errorf("stock changed (-want +got):\n%s", diff)
	}
	s.Zero(s.engine.History(1).Total)

	view := s.engine.CycleStatus()
	s.Equal(0, view.ClaimsThisCycle)
	s.Equal(cycle.PhaseActive, view.Phase, "the first spawn anchors the cycle even without a winner")
	s.Equal(s.clock.Now().Add(time.Hour), *report.NextSpawn)
}

func (s *EngineTestSuite) TestTick_QuotaExhaustion() {
	s.start(nil)
	s.armSpawn()
	s.expectAnnounceDrops(3)
	s.expectWinners(3)

	var report usecase.TickReport
	for i, user := range []string{"alice", "bob", "carol"} {
		if i > 0 {
			s.clock.Set(*report.NextSpawn)
		}
		s.queueClaims(user)
		report = s.engine.Tick(context.Background())
		s.Require().Equal(usecase.TickDropped, report.Action)
		s.Require().Equal(drop.OutcomeWon, report.Result.Outcome)
	}

	view := s.engine.CycleStatus()
	s.Equal(cycle.PhaseExhausted, view.Phase)
	s.Equal(3, view.ClaimsThisCycle)
	s.Equal(*view.CycleResetTime, *report.NextSpawn, "next spawn pinned to the reset")

	s.clock.Set(view.CycleResetTime.Add(-time.Minute))
	report = s.engine.Tick(context.Background())
	s.Equal(usecase.TickQuotaExhausted, report.Action)
	s.Nil(report.Result)

	resetAt := *view.CycleResetTime
	s.clock.Set(resetAt)
	report = s.engine.Tick(context.Background())
	s.True(report.CycleReset)
	s.Equal(usecase.TickWaiting, report.Action)
	s.Equal(resetAt.Add(time.Hour), *report.NextSpawn)

	view = s.engine.CycleStatus()
	s.Equal(cycle.PhaseNotStarted, view.Phase)
	s.Zero(view.ClaimsThisCycle)
	s.Nil(view.DailyQuota)
}

func (s *EngineTestSuite) TestTick_RejectedThenAccepted() {
	first := t0.Add(-time.Hour)
	s.start(builder.NewSnapshotBuilder().
		WithWinner(builder.NewWinnerBuilder().WithUser("alice").WithPrize("rare").At(first)).
		WithCycle(first, 24*time.Hour, 3, 1).
		WithNextSpawn(t0).
		Build())

	s.expectAnnounceDrops(1)
	s.notifier.EXPECT().
		AnnounceRejectedClaim(gomock.Any(), drop.Handle("msg-1"), "alice", eligibility.ReasonMandatorySkip).
		Return(nil)
	s.notifier.EXPECT().AnnounceWinner(gomock.Any(), drop.Handle("msg-1"), "bob", gomock.Any()).Return(nil)
	s.queueClaims("alice", "bob")

	report := s.engine.Tick(context.Background())

	s.Equal(usecase.TickDropped, report.Action)
	s.Equal("bob", report.Result.WinnerID)
	s.Equal(1, report.Result.Rejected)

	ok, _ := s.engine.Check("alice")
	s.True(ok, "the skip is served once someone else wins")
}

func (s *EngineTestSuite) TestTick_BypassUserAlwaysWins() {
	first := t0.Add(-time.Hour)
	s.start(builder.NewSnapshotBuilder().
		WithWinner(builder.NewWinnerBuilder().WithUser("streamer").WithPrize("rare").At(first)).
		WithCycle(first, 24*time.Hour, 3, 1).
		WithNextSpawn(t0).
		Build())

	s.expectAnnounceDrops(1)
	s.expectWinners(1)
	s.queueClaims("streamer")

	report := s.engine.Tick(context.Background())

	s.Equal("streamer", report.Result.WinnerID)
	s.Zero(report.Result.Rejected)
}

func (s *EngineTestSuite) TestTick_EmptyPool() {
	empty := builder.Catalog(builder.NewPrizeBuilder().WithID("gone").WithRemaining(0))
	s.engine = s.newEngine(empty, nil)
	s.start(nil)
	s.notifier.EXPECT().AnnounceDrop(gomock.Any(), gomock.Any()).Times(0)

	report := s.engine.Tick(context.Background())
	s.Equal(usecase.TickPoolEmpty, report.Action)

	result := s.engine.ForceDrop(context.Background())
	s.Equal(drop.OutcomeSkipped, result.Outcome)
	s.Equal("prize pool is empty", result.Reason)
}

func (s *EngineTestSuite) TestTick_OnlyZeroWeightStockIsEmpty() {
	unweighted := builder.Catalog(builder.NewPrizeBuilder().WithID("free").WithWeight(0).WithRemaining(4))
	s.engine = s.newEngine(unweighted, nil)
	s.start(nil)
	s.notifier.EXPECT().AnnounceDrop(gomock.Any(), gomock.Any()).Times(0)

	for range 3 {
		report := s.engine.Tick(context.Background())
		s.Equal(usecase.TickPoolEmpty, report.Action)
		s.Nil(report.Result)
	}

	result := s.engine.ForceDrop(context.Background())
	s.Equal(drop.OutcomeSkipped, result.Outcome)
	s.Equal("prize pool is empty", result.Reason)
	s.Equal(4, s.stock("free"))
}

func (s *EngineTestSuite) TestTick_AnnounceFailureSkipsWithoutCycleChange() {
	s.start(nil)
	s.armSpawn()
	due := s.clock.Now()
	saves := s.savedCount()

	s.notifier.EXPECT().AnnounceDrop(gomock.Any(), gomock.Any()).
		Return(drop.Announcement{}, context.DeadlineExceeded)

	report := s.engine.Tick(context.Background())

	s.Equal(usecase.TickDropped, report.Action)
	s.Equal(drop.OutcomeSkipped, report.Result.Outcome)
	s.Equal(cycle.PhaseNotStarted, s.engine.CycleStatus().Phase)
	s.Equal(due, *s.engine.NextSpawn(), "the spawn stays due")
	s.Equal(saves, s.savedCount())
}

func (s *EngineTestSuite) TestForceDrop() {
	s.Run("anchors the cycle and re-arms the forced interval", func() {
		s.start(nil)
		s.expectAnnounceDrops(1)
		s.expectWinners(1)
		s.queueClaims("alice")

		result := s.engine.ForceDrop(context.Background())

		s.Equal(drop.OutcomeWon, result.Outcome)
		view := s.engine.CycleStatus()
		s.Equal(1, view.ClaimsThisCycle)
		s.Equal(t0, *view.FirstSpawnTime)
		s.Equal(t0.Add(2*time.Minute), *view.NextSpawnTime)
	})
}

func (s *EngineTestSuite) TestForceDrop_IgnoresExhaustedQuota() {
	first := t0.Add(-time.Hour)
	s.start(builder.NewSnapshotBuilder().
		WithCycle(first, 24*time.Hour, 3, 3).
		WithNextSpawn(first.Add(24*time.Hour)).
		Build())

	s.Equal(usecase.TickQuotaExhausted, s.engine.Tick(context.Background()).Action)

	s.expectAnnounceDrops(1)
	s.expectWinners(1)
	s.queueClaims("alice")

	result := s.engine.ForceDrop(context.Background())

	s.Equal(drop.OutcomeWon, result.Outcome)
	s.Equal(4, s.stock("common"))
	view := s.engine.CycleStatus()
	s.Equal(3, view.ClaimsThisCycle, "claims stay capped at the quota")
	s.Equal(first.Add(24*time.Hour), *view.NextSpawnTime)
}

func (s *EngineTestSuite) TestResetCycleNow() {
	first := t0.Add(-5 * time.Hour)
	s.start(builder.NewSnapshotBuilder().
		WithCycle(first, 24*time.Hour, 3, 3).
		Build())

	view := s.engine.ResetCycleNow(context.Background())

	s.Equal(cycle.PhaseActive, view.Phase)
	s.Zero(view.ClaimsThisCycle)
	s.Equal(3, *view.DailyQuota)
	s.Equal(t0, *view.FirstSpawnTime)
	s.Equal(t0.Add(24*time.Hour), *view.CycleResetTime)
	s.Equal(t0.Add(time.Hour), *view.NextSpawnTime)
	s.Equal(int64(86400), *view.ResetIn)

	saved := s.lastSaved()
	s.Equal(t0, *saved.Cycle.FirstSpawnTime)
}

func (s *EngineTestSuite) TestResetPoolAndHistory() {
	s.start(nil)
	s.expectAnnounceDrops(1)
	s.expectWinners(1)
	s.queueClaims("alice")
	s.engine.ForceDrop(context.Background())
	s.Require().Equal(4, s.stock("common"))

	s.engine.ResetPool(context.Background())
	s.Equal(5, s.stock("common"))
	s.Equal(1, s.engine.History(1).Total, "pool reset keeps history")

	s.engine.ResetHistory(context.Background())
	s.Zero(s.engine.History(1).Total)
	s.Empty(s.lastSaved().Winners)
	s.Equal(1, s.engine.CycleStatus().ClaimsThisCycle, "history reset keeps the cycle")
}

func (s *EngineTestSuite) TestQueries() {
	s.Run("status is ordered by rarity", func() {
		s.start(nil)

		var ids []string
		for _, v := range s.engine.Status() {
			ids = append(ids, v.ID)
		}
		s.Equal([]string{"common", "uncommon", "rare"}, ids)

		want := []readmodel.PrizeStockView{
			{ID: "common", DisplayName: "common", Rarity: "Common", Weight: 10, Remaining: 5},
			{ID: "uncommon", DisplayName: "uncommon", Rarity: "Uncommon", Weight: 0, Remaining: 2},
			{ID: "rare", DisplayName: "rare", Rarity: "Rare", Weight: 10, Remaining: 1, ForcesSkip: true},
		}
		if diff := cmp.Diff(want, s.engine.Status()); diff != "" {
			s.T().Errorf("status mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("history pages are clamped", func() {
		winners := builder.NewSnapshotBuilder()
		for i := range 7 {
			winners.WithWinner(builder.NewWinnerBuilder().
				WithUser(fmt.Sprintf("user-%d", i)).
				At(t0.Add(time.Duration(i) * time.Minute)))
		}
		s.start(winners.Build())

		page := s.engine.History(9)
		s.Equal(2, page.Page)
		s.Equal(2, page.TotalPages)
		s.Equal(7, page.Total)
		s.Len(page.Entries, 2)
		s.Equal("user-1", page.Entries[0].UserID)

		page = s.engine.History(0)
		s.Equal(1, page.Page)
		s.Equal("user-6", page.Entries[0].UserID)
		s.Equal("Bit Frame of Your Choice", page.Entries[0].PrizeName, "names of retired prizes come from the record")
	})

	s.Run("empty history", func() {
		s.start(builder.NewSnapshotBuilder().Build())
		page := s.engine.History(3)
		s.Equal(1, page.Page)
		s.Zero(page.TotalPages)
		s.Empty(page.Entries)
	})
}

func (s *EngineTestSuite) TestMetrics() {
	metrics := usecasemock.NewMockMetrics(s.mockCtrl)
	s.engine = s.newEngine(testCatalog(), metrics)

	metrics.EXPECT().StockLevels(gomock.Any()).AnyTimes()
	metrics.EXPECT().DropOpened(true)
	metrics.EXPECT().DropResolved(drop.OutcomeWon)
	s.start(nil)

	s.expectAnnounceDrops(1)
	s.expectWinners(1)
	s.queueClaims("alice")
	s.engine.ForceDrop(context.Background())
}
