package response

import (
	"time"

	"dropengine/internal/domain/drop"
	"dropengine/internal/pkg/errs"
	"dropengine/internal/usecase"
	"dropengine/internal/usecase/readmodel"

	"github.com/jinzhu/copier"
)

// Response types are filled from the read models with copier. A copier tag
// names the read model field when it differs from the response field.

type PrizeStockResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name" copier:"DisplayName"`
	Rarity        string  `json:"rarity"`
	Weight        float64 `json:"weight"`
	Remaining     int     `json:"remaining"`
	MandatorySkip bool    `json:"mandatorySkip" copier:"ForcesSkip"`
}

type StatusResponse struct {
	Prizes         []PrizeStockResponse `json:"prizes"`
	TotalRemaining int                  `json:"totalRemaining"`
}

type WinnerResponse struct {
	UserID     string    `json:"userId"`
	PrizeID    string    `json:"prizeId"`
	PrizeName  string    `json:"prizeName"`
	Rarity     string    `json:"rarity,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
	MessageRef string    `json:"messageRef,omitempty"`
	ChannelRef string    `json:"channelRef,omitempty"`
}

type HistoryResponse struct {
	Winners    []WinnerResponse `json:"winners" copier:"Entries"`
	Page       int              `json:"page"`
	TotalPages int              `json:"totalPages"`
	Total      int              `json:"total"`
}

type CycleResponse struct {
	Phase              string     `json:"phase"`
	ClaimsThisCycle    int        `json:"claimsThisCycle"`
	DailyQuota         *int       `json:"dailyQuota,omitempty"`
	RemainingClaims    *int       `json:"remainingClaims,omitempty" copier:"Remaining"`
	FirstSpawnTime     *time.Time `json:"firstSpawnTime,omitempty"`
	CycleResetTime     *time.Time `json:"cycleResetTime,omitempty"`
	NextSpawnTime      *time.Time `json:"nextSpawnTime,omitempty"`
	ResetInSeconds     *int64     `json:"resetInSeconds,omitempty" copier:"ResetIn"`
	NextSpawnInSeconds *int64     `json:"nextSpawnInSeconds,omitempty" copier:"NextSpawnIn"`
}

type NextSpawnResponse struct {
	NextSpawnTime *time.Time `json:"nextSpawnTime"`
	Scheduled     bool       `json:"scheduled"`
}

type ActiveDropResponse struct {
	Open          bool       `json:"open"`
	Handle        string     `json:"handle,omitempty"`
	ChannelRef    string     `json:"channelRef,omitempty"`
	OpenedAt      *time.Time `json:"openedAt,omitempty"`
	Deadline      *time.Time `json:"deadline,omitempty"`
	WindowSeconds int        `json:"windowSeconds,omitempty"`
	Forced        bool       `json:"forced,omitempty"`
}

type ClaimAcceptedResponse struct {
	Handle     string    `json:"handle"`
	UserID     string    `json:"userId"`
	ReceivedAt time.Time `json:"receivedAt"`
}

type DropResultResponse struct {
	Outcome  string              `json:"outcome"`
	Handle   string              `json:"handle,omitempty"`
	WinnerID string              `json:"winnerId,omitempty"`
	Prize    *PrizeStockResponse `json:"prize,omitempty"`
	Rejected int                 `json:"rejected"`
	Reason   string              `json:"reason,omitempty"`
}

type TickResponse struct {
	Action     string              `json:"action"`
	CycleReset bool                `json:"cycleReset"`
	NextSpawn  *time.Time          `json:"nextSpawn,omitempty"`
	Result     *DropResultResponse `json:"result,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func FromStatus(views []readmodel.PrizeStockView) (*StatusResponse, error) {
	resp := &StatusResponse{Prizes: make([]PrizeStockResponse, 0, len(views))}
	if err := copier.Copy(&resp.Prizes, &views); err != nil {
		return nil, errs.Wrap(err, "map prize stock")
	}
	for _, v := range views {
		resp.TotalRemaining += v.Remaining
	}
	return resp, nil
}

func FromHistory(page readmodel.HistoryPage) (*HistoryResponse, error) {
	resp := &HistoryResponse{Winners: make([]WinnerResponse, 0, len(page.Entries))}
	if err := copier.Copy(resp, &page); err != nil {
		return nil, errs.Wrap(err, "map winner history")
	}
	return resp, nil
}

func FromCycle(v readmodel.CycleView) (*CycleResponse, error) {
	resp := &CycleResponse{}
	if err := copier.Copy(resp, &v); err != nil {
		return nil, errs.Wrap(err, "map cycle status")
	}
	return resp, nil
}

func FromActiveDrop(v *readmodel.ActiveDropView) *ActiveDropResponse {
	if v == nil {
		return &ActiveDropResponse{Open: false}
	}
	openedAt, deadline := v.OpenedAt, v.Deadline
	return &ActiveDropResponse{
		Open:          true,
		Handle:        v.Handle,
		ChannelRef:    v.ChannelRef,
		OpenedAt:      &openedAt,
		Deadline:      &deadline,
		WindowSeconds: v.WindowSeconds,
		Forced:        v.Forced,
	}
}

func FromAttempt(a drop.Attempt) *ClaimAcceptedResponse {
	return &ClaimAcceptedResponse{
		Handle:     a.Handle.String(),
		UserID:     a.UserID,
		ReceivedAt: a.At,
	}
}

func FromDropResult(r drop.Result) *DropResultResponse {
	resp := &DropResultResponse{
		Outcome:  r.Outcome.String(),
		Handle:   r.Handle.String(),
		WinnerID: r.WinnerID,
		Rejected: r.Rejected,
		Reason:   r.Reason,
	}
	if r.Prize != nil {
		resp.Prize = &PrizeStockResponse{
			ID:            r.Prize.ID.String(),
			Name:          r.Prize.DisplayName,
			Rarity:        r.Prize.Rarity.String(),
			Weight:        r.Prize.Weight,
			Remaining:     r.Prize.Remaining,
			MandatorySkip: r.Prize.ForcesSkip(),
		}
	}
	return resp
}

func FromTickReport(r usecase.TickReport) *TickResponse {
	resp := &TickResponse{
		Action:     string(r.Action),
		CycleReset: r.CycleReset,
		NextSpawn:  r.NextSpawn,
	}
	if r.Result != nil {
		resp.Result = FromDropResult(*r.Result)
	}
	return resp
}
