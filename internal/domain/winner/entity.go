package winner

import (
	"errors"
	"strings"
	"time"

	"dropengine/internal/domain/prize"
)

var (
	ErrEmptyUserID  = errors.New("winner user id cannot be empty")
	ErrEmptyPrizeID = errors.New("winner prize id cannot be empty")
)

// Record is one committed win. Records are immutable once appended.
type Record struct {
	userID     string
	prizeID    prize.ID
	prizeName  string
	timestamp  time.Time
	messageRef string
	channelRef string
}

func NewRecord(userID string, prizeID prize.ID, prizeName string, at time.Time, messageRef, channelRef string) (Record, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return Record{}, ErrEmptyUserID
	}
	if prizeID == "" {
		return Record{}, ErrEmptyPrizeID
	}
	return Record{
		userID:     userID,
		prizeID:    prizeID,
		prizeName:  prizeName,
		timestamp:  at.UTC(),
		messageRef: messageRef,
		channelRef: channelRef,
	}, nil
}

func (r Record) UserID() string       { return r.userID }
func (r Record) PrizeID() prize.ID    { return r.prizeID }
func (r Record) PrizeName() string    { return r.prizeName }
func (r Record) Timestamp() time.Time { return r.timestamp }
func (r Record) MessageRef() string   { return r.messageRef }
func (r Record) ChannelRef() string   { return r.channelRef }
