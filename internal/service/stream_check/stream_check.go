// Package stream_check polls twitch for the configured channel's live state
// and fires a telegram notification when a new broadcast appears.
package stream_check

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/isergeich22/twitch-bot/internal/models"
	"github.com/isergeich22/twitch-bot/internal/service/notification"
	formater "github.com/isergeich22/twitch-bot/internal/utils/formater"
)

const streamCheckBGSync = "streamCheck_BGSync"

type twitchClient interface {
	GetActiveStreamInfoByUser(ctx context.Context, token, userLogin string) (*models.Streams, error)
}

type tokenService interface {
	Token(ctx context.Context) (string, error)
	Invalidate()
}

type stateRepository interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, streamID string) error
}

type notifier interface {
	ThrowNotification(ctx context.Context, info models.StreamInfo) (*notification.ScheduledDelete, error)
}

type StreamCheckService struct {
	channel      string
	twitchClient twitchClient
	tokenService tokenService
	stateRepo    stateRepository
	notifier     notifier

	// guards the in-memory state read by the status handler; CheckOnce
	// itself is only ever called from the serial SyncBg loop
	mu         sync.Mutex
	lastSeenID string
	live       bool
}

func NewStreamCheckService(
	channel string,
	twitchClient twitchClient,
	tokenService tokenService,
	stateRepo stateRepository,
	notifier notifier,
) *StreamCheckService {
	return &StreamCheckService{
		channel:      channel,
		twitchClient: twitchClient,
		tokenService: tokenService,
		stateRepo:    stateRepo,
		notifier:     notifier,
	}
}

// CheckOnce runs one poll cycle: query the live state, compare against the
// last notified broadcast id and notify on a new one. Every failure aborts
// the cycle only; the next tick retries naturally.
func (scs *StreamCheckService) CheckOnce(ctx context.Context) error {

	token, err := scs.tokenService.Token(ctx)
	if err != nil {
		return errors.Wrap(err, "Token")
	}

	streams, err := scs.twitchClient.GetActiveStreamInfoByUser(ctx, token, scs.channel)
	if err != nil {
		var apiErr *models.APIError
		if errors.As(err, &apiErr) && apiErr.IsUnauthorized() {
			logrus.Info("twitch token expired, requesting a new one")

			scs.tokenService.Invalidate()
			if _, err := scs.tokenService.Token(ctx); err != nil {
				return errors.Wrap(err, "Token")
			}

			return nil
		}

		return errors.Wrap(err, "GetActiveStreamInfoByUser")
	}

	if streams == nil || len(streams.StreamInfo) == 0 {
		logrus.Info("no active stream found, waiting...")

		// only the in-memory id is cleared; the persisted id stays so a
		// restart or a short offline blip cannot re-notify the same broadcast
		scs.setOffline()

		return nil
	}

	stream := streams.StreamInfo[0]

	if scs.seen(stream.StreamId) {
		return nil
	}

	lastStreamID, err := scs.stateRepo.Load(ctx)
	if err != nil {
		return errors.Wrap(err, "Load")
	}

	if stream.StreamId == lastStreamID {
		scs.setLive(stream.StreamId)
		return nil
	}

	info := models.StreamInfo{
		UserName:  stream.UserName,
		UserLogin: stream.UserLogin,
		Title:     stream.Title,
		Category:  stream.GameName,
		StartTime: formater.CreateStreamStartTime(stream.StartedAt),
		Image:     formater.CreateStreamThumbnail(stream.ThumbnailUrl),
		Viewers:   stream.ViewerCount,
	}

	if info.UserName == "" {
		info.UserName = stream.UserLogin
	}

	if _, err := scs.notifier.ThrowNotification(ctx, info); err != nil {
		// the persisted id is intentionally left unchanged so the next
		// cycle retries the send
		return errors.Wrap(err, "ThrowNotification")
	}

	scs.setLive(stream.StreamId)

	if err := scs.stateRepo.Save(ctx, stream.StreamId); err != nil {
		return errors.Wrap(err, "Save")
	}

	return nil
}

// SyncBg drives CheckOnce on a fixed interval. Cycles never overlap:
// the next tick is not read until the current check returns.
func (scs *StreamCheckService) SyncBg(ctx context.Context, checkInterval time.Duration) {
	ticker := time.NewTicker(checkInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logrus.Infof("stoping bg %s process", streamCheckBGSync)
			return
		case <-ticker.C:
			err := scs.CheckOnce(ctx)
			if err != nil {
				logrus.Errorf("could not check stream: %v", err)
			}
		}
	}
}

func (scs *StreamCheckService) seen(streamID string) bool {
	scs.mu.Lock()
	defer scs.mu.Unlock()

	return scs.live && scs.lastSeenID == streamID
}

func (scs *StreamCheckService) setLive(streamID string) {
	scs.mu.Lock()
	defer scs.mu.Unlock()

	scs.live = true
	scs.lastSeenID = streamID
}

func (scs *StreamCheckService) setOffline() {
	scs.mu.Lock()
	defer scs.mu.Unlock()

	scs.live = false
	scs.lastSeenID = ""
}

// Status is the poller state exposed by the debug endpoint.
type Status struct {
	Channel      string `json:"channel"`
	Live         bool   `json:"live"`
	LastStreamID string `json:"last_stream_id,omitempty"`
}

func (scs *StreamCheckService) CurrentStatus() Status {
	scs.mu.Lock()
	defer scs.mu.Unlock()

	return Status{
		Channel:      scs.channel,
		Live:         scs.live,
		LastStreamID: scs.lastSeenID,
	}
}
