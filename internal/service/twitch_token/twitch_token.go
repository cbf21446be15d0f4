package twitch_token

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/isergeich22/twitch-bot/internal/models"
)

type twitchOauthClient interface {
	TwitchOAuthGetToken(ctx context.Context) (*models.TwitchOautGetTokenResponse, error)
}

// TwitchTokenService owns the app access token. The token has no proactive
// expiry tracking: renewal is reactive, via Invalidate on an unauthorized
// response followed by the next Token call.
type TwitchTokenService struct {
	mu                sync.Mutex
	token             string
	twitchOauthClient twitchOauthClient
}

func NewTwitchTokenService(twitchOauthClient twitchOauthClient) *TwitchTokenService {
	return &TwitchTokenService{
		twitchOauthClient: twitchOauthClient,
	}
}

// Token returns the cached token, requesting a new one when the cache is
// empty. A failed request caches nothing.
func (tts *TwitchTokenService) Token(ctx context.Context) (string, error) {
	tts.mu.Lock()
	defer tts.mu.Unlock()

	if tts.token != "" {
		return tts.token, nil
	}

	tokenInfo, err := tts.twitchOauthClient.TwitchOAuthGetToken(ctx)
	if err != nil {
		return "", errors.Wrap(err, "TwitchOAuthGetToken")
	}

	if tokenInfo == nil {
		return "", errors.Wrap(errors.New("empty client resp"), "TwitchOAuthGetToken")
	}

	tts.token = tokenInfo.AccessToken

	logrus.Info("new twitch access token received")

	return tts.token, nil
}

// Invalidate clears the cache, forcing the next Token call to re-request.
func (tts *TwitchTokenService) Invalidate() {
	tts.mu.Lock()
	defer tts.mu.Unlock()

	tts.token = ""
}

func (tts *TwitchTokenService) HasToken() bool {
	tts.mu.Lock()
	defer tts.mu.Unlock()

	return tts.token != ""
}
