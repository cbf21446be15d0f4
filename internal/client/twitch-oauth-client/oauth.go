package twitch_oauth_client

import (
	"context"
	"io"
	"net/http"

	"github.com/isergeich22/twitch-bot/internal/models"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

// TwitchOAuthGetToken requests a new app access token via the
// client-credentials grant.
func (twc *TwitchOauthClient) TwitchOAuthGetToken(ctx context.Context) (data *models.TwitchOautGetTokenResponse, err error) {

	req, err := http.NewRequestWithContext(ctx, "POST", twc.schemeHost+"/oauth2/token", nil)
	if err != nil {
		return nil, err
	}

	query := req.URL.Query()
	query.Add("client_id", twc.clientID)
	query.Add("client_secret", twc.clientSecret)
	query.Add("grant_type", "client_credentials")
	req.URL.RawQuery = query.Encode()

	req.Header.Add("Content-Type", "application/x-www-form-urlencoded")

	resp, err := twc.client.Do(req)
	if err != nil {
		return
	}

	defer resp.Body.Close()

	readedResp, err := io.ReadAll(resp.Body)
	if err != nil {
		return
	}

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("get twitch token failed with status code: %d", resp.StatusCode)
	}

	var tokenInfo models.TwitchOautGetTokenResponse
	err = jsoniter.Unmarshal(readedResp, &tokenInfo)
	if err != nil {
		return
	}

	if tokenInfo.AccessToken == "" {
		return nil, errors.New("empty access token in response")
	}

	data = &tokenInfo

	return
}
