package twitch_client

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/isergeich22/twitch-bot/internal/models"

	jsoniter "github.com/json-iterator/go"
)

// GetActiveStreamInfoByUser queries helix streams for a single channel login.
// An empty data list in the response means the channel is offline.
func (twc *TwitchClient) GetActiveStreamInfoByUser(ctx context.Context, token, userLogin string) (data *models.Streams, err error) {

	req, err := http.NewRequestWithContext(ctx, "GET", twc.schemeHost+"/helix/streams", nil)
	if err != nil {
		return
	}

	query := req.URL.Query()
	query.Add("user_login", userLogin)
	req.URL.RawQuery = query.Encode()

	req.Header.Add("Client-Id", twc.clientID)
	req.Header.Add("Authorization", fmt.Sprintf("Bearer %s", token))

	resp, err := twc.client.Do(req)
	if err != nil {
		return
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode == http.StatusUnauthorized {
			readedResp, err := io.ReadAll(resp.Body)
			if err != nil {
				return nil, err
			}

			var unauthorizedResp models.GetStreamsUnauthorized
			err = jsoniter.Unmarshal(readedResp, &unauthorizedResp)
			if err != nil {
				return nil, err
			}

			return nil, &models.APIError{
				Kind:       models.APIErrorUnauthorized,
				StatusCode: resp.StatusCode,
				Message:    unauthorizedResp.Message,
			}
		}

		return nil, &models.APIError{
			Kind:       models.APIErrorTransient,
			StatusCode: resp.StatusCode,
			Message:    "get twitch streams failed",
		}
	}

	readedResp, err := io.ReadAll(resp.Body)
	if err != nil {
		return
	}

	var streamsInfo models.Streams
	err = jsoniter.Unmarshal(readedResp, &streamsInfo)
	if err != nil {
		return
	}

	data = &streamsInfo

	return
}
