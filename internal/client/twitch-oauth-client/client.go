package twitch_oauth_client

import (
	"net/http"
	"time"
)

const twitchIDSchemeHost string = "https://id.twitch.tv"

type TwitchOauthClient struct {
	clientID     string
	clientSecret string
	schemeHost   string
	client       *http.Client
}

func NewTwitchOauthClient(
	clientID, clientSecret string,
) *TwitchOauthClient {
	return &TwitchOauthClient{
		clientID:     clientID,
		clientSecret: clientSecret,
		schemeHost:   twitchIDSchemeHost,
		client: &http.Client{
			Timeout: time.Second * 5,
		},
	}
}
