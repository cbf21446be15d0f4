package twitch_client

import (
	"net/http"
	"time"
)

const twitchApiSchemeHost string = "https://api.twitch.tv"

type TwitchClient struct {
	clientID   string
	schemeHost string
	client     *http.Client
}

func NewTwitchClient(clientID string) *TwitchClient {
	return &TwitchClient{
		clientID:   clientID,
		schemeHost: twitchApiSchemeHost,
		client: &http.Client{
			Timeout: time.Second * 5,
		},
	}
}
