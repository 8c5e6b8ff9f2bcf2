package providers

// TwitterParameters carries the OAuth1 token set Twitter linking requires.
type TwitterParameters struct {
	ID               string
	ScreenName       string
	ConsumerKey      string
	ConsumerSecret   string
	OAuthToken       string
	OAuthTokenSecret string
}

func (TwitterParameters) ProviderTag() string { return TagTwitter }

func (p TwitterParameters) ToFieldMap() map[string]any {
	return map[string]any{
		"id":                 p.ID,
		"screen_name":        p.ScreenName,
		"oauth_consumer_key": p.ConsumerKey,
		"consumer_secret":    p.ConsumerSecret,
		"oauth_token":        p.OAuthToken,
		"oauth_token_secret": p.OAuthTokenSecret,
	}
}
