package providers

import "time"

// FacebookParameters carries a Facebook access token and its expiry.
type FacebookParameters struct {
	ID          string
	AccessToken string
	Expiration  time.Time
}

func (FacebookParameters) ProviderTag() string { return TagFacebook }

func (p FacebookParameters) ToFieldMap() map[string]any {
	return map[string]any{
		"id":           p.ID,
		"access_token": p.AccessToken,
		"expiration_date": map[string]any{
			"__type": "Date",
			"iso":    p.Expiration.UTC().Format(dateISOLayout),
		},
	}
}
