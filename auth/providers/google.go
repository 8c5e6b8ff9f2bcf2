package providers

// GoogleParameters carries a Google OAuth2 access token.
type GoogleParameters struct {
	ID          string
	AccessToken string
}

func (GoogleParameters) ProviderTag() string { return TagGoogle }

func (p GoogleParameters) ToFieldMap() map[string]any {
	return map[string]any{
		"id":           p.ID,
		"access_token": p.AccessToken,
	}
}
