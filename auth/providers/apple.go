package providers

// AppleParameters carries Sign in with Apple credentials.
type AppleParameters struct {
	ID          string
	AccessToken string
	ClientID    string
}

func (AppleParameters) ProviderTag() string { return TagApple }

func (p AppleParameters) ToFieldMap() map[string]any {
	return map[string]any{
		"id":           p.ID,
		"access_token": p.AccessToken,
		"client_id":    p.ClientID,
	}
}
