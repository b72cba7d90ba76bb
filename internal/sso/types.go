package sso

// Credentials are the SSO login inputs supplied by the operator. They are
// persisted verbatim and never expire on their own. OTP and OTPType are
// optional; the login exchange substitutes "NONE" and "PUSH" when empty.
type Credentials struct {
	UserID   string `json:"userid"`
	Password string `json:"password"`
	OTP      string `json:"otp,omitempty"`
	OTPType  string `json:"otp_type,omitempty"`
}

// EndpointConfig names the SSO endpoint, the downstream API base URL and
// the routing parameters the downstream client needs.
type EndpointConfig struct {
	SSOURL     string `json:"sso_url"`
	APIBaseURL string `json:"api_base_url"`
	ProjectID  string `json:"project_id,omitempty"`
	Location   string `json:"location,omitempty"`
	ModelID    string `json:"model_id,omitempty"`
}

// TokenResponse is the SSO endpoint's reply to a successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	Scope       string `json:"scope"`
	IDToken     string `json:"id_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"` // seconds
	Nonce       string `json:"nonce"`
}
