package domain

type TokenPair struct {
	Refresh string
	Access  string
}

type TokenInfo struct {
	Token     string `json:"token"`
	ExpiresIn string `json:"expires_in"`
}

// CredentialResponse is the login payload returned to clients.
type CredentialResponse struct {
	Refresh TokenInfo `json:"refresh"`
	Access  TokenInfo `json:"access"`
}
