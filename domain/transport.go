package domain

// AuthenticateResponse is the wire shape of a successful backend response.
// It is used only to deserialize and is not retained beyond the parse step.
type AuthenticateResponse struct {
	Action     Action      `json:"action"`
	UserId     string      `json:"user_id"`
	Device     *Device     `json:"device,omitempty"`
	RiskPolicy *RiskPolicy `json:"risk_policy,omitempty"`
}

type Device struct {
	Token string `json:"token"`
}

type RiskPolicy struct {
	Id         string `json:"id"`
	RevisionId string `json:"revision_id"`
	Name       string `json:"name"`
	Type       string `json:"type"`
}
