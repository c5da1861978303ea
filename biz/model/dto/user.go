package dto

// AccountResp is the public projection of an account. The password hash is
// never part of it.
type AccountResp struct {
	Username string        `json:"username"`
	Name     string        `json:"name"`
	Stocks   []HoldingResp `json:"stocks"`
}

type HoldingResp struct {
	Symbol string  `json:"symbol"`
	Units  float64 `json:"units"`
}

type LoginResp struct {
	AuthToken string `json:"authToken"`
}

type RefreshResp struct {
	AuthToken string `json:"authToken"`
}
