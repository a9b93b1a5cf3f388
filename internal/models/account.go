package models

type Wallet struct {
	ID             string `json:"id"`
	Currency       string `json:"currency"`
	Balance        string `json:"balance"`
	BlockedBalance string `json:"blocked_balance"`
	ActiveBalance  string `json:"active_balance"`
}

type Profile struct {
	Username         string `json:"username"`
	Email            string `json:"email"`
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	Mobile           string `json:"mobile"`
	WithdrawEligible bool   `json:"withdraw_eligible"`
}

type LoginAttempt struct {
	IP        string `json:"ip"`
	Username  string `json:"username"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}
