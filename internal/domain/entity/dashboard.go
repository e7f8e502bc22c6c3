package entity

// DashboardStats summarizes the account base for the admin dashboard.
type DashboardStats struct {
	TotalAccounts  int64          `json:"totalAccounts"`
	AccountsByRole map[Role]int64 `json:"accountsByRole"`
}
