package auth

import "time"

// Known principal roles.
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// Claims identify an authenticated principal. Subject is the customer
// phone number, or "admin" for the dashboard operator.
type Claims struct {
	Subject string
	Role    string
	Name    string
}

type Strategy interface {
	IssueToken(claims Claims) (string, error)
	ParseToken(token string) (Claims, error)
	Name() string
}

type Options struct {
	TTL time.Duration
}
