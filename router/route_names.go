package router

const (
	Account  = "/account"
	Profile  = "/profile"
	Password = "/password"
	Withdraw = "/withdraw"
	Health   = "/healthz"
	Metrics  = "/metrics"
)
