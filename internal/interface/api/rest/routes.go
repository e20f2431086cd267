package rest

const (
	// api
	RouteApiV1 = "/api/v1"

	// auth
	RouteAuth  = RouteApiV1 + "/auth"
	RouteLogin = RouteAuth + "/login"

	// registration
	RouteRegistration           = RouteApiV1 + "/registration"
	RouteRegistrationCode       = RouteRegistration + "/code"
	RouteRegistrationCodeVerify = RouteRegistrationCode + "/verify"

	RouteUsers  = RouteApiV1 + "/users"
	RouteUserMe = RouteUsers + "/me"

	// ops
	RouteHealth  = RouteApiV1 + "/healthz"
	RouteMetrics = RouteApiV1 + "/metrics"
)
