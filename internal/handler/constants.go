package handler

// Route constants shared across handlers.
const (
	RouteRoot   = "/"
	RouteLogin  = "/auth/login"
	RouteLogout = "/auth/logout"
	RouteAdmin  = "/admin"
)

// msgInvalidCredentials is the single message used for every login failure
// so responses do not reveal whether an account exists.
const msgInvalidCredentials = "Invalid credentials."

// Flash message types.
const (
	flashSuccess = "success"
	flashError   = "error"
	flashInfo    = "info"
)

// adminPageSize is the number of rows per admin list page.
const adminPageSize = 25

// Upload target directories below the static root.
const (
	headerImageDir  = "images/headers"
	facultyImageDir = "images/faculty"
)
