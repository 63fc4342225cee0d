package constants

const (
	ROLE_ADMIN    = "admin"
	ROLE_CUSTOMER = "customer"
)

const (
	ERROR_INTERNAL_ERROR     = "Internal server error"
	ERROR_INPUT              = "Invalid input"
	DATA_INPUT_IS_NOT_NUMBER = "Path parameter must be a number"
	VALIDATION_FAILED        = "Validation failed"
	UNAUTHORIZED             = "Please sign in"
	FORBIDDEN                = "Admin only"
	NOT_FOUND                = "Record not found"
)

// Cached CMS singletons.
const (
	CACHE_KEY_FISHING_CMS = "content:fishing"
	CACHE_KEY_ABOUT_PAGE  = "content:about"
)

const ORDER_FEED_CHANNEL = "orders:feed"
