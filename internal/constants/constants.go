package constants

// Centralized constants for env keys, routes and response payloads.
const (
	// Environment variable keys
	EnvConfigPath   = "BOXING_CONFIG"
	EnvDBPath       = "BOXING_DB"
	EnvRandomOrgURL = "RANDOM_ORG_URL"

	// HTTP headers and content types
	HeaderContentType = "Content-Type"
	ContentTypeJSON   = "application/json"
)

// Routes used by the backend router
const (
	RouteAPIPrefix   = "/api"
	RouteHealth      = "/health"
	RouteVersion     = "/version"
	RouteBoxers      = "/boxers"
	RouteBoxerByID   = "/boxers/:boxerID"
	RouteBoxerByName = "/boxers/name/:name"
	RouteLeaderboard = "/leaderboard"
	RouteRing        = "/ring"
	RouteRingEnter   = "/ring/enter"
	RouteRingClear   = "/ring/clear"
	RouteFight       = "/fight"
)

// Common JSON response keys
const (
	JSONKeyError   = "error"
	JSONKeyStatus  = "status"
	JSONKeyMessage = "message"
	JSONKeyWinner  = "winner"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest         = "Invalid request"
	ErrInvalidBoxerID         = "Invalid boxer ID"
	ErrBoxerNotFound          = "Boxer not found"
	ErrBoxerNameRequired      = "Boxer name is required"
	ErrFailedCreateBoxer      = "Failed to create boxer"
	ErrFailedDeleteBoxer      = "Failed to delete boxer"
	ErrFailedFetchBoxer       = "Failed to fetch boxer"
	ErrFailedFetchLeaderboard = "Failed to fetch leaderboard"
	ErrFailedFetchRing        = "Failed to fetch ring"
	ErrRandomSourceFailed     = "Random source request failed"
	ErrFailedRecordResults    = "Failed to record fight results"
)

// Logging field names
const (
	LogFieldAddr    = "addr"
	LogFieldBoxerID = "boxer_id"
	LogFieldName    = "name"
	LogFieldWinner  = "winner"
	LogFieldSortBy  = "sort_by"
)
