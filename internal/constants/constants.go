package constants

// Centralized constants for env keys, headers and gameplay tuning.
const (
	// Environment variable keys
	EnvConfigPath = "TEXTGAME_CONFIG"
	EnvHTTPAddr   = "TEXTGAME_ADDR"
	EnvDBPath     = "TEXTGAME_DB"
	EnvLogLevel   = "LOG_LEVEL"
	EnvLogFormat  = "LOG_FORMAT"

	// HTTP headers and content types
	HeaderContentType = "Content-Type"
	ContentTypeJSON   = "application/json"
)

// Routes used by the backend router
const (
	RouteAPIPrefix = "/api"

	RouteCharacters  = "/characters"
	RouteLeaderboard = "/leaderboard"
	RouteStats       = "/stats"
	RouteVersion     = "/version"

	RouteGames          = "/game/new"
	RouteGameByID       = "/game/:gameID"
	RouteGameNode       = "/game/:gameID/node"
	RouteGamePlayCard   = "/game/:gameID/play-card"
	RouteGameEndTurn    = "/game/:gameID/end-turn"
	RouteGameCardReward = "/game/:gameID/card-reward"
	RouteGameBossRelic  = "/game/:gameID/boss-relic"
	RouteGameRest       = "/game/:gameID/rest"
	RouteGameShopBuy    = "/game/:gameID/shop/buy"
	RouteGameShopLeave  = "/game/:gameID/shop/leave"
	RouteGameEvent      = "/game/:gameID/event"
	RouteGamePotion     = "/game/:gameID/potion"
	RouteGameAbandon    = "/game/:gameID/abandon"
)

// Common JSON response keys
const (
	JSONKeyError   = "error"
	JSONKeyMessage = "message"
	JSONKeyKind    = "kind"
	JSONKeyNeed    = "need"
	JSONKeyHave    = "have"
	JSONKeyStatus  = "status"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest  = "Invalid request"
	ErrInvalidGameID   = "Invalid game ID"
	ErrGameNotFound    = "Game not found"
	ErrGameOver        = "Game is already over"
	ErrFailedSaveGame  = "Failed to save game"
	ErrFailedLoadGame  = "Failed to load game"
	ErrFailedFetchRuns = "Failed to fetch leaderboard"
	ErrUnknownAction   = "Unknown action"
)

// Logging field names
const (
	LogFieldGameID    = "game_id"
	LogFieldPhase     = "phase"
	LogFieldCharacter = "character"
	LogFieldAscension = "ascension"
	LogFieldFloor     = "floor"
	LogFieldNodeID    = "node_id"
	LogFieldNodeType  = "node_type"
	LogFieldCardID    = "card_id"
	LogFieldRelicID   = "relic_id"
	LogFieldHook      = "hook"
	LogFieldErrorKind = "error_kind"
	LogFieldAddr      = "addr"
	LogFieldSource    = "source"
	LogFieldKey       = "key"
)

// Gameplay tuning shared by engine and services.
const (
	MaxPotionSlots = 3
	MaxOrbSlots    = 3
	HandDrawBase   = 5

	ShopRemoveBasePrice = 75
	ShopHealPrice       = 30
	MaxAscension        = 5
)
