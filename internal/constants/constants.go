package constants

// Centralized constants for env keys, routes, responses and log fields.
const (
	// Environment variable keys
	EnvConfigPath = "ARENA_CONFIG"
	EnvDBPath     = "ARENA_DB"

	DefaultConfigPath = "./arena_config.json"
	DefaultDBPath     = "./data/arena.db"

	HeaderContentType = "Content-Type"
	ContentTypeJSON   = "application/json"
)

// Routes used by the backend router
const (
	RouteAPIPrefix      = "/api"
	RouteVersion        = "/version"
	RouteWeapons        = "/weapons"
	RouteRobots         = "/robots"
	RouteRobotByID      = "/robots/:robotID"
	RouteRobotAttack    = "/robots/:robotID/attack"
	RouteRobotRepair    = "/robots/:robotID/repair"
	RouteContests       = "/contests"
	RouteContestByID    = "/contests/:contestID"
	RouteContestResolve = "/contests/:contestID/resolve"
	RouteLeaderboard    = "/leaderboard"
)

// Common JSON response keys
const (
	JSONKeyError   = "error"
	JSONKeyMessage = "message"
	JSONKeyStatus  = "status"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest         = "Invalid request"
	ErrInvalidRobotID         = "Invalid robot ID"
	ErrInvalidContestID       = "Invalid contest ID"
	ErrRobotNotFound          = "Robot not found"
	ErrContestNotFound        = "Contest not found"
	ErrFailedFetchWeapons     = "Failed to fetch weapons"
	ErrFailedFetchRobots      = "Failed to fetch robots"
	ErrFailedFetchLeaderboard = "Failed to fetch leaderboard"
	ErrFailedCreateRobot      = "Failed to create robot"
	ErrFailedCreateContest    = "Failed to create contest"
	ErrFailedResolveContest   = "Failed to resolve contest"
	ErrFailedAttack           = "Failed to resolve attack"
	ErrFailedRepairRobot      = "Failed to repair robot"
	ErrFailedEncodeRobot      = "Failed to encode robot"
	ErrFailedEncodeContest    = "Failed to encode contest"
	ErrRobotNameExceeds       = "Robot name exceeds 64 characters"
	ErrSameRobot              = "A robot cannot fight itself"
	ErrUnknownWeapon          = "Unknown weapon"
	ErrContestAlreadyFinished = "Contest already finished"
	ErrRobotNameTaken         = "Robot name already taken"
	ErrInvalidRobotDefinition = "Robot needs a name, damage >= 0 and health > 0"
)

// Logging field names
const (
	LogFieldContestID  = "contest_id"
	LogFieldContestKey = "contest_key"
	LogFieldRobotID    = "robot_id"
	LogFieldAttackerID = "attacker_id"
	LogFieldDefenderID = "defender_id"
	LogFieldWinner     = "winner"
	LogFieldTurns      = "turns"
	LogFieldStatus     = "status"
	LogFieldName       = "name"
	LogFieldAddr       = "addr"
	LogFieldConfigPath = "config_path"
	LogFieldDBPath     = "db_path"
	LogFieldMatchup    = "matchup"
	LogFieldWeapon     = "weapon"
	LogFieldCount      = "count"
	LogFieldDamage     = "damage"
	LogFieldOutcome    = "outcome"
	LogFieldBuild      = "build"
)
