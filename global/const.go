package global

const (
	AppName    = "DreamHome"
	AppVersion = "1.0.0" // shown in boot logs and /health

	// Gin context keys set by the auth guard.
	CtxUserIDKey = "uid"
	CtxUserKey   = "user"
	CtxRoleKey   = "role"

	// Roles stored on models.User.
	RoleUser  = "user"
	RoleAdmin = "admin"
)
