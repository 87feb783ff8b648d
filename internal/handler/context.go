package handler

type ContextKey string

var (
	RoleCtxKey       ContextKey = "role"
	SubCtxKey        ContextKey = "sub"
	MyInfoCtx        ContextKey = "myInfo"
	UserInfoCtx      ContextKey = "userInfo"
	SiteCtx          ContextKey = "site"
	ShiftCtx         ContextKey = "shift"
	ShiftTemplateCtx ContextKey = "shiftTemplate"
	IncidentCtx      ContextKey = "incident"
	TimeEntryCtx     ContextKey = "timeEntry"
)
