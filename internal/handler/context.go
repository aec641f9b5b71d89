package handler

type ContextKey string

var (
	RoleCtxKey     ContextKey = "role"
	SubCtxKey      ContextKey = "sub"
	MyInfoCtx      ContextKey = "myInfo"
	UserInfoCtx    ContextKey = "userInfo"
	PatientInfoCtx ContextKey = "patientInfo"
	AppointmentCtx ContextKey = "appointment"
)
