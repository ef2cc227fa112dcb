package consts

// 用户状态取值，对应 model.User.Status
const (
	UserStatusActive      = 1
	UserStatusBanned      = 2
	UserStatusDeactivated = 3
)

// DefaultBanReason 管理员未填写封禁原因时的占位文案
const DefaultBanReason = "Violation of community guidelines"

type UserField string

const (
	UserFieldUsername UserField = "username"
	UserFieldEmail    UserField = "email"
)
