package consts

const (

	// ConfigSiteName 网站名称
	ConfigSiteName = "site_name"

	// ConfigSiteDescription 网站描述
	ConfigSiteDescription = "site_description"

	// ConfigAllowRegister 是否开放注册 (true/false)
	ConfigAllowRegister = "registration_enabled"

	// FeatureReviews 是否允许发布评价 (true/false)
	FeatureReviews = "reviews_enabled"

	// FeatureRestaurantSubmissions 是否允许用户提交餐厅 (true/false)
	FeatureRestaurantSubmissions = "restaurant_submissions_enabled"

	// FeatureReviewApproval 评价是否需要管理员审核后才可见 (true/false)
	FeatureReviewApproval = "review_approval_required"

	// FeatureRestaurantApproval 非管理员提交的餐厅是否需要审核 (true/false)
	FeatureRestaurantApproval = "restaurants_require_approval"

	// FeatureMaintenanceMode 维护模式 (true 时除白名单路由外全部 503)
	FeatureMaintenanceMode = "maintenance_mode"

	// ConfigReputationBadgeMode 徽章计算模式: score(按声望分) / count(按评价数)
	ConfigReputationBadgeMode = "reputation_badge_mode"

	// ConfigRateLimitEnabled 是否开启限流
	ConfigRateLimitEnabled = "rate_limit_enabled"

	// ConfigRateLimitAuthRPS 认证接口限流 RPS
	ConfigRateLimitAuthRPS = "rate_limit_auth_rps"

	// ConfigRateLimitAuthBurst 认证接口限流 Burst
	ConfigRateLimitAuthBurst = "rate_limit_auth_burst"

	// ConfigMaxRequestBodySize 最大请求体限制 (MB)
	ConfigMaxRequestBodySize = "max_request_body_size"
)

// BadgeModeScore / BadgeModeCount 是 ConfigReputationBadgeMode 的合法取值。
const (
	BadgeModeScore = "score"
	BadgeModeCount = "count"
)
