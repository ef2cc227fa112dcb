package consts

// 自动徽章等级名称（由声望或评价数推导，用户同一时间只能持有其中一个）
const (
	TierEliteFoodie      = "Elite Foodie"
	TierExpertReviewer   = "Expert Reviewer"
	TierExperiencedDiner = "Experienced Diner"
	TierRisingCritic     = "Rising Critic"
	TierFoodExplorer     = "Food Explorer"
	TierNewcomer         = "Newcomer"
)

// AutoTierNames 按等级从高到低排列
var AutoTierNames = []string{
	TierEliteFoodie,
	TierExpertReviewer,
	TierExperiencedDiner,
	TierRisingCritic,
	TierFoodExplorer,
	TierNewcomer,
}
