package discord

// Friendly message constants for Discord responses
const (
	MsgCropNotFound       = "❓ **Crop Not Found**\nThat crop doesn't grow in the chosen season."
	MsgSkillLevelNotFound = "📈 **Unknown Farming Level**\nThere are no quality odds for that level."
	MsgInvalidSeason      = "🗓️ **Unknown Season**\nPick spring, summer, fall or winter."
	MsgAPIUnavailable     = "🔌 **Calculator Offline**\nThe crop calculator isn't answering right now. Try again shortly."
	MsgDidYouMean         = "Did you mean"
	MsgNoCrops            = "🌱 No crops grow in this season."

	MsgGenericError = "❌ Something went wrong."
)

// Embed text
const (
	TitleCrops           = "🌾 %s Crops"
	TitleAllCrops        = "🌾 All Crops"
	TitleOdds            = "🎲 Quality Odds: Level %d"
	TitleEstimate        = "💰 %s (%s)"
	FieldRevenue         = "Revenue"
	FieldSeedCost        = "Seed cost"
	FieldProfit          = "Profit"
	FieldHarvest         = "Harvest"
	FieldUnitPrice       = "Raw unit price"
	FieldOverCapacity    = "⚠️ Over capacity"
	FieldSkipped         = "Skipped"
	MsgOverCapacity      = "%s units allocated but only %s harvested (%s too many)."
	MsgOddsTotalMismatch = "These odds add up to %s instead of 100%%."
)
