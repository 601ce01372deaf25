package model

// Intent is the label assigned to one user utterance.
type Intent string

const (
	IntentGreeting           Intent = "greeting"
	IntentRecommendation     Intent = "recommendation"
	IntentGameInfo           Intent = "game_info"
	IntentPlatformPreference Intent = "platform_preference"
	IntentGenrePreference    Intent = "genre_preference"
	IntentTips               Intent = "tips"
	IntentFacts              Intent = "facts"
	IntentReview             Intent = "review"
	IntentGoodbye            Intent = "goodbye"
	IntentGeneralChat        Intent = "general_chat"
)

// Role identifies who produced a turn.
type Role string

const (
	RoleUser Role = "user"
	RoleBot  Role = "bot"
)

// Turn is one entry in a session log.
type Turn struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}
