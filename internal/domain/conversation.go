package domain

// Language identifies the language a query or response is written in.
type Language string

// Supported languages.
const (
	LanguageArabic  Language = "ar"
	LanguageEnglish Language = "en"
)

// Turn roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one utterance in a conversation. The full history is supplied by
// the caller on every request; the service holds no per-session state.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
