package locale

import "strings"

// Locale identifies one of the supported interface languages.
type Locale string

const (
	EN Locale = "en"
	AR Locale = "ar"
)

// All lists the supported locales.
var All = []Locale{EN, AR}

// Parse maps a language code to a supported locale, defaulting to English.
func Parse(code string) Locale {
	if Locale(strings.ToLower(strings.TrimSpace(code))) == AR {
		return AR
	}
	return EN
}

// RTL reports whether the locale is written right to left.
func (l Locale) RTL() bool {
	return l == AR
}

// Key is a dotted message key, e.g. "game.correct".
type Key string

// T returns the translation of key in the given locale. Missing keys fall
// back to English, then to the key itself so a gap is visible rather than
// silent.
func T(l Locale, k Key) string {
	if l == AR {
		if msg, ok := ar[k]; ok {
			return msg
		}
	}
	if msg, ok := en[k]; ok {
		return msg
	}
	return string(k)
}

// Action identifies a voice command independent of the phrase used to
// trigger it.
type Action string

const (
	ActionLogin     Action = "login"
	ActionRegister  Action = "register"
	ActionLogout    Action = "logout"
	ActionNext      Action = "next"
	ActionBack      Action = "back"
	ActionRepeat    Action = "repeat"
	ActionFinish    Action = "finish"
	ActionHelp      Action = "help"
	ActionDarkMode  Action = "darkMode"
	ActionLightMode Action = "lightMode"
	ActionStartMic  Action = "startMic"
	ActionStopMic   Action = "stopMic"

	// Parameterized actions. Their phrases carry the wildcard slot.
	ActionUsername     Action = "username"
	ActionPassword     Action = "password"
	ActionRole         Action = "role"
	ActionStartTest    Action = "startTest"
	ActionSelectAnswer Action = "selectAnswer"

	ActionPlayQuestion Action = "playQuestion"
	ActionPlayOptions  Action = "playOptions"
	ActionRestart      Action = "restart"
	ActionAddMore      Action = "addMore"
	ActionAddSubject   Action = "addSubject"
	ActionAddQuestion  Action = "addQuestion"
	ActionScores       Action = "scores"
)

// Synonyms returns the spoken phrases bound to an action in the given
// locale, in registration order.
func Synonyms(l Locale, a Action) []string {
	if l == AR {
		return arCommands[a]
	}
	return enCommands[a]
}

// OptionIndex maps a spoken number word ("one".."four" and the Arabic
// equivalents) to a zero-based option index.
func OptionIndex(l Locale, word string) (int, bool) {
	word = strings.TrimSpace(strings.ToLower(word))
	words := enNumbers
	if l == AR {
		words = arNumbers
	}
	idx, ok := words[word]
	return idx, ok
}
