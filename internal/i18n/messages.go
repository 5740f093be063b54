package i18n

import "fmt"

// MessageKey names a piece of message chrome (greeting, closing, ...).
type MessageKey string

const (
	GreetingTask    MessageKey = "greeting.task"
	GreetingMeal    MessageKey = "greeting.meal"
	GreetingGrocery MessageKey = "greeting.grocery"
	TotalLine       MessageKey = "total"
	Closing         MessageKey = "closing"
)

var chrome = map[MessageKey]entry{
	GreetingTask: {
		display: "Hello! Here are today's tasks:",
		hindi:   "नमस्ते! आज के काम:",
		tamil:   "வணக்கம்! இன்றைய வேலைகள்:",
		telugu:  "నమస్కారం! ఈరోజు పనులు:",
		kannada: "ನಮಸ್ಕಾರ! ಇಂದಿನ ಕೆಲಸಗಳು:",
	},
	GreetingMeal: {
		display: "Hello! Here is today's menu:",
		hindi:   "नमस्ते! आज का मेन्यू:",
		tamil:   "வணக்கம்! இன்றைய உணவுப் பட்டியல்:",
		telugu:  "నమస్కారం! ఈరోజు మెనూ:",
		kannada: "ನಮಸ್ಕಾರ! ಇಂದಿನ ಅಡುಗೆ ಪಟ್ಟಿ:",
	},
	GreetingGrocery: {
		display: "Hello! Please send the following items:",
		hindi:   "नमस्ते! कृपया ये सामान भेजें:",
		tamil:   "வணக்கம்! தயவுசெய்து இந்தப் பொருட்களை அனுப்பவும்:",
		telugu:  "నమస్కారం! దయచేసి ఈ సరుకులు పంపండి:",
		kannada: "ನಮಸ್ಕಾರ! ದಯವಿಟ್ಟು ಈ ಸಾಮಾನುಗಳನ್ನು ಕಳುಹಿಸಿ:",
	},
	TotalLine: {
		display: "Total items: %d",
		hindi:   "कुल: %d",
		tamil:   "மொத்தம்: %d",
		telugu:  "మొత్తం: %d",
		kannada: "ಒಟ್ಟು: %d",
	},
	Closing: {
		display: "Thank you!",
		hindi:   "धन्यवाद!",
		tamil:   "நன்றி!",
		telugu:  "ధన్యవాదాలు!",
		kannada: "ಧನ್ಯವಾದಗಳು!",
	},
}

// Message returns the localized chrome string for key, formatted with args.
func Message(key MessageKey, lang Language, args ...any) string {
	e, ok := chrome[key]
	if !ok {
		return string(key)
	}
	s := e.in(lang)
	if s == "" {
		s = e.display
	}
	if len(args) > 0 {
		return fmt.Sprintf(s, args...)
	}
	return s
}
