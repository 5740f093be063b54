package i18n

type entry struct {
	display string
	emoji   string
	hindi   string
	tamil   string
	telugu  string
	kannada string
}

func (e entry) in(l Language) string {
	switch l {
	case Hindi:
		return e.hindi
	case Tamil:
		return e.tamil
	case Telugu:
		return e.telugu
	case Kannada:
		return e.kannada
	default:
		return e.display
	}
}

// Keys are Normalize()d canonical phrases.
var phrases = map[string]entry{
	// Chores
	"sweep the floor":    {"Sweep the floor", "🧹", "झाड़ू लगाना", "தரையைப் பெருக்குதல்", "నేల ఊడ్చడం", "ನೆಲ ಗುಡಿಸುವುದು"},
	"mop the floor":      {"Mop the floor", "🪣", "पोंछा लगाना", "தரையைத் துடைத்தல்", "నేల తుడవడం", "ನೆಲ ಒರೆಸುವುದು"},
	"wash dishes":        {"Wash dishes", "🍽️", "बर्तन धोना", "பாத்திரங்களைக் கழுவுதல்", "గిన్నెలు కడగడం", "ಪಾತ್ರೆ ತೊಳೆಯುವುದು"},
	"clean windows":      {"Clean windows", "🪟", "खिड़कियाँ साफ करना", "ஜன்னல்களைச் சுத்தம் செய்தல்", "కిటికీలు శుభ్రం చేయడం", "ಕಿಟಕಿಗಳನ್ನು ಸ್ವಚ್ಛಗೊಳಿಸುವುದು"},
	"dusting":            {"Dusting", "🪶", "धूल झाड़ना", "தூசி தட்டுதல்", "దుమ్ము దులపడం", "ಧೂಳು ಒರೆಸುವುದು"},
	"wash clothes":       {"Wash clothes", "👕", "कपड़े धोना", "துணி துவைத்தல்", "బట్టలు ఉతకడం", "ಬಟ್ಟೆ ಒಗೆಯುವುದು"},
	"iron clothes":       {"Iron clothes", "👔", "कपड़े प्रेस करना", "துணிகளை இஸ்திரி செய்தல்", "బట్టలు ఇస్త్రీ చేయడం", "ಬಟ್ಟೆ ಇಸ್ತ್ರಿ ಮಾಡುವುದು"},
	"fold clothes":       {"Fold clothes", "🧺", "कपड़े तह करना", "துணிகளை மடித்தல்", "బట్టలు మడతపెట్టడం", "ಬಟ್ಟೆ ಮಡಚುವುದು"},
	"clean bathroom":     {"Clean bathroom", "🚿", "बाथरूम साफ करना", "குளியலறையைச் சுத்தம் செய்தல்", "బాత్రూమ్ శుభ్రం చేయడం", "ಸ್ನಾನಗೃಹ ಸ್ವಚ್ಛಗೊಳಿಸುವುದು"},
	"clean toilet":       {"Clean toilet", "🚽", "शौचालय साफ करना", "கழிப்பறையைச் சுத்தம் செய்தல்", "టాయిలెట్ శుభ్రం చేయడం", "ಶೌಚಾಲಯ ಸ್ವಚ್ಛಗೊಳಿಸುವುದು"},
	"clean kitchen":      {"Clean kitchen", "🍳", "रसोई साफ करना", "சமையலறையைச் சுத்தம் செய்தல்", "వంటగది శుభ్రం చేయడం", "ಅಡುಗೆಮನೆ ಸ್ವಚ್ಛಗೊಳಿಸುವುದು"},
	"take out the trash": {"Take out the trash", "🗑️", "कूड़ा बाहर फेंकना", "குப்பையை வெளியே போடுதல்", "చెత్త బయట పారవేయడం", "ಕಸ ಹೊರಗೆ ಹಾಕುವುದು"},
	"water the plants":   {"Water the plants", "🪴", "पौधों को पानी देना", "செடிகளுக்குத் தண்ணீர் ஊற்றுதல்", "మొక్కలకు నీళ్ళు పోయడం", "ಗಿಡಗಳಿಗೆ ನೀರು ಹಾಕುವುದು"},
	"make the bed":       {"Make the bed", "🛏️", "बिस्तर ठीक करना", "படுக்கையைச் சரிசெய்தல்", "మంచం సర్దడం", "ಹಾಸಿಗೆ ಸರಿಪಡಿಸುವುದು"},
	"cut vegetables":     {"Cut vegetables", "🔪", "सब्ज़ियाँ काटना", "காய்கறிகளை நறுக்குதல்", "కూరగాయలు కోయడం", "ತರಕಾರಿ ಹೆಚ್ಚುವುದು"},
	"clean the fridge":   {"Clean the fridge", "🧊", "फ्रिज साफ करना", "குளிர்சாதனப் பெட்டியைச் சுத்தம் செய்தல்", "ఫ్రిజ్ శుభ్రం చేయడం", "ಫ್ರಿಜ್ ಸ್ವಚ್ಛಗೊಳಿಸುವುದು"},
	"clean the balcony":  {"Clean the balcony", "🏠", "बालकनी साफ करना", "பால்கனியைச் சுத்தம் செய்தல்", "బాల్కనీ శుభ్రం చేయడం", "ಬಾಲ್ಕನಿ ಸ್ವಚ್ಛಗೊಳಿಸುವುದು"},

	// Meals
	"tea":             {"Tea", "☕", "चाय", "டீ", "టీ", "ಚಹಾ"},
	"coffee":          {"Coffee", "☕", "कॉफ़ी", "காபி", "కాఫీ", "ಕಾಫಿ"},
	"poha":            {"Poha", "🍚", "पोहा", "அவல்", "అటుకులు", "ಅವಲಕ್ಕಿ"},
	"idli":            {"Idli", "🍘", "इडली", "இட்லி", "ఇడ్లీ", "ಇಡ್ಲಿ"},
	"dosa":            {"Dosa", "🥞", "डोसा", "தோசை", "దోశ", "ದೋಸೆ"},
	"upma":            {"Upma", "🥣", "उपमा", "உப்புமா", "ఉప్మా", "ಉಪ್ಪಿಟ್ಟು"},
	"paratha":         {"Paratha", "🫓", "पराठा", "பரோட்டா", "పరాటా", "ಪರೋಟ"},
	"chapati":         {"Chapati", "🫓", "चपाती", "சப்பாத்தி", "చపాతీ", "ಚಪಾತಿ"},
	"rice":            {"Rice", "🍚", "चावल", "அரிசி", "బియ్యం", "ಅಕ್ಕಿ"},
	"dal":             {"Dal", "🍲", "दाल", "பருப்பு", "పప్పు", "ಬೇಳೆ"},
	"sambar":          {"Sambar", "🍲", "सांभर", "சாம்பார்", "సాంబార్", "ಸಾಂಬಾರ್"},
	"rasam":           {"Rasam", "🍵", "रसम", "ரசம்", "రసం", "ಸಾರು"},
	"curd rice":       {"Curd rice", "🍚", "दही चावल", "தயிர் சாதம்", "పెరుగు అన్నం", "ಮೊಸರನ್ನ"},
	"vegetable curry": {"Vegetable curry", "🍛", "सब्ज़ी", "காய்கறி குழம்பு", "కూరగాయల కూర", "ತರಕಾರಿ ಪಲ್ಯ"},
	"chicken curry":   {"Chicken curry", "🍗", "चिकन करी", "சிக்கன் குழம்பு", "చికెన్ కూర", "ಚಿಕನ್ ಸಾರು"},
	"salad":           {"Salad", "🥗", "सलाद", "சாலட்", "సలాడ్", "ಸಲಾಡ್"},
	"khichdi":         {"Khichdi", "🥣", "खिचड़ी", "கிச்சடி", "కిచిడీ", "ಕಿಚಡಿ"},
	"omelette":        {"Omelette", "🍳", "ऑमलेट", "ஆம்லெட்", "ఆమ్లెట్", "ಆಮ್ಲೆಟ್"},
	"biryani":         {"Biryani", "🍛", "बिरयानी", "பிரியாணி", "బిర్యానీ", "ಬಿರಿಯಾನಿ"},
	"soup":            {"Soup", "🥣", "सूप", "சூப்", "సూప్", "ಸೂಪ್"},

	// Groceries
	"tomato":       {"Tomato", "🍅", "टमाटर", "தக்காளி", "టమాటా", "ಟೊಮೆಟೊ"},
	"onion":        {"Onion", "🧅", "प्याज़", "வெங்காயம்", "ఉల్లిపాయ", "ಈರುಳ್ಳಿ"},
	"potato":       {"Potato", "🥔", "आलू", "உருளைக்கிழங்கு", "బంగాళదుంప", "ಆಲೂಗಡ್ಡೆ"},
	"garlic":       {"Garlic", "🧄", "लहसुन", "பூண்டு", "వెల్లుల్లి", "ಬೆಳ್ಳುಳ್ಳಿ"},
	"ginger":       {"Ginger", "🫚", "अदरक", "இஞ்சி", "అల్లం", "ಶುಂಠಿ"},
	"green chilli": {"Green chilli", "🌶️", "हरी मिर्च", "பச்சை மிளகாய்", "పచ్చి మిరపకాయ", "ಹಸಿ ಮೆಣಸಿನಕಾಯಿ"},
	"coriander":    {"Coriander", "🌿", "धनिया", "கொத்தமல்லி", "కొత్తిమీర", "ಕೊತ್ತಂಬರಿ"},
	"spinach":      {"Spinach", "🥬", "पालक", "பசலைக்கீரை", "పాలకూర", "ಪಾಲಕ್"},
	"carrot":       {"Carrot", "🥕", "गाजर", "கேரட்", "క్యారెట్", "ಗಜ್ಜರಿ"},
	"banana":       {"Banana", "🍌", "केला", "வாழைப்பழம்", "అరటిపండు", "ಬಾಳೆಹಣ್ಣು"},
	"apple":        {"Apple", "🍎", "सेब", "ஆப்பிள்", "ఆపిల్", "ಸೇಬು"},
	"mango":        {"Mango", "🥭", "आम", "மாம்பழம்", "మామిడిపండు", "ಮಾವಿನಹಣ್ಣು"},
	"lemon":        {"Lemon", "🍋", "नींबू", "எலுமிச்சை", "నిమ్మకాయ", "ನಿಂಬೆಹಣ್ಣು"},
	"milk":         {"Milk", "🥛", "दूध", "பால்", "పాలు", "ಹಾಲು"},
	"curd":         {"Curd", "🥣", "दही", "தயிர்", "పెరుగు", "ಮೊಸರು"},
	"paneer":       {"Paneer", "🧀", "पनीर", "பனீர்", "పనీర్", "ಪನೀರ್"},
	"butter":       {"Butter", "🧈", "मक्खन", "வெண்ணெய்", "వెన్న", "ಬೆಣ್ಣೆ"},
	"eggs":         {"Eggs", "🥚", "अंडे", "முட்டை", "గుడ్లు", "ಮೊಟ್ಟೆ"},
	"bread":        {"Bread", "🍞", "ब्रेड", "ரொட்டி", "బ్రెడ్", "ಬ್ರೆಡ್"},
	"wheat flour":  {"Wheat flour", "🌾", "आटा", "கோதுமை மாவு", "గోధుమ పిండి", "ಗೋಧಿ ಹಿಟ್ಟು"},
	"sugar":        {"Sugar", "🍬", "चीनी", "சர்க்கரை", "చక్కెర", "ಸಕ್ಕರೆ"},
	"salt":         {"Salt", "🧂", "नमक", "உப்பு", "ఉప్పు", "ಉಪ್ಪು"},
	"cooking oil":  {"Cooking oil", "🫗", "खाने का तेल", "சமையல் எண்ணெய்", "వంట నూనె", "ಅಡುಗೆ ಎಣ್ಣೆ"},
	"toor dal":     {"Toor dal", "🫘", "अरहर दाल", "துவரம் பருப்பு", "కందిపప్పు", "ತೊಗರಿ ಬೇಳೆ"},
	"turmeric":     {"Turmeric", "🟡", "हल्दी", "மஞ்சள்", "పసుపు", "ಅರಿಶಿನ"},
	"biscuits":     {"Biscuits", "🍪", "बिस्कुट", "பிஸ்கட்", "బిస్కెట్లు", "ಬಿಸ್ಕತ್ತು"},
	"dish soap":    {"Dish soap", "🧼", "बर्तन साबुन", "பாத்திரம் கழுவும் சோப்பு", "గిన్నెల సబ్బు", "ಪಾತ್ರೆ ಸೋಪು"},
	"detergent":    {"Detergent", "🧴", "डिटर्जेंट", "சலவைத் தூள்", "డిటర్జెంట్", "ಡಿಟರ್ಜೆಂಟ್"},

	// Sections
	"fruits":     {"Fruits", "🍎", "फल", "பழங்கள்", "పండ్లు", "ಹಣ್ಣುಗಳು"},
	"vegetables": {"Vegetables", "🥦", "सब्ज़ियाँ", "காய்கறிகள்", "కూరగాయలు", "ತರಕಾರಿಗಳು"},
	"dairy":      {"Dairy", "🥛", "डेयरी", "பால் பொருட்கள்", "పాల ఉత్పత్తులు", "ಹಾಲಿನ ಉತ್ಪನ್ನಗಳು"},
	"grains":     {"Grains", "🌾", "अनाज", "தானியங்கள்", "ధాన్యాలు", "ಧಾನ್ಯಗಳು"},
	"pulses":     {"Pulses", "🫘", "दालें", "பருப்பு வகைகள்", "పప్పుధాన్యాలు", "ಬೇಳೆಕಾಳುಗಳು"},
	"spices":     {"Spices", "🌶️", "मसाले", "மசாலாப் பொருட்கள்", "మసాలా దినుసులు", "ಮಸಾಲೆಗಳು"},
	"snacks":     {"Snacks", "🍪", "स्नैक्स", "தின்பண்டங்கள்", "చిరుతిళ్ళు", "ತಿಂಡಿಗಳು"},
	"beverages":  {"Beverages", "🥤", "पेय पदार्थ", "பானங்கள்", "పానీయాలు", "ಪಾನೀಯಗಳು"},
	"bakery":     {"Bakery", "🍞", "बेकरी", "பேக்கரி", "బేకరీ", "ಬೇಕರಿ"},
	"meat":       {"Meat", "🍗", "मांस", "இறைச்சி", "మాంసం", "ಮಾಂಸ"},
	"household":  {"Household", "🧽", "घरेलू सामान", "வீட்டுப் பொருட்கள்", "గృహోపకరణాలు", "ಮನೆಬಳಕೆ ವಸ್ತುಗಳು"},
	"kitchen":    {"Kitchen", "🍳", "रसोई", "சமையலறை", "వంటగది", "ಅಡುಗೆಮನೆ"},
	"cleaning":   {"Cleaning", "🧹", "सफ़ाई", "சுத்தம்", "శుభ్రత", "ಸ್ವಚ್ಛತೆ"},
	"laundry":    {"Laundry", "🧺", "कपड़े", "சலவை", "లాండ్రీ", "ಬಟ್ಟೆ ಒಗೆತ"},
	"bathroom":   {"Bathroom", "🚿", "बाथरूम", "குளியலறை", "బాత్రూమ్", "ಸ್ನಾನಗೃಹ"},
	"outdoor":    {"Outdoor", "🌳", "बाहर", "வெளிப்புறம்", "బయట", "ಹೊರಾಂಗಣ"},
	"breakfast":  {"Breakfast", "🌅", "नाश्ता", "காலை உணவு", "అల్పాహారం", "ಬೆಳಗಿನ ಉಪಾಹಾರ"},
	"lunch":      {"Lunch", "🍛", "दोपहर का खाना", "மதிய உணவு", "మధ్యాహ్న భోజనం", "ಮಧ್ಯಾಹ್ನದ ಊಟ"},
	"dinner":     {"Dinner", "🌙", "रात का खाना", "இரவு உணவு", "రాత్రి భోజనం", "ರಾತ್ರಿ ಊಟ"},
	"other":      {"Other", "📦", "अन्य", "மற்றவை", "ఇతరాలు", "ಇತರೆ"},
}

// aliases map common spellings onto a canonical key.
var aliases = map[string]string{
	"sweep floor":     "sweep the floor",
	"sweeping":        "sweep the floor",
	"mop floor":       "mop the floor",
	"mopping":         "mop the floor",
	"dishes":          "wash dishes",
	"wash the dishes": "wash dishes",
	"laundry wash":    "wash clothes",
	"ironing":         "iron clothes",
	"trash":           "take out the trash",
	"garbage":         "take out the trash",
	"water plants":    "water the plants",
	"roti":            "chapati",
	"tomatoes":        "tomato",
	"onions":          "onion",
	"potatoes":        "potato",
	"bananas":         "banana",
	"apples":          "apple",
	"lemons":          "lemon",
	"egg":             "eggs",
	"atta":            "wheat flour",
	"oil":             "cooking oil",
	"chilli":          "green chilli",
	"green chillies":  "green chilli",
	"dhania":          "coriander",
}
