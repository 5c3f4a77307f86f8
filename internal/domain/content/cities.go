package content

// cityMood is a fixed mood card for a city with technology or science heritage.
type cityMood struct {
	Emoji    string
	Message  string
	Category Category
}

// knownCities is keyed by the city name exactly as the geolocation lookup reports it.
var knownCities = map[string]cityMood{
	// United Kingdom
	"London":     {"🇬🇧", "Ada Lovelace wrote the first algorithm here. What will you build next?", CategoryTechHub},
	"Cambridge":  {"🎓", "Turing cracked Enigma nearby. Hawking pondered the universe. Big shoes, big ideas.", CategoryTechHub},
	"Manchester": {"🖥️", "Where Turing built the first stored-program computer. History runs deep here.", CategoryTechHub},
	"Oxford":     {"📚", "Tim Berners-Lee studied here before inventing the web. What's your invention?", CategoryTechHub},

	// Silicon Valley and the West Coast
	"San Francisco": {"🌉", "Where AI dreams ship to production. The future is being built around you.", CategoryTechHub},
	"San Jose":      {"💻", "Heart of Silicon Valley! Every line of code here has global impact.", CategoryTechHub},
	"Palo Alto":     {"🚀", "HP started in a garage here. Google was born at Stanford. What's your garage moment?", CategoryTechHub},
	"Mountain View": {"🔍", "Googleplex territory! Where 'organizing the world's information' became real.", CategoryTechHub},
	"Cupertino":     {"🍎", "Apple's home. 'Think Different' isn't just a slogan here. It's the air.", CategoryTechHub},
	"Seattle":       {"☕", "Microsoft, Amazon, and great coffee. Cloud computing was born in these rainy streets.", CategoryTechHub},
	"Redmond":       {"🪟", "Microsoft HQ! Where GitHub Copilot was trained. We might be colleagues! 👋", CategoryTechHub},

	// AI research
	"Toronto":  {"🍁", "Geoffrey Hinton's city! The godfather of deep learning worked here. AI royalty territory.", CategoryTechHub},
	"Montreal": {"🤖", "Yoshua Bengio's domain. One of AI's three musketeers lives here. You're in good company.", CategoryTechHub},
	"Stanford": {"🎓", "Andrew Ng, Fei-Fei Li, and countless AI breakthroughs. This soil grows innovators.", CategoryTechHub},
	"Boston":   {"🏛️", "MIT is here. Marvin Minsky dreamed of AI when it was just a dream. Now we're living it.", CategoryTechHub},

	// Physics and mathematics
	"Princeton":  {"🧠", "Einstein walked these streets. Von Neumann designed the computer architecture we still use.", CategoryTechHub},
	"Zurich":     {"⚛️", "Einstein developed relativity at ETH Zurich. This city thinks in equations.", CategoryTechHub},
	"Vienna":     {"🎭", "Gödel proved there are limits to what we can prove. Still didn't stop builders like you.", CategoryTechHub},
	"Budapest":   {"🇭🇺", "John von Neumann was born here. The architect of modern computing started in your city.", CategoryTechHub},
	"Warsaw":     {"🇵🇱", "Marie Curie was born here. From radioactivity to AI, Poland produces pioneers.", CategoryTechHub},
	"Copenhagen": {"🇩🇰", "Niels Bohr revolutionized quantum physics here. The future is probabilistic, like your code.", CategoryTechHub},

	// Europe
	"Paris":     {"🗼", "Marie Curie's lab, Yann LeCun's roots. From radium to neural networks, Paris innovates.", CategoryTechHub},
	"Berlin":    {"🇩🇪", "Konrad Zuse built the first programmable computer here. Berlin's been coding since 1941.", CategoryTechHub},
	"Munich":    {"🏰", "German engineering meets AI. Precision in every commit.", CategoryTechHub},
	"Amsterdam": {"🚲", "Open, connected, forward-thinking. Amsterdam codes like it cycles: fast and free.", CategoryTechHub},
	"Stockholm": {"🇸🇪", "Spotify streams from here. Proof that Swedish engineering scales globally.", CategoryTechHub},
	"Helsinki":  {"🇫🇮", "Linus Torvalds created Linux here. Open source runs in Finland's veins.", CategoryTechHub},
	"Dublin":    {"☘️", "EMEA tech capital. Where Silicon Valley meets the emerald isle.", CategoryTechHub},
	"Lisbon":    {"🇵🇹", "Web Summit's home now. Portugal is writing the next chapter of tech. Olá, builder!", CategoryTechHub},
	"Barcelona": {"🇪🇸", "MWC hosts the mobile future here. Gaudí designed buildings, you design systems.", CategoryTechHub},

	// Asia Pacific
	"Tokyo":     {"🗼", "Robotics, gaming, bullet trains. Japan doesn't just imagine the future, it builds it.", CategoryTechHub},
	"Seoul":     {"🇰🇷", "Samsung, LG, the world's fastest internet. Korea ships fast. What are you shipping?", CategoryTechHub},
	"Shenzhen":  {"🏭", "Hardware capital of Earth. Where ideas become atoms overnight.", CategoryTechHub},
	"Beijing":   {"🇨🇳", "AI research powerhouse. East meets West in neural networks.", CategoryTechHub},
	"Shanghai":  {"🌆", "China's innovation skyline. The future looks tall from here.", CategoryTechHub},
	"Singapore": {"🇸🇬", "Lion City! Where Asia's tech arteries converge. Small country, massive ambition.", CategoryTechHub},
	"Bangalore": {"🇮🇳", "India's Silicon Valley! A billion minds, infinite potential. Namaste, builder.", CategoryTechHub},
	"Bengaluru": {"🇮🇳", "India's Silicon Valley! A billion minds, infinite potential. Namaste, builder.", CategoryTechHub},
	"Hyderabad": {"💎", "HITEC City rising! India's other tech giant is just getting started.", CategoryTechHub},
	"Sydney":    {"🦘", "Atlassian started here. Proof that great software comes from down under too.", CategoryTechHub},
	"Melbourne": {"🇦🇺", "Australia's startup scene is thriving. Time zones are just numbers for builders.", CategoryTechHub},

	// Middle East and Africa
	"Tel Aviv":  {"🇮🇱", "Startup Nation! More AI companies per capita than anywhere. You build different here.", CategoryTechHub},
	"Dubai":     {"🏙️", "The city that builds impossible things. What impossible thing are you working on?", CategoryTechHub},
	"Cape Town": {"🇿🇦", "Africa's tech scene is rising. The next billion users might come from your continent.", CategoryTechHub},
	"Lagos":     {"🇳🇬", "Africa's startup giant waking up. 200 million people, unlimited problems to solve.", CategoryTechHub},
	"Nairobi":   {"🦁", "Silicon Savannah! M-Pesa proved African innovation goes global. What's next?", CategoryTechHub},

	// Americas
	"New York":    {"🗽", "Claude Shannon worked at Bell Labs nearby. Information theory was born in your backyard.", CategoryTechHub},
	"Austin":      {"🤠", "Keep Austin Weird, keep the code clean. Dell started here, Tesla moved here. Momentum.", CategoryTechHub},
	"Denver":      {"🏔️", "Mile High City, sky-high ambitions. Colorado's tech scene is climbing fast.", CategoryTechHub},
	"Vancouver":   {"🏔️", "Where Silicon Valley meets Canadian politeness. Sorry, your code is excellent.", CategoryTechHub},
	"São Paulo":   {"🇧🇷", "Latin America's tech giant. Nubank proved unicorns grow in Portuguese too.", CategoryTechHub},
	"Mexico City": {"🇲🇽", "CDMX! Latin America's startup scene is exploding. ¡Vamos a construir!", CategoryTechHub},
}

// KnownCities returns the names of every city with a dedicated mood card.
func KnownCities() []string {
	out := make([]string, 0, len(knownCities))
	for name := range knownCities {
		out = append(out, name)
	}
	return out
}
