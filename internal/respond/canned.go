package respond

var greetings = []string{
	"Hello! I'm your friendly game chatbot! 🎮 I can help you discover new games, get recommendations, share gaming tips, and chat about all things gaming!",
	"Hey there, fellow gamer! 🎮 Ready to explore the amazing world of video games? I can recommend games, share facts, and help you find your next gaming adventure!",
	"Greetings, gamer! 🎮 I'm here to help you with game recommendations, reviews, tips, and anything gaming-related. What are you interested in playing today?",
}

var goodbyes = []string{
	"Thanks for chatting about games with me! Happy gaming, and may all your gaming sessions be epic! 🎮✨",
	"Goodbye, fellow gamer! Keep exploring new worlds and having amazing adventures! See you next time! 🎮👋",
	"It was great talking games with you! Don't forget to take breaks and enjoy your gaming journey! 🎮🌟",
}

var smallTalk = []string{
	"That's interesting! Gaming has so many fascinating aspects. What specific part of gaming would you like to explore?",
	"I love talking about games! Is there a particular game, genre, or gaming topic you'd like to discuss?",
	"Gaming is such an amazing world! Would you like game recommendations, tips, facts, or just want to chat about gaming?",
	"Tell me more about your gaming interests! I can help with recommendations, reviews, or just have a fun gaming conversation!",
	"That's cool! I'm here to help with all things gaming. What would you like to know or discuss about video games?",
}
