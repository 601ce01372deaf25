package catalog

// Tips are short pieces of general gaming advice.
var Tips = []string{
	"Always save your game progress frequently to avoid losing hours of gameplay!",
	"Take regular breaks while gaming to prevent eye strain and maintain focus.",
	"Adjust your display settings and brightness for optimal gaming experience.",
	"Keep your gaming setup ergonomic to prevent strain during long sessions.",
	"Don't rush through games - take time to explore and enjoy the experience.",
	"Join gaming communities to find players with similar interests.",
	"Stay updated with game patches and updates for the best experience.",
	"Try different difficulty levels to find what's most enjoyable for you.",
	"Back up your save files regularly, especially for important progress.",
	"Consider upgrading your hardware gradually based on your gaming needs.",
}

// Facts are gaming trivia.
var Facts = []string{
	"The video game industry is now worth over $180 billion globally!",
	"The average gamer is 34 years old, and 41% of gamers are women.",
	"Super Mario Bros. was the best-selling game for over 20 years.",
	"The most expensive game ever developed cost over $500 million to make.",
	"Esports tournaments now have prize pools exceeding $40 million.",
	"The first video game was created in 1958 and was called 'Tennis for Two'.",
	"Minecraft is the best-selling video game of all time with over 300 million copies.",
	"The longest gaming session ever recorded lasted over 138 hours!",
	"Japan produces about 60% of the world's video games.",
	"Gaming can improve hand-eye coordination, problem-solving, and reaction times.",
}
