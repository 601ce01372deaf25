package catalog

import "github.com/rcliao/gamebot/internal/model"

var defaultSections = []Section{
	{
		Category: model.Action,
		Items: []model.Item{
			{
				Name:        "The Witcher 3: Wild Hunt",
				Platforms:   []model.Platform{model.PC, model.PlayStation, model.Xbox, model.Switch},
				Rating:      9.3,
				Year:        2015,
				Length:      model.Long,
				Description: "Open-world RPG with rich storytelling and complex characters",
				Features:    []string{"open-world", "story-rich", "character-customization"},
			},
			{
				Name:        "Red Dead Redemption 2",
				Platforms:   []model.Platform{model.PC, model.PlayStation, model.Xbox},
				Rating:      9.7,
				Year:        2018,
				Length:      model.Long,
				Description: "Immersive western adventure with stunning details",
				Features:    []string{"open-world", "story-rich", "realistic"},
			},
			{
				Name:        "Cyberpunk 2077",
				Platforms:   []model.Platform{model.PC, model.PlayStation, model.Xbox},
				Rating:      7.8,
				Year:        2020,
				Length:      model.Long,
				Description: "Futuristic RPG in a dystopian megacity",
				Features:    []string{"open-world", "cyberpunk", "character-customization"},
			},
		},
	},
	{
		Category: model.Adventure,
		Items: []model.Item{
			{
				Name:        "The Legend of Zelda: Breath of the Wild",
				Platforms:   []model.Platform{model.Switch, model.WiiU},
				Rating:      9.7,
				Year:        2017,
				Length:      model.Long,
				Description: "Revolutionary open-world adventure with physics-based gameplay",
				Features:    []string{"open-world", "exploration", "puzzle-solving"},
			},
			{
				Name:        "Uncharted 4: A Thief's End",
				Platforms:   []model.Platform{model.PlayStation},
				Rating:      9.0,
				Year:        2016,
				Length:      model.Medium,
				Description: "Cinematic action-adventure with treasure hunting",
				Features:    []string{"story-rich", "cinematic", "action"},
			},
		},
	},
	{
		Category: model.Strategy,
		Items: []model.Item{
			{
				Name:        "Civilization VI",
				Platforms:   []model.Platform{model.PC, model.PlayStation, model.Xbox, model.Switch, model.Mobile},
				Rating:      8.5,
				Year:        2016,
				Length:      model.Long,
				Description: "Turn-based strategy game about building civilizations",
				Features:    []string{"turn-based", "empire-building", "multiplayer"},
			},
			{
				Name:        "Total War: Warhammer III",
				Platforms:   []model.Platform{model.PC},
				Rating:      8.2,
				Year:        2022,
				Length:      model.Long,
				Description: "Epic fantasy strategy with massive battles",
				Features:    []string{"real-time-strategy", "fantasy", "large-scale-battles"},
			},
		},
	},
	{
		Category: model.Puzzle,
		Items: []model.Item{
			{
				Name:        "Portal 2",
				Platforms:   []model.Platform{model.PC, model.PlayStation, model.Xbox},
				Rating:      9.5,
				Year:        2011,
				Length:      model.Short,
				Description: "Mind-bending puzzle game with clever mechanics",
				Features:    []string{"puzzle-solving", "physics-based", "co-op"},
			},
			{
				Name:        "The Witness",
				Platforms:   []model.Platform{model.PC, model.PlayStation, model.Xbox, model.Mobile},
				Rating:      8.4,
				Year:        2016,
				Length:      model.Medium,
				Description: "Beautiful puzzle island with interconnected challenges",
				Features:    []string{"puzzle-solving", "exploration", "philosophical"},
			},
		},
	},
	{
		Category: model.Racing,
		Items: []model.Item{
			{
				Name:        "Forza Horizon 5",
				Platforms:   []model.Platform{model.PC, model.Xbox},
				Rating:      9.1,
				Year:        2021,
				Length:      model.Medium,
				Description: "Open-world racing in beautiful Mexico",
				Features:    []string{"open-world", "racing", "multiplayer"},
			},
			{
				Name:        "Gran Turismo 7",
				Platforms:   []model.Platform{model.PlayStation},
				Rating:      8.7,
				Year:        2022,
				Length:      model.Long,
				Description: "Realistic racing simulator with extensive car collection",
				Features:    []string{"simulation", "racing", "car-collection"},
			},
		},
	},
	{
		Category: model.Indie,
		Items: []model.Item{
			{
				Name:        "Hades",
				Platforms:   []model.Platform{model.PC, model.PlayStation, model.Xbox, model.Switch},
				Rating:      9.0,
				Year:        2020,
				Length:      model.Medium,
				Description: "Roguelike action game with excellent storytelling",
				Features:    []string{"roguelike", "story-rich", "fast-paced"},
			},
			{
				Name:        "Celeste",
				Platforms:   []model.Platform{model.PC, model.PlayStation, model.Xbox, model.Switch},
				Rating:      9.4,
				Year:        2018,
				Length:      model.Short,
				Description: "Challenging platformer with emotional depth",
				Features:    []string{"platformer", "challenging", "emotional-story"},
			},
		},
	},
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return MustNew(defaultSections)
}
