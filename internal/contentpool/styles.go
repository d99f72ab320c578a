package contentpool

import "github.com/KirkDiggler/card-forge/internal/entities/cards"

// StyleSuffix is appended to every artwork prompt after the stage phrase
const StyleSuffix = ",simple design, outdoor, grass,(intricate details),(hyperdetailed),8k hdr," +
	"high detailed,soft cinematic light,dramatic atmosphere,atmospheric perspective,(high Quality)," +
	"highres,original,extremely detailed wallpaper,(best illustration),(best shadow)," +
	"(Midjourney Japanese style),(pokemon card background style),ultra realistic"

var rarityAdjectives = map[cards.Rarity][]string{
	cards.RarityCommon:   {"simple", "basic"},
	cards.RarityUncommon: {"strong", "rare", "special"},
	cards.RarityRare:     {"legendary", "epic", "mythical"},
}

var stageAdjectives = map[int][]string{
	0: {"chibi cute", "chibi young"},
	1: {"young", "", "dynamic"},
	2: {"gigantic", "massive"},
}

var stagePhrases = map[int]string{
	0: "anime chibi drawing style, pastel background",
	1: "anime sketch with watercolor",
	2: "polished final by studio ghibli",
}

// standalonePhrase is the stage phrase for cards outside a series
const standalonePhrase = "anime sketch"

var globalDetailAdjectives = []string{"white", "dark", "golden", "regal", "ornate", "ancient"}

var detailAdjectives = map[cards.Element][]string{
	cards.ElementNeutral:  {"white", "shiny", "prismatic", "opal", "diamond"},
	cards.ElementFire:     {"red and white", "orange and black", "fiery", "ruby"},
	cards.ElementWater:    {"blue and white", "white and black", "teal and navy", "blue crystal", "cyan glittering", "sapphire"},
	cards.ElementGrass:    {"green and brown", "white and green", "stone", "wooden", "leafy", "green runic"},
	cards.ElementElectric: {"yellow and teal", "yellow and black", "golden", "lightning-charged"},
	cards.ElementPsychic:  {"amethyst", "purple cosmic", "galaxy-pattern", "violet hypnotic"},
	cards.ElementFighting: {"red and black", "rocky", "stone", "brown and grey"},
}

// ambiences end with the reserved entry used for a fully evolved rare card
var ambiences = map[cards.Element][]string{
	cards.ElementNeutral: {
		"pastel colors", "bright lighting", "soft ambient light", "faded prismatic bokeh background",
		"silver galaxy background",
	},
	cards.ElementFire: {
		"red and purple ambient lighting", "blue and red ambient lighting", "lava texture background",
		"orange galaxy background",
	},
	cards.ElementWater: {
		"teal and blue ambient lighting", "aurora background", "sparkling blue background",
		"gleaming bubble background", "sapphire blue galaxy background",
	},
	cards.ElementGrass: {
		"green and orange ambient lighting", "green and teal ambient lighting", "emerald bokeh lighting",
		"sunlight ray ambience", "emerald galaxy background",
	},
	cards.ElementElectric: {
		"yellow and teal ambient lighting", "lightning background", "orange galaxy background",
	},
	cards.ElementPsychic: {
		"pink bokeh lighting", "violet shadows", "dreamy background", "galaxy background",
	},
	cards.ElementFighting: {
		"orange ambient lighting", "red and purple ambient lighting", "orange and blue ambient lighting",
		"galaxy background",
	},
}

var environments = map[cards.Element][]string{
	cards.ElementNeutral:  {"village", "field", "grassland"},
	cards.ElementFire:     {"volcano", "desert"},
	cards.ElementWater:    {"ocean", "lake", "river"},
	cards.ElementGrass:    {"forest", "jungle", "woods"},
	cards.ElementElectric: {"mountain", "city", "thunderstorm"},
	cards.ElementPsychic:  {"castle", "cave", "crypt"},
	cards.ElementFighting: {"arena", "ruins", "canyon"},
}
