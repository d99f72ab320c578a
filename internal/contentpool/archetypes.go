package contentpool

import "github.com/KirkDiggler/card-forge/internal/entities/cards"

func archetype(name string, details ...[]cards.Detail) cards.Archetype {
	return cards.Archetype{Name: name, Details: join(details...)}
}

func each(d ...cards.Detail) []cards.Detail {
	return d
}

var (
	reptile       = archetype("reptile", allWearables, each(tail, skin))
	clam          = archetype("clam", each(shell, crystalCore))
	penguin       = archetype("penguin", allWearables, weapons, each(tail, fur))
	orca          = archetype("orca", each(tail, skin, armor))
	shark         = archetype("shark", each(tail, fins, armor))
	squid         = archetype("squid", each(crystalCore, tentacles))
	crustacean    = archetype("crustacean", each(claws, shell, armor, crystalCore, carapace))
	tortoise      = archetype("tortoise", allWearables, each(tail, shell, carapace))
	seaHorse      = archetype("sea-horse", allWearables, each(tail, shell))
	seaSnake      = archetype("sea-snake", headWear, each(tail, scales, armor))
	fish          = archetype("fish", each(tail, scales, armor))
	octopus       = archetype("octopus", each(tentacles, armor))
	dragon        = archetype("dragon", lizardKit, each(crystalCore))
	serpent       = archetype("serpent", noHandReptile)
	crocodile     = archetype("crocodile", noHandReptile)
	swan          = archetype("swan", birdKit)
	bird          = archetype("bird", birdKit)
	parrot        = archetype("parrot", birdKit)
	owl           = archetype("owl", birdKit)
	eagle         = archetype("eagle", birdKit)
	hawk          = archetype("hawk", birdKit)
	falcon        = archetype("falcon", birdKit)
	crow          = archetype("crow", birdKit)
	ostrich       = archetype("ostrich", birdKit)
	lizard        = archetype("lizard", lizardKit)
	chameleon     = archetype("chameleon", lizardKit)
	gecko         = archetype("gecko", lizardKit)
	frilledLizard = archetype("frilled-lizard", noHandReptile)
	butterfly     = archetype("butterfly", insectKit)
	mantis        = archetype("mantis", insectKit)
	beetle        = archetype("beetle", insectKit)
	ladybug       = archetype("ladybug", insectKit)
	dragonfly     = archetype("dragonfly", insectKit)
	spider        = archetype("spider", insectKit)
	scorpion      = archetype("scorpion", insectKit)
	wolf          = archetype("wolf", allWearables, each(tail, claws, fur))
	bear          = archetype("bear", allWearables, each(claws, fur))
	monkey        = archetype("monkey", allWearables, weapons, each(tail, fur))
	gorilla       = archetype("gorilla", allWearables, weapons, each(tail, fur))
	bull          = archetype("bull", allWearables, each(horns, hooves, skin))
	bison         = archetype("bison", allWearables, each(horns, hooves, skin))
	elephant      = archetype("elephant", allWearables, each(hooves, tusks, skin))
	boar          = archetype("boar", allWearables, each(hooves, tusks, skin))
	tiger         = archetype("tiger", allWearables, each(claws, fur))
	lynx          = archetype("lynx", allWearables, each(claws, fur))
	lion          = archetype("lion", allWearables, each(claws, fur))
	cat           = archetype("cat", allWearables, each(claws, fur))
	rabbit        = archetype("rabbit", allWearables, weapons, each(fur))
	fox           = archetype("fox", allWearables, each(tail, fur))
	deer          = archetype("deer", allWearables, each(hooves, antlers))
	ibex          = archetype("ibex", allWearables, each(hooves, antlers))
	goat          = archetype("goat", allWearables, each(hooves, antlers))
	horse         = archetype("horse", allWearables, each(hooves))
)

// Habitat groups
var (
	marine = []cards.Archetype{
		reptile, clam, penguin, shark, squid, crustacean, tortoise, seaHorse,
		fish, octopus, serpent, crocodile, swan, seaSnake, orca,
	}
	landMammals = []cards.Archetype{
		wolf, bear, monkey, gorilla, bull, bison, elephant, boar, tiger, lynx,
		lion, rabbit, fox, deer, ibex, goat, horse, cat,
	}
	reptiles = []cards.Archetype{dragon, lizard, chameleon, frilledLizard, serpent, gecko}
	insects  = []cards.Archetype{mantis, beetle, ladybug, dragonfly, spider, scorpion, butterfly}
	birds    = []cards.Archetype{bird, parrot, owl, eagle, hawk, falcon, crow, ostrich, swan}
)

// allArchetypes is every named archetype, de-duplicated, first entry "reptile"
var allArchetypes = unique(marine, landMammals, reptiles, insects, birds)

var archetypesByElement = map[cards.Element][]cards.Archetype{
	cards.ElementNeutral:  unique(birds, landMammals),
	cards.ElementFire:     unique(landMammals, reptiles),
	cards.ElementWater:    unique(marine, reptiles),
	cards.ElementGrass:    unique(insects, reptiles, landMammals),
	cards.ElementElectric: unique(landMammals, reptiles, birds),
	cards.ElementPsychic:  unique(insects, landMammals, reptiles, birds),
	cards.ElementFighting: unique(landMammals, insects, reptiles),
}

// unique concatenates groups keeping the first occurrence of each name
func unique(groups ...[]cards.Archetype) []cards.Archetype {
	seen := make(map[string]bool)
	var out []cards.Archetype
	for _, g := range groups {
		for _, a := range g {
			if seen[a.Name] {
				continue
			}
			seen[a.Name] = true
			out = append(out, a)
		}
	}
	return out
}
