package contentpool

import "github.com/KirkDiggler/card-forge/internal/entities/cards"

func with(noun, quantifier string) cards.Detail {
	return cards.Detail{Relation: cards.RelationWith, Noun: noun, Quantifier: quantifier}
}

func wearing(noun, quantifier string) cards.Detail {
	return cards.Detail{Relation: cards.RelationWearing, Noun: noun, Quantifier: quantifier}
}

func holding(noun, quantifier string) cards.Detail {
	return cards.Detail{Relation: cards.RelationHolding, Noun: noun, Quantifier: quantifier}
}

// Body features
var (
	claws       = with("claws", "")
	tail        = with("tail", "a")
	horns       = with("horns", "")
	hooves      = with("hooves", "")
	tusks       = with("tusks", "")
	fur         = with("fur", "")
	skin        = with("skin", "")
	antlers     = with("antlers", "")
	scales      = with("scales", "")
	shell       = with("shell", "")
	crystalCore = with("crystal core", "a")
	halo        = with("halo", "a")
	wings       = with("wings", "")
	fins        = with("fins", "")
	tentacles   = with("tentacles", "")
	feathers    = with("feathers", "")
	talons      = with("talons", "")
	beak        = with("beak", "a")
	carapace    = with("carapace", "")
	texture     = with("texture", "")
)

// Wearables
var (
	armor           = wearing("armor", "")
	bracers         = wearing("bracers", "")
	gemstones       = wearing("gemstones", "")
	mask            = wearing("mask", "a")
	crown           = wearing("crown", "a")
	crystalHeadband = wearing("crystal headband", "a")
)

// weapons is the full set of holdable weapons, declared up front rather than
// collected while archetypes are built
var weapons = []cards.Detail{
	holding("sword", "a"),
	holding("bow", "a"),
	holding("staff", "a"),
	holding("shield", "a"),
	holding("axe", "an"),
	holding("dagger", "a"),
	holding("spear", "a"),
	holding("mace", "a"),
	holding("hammer", "a"),
	holding("club", "a"),
	holding("lance", "a"),
	holding("whip", "a"),
	holding("glaive", "a"),
}

// Detail groups shared by several archetypes
var (
	headWear      = []cards.Detail{mask, crown, crystalHeadband}
	bodyWear      = []cards.Detail{armor, bracers, gemstones}
	allWearables  = join(bodyWear, headWear)
	lizardKit     = join(weapons, allWearables, []cards.Detail{tail, scales})
	noHandReptile = join(allWearables, []cards.Detail{tail, scales})
	birdKit       = join(allWearables, []cards.Detail{tail, feathers, beak})
	insectKit     = []cards.Detail{crystalCore, wings}
)

// allDetails lists every detail once, in declaration order
var allDetails = join(
	[]cards.Detail{
		claws, tail, horns, hooves, tusks, fur, skin, antlers, scales, shell,
		crystalCore, halo, wings, fins, tentacles, feathers, talons, beak, carapace, texture,
	},
	allWearables,
	weapons,
)

func join(groups ...[]cards.Detail) []cards.Detail {
	var out []cards.Detail
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
