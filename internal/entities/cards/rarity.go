package cards

// Rarity is the ordered rarity tier of a card
type Rarity int

// Rarities in ascending order
const (
	RarityCommon Rarity = iota
	RarityUncommon
	RarityRare
)

// RarityCount is the number of rarity tiers
const RarityCount = 3

var rarityNames = [RarityCount]string{"Common", "Uncommon", "Rare"}

// String returns the display name
func (r Rarity) String() string {
	if r < 0 || int(r) >= RarityCount {
		return "Unknown"
	}
	return rarityNames[r]
}

// Ordinal returns the zero-based position of the rarity
func (r Rarity) Ordinal() int {
	return int(r)
}

// RarityFromOrdinal clamps an ordinal into the valid range
func RarityFromOrdinal(ordinal int) Rarity {
	switch {
	case ordinal < 0:
		return RarityCommon
	case ordinal >= RarityCount:
		return RarityRare
	default:
		return Rarity(ordinal)
	}
}
