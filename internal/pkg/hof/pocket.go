package hof

// Trinket prices in coins
const (
	TrinketPrice  = 10
	TrinketResale = 5
)

// Pocket holds coins and trinkets, neither of which can go negative.
type Pocket struct {
	coins    int
	trinkets int
}

// NewPocket creates a pocket holding start coins and no trinkets
func NewPocket(start int) *Pocket {
	return &Pocket{coins: max(start, 0)}
}

// Buy trades TrinketPrice coins for one trinket. It does nothing and
// returns false when there are not enough coins.
func (p *Pocket) Buy() bool {
	if p.coins < TrinketPrice {
		return false
	}
	p.coins -= TrinketPrice
	p.trinkets++
	return true
}

// Sell trades one trinket for TrinketResale coins. It does nothing and
// returns false when the pocket has no trinkets.
func (p *Pocket) Sell() bool {
	if p.trinkets < 1 {
		return false
	}
	p.coins += TrinketResale
	p.trinkets--
	return true
}

// Coins returns the coins in the pocket
func (p *Pocket) Coins() int { return p.coins }

// Trinkets returns the trinkets in the pocket
func (p *Pocket) Trinkets() int { return p.trinkets }
