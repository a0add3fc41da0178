package faq

// Item is an immutable question and answer pair. Its identity is its
// position in the list.
type Item struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

var defaultItems = []Item{
	{
		Question: "How do I get started with Nestera?",
		Answer:   "Getting started with Nestera is simple. Connect your wallet, deposit your preferred stablecoin, and start earning yield immediately. No complex setup required—just a few clicks and you're on your way to smarter, on-chain savings.",
	},
	{
		Question: "Can I withdraw my funds at any time?",
		Answer:   "Yes, you can withdraw your funds at any time without lock-up periods. Nestera is designed for flexibility, allowing you to access your savings whenever you need them while still earning competitive yields.",
	},
	{
		Question: "Is Nestera audited and safe to use on-chain?",
		Answer:   "Absolutely. Nestera's smart contracts are thoroughly audited by leading security firms. We prioritize transparency and security, with all code verified on-chain and open for community review.",
	},
	{
		Question: "What stablecoins does Nestera currently support?",
		Answer:   "Nestera currently supports major stablecoins including USDC and USDT on the Stellar network. We're continuously expanding our supported assets to provide you with more options for your savings strategy.",
	},
}

// DefaultItems returns the site's FAQ in display order. The slice is a copy.
func DefaultItems() []Item {
	out := make([]Item, len(defaultItems))
	copy(out, defaultItems)
	return out
}
