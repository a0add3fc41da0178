package site

// FAQTitle heads the FAQ section.
const FAQTitle = "Frequently Asked Questions"

// Link is a labelled href.
type Link struct {
	Label string
	Href  string
}

// Stat is the optional figure under the hero call to action.
type Stat struct {
	Label string
	Value string
}

// Hero is the landing page header block.
type Hero struct {
	Headline     []string // one entry per line
	Subheadline  string
	PrimaryCTA   Link
	SecondaryCTA Link
	ImageSrc     string
	ImageAlt     string
	Stat         *Stat
}

// DefaultHero returns the landing page hero with the primary call to action
// pointing at launchURL.
func DefaultHero(launchURL string) Hero {
	return Hero{
		Headline:     []string{"Smarter savings,", "fully on-chain."},
		Subheadline:  "Deposit stablecoins on Stellar and earn yield from day one. No lock-ups, no paperwork, and your funds stay in your control.",
		PrimaryCTA:   Link{Label: "Start Saving", Href: launchURL},
		SecondaryCTA: Link{Label: "How it works", Href: "#faq"},
		ImageSrc:     "/static/hero.svg",
		ImageAlt:     "Nestera savings dashboard",
		Stat:         &Stat{Label: "Supported assets", Value: "USDC and USDT on Stellar"},
	}
}
