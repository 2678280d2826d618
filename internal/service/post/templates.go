// internal/service/post/templates.go

package post

import (
	"postforge/internal/domain/content"
)

// CategoryTemplates holds the copy variants for one content category.
// An empty list falls back to the generic templates.
type CategoryTemplates struct {
	Titles        []string
	Callouts      []string
	BrandMessages []string
	Captions      []string
}

// Templates is the registry of copy used when synthesizing posts
type Templates struct {
	categories   map[string]CategoryTemplates
	generic      CategoryTemplates
	platformCTAs map[content.Platform][]string
}

// NewTemplates creates a template registry with the built-in copy
func NewTemplates() *Templates {
	t := &Templates{
		categories: make(map[string]CategoryTemplates),
		generic: CategoryTemplates{
			Titles:        []string{"You Need To See This"},
			Callouts:      []string{"When it hits different"},
			BrandMessages: []string{"Quality You Can Trust"},
			Captions:      []string{"Check this out! 🔥"},
		},
		platformCTAs: map[content.Platform][]string{
			content.PlatformTikTok: {
				"Follow for more! 👆",
				"Drop a ❤️ if you watched till the end",
				"Duet this if you can beat it 🎮",
			},
			content.PlatformInstagram: {
				"Double tap if you agree ❤️",
				"Save this for later 📌",
				"Tag someone who needs to see this 👇",
			},
			content.PlatformYouTube: {
				"Subscribe for more! 🔔",
				"Like and subscribe for daily uploads",
				"Comment your high score below 👇",
			},
			content.PlatformTwitter: {
				"Retweet if you relate 🔁",
				"Thoughts? 👇",
			},
			content.PlatformFacebook: {
				"Share with your friends! 👥",
				"Tag a friend who would love this",
			},
		},
	}

	registerBuiltins(t)
	return t
}

// RegisterCategory adds or replaces the templates for a category
func (t *Templates) RegisterCategory(category string, tmpl CategoryTemplates) {
	t.categories[category] = tmpl
}

// Titles returns the title variants for a category
func (t *Templates) Titles(category string) []string {
	return t.choose(t.categories[category].Titles, t.generic.Titles)
}

// Callouts returns the meme callout variants for a category
func (t *Templates) Callouts(category string) []string {
	return t.choose(t.categories[category].Callouts, t.generic.Callouts)
}

// BrandMessages returns the graphic brand message variants for a category
func (t *Templates) BrandMessages(category string) []string {
	return t.choose(t.categories[category].BrandMessages, t.generic.BrandMessages)
}

// Captions returns the base caption variants for a category
func (t *Templates) Captions(category string) []string {
	return t.choose(t.categories[category].Captions, t.generic.Captions)
}

// CallsToAction returns the caption call-to-action lines for a platform
func (t *Templates) CallsToAction(platform content.Platform) []string {
	return t.platformCTAs[platform]
}

func (t *Templates) choose(specific, fallback []string) []string {
	if len(specific) > 0 {
		return specific
	}
	return fallback
}

func registerBuiltins(t *Templates) {
	t.RegisterCategory("subway-surfers", CategoryTemplates{
		Titles: []string{
			"POV: You Can't Stop Watching",
			"Wait For The Ending",
			"This Run Was Insane",
			"Highest Score Ever?",
			"Satisfying Gameplay",
		},
		Captions: []string{
			"This run had me on the edge of my seat 🏃‍♂️💨",
			"Can you beat this score? 🎮",
			"The most satisfying Subway Surfers run ever 😮",
			"Watch till the end for the craziest dodge 🔥",
			"Background gameplay hits different 🚇",
		},
	})

	t.RegisterCategory("minecraft", CategoryTemplates{
		Titles: []string{
			"Epic Minecraft Build",
			"You Won't Believe This Build",
			"Minecraft Hack You Need",
			"Built This In One Day",
			"Survival Mode Challenge",
		},
		Captions: []string{
			"Took me hours but it was worth it ⛏️",
			"Minecraft builders, rate this build 1-10 🏰",
			"Try this in your next survival world 🌲",
			"Redstone magic at its finest ⚡",
			"Who else still plays Minecraft in 2024? 🎮",
		},
	})

	t.RegisterCategory("brainrot", CategoryTemplates{
		Titles: []string{
			"Brain Cells Not Found",
			"Peak Content Right Here",
			"Why Is This So Addictive",
			"Certified Brainrot",
			"Only Real Ones Understand",
		},
		Callouts: []string{
			"Me at 3AM scrolling",
			"Nobody: Absolutely nobody:",
			"My last brain cell rn",
			"It's giving chaos",
			"This is my roman empire",
		},
		Captions: []string{
			"My brain is officially rotted 🧠💀",
			"I can't stop watching this 😭",
			"This is peak internet culture 💯",
			"Sending this to everyone I know 📲",
			"No thoughts just vibes ✨",
		},
	})

	t.RegisterCategory("gaming", CategoryTemplates{
		Titles: []string{
			"Insane Gaming Moment",
			"Clutch Or Kick?",
			"Gamers Will Understand",
			"Best Play Of The Day",
			"Rate This Play",
		},
		Captions: []string{
			"Gamers, rate this play 🎮",
			"That was way too close 😅",
			"This is why I love gaming 🕹️",
			"Tell me you're a gamer without telling me 👾",
			"One more game, I promise 🎯",
		},
	})

	t.RegisterCategory("entertainment", CategoryTemplates{
		Titles: []string{
			"You Have To See This",
			"This Made My Day",
			"Can't Stop Laughing",
			"Wait For It",
			"Best Thing On The Internet",
		},
		Captions: []string{
			"This made my whole day 😂",
			"Tag someone who needs a laugh 🤣",
			"Can't stop watching this 👀",
			"The internet never disappoints 🌐",
			"Instant mood booster ✨",
		},
	})

	t.RegisterCategory("relatable", CategoryTemplates{
		Callouts: []string{
			"Me every Monday morning",
			"When the WiFi goes out",
			"Me pretending to be productive",
			"When someone says 'quick question'",
			"My bank account after payday",
		},
		Captions: []string{
			"Too real 😂",
			"Why is this literally me 😭",
			"Tag someone who does this 👇",
			"Felt this in my soul 💀",
			"Relatable content only 💯",
		},
	})

	t.RegisterCategory("dank", CategoryTemplates{
		Callouts: []string{
			"Stonks",
			"Task failed successfully",
			"Modern problems require modern solutions",
			"Visible confusion",
			"Outstanding move",
		},
		Captions: []string{
			"Dankest meme of the day 🐸",
			"If you laugh you lose 😂",
			"Certified dank 💯",
			"Memes are my love language 💬",
			"Daily dose of memes 💊",
		},
	})

	t.RegisterCategory("brand", CategoryTemplates{
		BrandMessages: []string{
			"Elevate Your Everyday",
			"Designed For You",
			"Where Quality Meets Style",
			"Innovation In Every Detail",
			"Your Vision, Our Craft",
		},
		Captions: []string{
			"Crafted with care for people who care ✨",
			"Discover what makes us different 💡",
			"Quality you can see and feel 🙌",
			"Built for the way you live 🏡",
			"Join thousands of happy customers 💙",
		},
	})

	t.RegisterCategory("promo", CategoryTemplates{
		BrandMessages: []string{
			"Limited Time Offer",
			"Save Big Today",
			"Exclusive Deal Inside",
			"Don't Miss Out",
			"Biggest Sale Of The Year",
		},
		Captions: []string{
			"Our biggest sale is here 🛍️",
			"Grab yours before it's gone ⏰",
			"Deals this good don't last long 💸",
			"Treat yourself, you deserve it 🎁",
			"Shop now and save 🔥",
		},
	})

	t.RegisterCategory("announcement", CategoryTemplates{
		BrandMessages: []string{
			"Big News Is Here",
			"Something New Is Coming",
			"We Have An Announcement",
			"Introducing Our Latest",
			"The Wait Is Over",
		},
		Captions: []string{
			"We've been keeping a secret 🤫",
			"Exciting news for our community 📣",
			"The moment you've been waiting for 🎉",
			"New chapter starts today 📖",
			"Stay tuned for more updates 👀",
		},
	})
}
