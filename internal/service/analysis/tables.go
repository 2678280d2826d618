// internal/service/analysis/tables.go

package analysis

import "postforge/internal/domain/content"

const defaultCategory = "default"

var videoCategories = map[string]string{
	"subway-surfers": "gaming-entertainment",
	"minecraft":      "gaming-educational",
	"brainrot":       "viral-entertainment",
	"gaming":         "gaming-content",
	"entertainment":  "viral-entertainment",
	defaultCategory:  "general-entertainment",
}

var videoAudiences = map[string][]string{
	"subway-surfers": {"gen-z", "mobile-gamers", "casual-viewers"},
	"minecraft":      {"gamers", "creative-builders", "gen-z", "millennials"},
	"brainrot":       {"gen-z", "meme-enthusiasts", "short-form-viewers"},
	"gaming":         {"gamers", "esports-fans", "streamers"},
	"entertainment":  {"general-audience", "short-form-viewers"},
	defaultCategory:  {"general-audience"},
}

var videoPlatforms = map[string][]content.Platform{
	"subway-surfers": {content.PlatformTikTok, content.PlatformInstagram, content.PlatformYouTube},
	"minecraft":      {content.PlatformYouTube, content.PlatformTikTok, content.PlatformInstagram},
	"brainrot":       {content.PlatformTikTok, content.PlatformInstagram, content.PlatformTwitter},
	"gaming":         {content.PlatformYouTube, content.PlatformTikTok, content.PlatformTwitter},
	"entertainment":  {content.PlatformTikTok, content.PlatformInstagram, content.PlatformFacebook},
	defaultCategory:  {content.PlatformTikTok, content.PlatformInstagram, content.PlatformYouTube},
}

var videoCategoryBonus = map[string]float64{
	"subway-surfers": 30,
	"minecraft":      25,
	"brainrot":       35,
}

const (
	memeCategory    = "viral-meme"
	graphicCategory = "brand-graphic"
)

var (
	memeAudience     = []string{"gen-z", "millennials", "meme-enthusiasts"}
	memePlatforms    = []content.Platform{content.PlatformInstagram, content.PlatformTwitter, content.PlatformTikTok, content.PlatformFacebook}
	graphicAudience  = []string{"professionals", "brand-followers", "general-audience"}
	graphicPlatforms = []content.Platform{content.PlatformInstagram, content.PlatformFacebook, content.PlatformTwitter}
)

var baseHashtags = map[content.Kind][]string{
	content.KindVideo:   {"viral", "fyp", "trending", "foryou"},
	content.KindMeme:    {"meme", "memes", "funny", "viral", "lol"},
	content.KindGraphic: {"design", "branding", "graphicdesign", "creative"},
}

var categoryHashtags = map[string][]string{
	"subway-surfers": {"subwaysurfers", "gaming", "mobilegaming", "gameplay"},
	"minecraft":      {"minecraft", "minecraftbuilds", "gaming", "minecraftmemes"},
	"brainrot":       {"brainrot", "skibidi", "sigma", "viral"},
	"gaming":         {"gaming", "gamer", "videogames", "gameplay"},
	"entertainment":  {"entertainment", "funny", "comedy", "fun"},
	"relatable":      {"relatable", "mood", "same"},
	"dank":           {"dankmemes", "dank", "memesdaily"},
	"brand":          {"brand", "marketing", "business"},
	"promo":          {"sale", "promo", "deal"},
	"announcement":   {"announcement", "news", "update"},
	defaultCategory:  {"content", "share"},
}

func lookup[T any](table map[string]T, category string) T {
	if v, ok := table[category]; ok {
		return v
	}
	return table[defaultCategory]
}
