package siteconfig

import "fmt"

// Platform names a social network the site has an icon for.
type Platform string

const (
	Github    Platform = "Github"
	Facebook  Platform = "Facebook"
	Instagram Platform = "Instagram"
	LinkedIn  Platform = "LinkedIn"
	Mail      Platform = "Mail"
	Twitter   Platform = "Twitter"
	Twitch    Platform = "Twitch"
	YouTube   Platform = "YouTube"
	WhatsApp  Platform = "WhatsApp"
	Snapchat  Platform = "Snapchat"
	Pinterest Platform = "Pinterest"
	TikTok    Platform = "TikTok"
	CodePen   Platform = "CodePen"
	Discord   Platform = "Discord"
	GitLab    Platform = "GitLab"
	Reddit    Platform = "Reddit"
	Skype     Platform = "Skype"
	Steam     Platform = "Steam"
	Telegram  Platform = "Telegram"
	Mastodon  Platform = "Mastodon"
)

// Platforms lists every known platform in icon-set order.
var Platforms = []Platform{
	Github, Facebook, Instagram, LinkedIn, Mail, Twitter, Twitch, YouTube,
	WhatsApp, Snapchat, Pinterest, TikTok, CodePen, Discord, GitLab, Reddit,
	Skype, Steam, Telegram, Mastodon,
}

// Known reports whether p is in Platforms.
func (p Platform) Known() bool {
	for _, k := range Platforms {
		if p == k {
			return true
		}
	}
	return false
}

// linkTitleFormats holds the phrasing for platforms that do not use the
// "<title> on <platform>" default. The leading space on Github is authored.
var linkTitleFormats = map[Platform]string{
	Github:   " %s on Github",
	LinkedIn: "Connect %s on LinkedIn",
	Mail:     "Send an email to %s",
	Twitter:  "Follow %s on Twitter",
}

// ComposeLinkTitle returns the accessibility title of a social link for the
// given site title. It is pure; New calls it once per link.
func ComposeLinkTitle(title string, p Platform) string {
	if f, ok := linkTitleFormats[p]; ok {
		return fmt.Sprintf(f, title)
	}
	return fmt.Sprintf("%s on %s", title, p)
}

// buildSocials validates the authored links and composes their titles,
// keeping the authored order.
func buildSocials(v *validator, title string, src []SocialSource) []SocialLink {
	out := make([]SocialLink, 0, len(src))
	for i, s := range src {
		field := fmt.Sprintf("socials[%d]", i)
		if !s.Name.Known() {
			v.add(field+".name", s.Name, ErrUnknownPlatform)
		}
		if s.Name == Mail {
			v.requireMailto(field+".href", s.Href)
		} else {
			v.requireAbsURL(field+".href", s.Href, "https")
		}
		out = append(out, SocialLink{
			Name:      s.Name,
			Href:      s.Href,
			LinkTitle: ComposeLinkTitle(title, s.Name),
			Active:    s.Active,
		})
	}
	return out
}
