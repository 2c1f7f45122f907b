package siteconfig

import "testing"

func TestComposeLinkTitle(t *testing.T) {
	tests := []struct {
		platform Platform
		want     string
	}{
		{Github, " Ajay's Space on Github"},
		{LinkedIn, "Connect Ajay's Space on LinkedIn"},
		{Mail, "Send an email to Ajay's Space"},
		{Twitter, "Follow Ajay's Space on Twitter"},
		{Mastodon, "Ajay's Space on Mastodon"},
		{YouTube, "Ajay's Space on YouTube"},
	}
	for _, tt := range tests {
		if got := ComposeLinkTitle("Ajay's Space", tt.platform); got != tt.want {
			t.Errorf("ComposeLinkTitle(%s) = %q, want %q", tt.platform, got, tt.want)
		}
	}
}

func TestPlatformKnown(t *testing.T) {
	for _, p := range Platforms {
		if !p.Known() {
			t.Errorf("expected %s to be known", p)
		}
	}
	for _, p := range []Platform{"", "github", "Myspace"} {
		if p.Known() {
			t.Errorf("expected %q to be unknown", p)
		}
	}
}
