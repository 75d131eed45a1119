package layout

import (
	"github.com/matzehuels/boxorbit/pkg/config"
	"github.com/matzehuels/boxorbit/pkg/label"
)

// Label offsets in world units.
const (
	yearLabelInset = 40
	yearLabelLift  = 20
	tagOffset      = 16
	tagLift        = 12
	tickLabelLift  = 14
	tickDotLift    = 0.4
)

const tagText = "IMDb"

var (
	yearLabelStyle = []label.Option{
		label.WithFontSize(12),
		label.WithColor(config.MustColor("#f0f6ff")),
		label.WithPanel(false),
		label.WithOutline(config.MustColor("#0a0e1a"), 3),
		label.WithGlow(config.MustColor("rgba(255,255,255,0.5)"), 8),
	}
	tickLabelStyle = []label.Option{
		label.WithFontSize(12),
		label.WithColor(config.MustColor("#b9d4ff")),
		label.WithPanel(false),
		label.WithOutline(config.MustColor("#0a0e1a"), 3),
		label.WithGlow(config.MustColor("rgba(185,212,255,0.55)"), 6),
	}
	tagLabelStyle = []label.Option{
		label.WithFontSize(11),
		label.WithColor(config.MustColor("#a8c9ff")),
		label.WithPanel(false),
		label.WithOutline(config.MustColor("#0a0e1a"), 3),
		label.WithGlow(config.MustColor("rgba(168,201,255,0.6)"), 6),
	}
	titleLabelStyle = []label.Option{
		label.WithFontSize(14),
		label.WithColor(config.MustColor("#ffffff")),
		label.WithPanel(true),
		label.WithMaxWidth(300),
		label.WithOutline(config.MustColor("#0a0e1a"), 3),
		label.WithGlow(config.MustColor("rgba(255,255,255,0.6)"), 8),
		label.WithPanelColors(config.MustColor("rgba(10,15,28,0.96)"), config.MustColor("rgba(150,180,255,0.95)")),
	}
)
