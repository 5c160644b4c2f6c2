package abyss

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/neon-abyss/internal/core"
)

// Skin is a cosmetic player style. It only changes colors.
type Skin string

const (
	SkinClassic   Skin = "classic"
	SkinSuperman  Skin = "superman"
	SkinPrime     Skin = "prime"
	SkinBumblebee Skin = "bumblebee"
)

// SkinInfo describes a skin for the catalog.
type SkinInfo struct {
	ID    Skin
	Name  string
	Desc  string
	Quote string
	Body  core.Color
	Tint  core.Color // Landing particle color
	Eye   core.Color
}

// Skins is the catalog in display order.
var Skins = []SkinInfo{
	{SkinClassic, "机甲小宝", "经典型号", "小宝出击，萌翻全场！", "#475569", "#94a3b8", core.ColorNeonGreen},
	{SkinSuperman, "钢铁超人", "红色披风", "正义降临，无敌钢铁！", "#3b82f6", "#ef4444", "#ef4444"},
	{SkinPrime, "柱子哥", "领袖气质", "柱间无敌，守护到底！", "#ef4444", "#60a5fa", "#3b82f6"},
	{SkinBumblebee, "小黄蜂", "速度与激情", "嗡嗡冲锋，sting你哦！", "#facc15", "#facc15", "#3b82f6"},
}

// ParseSkin validates a skin identifier.
func ParseSkin(s string) (Skin, error) {
	id := Skin(strings.ToLower(strings.TrimSpace(s)))
	if id == "" {
		return SkinClassic, nil
	}
	for _, info := range Skins {
		if info.ID == id {
			return id, nil
		}
	}
	return "", fmt.Errorf("abyss: unknown skin %q", s)
}

// Info returns the catalog entry. Unknown skins get a neutral entry.
func (s Skin) Info() SkinInfo {
	for _, info := range Skins {
		if info.ID == s {
			return info
		}
	}
	return SkinInfo{ID: s, Name: string(s), Body: "#475569", Tint: core.ColorNeonGreen, Eye: core.ColorNeonGreen}
}

// Tint returns the landing particle color.
func (s Skin) Tint() core.Color {
	return s.Info().Tint
}

// depthPalette cycles every 100 floors.
var depthPalette = []core.Color{
	"#111827",
	"#2e1065",
	"#172554",
	"#022c22",
	"#450a0a",
	"#4a044e",
	"#1c1917",
}

// bossBackground is the fixed boss arena color.
const bossBackground core.Color = "#110000"

// Background returns the backdrop color for a depth.
func Background(mode Mode, depth int) core.Color {
	if mode.HasBoss() {
		return bossBackground
	}
	if depth < 0 {
		depth = 0
	}
	return depthPalette[(depth/100)%len(depthPalette)]
}
