package game

// Theme holds all visual styling constants for easy customization.
// Entity colours are derived from entity hues at draw time; the fixed
// colours and the HSL saturation/lightness pairs live here.
var Theme = struct {
	// Background
	BackgroundWash Color
	GlowInner      Color
	GlowMid        Color
	GlowInnerR     float64
	GlowOuterR     float64
	OverlayTop     Color
	OverlayBottom  Color

	// Power-up glyph
	GlyphColor Color
	GlyphFont  string

	// Hazards
	HazardLineWidth float64

	// Player rings
	ShieldLineWidth float64
	AuraLineWidth   float64
	HaloLineWidth   float64

	// Stats overlay
	PanelBackground Color
	PanelBorder     Color
	PanelTitle      Color
	PanelLabel      Color
	PanelFont       string
}{
	BackgroundWash: RGBA(6, 8, 20, 0.5),
	GlowInner:      RGBA(0, 180, 255, 0.42),
	GlowMid:        RGBA(255, 70, 220, 0.24),
	GlowInnerR:     40,
	GlowOuterR:     420,
	OverlayTop:     RGBA(255, 255, 255, 0.04),
	OverlayBottom:  RGBA(0, 0, 0, 0.12),

	GlyphColor: RGBA(2, 2, 10, 0.85),
	GlyphFont:  "bold 14px 'Segoe UI', sans-serif",

	HazardLineWidth: 2,

	ShieldLineWidth: 4,
	AuraLineWidth:   6,
	HaloLineWidth:   2,

	PanelBackground: RGBA(0, 0, 0, 0.75),
	PanelBorder:     RGBA(0, 170, 255, 1),
	PanelTitle:      RGBA(0, 170, 255, 1),
	PanelLabel:      RGBA(204, 204, 204, 1),
	PanelFont:       "12px monospace",
}
