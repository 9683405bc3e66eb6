package fintrack

import (
	"encoding/json"
	"slices"
)

// Color is a preset gradient used to tell records apart.
//
// It is persisted as its gradient token (e.g. "from-blue-500 to-blue-600"). An
// unknown token decodes to ColorDefault.
type Color int

const (
	ColorDefault Color = iota // fallback for unknown tokens
	ColorBlue
	ColorGreen
	ColorPurple
	ColorPink
	ColorOrange
	ColorRedRose
	ColorOrangeAmber
	ColorYellowOrange
	ColorBlueCyan
	ColorGreenEmerald
	ColorPurpleViolet
	ColorPinkRose
	ColorYellowAmber
	ColorOrangeRed
	ColorYellowOrangeSoft
	ColorPurplePinkSoft
	ColorBlueCyanSoft
	ColorGreenEmeraldSoft
)

// Token returns the gradient token of c.
func (c Color) Token() string {
	switch c {
	case ColorBlue:
		return "from-blue-500 to-blue-600"
	case ColorGreen:
		return "from-green-500 to-green-600"
	case ColorPurple:
		return "from-purple-500 to-purple-600"
	case ColorPink:
		return "from-pink-500 to-pink-600"
	case ColorOrange:
		return "from-orange-500 to-orange-600"
	case ColorRedRose:
		return "from-red-500 to-rose-600"
	case ColorOrangeAmber:
		return "from-orange-500 to-amber-600"
	case ColorYellowOrange:
		return "from-yellow-500 to-orange-600"
	case ColorBlueCyan:
		return "from-blue-500 to-cyan-600"
	case ColorGreenEmerald:
		return "from-green-500 to-emerald-600"
	case ColorPurpleViolet:
		return "from-purple-500 to-violet-600"
	case ColorPinkRose:
		return "from-pink-500 to-rose-600"
	case ColorYellowAmber:
		return "from-yellow-500 to-amber-600"
	case ColorOrangeRed:
		return "from-orange-500 to-red-600"
	case ColorYellowOrangeSoft:
		return "from-yellow-500 to-orange-500"
	case ColorPurplePinkSoft:
		return "from-purple-500 to-pink-500"
	case ColorBlueCyanSoft:
		return "from-blue-500 to-cyan-500"
	case ColorGreenEmeraldSoft:
		return "from-green-500 to-emerald-500"
	default:
		return "from-violet-500 to-purple-500"
	}
}

// Hue returns the dominant color name of c, as shown in a terminal.
func (c Color) Hue() string {
	switch c {
	case ColorBlue, ColorBlueCyan, ColorBlueCyanSoft:
		return "blue"
	case ColorGreen, ColorGreenEmerald, ColorGreenEmeraldSoft:
		return "green"
	case ColorPurple, ColorPurpleViolet, ColorPurplePinkSoft:
		return "purple"
	case ColorPink, ColorPinkRose:
		return "pink"
	case ColorOrange, ColorOrangeAmber, ColorOrangeRed:
		return "orange"
	case ColorRedRose:
		return "red"
	case ColorYellowOrange, ColorYellowAmber, ColorYellowOrangeSoft:
		return "yellow"
	default:
		return "violet"
	}
}

func (c Color) String() string { return c.Token() }

// allColors lists every color but the fallback.
var allColors = []Color{
	ColorBlue, ColorGreen, ColorPurple, ColorPink, ColorOrange,
	ColorRedRose, ColorOrangeAmber, ColorYellowOrange, ColorBlueCyan,
	ColorGreenEmerald, ColorPurpleViolet, ColorPinkRose, ColorYellowAmber, ColorOrangeRed,
	ColorYellowOrangeSoft, ColorPurplePinkSoft, ColorBlueCyanSoft, ColorGreenEmeraldSoft,
}

// ParseColor returns the color for a gradient token, or ColorDefault.
func ParseColor(token string) Color {
	for _, c := range allColors {
		if c.Token() == token {
			return c
		}
	}
	return ColorDefault
}

func (c Color) MarshalJSON() ([]byte, error) { return json.Marshal(c.Token()) }

func (c *Color) UnmarshalJSON(data []byte) error {
	var token string
	if err := json.Unmarshal(data, &token); err != nil {
		return err
	}
	*c = ParseColor(token)
	return nil
}

// Palette is the ordered list of colors a tracker assigns to new records.
type Palette []Color

// Next returns the color of the n-th record, cycling through the palette.
func (p Palette) Next(n int) Color {
	if len(p) == 0 {
		return ColorDefault
	}
	return p[n%len(p)]
}

var (
	AccountPalette   = Palette{ColorBlue, ColorGreen, ColorPurple, ColorPink, ColorOrange}
	DebtPalette      = Palette{ColorRedRose, ColorOrangeAmber, ColorYellowOrange, ColorBlueCyan}
	EnvelopePalette  = Palette{ColorGreenEmerald, ColorBlueCyan, ColorOrangeAmber, ColorPurpleViolet, ColorPinkRose}
	PiggybankPalette = Palette{ColorPinkRose, ColorPurpleViolet, ColorBlueCyan, ColorGreenEmerald, ColorYellowAmber, ColorOrangeRed}
)

// Icon is the pictogram of a record.
//
// It is persisted as its name (e.g. "Wallet"). The zero value is IconNone, which
// is what unknown or missing names decode to; every tracker resolves it to its
// own fallback icon through an IconSet.
type Icon int

const (
	IconNone Icon = iota
	IconWallet
	IconBuilding
	IconCreditCard
	IconLandmark
	IconBanknote
	IconShoppingCart
	IconCar
	IconCoffee
	IconFilm
	IconHeart
	IconHome
	IconUtensils
	IconPlane
	IconPiggyBank
	IconTrophy
	IconFlame
)

// Name returns the persisted name of i.
func (i Icon) Name() string {
	switch i {
	case IconWallet:
		return "Wallet"
	case IconBuilding:
		return "Building"
	case IconCreditCard:
		return "CreditCard"
	case IconLandmark:
		return "Landmark"
	case IconBanknote:
		return "Banknote"
	case IconShoppingCart:
		return "ShoppingCart"
	case IconCar:
		return "Car"
	case IconCoffee:
		return "Coffee"
	case IconFilm:
		return "Film"
	case IconHeart:
		return "Heart"
	case IconHome:
		return "Home"
	case IconUtensils:
		return "Utensils"
	case IconPlane:
		return "Plane"
	case IconPiggyBank:
		return "PiggyBank"
	case IconTrophy:
		return "Trophy"
	case IconFlame:
		return "Flame"
	default:
		return ""
	}
}

// Glyph returns the terminal pictogram of i.
func (i Icon) Glyph() string {
	switch i {
	case IconWallet:
		return "👛"
	case IconBuilding:
		return "🏢"
	case IconCreditCard:
		return "💳"
	case IconLandmark:
		return "🏛"
	case IconBanknote:
		return "💵"
	case IconShoppingCart:
		return "🛒"
	case IconCar:
		return "🚗"
	case IconCoffee:
		return "☕"
	case IconFilm:
		return "🎬"
	case IconHeart:
		return "❤"
	case IconHome:
		return "🏠"
	case IconUtensils:
		return "🍴"
	case IconPlane:
		return "✈"
	case IconPiggyBank:
		return "🐷"
	case IconTrophy:
		return "🏆"
	case IconFlame:
		return "🔥"
	default:
		return "•"
	}
}

func (i Icon) String() string { return i.Name() }

var allIcons = []Icon{
	IconWallet, IconBuilding, IconCreditCard, IconLandmark, IconBanknote,
	IconShoppingCart, IconCar, IconCoffee, IconFilm, IconHeart, IconHome, IconUtensils, IconPlane,
	IconPiggyBank, IconTrophy, IconFlame,
}

// ParseIcon returns the icon named name, or IconNone.
func ParseIcon(name string) Icon {
	for _, i := range allIcons {
		if i.Name() == name {
			return i
		}
	}
	return IconNone
}

func (i Icon) MarshalJSON() ([]byte, error) { return json.Marshal(i.Name()) }

func (i *Icon) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	*i = ParseIcon(name)
	return nil
}

// IconSet is the closed set of icons a tracker offers, with its fallback.
type IconSet struct {
	Icons    []Icon
	Fallback Icon
}

// Resolve returns i if it belongs to the set, the fallback otherwise.
func (s IconSet) Resolve(i Icon) Icon {
	if slices.Contains(s.Icons, i) {
		return i
	}
	return s.Fallback
}

// Names returns the names of the icons of the set.
func (s IconSet) Names() []string {
	names := make([]string, 0, len(s.Icons))
	for _, i := range s.Icons {
		names = append(names, i.Name())
	}
	return names
}

var (
	AccountIcons   = IconSet{Icons: []Icon{IconWallet, IconBuilding, IconCreditCard, IconLandmark, IconBanknote}, Fallback: IconWallet}
	EnvelopeIcons  = IconSet{Icons: []Icon{IconShoppingCart, IconCar, IconCoffee, IconFilm, IconHeart, IconHome, IconUtensils, IconPlane}, Fallback: IconHeart}
	PiggybankIcons = IconSet{Icons: []Icon{IconPiggyBank, IconTrophy, IconFlame}, Fallback: IconPiggyBank}
)
