package components

import (
	"github.com/automoto/isoterrain/assets"
	"github.com/yohamta/donburi"
)

type SpriteData struct {
	Image assets.Image
}

var Sprite = donburi.NewComponentType[SpriteData]()

// BankData holds the loaded bitmaps every Image refers to.
type BankData struct {
	*assets.Bank
}

var Bank = donburi.NewComponentType[BankData]()
