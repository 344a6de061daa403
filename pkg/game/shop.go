package game

import "github.com/gonewx/scrapshot/pkg/config"

// ShopAction 商店按钮对应的操作
type ShopAction int

const (
	ShopBuyHold   ShopAction = iota // 购买吸附升级
	ShopBuySplit                    // 购买分裂升级
	ShopNextLevel                   // 开始下一关
)

// ShopButton 商店按钮的矩形区域
// 渲染端和商店系统共用同一份布局，保证点击区域与绘制一致
type ShopButton struct {
	Action        ShopAction
	X, Y          float64
	Width, Height float64
}

// Contains 检查坐标是否落在按钮内（左闭右开）
func (b ShopButton) Contains(x, y float64) bool {
	return x >= b.X && x < b.X+b.Width && y >= b.Y && y < b.Y+b.Height
}

const (
	shopMarginX = 25
	shopTopY    = 100
)

// ShopButtons 返回商店按钮布局
func ShopButtons(area config.PlayAreaConfig) []ShopButton {
	w := area.Width - 2*shopMarginX
	return []ShopButton{
		{Action: ShopBuyHold, X: shopMarginX, Y: shopTopY, Width: w, Height: 30},
		{Action: ShopBuySplit, X: shopMarginX, Y: shopTopY + 40, Width: w, Height: 30},
		{Action: ShopNextLevel, X: shopMarginX, Y: shopTopY + 120, Width: w, Height: 20},
	}
}

// Upgrade 返回购买按钮对应的升级，ok 为 false 表示不是购买按钮
func (a ShopAction) Upgrade() (UpgradeKind, bool) {
	switch a {
	case ShopBuyHold:
		return UpgradeHold, true
	case ShopBuySplit:
		return UpgradeSplit, true
	default:
		return 0, false
	}
}

// UpgradePrice 返回升级价格
func UpgradePrice(eco config.EconomyConfig, kind UpgradeKind) int {
	if kind == UpgradeHold {
		return eco.HoldPrice
	}
	return eco.SplitPrice
}
