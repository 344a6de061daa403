package systems

import (
	"errors"

	"github.com/gonewx/scrapshot/pkg/game"
	"go.uber.org/zap"
)

// ShopSystem 关卡间的商店（Setup 阶段）
//
// 鼠标在按钮内按下时触发按钮：购买按钮在余额足够且未拥有时扣款并获得升级，
// 开始按钮（或开始键）请求进入下一关。
type ShopSystem struct {
	logger *zap.Logger
}

// NewShopSystem 创建商店系统
func NewShopSystem(logger *zap.Logger) *ShopSystem {
	return &ShopSystem{logger: logger.Named("ShopSystem")}
}

// Update 处理商店输入
func (s *ShopSystem) Update(gs *game.GameState) {
	if gs.Input.Start {
		gs.RequestPhase(game.PhasePlay)
		return
	}
	if !gs.Input.Clicked {
		return
	}

	mx, my := float64(gs.Input.MouseX), float64(gs.Input.MouseY)
	for _, button := range game.ShopButtons(gs.Config.PlayArea) {
		if !button.Contains(mx, my) {
			continue
		}

		kind, isUpgrade := button.Action.Upgrade()
		if !isUpgrade {
			gs.RequestPhase(game.PhasePlay)
			return
		}

		price := game.UpgradePrice(gs.Config.Economy, kind)
		if err := gs.Upgrades.Buy(kind, price, &gs.Wallet); err != nil {
			level := zap.DebugLevel
			if !errors.Is(err, game.ErrAlreadyOwned) && !errors.Is(err, game.ErrInsufficientFunds) {
				level = zap.WarnLevel
			}
			s.logger.Log(level, "purchase rejected", zap.Error(err))
			return
		}
		s.logger.Info("upgrade purchased",
			zap.Stringer("upgrade", kind),
			zap.Int("price", price),
			zap.Int("wallet", gs.Wallet.Money()))
		return
	}
}
