package game

import (
	"errors"
	"fmt"
)

// ErrAlreadyOwned 升级已购买
var ErrAlreadyOwned = errors.New("upgrade already owned")

// UpgradeKind 升级类型
type UpgradeKind int

const (
	UpgradeHold  UpgradeKind = iota // 按住鼠标吸住反弹的子弹，松开时释放
	UpgradeSplit                    // 大号子弹被反弹时分裂成三颗
)

// String 返回升级名称
func (k UpgradeKind) String() string {
	switch k {
	case UpgradeHold:
		return "hold"
	case UpgradeSplit:
		return "split"
	default:
		return "unknown"
	}
}

// Upgrades 本局已购买的升级
type Upgrades struct {
	Hold  bool
	Split bool
}

// Has 检查是否拥有指定升级
func (u *Upgrades) Has(kind UpgradeKind) bool {
	switch kind {
	case UpgradeHold:
		return u.Hold
	case UpgradeSplit:
		return u.Split
	default:
		return false
	}
}

// Buy 从钱包扣款并获得升级
//
// 参数：
//   - kind: 升级类型
//   - price: 价格
//   - wallet: 扣款的钱包
//
// 返回：
//   - error: 已拥有时返回 ErrAlreadyOwned，余额不足时返回 ErrInsufficientFunds，
//     两种情况下钱包都不变
func (u *Upgrades) Buy(kind UpgradeKind, price int, wallet *Wallet) error {
	if u.Has(kind) {
		return fmt.Errorf("buy %s: %w", kind, ErrAlreadyOwned)
	}
	if err := wallet.Subtract(price); err != nil {
		return fmt.Errorf("buy %s: %w", kind, err)
	}
	switch kind {
	case UpgradeHold:
		u.Hold = true
	case UpgradeSplit:
		u.Split = true
	}
	return nil
}

// Reset 清除所有升级（新一局开始时）
func (u *Upgrades) Reset() {
	*u = Upgrades{}
}
