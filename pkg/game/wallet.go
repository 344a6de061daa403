package game

import (
	"errors"
	"fmt"
)

// ErrInsufficientFunds 钱包余额不足
var ErrInsufficientFunds = errors.New("insufficient funds")

// Wallet 全局货币（废料）
// 只在敌机被玩家或玩家的子弹摧毁时增加，在商店购买时减少
type Wallet struct {
	money int
}

// Add 增加货币，负数被忽略
func (w *Wallet) Add(amount int) {
	if amount > 0 {
		w.money += amount
	}
}

// Subtract 扣除货币
// 余额不足时不扣除并返回 ErrInsufficientFunds
func (w *Wallet) Subtract(amount int) error {
	if amount > w.money {
		return fmt.Errorf("subtract %d from %d: %w", amount, w.money, ErrInsufficientFunds)
	}
	w.money -= amount
	return nil
}

// Money 返回当前余额
func (w *Wallet) Money() int {
	return w.money
}

// Reset 清空余额（新一局开始时）
func (w *Wallet) Reset() {
	w.money = 0
}
