package scenes

import (
	"image/color"
	"testing"

	"github.com/gonewx/scrapshot/pkg/components"
	"github.com/gonewx/scrapshot/pkg/config"
	"github.com/gonewx/scrapshot/pkg/game"
	"github.com/gonewx/scrapshot/pkg/simulation"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"
)

type recordingScene struct {
	draws int
}

func (r *recordingScene) Draw(*ebiten.Image, Frame) {
	r.draws++
}

func frameIn(p game.Phase) Frame {
	return Frame{HUD: simulation.HUD{Phase: p}}
}

func TestSceneManagerSelectsByPhase(t *testing.T) {
	menu, play, fallback := &recordingScene{}, &recordingScene{}, &recordingScene{}
	sm := NewSceneManager(fallback, zaptest.NewLogger(t))
	sm.Register(menu, game.PhaseMenu)
	sm.Register(play, game.PhasePlay, game.PhaseWaitingForLastEnemy)

	sm.Draw(nil, frameIn(game.PhaseMenu))
	sm.Draw(nil, frameIn(game.PhasePlay))
	sm.Draw(nil, frameIn(game.PhaseWaitingForLastEnemy))
	sm.Draw(nil, frameIn(game.PhaseSetup))

	assert.Equal(t, 1, menu.draws)
	assert.Equal(t, 2, play.draws)
	assert.Equal(t, 1, fallback.draws)
	assert.Same(t, play, sm.SceneFor(game.PhaseWaitingForLastEnemy))
}

func TestSceneManagerWithoutFallback(t *testing.T) {
	sm := NewSceneManager(nil, zaptest.NewLogger(t))
	assert.Nil(t, sm.SceneFor(game.PhaseGameOver))
	assert.NotPanics(t, func() { sm.Draw(nil, frameIn(game.PhaseGameOver)) })
}

func TestShopButtonLabels(t *testing.T) {
	gs := game.NewGameState(config.DefaultGameConfig(), config.DefaultLevelTable(), 1)
	gs.Upgrades.Split = true

	assert.Equal(t, "Hold the ball & release it on click\n(2000 scrap)", buttonLabel(gs, game.ShopBuyHold, 2))
	assert.Equal(t, "Already bought", buttonLabel(gs, game.ShopBuySplit, 2))
	assert.Equal(t, "Start level 3", buttonLabel(gs, game.ShopNextLevel, 2))
}

func TestFlashTintFades(t *testing.T) {
	flash := &components.ScreenFlashComponent{Color: color.RGBA{R: 0xFF, A: 0xFF}, Duration: 5}

	full := flashTint(flash, 5)
	assert.Equal(t, color.RGBA{R: flashAlpha, A: flashAlpha}, full)

	half := flashTint(flash, 2)
	assert.Less(t, half.A, full.A)
	assert.Positive(t, half.A)

	assert.Equal(t, color.RGBA{}, flashTint(flash, 0))
}
