// internal/state/state.go
package state

import (
	"go-tower-sim/internal/app"
	"go-tower-sim/internal/storage"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// Host — то, что экраны получают от main: опции, шрифты и хранилища.
type Host struct {
	Options     app.Options
	Leaderboard *storage.Leaderboard // nil — таблица рекордов отключена
	ReplayDir   string               // пусто — реплеи не пишутся
	Face        font.Face
	TitleFace   font.Face
}

// StateMachine — структура для управления состояниями
type StateMachine struct {
	current State
	Host    *Host
	quit    bool
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine(host *Host) *StateMachine {
	return &StateMachine{Host: host}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}

// Quit asks the host loop to stop after this frame.
func (sm *StateMachine) Quit() { sm.quit = true }

func (sm *StateMachine) ShouldQuit() bool { return sm.quit }
