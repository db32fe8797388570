package component

// WaveState — фаза волн: перерыв или идут спавнеры.
type WaveState int

const (
	Intermission WaveState = iota
	Running
)

func (s WaveState) String() string {
	if s == Running {
		return "running"
	}
	return "intermission"
}

// GameState — компонент для хранения состояния сессии
type GameState struct {
	WaveState           WaveState
	Wave                int // номер последней запущенной волны (1, пока ни одной)
	NextWave            int // номер, который получит следующий спавнер
	LastClearedWave     int
	NextWaveAvailableAt float64
	AutoStartAt         float64 // 0 — автостарт не запланирован
	StartedFirstWave    bool
	Paused              bool
	GameOver            bool
}

// Economy — деньги, очки, жизни и счётчик убийств.
type Economy struct {
	Money int
	Score int
	Lives int
	Kills int
}

// CanAfford reports whether cost can be paid without going negative.
func (e *Economy) CanAfford(cost int) bool {
	return cost >= 0 && e.Money >= cost
}

// Spend debits cost if affordable.
func (e *Economy) Spend(cost int) bool {
	if !e.CanAfford(cost) {
		return false
	}
	e.Money -= cost
	return true
}
