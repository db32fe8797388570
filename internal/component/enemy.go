package component

// Enemy представляет вражескую сущность.
type Enemy struct {
	DefID       string  // ID из каталога врагов
	Armor       int     // плоское снижение урона
	Reward      int     // деньги за убийство, уже с множителем сложности
	ScoreWeight float64 // вклад в очки за убийство
	IsSwarm     bool    // заспавнен в составе роя
	Wave        int     // номер волны, которая его породила
}

// Health — компонент здоровья
type Health struct {
	Value int
	Max   int
}
