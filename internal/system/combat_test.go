package system

import (
	"testing"

	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/event"
	"go-tower-sim/internal/types"
)

func TestArmorDamage(t *testing.T) {
	tests := []struct {
		raw, armor, want int
	}{
		{10, 0, 10},
		{10, 4, 6},
		{3, 4, 1},
		{4, 4, 1},
	}
	for _, tt := range tests {
		if got := ArmorDamage(tt.raw, tt.armor); got != tt.want {
			t.Errorf("ArmorDamage(%d, %d) = %d, want %d", tt.raw, tt.armor, got, tt.want)
		}
	}
}

func TestKillScore(t *testing.T) {
	if got := KillScore(6, 0.7, 1); got != 13 {
		t.Errorf("runner on easy = %d, want 13", got)
	}
	if got := KillScore(12, 1.5, 1.25); got != 34 {
		t.Errorf("brute on hard = %d, want 34", got)
	}
}

func TestHitScanTwoShotsKillRunner(t *testing.T) {
	ecs, d, rec := newTestWorld(t)
	tower := addTower(t, ecs, "sniper", 100, 100, defs.TargetClosest)
	ecs.Combats[tower].Damage = 10
	enemy := addEnemy(ecs, 150, 100, 18, 0)
	money := ecs.Economy.Money

	cs := NewCombatSystem(ecs, d)
	cs.Update(16)
	if hp := ecs.Healths[enemy].Value; hp != 8 {
		t.Fatalf("hp after first shot = %d, want 8", hp)
	}

	// кулдаун ещё не прошёл
	ecs.GameTime += 100
	cs.Update(100)
	if hp := ecs.Healths[enemy].Value; hp != 8 {
		t.Fatalf("tower fired during cooldown, hp = %d", hp)
	}

	ecs.GameTime = ecs.Combats[tower].NextShotAt
	cs.Update(16)
	if ecs.IsEnemyAlive(enemy) {
		t.Fatal("enemy should be dead after second shot")
	}
	if _, ok := ecs.Enemies[enemy]; ok {
		t.Error("dead enemy still in world")
	}
	if got := ecs.Economy.Money - money; got != 6 {
		t.Errorf("money gain = %d, want 6", got)
	}
	if ecs.Economy.Score != 13 || ecs.Economy.Kills != 1 {
		t.Errorf("score=%d kills=%d, want 13 and 1", ecs.Economy.Score, ecs.Economy.Kills)
	}
	if n := rec.count(event.ShotFired); n != 2 {
		t.Errorf("ShotFired = %d, want 2", n)
	}
	if n := rec.count(event.EnemyKilled); n != 1 {
		t.Errorf("EnemyKilled = %d, want 1", n)
	}
}

func TestApplyDamageKillsOnce(t *testing.T) {
	ecs, d, rec := newTestWorld(t)
	enemy := addEnemy(ecs, 0, 0, 5, 0)

	if !ApplyDamage(ecs, d, 0, enemy, 10) {
		t.Fatal("first lethal hit should kill")
	}
	if ApplyDamage(ecs, d, 0, enemy, 10) {
		t.Fatal("second hit on a dead enemy must not kill again")
	}
	if ecs.Economy.Kills != 1 || rec.count(event.EnemyKilled) != 1 {
		t.Errorf("kills=%d events=%d, want 1 and 1", ecs.Economy.Kills, rec.count(event.EnemyKilled))
	}
}

func TestProjectileTravelsAndHits(t *testing.T) {
	ecs, d, rec := newTestWorld(t)
	addTower(t, ecs, "basic", 100, 100, defs.TargetClosest)
	enemy := addEnemy(ecs, 180, 100, 18, 4)

	cs := NewCombatSystem(ecs, d)
	ps := NewProjectileSystem(ecs, d)
	cs.Update(16)
	if len(ecs.Projectiles) != 1 {
		t.Fatalf("projectiles = %d, want 1", len(ecs.Projectiles))
	}
	if ecs.Healths[enemy].Value != 18 {
		t.Fatal("projectile must not hit on the firing tick")
	}

	for i := 0; i < 20 && len(ecs.Projectiles) > 0; i++ {
		ecs.GameTime += 16
		ps.Update(16)
	}
	if len(ecs.Projectiles) != 0 {
		t.Fatal("projectile never resolved")
	}
	if hp := ecs.Healths[enemy].Value; hp != 12 {
		t.Errorf("hp = %d, want 12 (10 damage - 4 armor)", hp)
	}
	if rec.count(event.ProjectileGone) != 1 {
		t.Errorf("ProjectileGone = %d, want 1", rec.count(event.ProjectileGone))
	}
}

func TestProjectileDiscardedWhenTargetGone(t *testing.T) {
	ecs, d, _ := newTestWorld(t)
	addTower(t, ecs, "basic", 100, 100, defs.TargetClosest)
	enemy := addEnemy(ecs, 180, 100, 18, 0)
	other := addEnemy(ecs, 182, 100, 18, 0)

	NewCombatSystem(ecs, d).Update(16)
	ecs.RemoveEnemy(enemy)

	ps := NewProjectileSystem(ecs, d)
	ecs.GameTime += 16
	ps.Update(16)
	if len(ecs.Projectiles) != 0 {
		t.Fatal("orphaned projectile should be discarded")
	}
	if ecs.Healths[other].Value != 18 {
		t.Error("orphaned projectile damaged a bystander")
	}
}

func TestProjectileExpires(t *testing.T) {
	ecs, d, _ := newTestWorld(t)
	tower := addTower(t, ecs, "basic", 100, 100, defs.TargetClosest)
	ecs.Combats[tower].Range = 2000
	enemy := addEnemy(ecs, 1050, 100, 18, 0)

	NewCombatSystem(ecs, d).Update(16)
	ps := NewProjectileSystem(ecs, d)
	for i := 0; i < 10; i++ {
		ecs.GameTime += 100
		ps.Update(100)
	}
	if len(ecs.Projectiles) != 0 {
		t.Fatal("projectile outlived its lifetime")
	}
	if ecs.Healths[enemy].Value != 18 {
		t.Error("expired projectile dealt damage")
	}
}

func TestBeamRamp(t *testing.T) {
	tests := []struct {
		lockMs, want float64
	}{
		{0, 1},
		{1000, 1.75},
		{2000, 2.5},
		{9000, 2.5},
	}
	for _, tt := range tests {
		if got := BeamRamp(tt.lockMs); got != tt.want {
			t.Errorf("BeamRamp(%v) = %v, want %v", tt.lockMs, got, tt.want)
		}
	}
}

func TestBeamDamageFalloff(t *testing.T) {
	want := []int{6, 4, 2, 2, 1}
	for i, w := range want {
		if got := BeamDamage(6, 1, i, 0); got != w {
			t.Errorf("BeamDamage(i=%d) = %d, want %d", i, got, w)
		}
	}
	if got := BeamDamage(6, 1, 0, 4); got != 2 {
		t.Errorf("armored = %d, want 2", got)
	}
	if got := BeamDamage(6, 1, 4, 4); got != 1 {
		t.Errorf("floor = %d, want 1", got)
	}
}

func TestBeamPiercesAtMostFive(t *testing.T) {
	ecs, d, _ := newTestWorld(t)
	tower := addTower(t, ecs, "laser", 100, 100, defs.TargetClosest)
	var line []types.EntityID
	for i := 0; i < 7; i++ {
		line = append(line, addEnemy(ecs, 130+float64(i)*15, 100, 1000, 0))
	}
	offLine := addEnemy(ecs, 130, 160, 1000, 0)

	NewCombatSystem(ecs, d).Update(ecs.Combats[tower].FireMs)

	beam := ecs.Beams[tower]
	if len(beam.LastHits) != 5 {
		t.Fatalf("hits = %d, want 5", len(beam.LastHits))
	}
	// ramp(110ms) = 1.0825, база 6.495, дальше спад 0.7
	wantDamage := []int{6, 4, 3, 2, 1, 0, 0}
	for i, id := range line {
		h := ecs.Healths[id]
		if got := 1000 - h.Value; got != wantDamage[i] {
			t.Errorf("enemy %d took %d, want %d", i, got, wantDamage[i])
		}
	}
	if ecs.Healths[offLine].Value != 1000 {
		t.Error("beam hit an enemy off the line")
	}
}

func TestBeamRampsWhileLockHolds(t *testing.T) {
	ecs, d, _ := newTestWorld(t)
	tower := addTower(t, ecs, "laser", 100, 100, defs.TargetClosest)
	enemy := addEnemy(ecs, 150, 100, 100000, 0)
	cs := NewCombatSystem(ecs, d)

	cs.Update(1890)
	before := ecs.Healths[enemy].Value
	cs.Update(110)

	if lock := ecs.Beams[tower].LockMs; lock != 2000 {
		t.Fatalf("lock = %v, want 2000", lock)
	}
	if got := before - ecs.Healths[enemy].Value; got != 15 {
		t.Errorf("tick at full ramp = %d, want 15", got)
	}
}

func TestBeamLockLossResetsRamp(t *testing.T) {
	ecs, d, _ := newTestWorld(t)
	tower := addTower(t, ecs, "laser", 100, 100, defs.TargetClosest)
	first := addEnemy(ecs, 150, 100, 100000, 0)
	second := addEnemy(ecs, 100, 170, 100000, 0)
	cs := NewCombatSystem(ecs, d)

	cs.Update(1500)
	if ecs.Beams[tower].Target != first {
		t.Fatal("beam should lock the closest enemy")
	}
	ecs.RemoveEnemy(first)

	cs.Update(50)
	beam := ecs.Beams[tower]
	if beam.Target != second {
		t.Fatalf("beam target = %d, want %d", beam.Target, second)
	}
	if beam.LockMs != 50 {
		t.Errorf("lock = %v, want 50 after re-acquire", beam.LockMs)
	}
}
