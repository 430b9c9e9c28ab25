package config

// Turret defaults for the player's buildTurret command (spec.md §3 leaves
// max_cooldown/detection_range as per-instance fields but never fixes a
// default for the player-built case; chosen here and recorded as an Open
// Question decision in DESIGN.md).
const (
	TurretMaxCooldown    = 10
	TurretDetectionRange = 20
)
