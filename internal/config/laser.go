package config

// Laser sinusoid parameters (spec.md §4.8, §6).
const (
	LaserWavelength   = 5.0
	LaserPeriod       = 5.0
	LaserGrowthScale  = 0.01
	LaserGrowthMax    = 2.0
	LaserDistScale    = 0.2
	LaserNumStreams   = 5
	LaserSampleStride = 3
)
