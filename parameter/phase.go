package parameter

// Lunar cycle constants for the resolver's analytic fallback

const (
	// SynodicPeriodDays is the mean synodic month length
	SynodicPeriodDays = 29.530588

	// NewMoonEpochJD is the mean new-moon epoch (2000-01-06 18:14 UTC)
	// Used only when the meeus anchor cannot be computed
	NewMoonEpochJD = 2451550.26

	// TableConsistencyTolerancePct is the max allowed disagreement between
	// a table row and the analytic fallback on illumination, in percentage
	// points. Exceeding it logs a warning; the table value still wins.
	TableConsistencyTolerancePct = 2.0
)
