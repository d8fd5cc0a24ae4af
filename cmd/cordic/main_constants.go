package main

// Output precision
const (
	anglePrecision  = 6  // decimals for the echoed angle
	resultPrecision = 12 // decimals for sine and cosine
)

// Sweep defaults
const (
	defaultSweepStep = 0.1 // degrees between sweep angles
	sweepFrom        = -180.0
	sweepTo          = 180.0
)
