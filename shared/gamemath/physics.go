package gamemath

// ApplyGravity adds accel*delta to a vertical speed and clamps the result
// to the terminal speed. Positive values fall.
func ApplyGravity(speedY, accel, terminal, delta float64) float64 {
	speedY += accel * delta
	if speedY > terminal {
		return terminal
	}
	return speedY
}

// ClampFloat constrains value to [min, max].
func ClampFloat(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	return ClampFloat(speed, -max, max)
}

// Lerp moves from toward to by factor t.
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

