package config

import "golang.org/x/sys/cpu"

// Strategy resolution chain (highest priority first):
//   1. -strategy flag
//   2. LONGDIV_STRATEGY
//   3. CPU feature detection (this file)

// DefaultStrategy picks the multiply-subtract strategy suited to the host.
// With ADX and BMI2 the product-then-subtract formulation maps onto
// MULX/ADCX/ADOX chains; elsewhere the single-pass form is preferred.
func DefaultStrategy() string {
	return strategyFor(cpu.X86.HasADX, cpu.X86.HasBMI2)
}

func strategyFor(hasADX, hasBMI2 bool) string {
	if hasADX && hasBMI2 {
		return "twopass"
	}
	return "direct"
}
