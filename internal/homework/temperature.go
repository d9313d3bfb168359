package homework

func FahrenheitToCelsius(f float64) float64 {
	return (f - 32) * 5 / 9
}
