package weather

import "github.com/balkashynov/prodo/internal/models"

// Hint suggests how to plan focus time around the conditions
func Hint(snap models.WeatherSnapshot) string {
	switch {
	case snap.Condition == "Thunderstorm":
		return "Stormy outside. Perfect time for a long deep-work block."
	case snap.Condition == "Rain" || snap.Condition == "Snow":
		return "Stay in and knock out a couple of pomodoros."
	case snap.Temperature >= 30:
		return "It's hot. Keep water nearby and take your breaks in the shade."
	case snap.Temperature <= 0:
		return "Freezing out there. Warm drink, then your hardest task first."
	case snap.Condition == "Clear" && snap.WindSpeed < 20:
		return "Nice weather. Use your breaks for a short walk outside."
	default:
		return "Good conditions for focus. Pick one task and start the timer."
	}
}
