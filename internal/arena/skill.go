package arena

import "github.com/ringside/boxing/internal/boxing"

// FightingSkill computes a boxer's fighting skill from their attributes.
// It is pure: the same boxer always yields the same score. The weight/name
// term is an integer product; the reach term is a true division.
func FightingSkill(b *boxing.Boxer) float64 {
	ageModifier := 0.0
	if b.Age < 25 {
		ageModifier = -1
	} else if b.Age > 35 {
		ageModifier = -2
	}
	return float64(b.Weight*len(b.Name)) + b.Reach/10 + ageModifier
}
