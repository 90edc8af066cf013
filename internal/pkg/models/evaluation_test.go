package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestMoyenne_ThreeCriteria(t *testing.T) {
	c := Criteres{Ponctualite: 4, Communication: 5, Professionnalisme: 4}
	// mean 4.333 rounds to 4.5
	assert.Equal(t, 4.5, c.Moyenne())
}

func TestMoyenne_WithFourthCriterion(t *testing.T) {
	c := Criteres{Ponctualite: 4, Communication: 4, Professionnalisme: 4, SoinMarchandise: intPtr(5)}
	// mean 4.25 rounds to 4.5
	assert.Equal(t, 4.5, c.Moyenne())

	c = Criteres{Ponctualite: 3, Communication: 3, Professionnalisme: 3, QualiteColis: intPtr(4)}
	// mean 3.25 rounds to 3.5
	assert.Equal(t, 3.5, c.Moyenne())
}

func TestMoyenne_ExactValues(t *testing.T) {
	c := Criteres{Ponctualite: 5, Communication: 5, Professionnalisme: 5}
	assert.Equal(t, 5.0, c.Moyenne())

	c = Criteres{Ponctualite: 1, Communication: 1, Professionnalisme: 1}
	assert.Equal(t, 1.0, c.Moyenne())

	c = Criteres{Ponctualite: 4, Communication: 4, Professionnalisme: 3}
	// mean 3.667 rounds to 3.5
	assert.Equal(t, 3.5, c.Moyenne())
}
