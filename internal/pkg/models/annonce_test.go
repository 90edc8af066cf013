package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPeutAccepterColis(t *testing.T) {
	a := &Annonce{Longueur: 2, Largeur: 1.5, Hauteur: 1, PoidsMax: 100}

	assert.True(t, a.PeutAccepterColis(2, 1.5, 1, 100), "boundary values fit")
	assert.True(t, a.PeutAccepterColis(1, 1, 0.5, 20))
	assert.False(t, a.PeutAccepterColis(2.1, 1, 0.5, 20), "too long")
	assert.False(t, a.PeutAccepterColis(1, 1, 0.5, 101), "too heavy")
}

func TestRecalculerTauxAcceptation(t *testing.T) {
	a := &Annonce{NombreDemandes: 0, DemandesAcceptees: 0}
	a.RecalculerTauxAcceptation()
	assert.Equal(t, 0.0, a.TauxAcceptation, "zero requests means zero rate, not NaN")

	a.NombreDemandes = 4
	a.DemandesAcceptees = 3
	a.RecalculerTauxAcceptation()
	assert.Equal(t, 75.0, a.TauxAcceptation)
}

func TestRecalculerVolume(t *testing.T) {
	a := &Annonce{Longueur: 2, Largeur: 1.5, Hauteur: 1}
	a.RecalculerVolume()
	assert.Equal(t, 3.0, a.Volume)
}
