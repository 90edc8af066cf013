package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestTransitionValide(t *testing.T) {
	cases := []struct {
		from, to string
		ok       bool
	}{
		{DemandeStatutAttente, DemandeStatutAcceptee, true},
		{DemandeStatutAttente, DemandeStatutRefusee, true},
		{DemandeStatutAttente, DemandeStatutLivree, false},
		{DemandeStatutAcceptee, DemandeStatutEnCours, true},
		{DemandeStatutAcceptee, DemandeStatutLivree, false},
		{DemandeStatutEnCours, DemandeStatutEnlevee, true},
		{DemandeStatutEnlevee, DemandeStatutTransit, true},
		{DemandeStatutTransit, DemandeStatutLivree, true},
		{DemandeStatutTransit, DemandeStatutEnCours, false},
		{DemandeStatutLivree, DemandeStatutAnnulee, false},
		{DemandeStatutRefusee, DemandeStatutAcceptee, false},
		{DemandeStatutAnnulee, DemandeStatutEnCours, false},
		{DemandeStatutLitige, DemandeStatutLivree, true},
		{DemandeStatutLitige, DemandeStatutAnnulee, true},
		{DemandeStatutLitige, DemandeStatutTransit, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.ok, TransitionValide(tc.from, tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestEstTerminale(t *testing.T) {
	d := &Demande{Statut: DemandeStatutLivree}
	assert.True(t, d.EstTerminale())

	d.Statut = DemandeStatutTransit
	assert.False(t, d.EstTerminale())

	d.Statut = DemandeStatutLitige
	assert.False(t, d.EstTerminale(), "an open dispute is not terminal")

	d.Litige.Resolu = true
	assert.True(t, d.EstTerminale(), "a resolved dispute is terminal")
}

func TestPeutEtreAnnulee(t *testing.T) {
	d := &Demande{Statut: DemandeStatutAttente}
	assert.True(t, d.PeutEtreAnnulee())

	d.Statut = DemandeStatutAcceptee
	assert.True(t, d.PeutEtreAnnulee())

	d.Statut = DemandeStatutEnCours
	assert.False(t, d.PeutEtreAnnulee())
}

func TestEstPartie(t *testing.T) {
	expediteurID := uuid.New()
	conducteurID := uuid.New()
	d := &Demande{ExpediteurID: expediteurID, ConducteurID: conducteurID}

	assert.True(t, d.EstPartie(expediteurID))
	assert.True(t, d.EstPartie(conducteurID))
	assert.False(t, d.EstPartie(uuid.New()))
}
