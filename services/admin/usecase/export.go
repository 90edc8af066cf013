package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/transportconnect/transportconnect/internal/pkg/models"
)

const (
	formatJSON = "json"
	formatCSV  = "csv"

	mimeJSON = "application/json"
	mimeCSV  = "text/csv"
)

// Export renders one dataset in the requested format. JSON is the default;
// CSV carries a header row and RFC 3339 timestamps.
func (u *AdminUC) Export(ctx context.Context, dataset, format string) ([]byte, string, error) {
	if format == "" {
		format = formatJSON
	}
	if format != formatJSON && format != formatCSV {
		return nil, "", fmt.Errorf("%w: unknown export format %q", models.ErrValidation, format)
	}

	switch dataset {
	case models.ExportUtilisateurs:
		rows, err := u.adminRepo.ExportUtilisateurs(ctx)
		if err != nil {
			return nil, "", err
		}
		return rendre(format, rows, enTetesUtilisateurs, lignesUtilisateurs(rows))
	case models.ExportAnnonces:
		rows, err := u.adminRepo.ExportAnnonces(ctx)
		if err != nil {
			return nil, "", err
		}
		return rendre(format, rows, enTetesAnnonces, lignesAnnonces(rows))
	case models.ExportDemandes:
		rows, err := u.adminRepo.ExportDemandes(ctx)
		if err != nil {
			return nil, "", err
		}
		return rendre(format, rows, enTetesDemandes, lignesDemandes(rows))
	case models.ExportEvaluations:
		rows, err := u.adminRepo.ExportEvaluations(ctx)
		if err != nil {
			return nil, "", err
		}
		return rendre(format, rows, enTetesEvaluations, lignesEvaluations(rows))
	}
	return nil, "", fmt.Errorf("%w: unknown export dataset %q", models.ErrValidation, dataset)
}

func rendre(format string, payload interface{}, enTetes []string, lignes [][]string) ([]byte, string, error) {
	if format == formatJSON {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, "", fmt.Errorf("failed to encode export: %w", err)
		}
		return data, mimeJSON, nil
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(enTetes); err != nil {
		return nil, "", fmt.Errorf("failed to write csv header: %w", err)
	}
	if err := w.WriteAll(lignes); err != nil {
		return nil, "", fmt.Errorf("failed to write csv rows: %w", err)
	}
	return buf.Bytes(), mimeCSV, nil
}

var enTetesUtilisateurs = []string{
	"id", "nom", "prenom", "email", "role", "statut",
	"note_moyenne", "nombre_evaluations", "created_at",
}

func lignesUtilisateurs(rows []*models.ExportUtilisateur) [][]string {
	lignes := make([][]string, 0, len(rows))
	for _, r := range rows {
		lignes = append(lignes, []string{
			r.ID.String(), r.Nom, r.Prenom, r.Email, r.Role, r.Statut,
			flottant(r.NoteMoyenne), strconv.Itoa(r.NombreEvaluations), horodatage(r.CreatedAt),
		})
	}
	return lignes
}

var enTetesAnnonces = []string{
	"id", "conducteur_id", "ville_depart", "ville_destination", "date_depart",
	"statut", "tarification_type", "tarification_montant", "nombre_demandes", "created_at",
}

func lignesAnnonces(rows []*models.ExportAnnonce) [][]string {
	lignes := make([][]string, 0, len(rows))
	for _, r := range rows {
		lignes = append(lignes, []string{
			r.ID.String(), r.ConducteurID.String(), r.VilleDepart, r.VilleDestination,
			horodatage(r.DateDepart), r.Statut, r.TarificationType,
			flottant(r.TarificationMontant), strconv.Itoa(r.NombreDemandes), horodatage(r.CreatedAt),
		})
	}
	return lignes
}

var enTetesDemandes = []string{
	"id", "annonce_id", "expediteur_id", "conducteur_id", "statut",
	"prix_propose", "prix_accepte", "numero_suivi", "created_at", "date_livraison",
}

func lignesDemandes(rows []*models.ExportDemande) [][]string {
	lignes := make([][]string, 0, len(rows))
	for _, r := range rows {
		prixAccepte := ""
		if r.PrixAccepte != nil {
			prixAccepte = flottant(*r.PrixAccepte)
		}
		numeroSuivi := ""
		if r.NumeroSuivi != nil {
			numeroSuivi = *r.NumeroSuivi
		}
		livraison := ""
		if r.DateLivraison != nil {
			livraison = horodatage(*r.DateLivraison)
		}
		lignes = append(lignes, []string{
			r.ID.String(), r.AnnonceID.String(), r.ExpediteurID.String(), r.ConducteurID.String(),
			r.Statut, flottant(r.PrixPropose), prixAccepte, numeroSuivi,
			horodatage(r.CreatedAt), livraison,
		})
	}
	return lignes
}

var enTetesEvaluations = []string{
	"id", "demande_id", "evaluateur_id", "evalue_id",
	"note", "recommande", "approuvee", "created_at",
}

func lignesEvaluations(rows []*models.ExportEvaluation) [][]string {
	lignes := make([][]string, 0, len(rows))
	for _, r := range rows {
		lignes = append(lignes, []string{
			r.ID.String(), r.DemandeID.String(), r.EvaluateurID.String(), r.EvalueID.String(),
			flottant(r.Note), strconv.FormatBool(r.Recommande), strconv.FormatBool(r.Approuvee),
			horodatage(r.CreatedAt),
		})
	}
	return lignes
}

func flottant(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func horodatage(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
