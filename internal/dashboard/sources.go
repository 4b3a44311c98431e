package dashboard

import "github.com/ncjobshub/ncjobshub/internal/models"

// Sources lists the known scraped job boards the dashboard can toggle.
func Sources() []models.JobSource {
	return []models.JobSource{
		{ID: "emploi-nc", Name: "Emploi.gouv.nc", URL: "https://emploi.gouv.nc", Enabled: true},
		{ID: "job-nc", Name: "Job.nc", URL: "https://www.job.nc", Enabled: true},
		{ID: "annonces-nc", Name: "Annonces.nc (Services)", URL: "https://www.annonces.nc", Enabled: true},
		{ID: "pole-emploi", Name: "Pôle Emploi (NC)", URL: "https://www.pole-emploi.fr", Enabled: true},
		{ID: "manpower", Name: "Manpower NC", URL: "https://nc.manpower.fr", Enabled: true},
		{ID: "indeed", Name: "Indeed (Nouméa)", URL: "https://www.indeed.com", Enabled: false},
		{ID: "fb-workplace", Name: "Facebook Workplace", URL: "https://workplace.com", Enabled: true},
	}
}

// DefaultEnabledSources returns the ids of the sources enabled out of the
// box.
func DefaultEnabledSources() map[string]bool {
	enabled := make(map[string]bool)
	for _, src := range Sources() {
		if src.Enabled {
			enabled[src.ID] = true
		}
	}
	return enabled
}

// DefaultCustomSources are the scrape targets a fresh identity starts with.
// Users can delete any of them.
func DefaultCustomSources() []models.CustomSource {
	return []models.CustomSource{
		{Type: "website", URL: "https://emploi.gouv.nc"},
		{Type: "website", URL: "https://www.nouvelle-caledonie.gouv.fr/Publications/Recrutement"},
		{Type: "website", URL: "https://www.noumea.nc/noumea-pratique/mes-demarches/candidater-job-ete"},
		{Type: "website", URL: "https://www.job.nc"},
		{Type: "website", URL: "https://www.lemploi.nc"},
		{Type: "website", URL: "https://annonces.nc/embauche"},
		{Type: "website", URL: "https://www.jobijoba.com/fr/emploi/lieu/Nouvelle-caledonie"},
		{Type: "website", URL: "https://fr.indeed.com/l-nouvelle-cal%C3%A9donie-emplois.html"},
		{Type: "website", URL: "https://candidat.francetravail.fr/offres/recherche?lieux=988D"},
		{Type: "website", URL: "https://www.hellowork.com/fr-fr/emploi/departement_nouvelle-caledonie-988.html"},
		{Type: "website", URL: "https://fr.linkedin.com/jobs/emplois-dans-noum%C3%A9a"},
		{Type: "website", URL: "https://www.aboro.nc/offres-demploi"},
		{Type: "website", URL: "https://manpower.nc/"},
		{Type: "website", URL: "https://www.facebook.com/groups/258684861704541"},
		{Type: "website", URL: "https://www.facebook.com/groups/628046117849854"},
		{Type: "website", URL: "https://www.facebook.com/groups/391213758343789"},
		{Type: "website", URL: "https://www.facebook.com/jobs"},
		{Type: "facebook_workplace", URL: "https://www.facebook.com/workplace"},
	}
}
