package store

import (
	"time"

	"github.com/ncjobshub/ncjobshub/internal/models"
)

func daysAgo(d int) time.Time {
	return time.Now().UTC().AddDate(0, 0, -d)
}

// SeedJobs returns the fixture dataset the store is populated with at
// startup. Posted dates are spread over the last two weeks so the info panel
// shows varied announcement dates.
func SeedJobs() []models.JobListing {
	now := time.Now().UTC()
	return []models.JobListing{
		{
			ID: "job-land-01", SourceID: "annonces-nc", Category: "Gardening & Landscaping",
			Title: "Paysagiste Confirmé", Company: "NC Garden Design", Location: "Nouméa - Magenta",
			ContractType: "CDI", PostedDate: daysAgo(1),
			Description:  "Creation and maintenance of tropical gardens. Expertise in irrigation systems and local plant species required.",
			Requirements: []string{"Experience in tropical landscaping", "Knowledge of irrigation", "Permit B"},
			ContactPhone: "+687 23.45.67", URL: "https://www.annonces.nc/services/land-01",
			Status: models.StatusNew, ScrapeTimestamp: now,
		},
		{
			ID: "job-land-02", SourceID: "fb-workplace", Category: "Gardening & Landscaping",
			Title: "Entretien de jardin - Urgent", Company: "FB Group: Entraide NC", Location: "Dumbéa sur mer",
			ContractType: "Mission", PostedDate: daysAgo(3),
			Description:  "Looking for someone to mow the lawn and trim hedges. Large property, equipment provided.",
			Requirements: []string{"Reliable", "Available this weekend"},
			ContactEmail: "messenger@facebook.com", ContactPhone: "+687 77.88.99",
			URL: "https://workplace.com/groups/entraide/posts/land-02", Status: models.StatusNew, ScrapeTimestamp: now,
		},
		{
			ID: "job-land-03", SourceID: "job-nc", Category: "Gardening & Landscaping",
			Title: "Ouvrier Espaces Verts", Company: "Cidex NC", Location: "Païta",
			ContractType: "CDD", PostedDate: daysAgo(5),
			Description:  "Maintenance of public spaces and roadside vegetation. Brushcutting and pruning.",
			Requirements: []string{"Manual dexterity", "Safety conscious"},
			ContactPhone: "+687 35.10.20", URL: "https://www.job.nc/offres/land-03",
			Status: models.StatusNew, ScrapeTimestamp: now,
		},
		{
			ID: "job-const-01", SourceID: "indeed", Category: "Construction & BTP",
			Title: "Maçon Coffreur", Company: "Arbe NC", Location: "Nouméa - Ducos",
			ContractType: "CDI", PostedDate: daysAgo(2),
			Description:  "Working on a large residential complex. Concrete pouring and formwork.",
			Requirements: []string{"3 years experience", "Precision", "Team player"},
			ContactPhone: "+687 28.12.34", URL: "https://www.indeed.com/nc/const-01",
			Status: models.StatusNew, ScrapeTimestamp: now,
		},
		{
			ID: "job-const-02", SourceID: "manpower", Category: "Construction & BTP",
			Title: "Conducteur d'Engins de Terrassement", Company: "Vinci Construction", Location: "Mont-Dore",
			ContractType: "CDD", PostedDate: daysAgo(7),
			Description:  "Operating excavators for new road construction projects.",
			Requirements: []string{"CACES R482", "5 years experience"},
			ContactPhone: "+687 43.55.66", URL: "https://nc.manpower.fr/const-02",
			Status: models.StatusNew, ScrapeTimestamp: now,
		},
		{
			ID: "job-const-03", SourceID: "job-nc", Category: "Construction & BTP",
			Title: "Chef de Chantier Second Œuvre", Company: "Socat NC", Location: "Koné",
			ContractType: "CDI", PostedDate: daysAgo(10),
			Description:  "Managing interior finishing works (plastering, painting, tiling) for public buildings in the North.",
			Requirements: []string{"Leadership skills", "Reporting", "Site safety management"},
			ContactPhone: "+687 47.99.00", URL: "https://www.job.nc/offres/const-03",
			Status: models.StatusNew, ScrapeTimestamp: now,
		},
		{
			ID: "job-mine-01", SourceID: "emploi-nc", Category: "Mining & Industry",
			Title: "Technicien de Maintenance Industrielle", Company: "SLN - Société Le Nickel", Location: "Doniambo",
			ContractType: "CDI", PostedDate: daysAgo(4),
			Description:  "Preventive and curative maintenance on nickel processing furnaces.",
			Requirements: []string{"Electrotechnical background", "Night shifts", "Rigorous"},
			ContactPhone: "+687 27.31.11", URL: "https://emploi.gouv.nc/mine-01",
			Status: models.StatusNew, ScrapeTimestamp: now,
		},
		{
			ID: "job-mine-02", SourceID: "job-nc", Category: "Mining & Industry",
			Title: "Géologue de Mine", Company: "Koniambo Nickel SAS", Location: "Voh",
			ContractType: "CDD (18 months)", PostedDate: daysAgo(14),
			Description:  "Ore control and geological mapping on the mining massif.",
			Requirements: []string{"Master in Geology", "Field experience", "Driver license"},
			ContactPhone: "+687 42.00.01", URL: "https://www.job.nc/offres/mine-02",
			Status: models.StatusNew, ScrapeTimestamp: now,
		},
		{
			ID: "job-mine-03", SourceID: "manpower", Category: "Mining & Industry",
			Title: "Opérateur de Sondeuse", Company: "Goro Nickel (Prony Resources)", Location: "Yaté",
			ContractType: "CDI", PostedDate: daysAgo(6),
			Description:  "Operating core drilling rigs for exploration.",
			Requirements: []string{"Drilling experience", "Endurance", "Camp living"},
			ContactPhone: "+687 25.00.25", URL: "https://nc.manpower.fr/mine-03",
			Status: models.StatusNew, ScrapeTimestamp: now,
		},
		{
			ID: "job-pub-01", SourceID: "emploi-nc", Category: "Public Sector",
			Title: "Adjoint Administratif", Company: "Mairie de Nouméa", Location: "Nouméa Centre",
			ContractType: "Permanent", PostedDate: daysAgo(0),
			Description:  "Processing civil status records and general administrative tasks.",
			Requirements: []string{"Administration degree", "Discretion", "Bilingual preferred"},
			ContactPhone: "+687 27.31.15", URL: "https://emploi.gouv.nc/pub-01",
			Status: models.StatusNew, ScrapeTimestamp: now,
		},
		{
			ID: "job-pub-02", SourceID: "emploi-nc", Category: "Public Sector",
			Title: "Chargé d'Etudes Environnement", Company: "Province Sud", Location: "Nouméa",
			ContractType: "CDD", PostedDate: daysAgo(9),
			Description:  "Environmental impact assessment for coastal development projects.",
			Requirements: []string{"Environment degree", "Knowledge of local law"},
			ContactPhone: "+687 20.30.40", URL: "https://emploi.gouv.nc/pub-02",
			Status: models.StatusNew, ScrapeTimestamp: now,
		},
		{
			ID: "job-hosp-01", SourceID: "job-nc", Category: "Hospitality & Tourism",
			Title: "Réceptionniste Bilingue", Company: "Château Royal Beach Resort", Location: "Anse Vata",
			ContractType: "CDI", PostedDate: daysAgo(2),
			Description:  "Welcoming international guests, managing bookings and concierge services.",
			Requirements: []string{"Fluent English & French", "Customer service oriented"},
			ContactPhone: "+687 26.12.00", URL: "https://www.job.nc/offres/hosp-01",
			Status: models.StatusNew, ScrapeTimestamp: now,
		},
		{
			ID: "job-hosp-02", SourceID: "annonces-nc", Category: "Hospitality & Tourism",
			Title: "Chef de Partie (Cuisine)", Company: "Le Roof", Location: "Nouméa",
			ContractType: "CDI", PostedDate: daysAgo(11),
			Description:  "In charge of the fish and seafood section. Creative and high-end restaurant.",
			Requirements: []string{"Culinary degree", "Passion for local products"},
			ContactPhone: "+687 25.00.50", URL: "https://www.annonces.nc/services/hosp-02",
			Status: models.StatusNew, ScrapeTimestamp: now,
		},
		{
			ID: "job-trans-01", SourceID: "manpower", Category: "Transport & Logistics",
			Title: "Chauffeur Poids Lourd", Company: "Sodexo NC", Location: "Païta",
			ContractType: "CDI", PostedDate: daysAgo(8),
			Description:  "Daily delivery of prepared meals to schools and companies across the territory.",
			Requirements: []string{"Permit C", "FIMO", "Punctuality"},
			ContactPhone: "+687 24.33.22", URL: "https://nc.manpower.fr/trans-01",
			Status: models.StatusNew, ScrapeTimestamp: now,
		},
		{
			ID: "job-trans-02", SourceID: "job-nc", Category: "Transport & Logistics",
			Title: "Agent d'Escale", Company: "Aircalin", Location: "Tontouta",
			ContractType: "CDD (Vacations)", PostedDate: daysAgo(12),
			Description:  "Passenger check-in and boarding at Tontouta International Airport.",
			Requirements: []string{"Good presentation", "English required", "Shift work"},
			ContactPhone: "+687 35.11.22", URL: "https://www.job.nc/offres/trans-02",
			Status: models.StatusNew, ScrapeTimestamp: now,
		},
		{
			ID: "job-health-01", SourceID: "pole-emploi", Category: "Healthcare",
			Title: "Infirmier Diplômé d'Etat", Company: "CHT Gaston-Bourret", Location: "Nouméa - Dumbéa",
			ContractType: "CDD", PostedDate: daysAgo(3),
			Description:  "Nursing duties in the Emergency department. Dynamic team.",
			Requirements: []string{"State Nursing Diploma", "Experience in ER"},
			ContactPhone: "+687 20.80.00", URL: "https://www.pole-emploi.fr/nc/health-01",
			Status: models.StatusNew, ScrapeTimestamp: now,
		},
		{
			ID: "fb-4", SourceID: "fb-workplace", Category: "Domestic Services",
			Title: "Femme de ménage - 4h par semaine", Company: "Private Individual", Location: "Mont-Dore",
			ContractType: "Part-time", PostedDate: daysAgo(1),
			Description:  "Ironing and cleaning for a small family home.",
			Requirements: []string{"Trustworthy", "Local references"},
			ContactEmail: "messenger@facebook.com", ContactPhone: "+687 99.88.77",
			URL: "https://workplace.com/posts/fb-4", Status: models.StatusNew, ScrapeTimestamp: now,
		},
		{
			ID: "fb-5", SourceID: "fb-workplace", Category: "Technical",
			Title: "Cherche mécanicien auto à domicile", Company: "FB Group: Auto NC", Location: "Nouméa - Ducos",
			ContractType: "Mission", PostedDate: daysAgo(5),
			Description:  "Need help to change brake pads on a Hilux. Have the parts, need the tools/expertise.",
			Requirements: []string{"Auto mechanic knowledge"},
			ContactEmail: "messenger@facebook.com", ContactPhone: "+687 77.00.11",
			URL: "https://workplace.com/posts/fb-5", Status: models.StatusNew, ScrapeTimestamp: now,
		},
	}
}

// DefaultIdentity returns the initial user profile.
func DefaultIdentity() models.UserIdentity {
	return models.UserIdentity{
		Language: models.LanguageEN,
		ResumeText: `Dependable professional with proven track record across New Caledonia's labour and service sectors. Hands-on experience spanning:

- Grounds & green spaces — gardening, landscaping, maintenance
- Construction & renovation — demolition, concreting, renovation works
- Industrial — factory operations and production environments

Adaptable worker, ready to contribute across trades and on-site roles.`,
		Skills: []string{
			"gardening", "landscaping", "maintenance", "demolition",
			"concreting", "renovation works", "factory operations", "production",
		},
		Certifications:     []string{},
		ExperienceSummary:  "Dependable professional with proven track record across New Caledonia's labour and service sectors. Adaptable worker, ready to contribute across trades and on-site roles.",
		PreferredLocations: []string{"Nouméa", "Dumbéa", "Païta"},
		PreferredCommunes:  []string{},
		PreferredJobTypes:  []string{"CDI", "CDD", "Short Term"},
		CustomSources:      []models.CustomSource{},
	}
}
