package db

import (
	"database/sql"
	"fmt"
)

// SeedFixtures populates the database with the demo data set: three
// employees, three projects and a week of March 2024 entries.
func SeedFixtures(database *sql.DB) error {
	employees := []struct {
		id         int
		surname    string
		givenName  string
		phone      string
		email      string
		hireDate   string
		contract   string
		hourlyRate float64
	}{
		{1, "Dupont", "Marie", "0612345678", "marie@example.com", "15/01/2023", "CDI", 35.0},
		{2, "Martin", "Pierre", "0698765432", "pierre@example.com", "01/06/2022", "CDD", 28.0},
		{3, "Durand", "Sophie", "0655443322", "sophie@example.com", "01/09/2023", "Stage", 15.0},
	}
	for _, e := range employees {
		if _, err := database.Exec(
			"INSERT INTO employees (id, surname, given_name, phone, email, hire_date, contract, hourly_rate) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
			e.id, e.surname, e.givenName, e.phone, e.email, e.hireDate, e.contract, e.hourlyRate,
		); err != nil {
			return fmt.Errorf("seed employees: %w", err)
		}
	}

	projects := []struct {
		id         int
		name       string
		code       string
		hourBudget int
	}{
		{1, "Site Web Corporate", "WEB01", 500},
		{2, "Application Mobile", "MOB01", 300},
		{3, "Migration Base de Donnees", "DB01", 200},
	}
	for _, p := range projects {
		if _, err := database.Exec(
			"INSERT INTO projects (id, name, code, hour_budget) VALUES (?, ?, ?, ?)",
			p.id, p.name, p.code, p.hourBudget,
		); err != nil {
			return fmt.Errorf("seed projects: %w", err)
		}
	}

	entries := []struct {
		employeeID  int
		projectID   int
		date        string
		hours       float64
		description string
	}{
		{1, 1, "01/03/2024", 8.0, "Developpement page accueil"},
		{1, 1, "02/03/2024", 7.5, "Tests unitaires page accueil"},
		{1, 2, "03/03/2024", 6.0, "Revue de code mobile"},
		{2, 2, "01/03/2024", 7.0, "Maquettes ecran principal"},
		{2, 2, "02/03/2024", 7.5, "Integration maquettes"},
		{3, 3, "01/03/2024", 5.0, "Analyse schema existant"},
		{3, 3, "02/03/2024", 6.0, "Script de migration"},
	}
	for _, e := range entries {
		if _, err := database.Exec(
			"INSERT INTO entries (employee_id, project_id, entry_date, hours, description, status) VALUES (?, ?, ?, ?, ?, 'brouillon')",
			e.employeeID, e.projectID, e.date, e.hours, e.description,
		); err != nil {
			return fmt.Errorf("seed entries: %w", err)
		}
	}

	return nil
}
