// cmd/crmctl/main.go
package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/dgoss28/clear-match-ai/internal/auth"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

var (
	dbConnString string
	verbose      bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&dbConnString, "db", "d", "", "Database connection string")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	createOrgCmd.Flags().String("plan", "standard", "Billing plan for the organization")

	createUserCmd.Flags().String("org", "", "Organization id to attach the profile to")
	createUserCmd.Flags().String("role", "recruiter", "Profile role (admin or recruiter)")
	createUserCmd.Flags().String("first-name", "", "First name")
	createUserCmd.Flags().String("last-name", "", "Last name")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(createOrgCmd)
	rootCmd.AddCommand(createUserCmd)
	rootCmd.AddCommand(versionCmd)
}

var rootCmd = &cobra.Command{
	Use:   "crmctl",
	Short: "crmctl manages the recruiting CRM database",
	Long:  `crmctl applies the database schema and provisions organizations and profiles.`,
}

// Statements are ordered so each table's references already exist. The
// candidate_tags tag_id reference restricts deletes, so a tag cannot be
// removed out from under candidates that still carry it.
var schemaStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS citext`,
	`CREATE EXTENSION IF NOT EXISTS pgcrypto`,

	`CREATE TABLE IF NOT EXISTS organizations (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		name text NOT NULL,
		plan text NOT NULL DEFAULT 'standard',
		created_at timestamptz NOT NULL DEFAULT now(),
		updated_at timestamptz NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS profiles (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		email citext NOT NULL UNIQUE,
		first_name text NOT NULL,
		last_name text,
		password_hash text NOT NULL,
		role text NOT NULL DEFAULT 'recruiter' CHECK (role IN ('admin', 'recruiter')),
		organization_id uuid REFERENCES organizations(id),
		created_at timestamptz NOT NULL DEFAULT now(),
		updated_at timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_profiles_organization_id ON profiles(organization_id)`,

	`CREATE TABLE IF NOT EXISTS candidates (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		organization_id uuid NOT NULL REFERENCES organizations(id),
		first_name text NOT NULL,
		last_name text,
		email text,
		phone text,
		linkedin_url text,
		current_company text,
		current_title text,
		past_companies text[],
		past_titles text[],
		relationship_type text NOT NULL DEFAULT 'candidate'
			CHECK (relationship_type IN ('candidate', 'client', 'both')),
		functional_role text,
		location_category text,
		is_active_looking boolean NOT NULL DEFAULT false,
		compensation jsonb,
		visa jsonb,
		notes text,
		created_by uuid NOT NULL REFERENCES profiles(id),
		updated_by uuid NOT NULL REFERENCES profiles(id),
		created_at timestamptz NOT NULL DEFAULT now(),
		updated_at timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_candidates_organization_id ON candidates(organization_id)`,
	`CREATE INDEX IF NOT EXISTS idx_candidates_relationship_type ON candidates(organization_id, relationship_type)`,

	`CREATE TABLE IF NOT EXISTS tags (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		organization_id uuid NOT NULL REFERENCES organizations(id),
		name text NOT NULL,
		color text NOT NULL DEFAULT '#6b7280',
		created_at timestamptz NOT NULL DEFAULT now(),
		updated_at timestamptz NOT NULL DEFAULT now(),
		CONSTRAINT idx_tags_org_name UNIQUE (organization_id, name)
	)`,

	`CREATE TABLE IF NOT EXISTS candidate_tags (
		candidate_id uuid NOT NULL REFERENCES candidates(id) ON DELETE CASCADE,
		tag_id uuid NOT NULL REFERENCES tags(id) ON DELETE RESTRICT,
		created_at timestamptz NOT NULL DEFAULT now(),
		PRIMARY KEY (candidate_id, tag_id)
	)`,

	`CREATE TABLE IF NOT EXISTS templates (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		organization_id uuid NOT NULL REFERENCES organizations(id),
		name text NOT NULL,
		type text NOT NULL DEFAULT 'email' CHECK (type IN ('email', 'linkedin', 'sms')),
		subject text,
		content text NOT NULL,
		variables jsonb,
		created_by uuid NOT NULL REFERENCES profiles(id),
		created_at timestamptz NOT NULL DEFAULT now(),
		updated_at timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_templates_organization_id ON templates(organization_id)`,

	`CREATE TABLE IF NOT EXISTS activities (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		organization_id uuid NOT NULL REFERENCES organizations(id),
		candidate_id uuid NOT NULL REFERENCES candidates(id) ON DELETE CASCADE,
		actor_id uuid NOT NULL REFERENCES profiles(id),
		type text NOT NULL,
		metadata jsonb,
		created_at timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_activities_candidate_created ON activities(candidate_id, created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_activities_org_created ON activities(organization_id, created_at DESC)`,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database schema",
	Long:  `Create the CRM tables, constraints and indexes. Idempotent.`,
	Run: func(cmd *cobra.Command, args []string) {
		db := openDB()
		defer db.Close()

		for _, stmt := range schemaStatements {
			if verbose {
				fmt.Println(stmt)
			}
			if _, err := db.Exec(stmt); err != nil {
				log.Fatalf("Failed to apply schema statement: %v", err)
			}
		}

		fmt.Println("Schema applied successfully")
	},
}

var createOrgCmd = &cobra.Command{
	Use:   "create-org [name]",
	Short: "Create an organization",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		db := openDB()
		defer db.Close()

		plan, _ := cmd.Flags().GetString("plan")

		var id uuid.UUID
		err := db.QueryRow(
			`INSERT INTO organizations (name, plan) VALUES ($1, $2) RETURNING id`,
			args[0], plan,
		).Scan(&id)
		if err != nil {
			log.Fatalf("Failed to create organization: %v", err)
		}

		fmt.Printf("Created organization %s (%s)\n", args[0], id)
	},
}

var createUserCmd = &cobra.Command{
	Use:   "create-user [email] [password]",
	Short: "Create a profile",
	Long:  `Create a profile, optionally attached to an organization via --org.`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		db := openDB()
		defer db.Close()

		email, password := args[0], args[1]
		role, _ := cmd.Flags().GetString("role")
		firstName, _ := cmd.Flags().GetString("first-name")
		lastName, _ := cmd.Flags().GetString("last-name")
		orgFlag, _ := cmd.Flags().GetString("org")

		if role != "admin" && role != "recruiter" {
			log.Fatalf("Invalid role %q: must be admin or recruiter", role)
		}
		if firstName == "" {
			firstName = email
		}

		var orgID *uuid.UUID
		if orgFlag != "" {
			parsed, err := uuid.Parse(orgFlag)
			if err != nil {
				log.Fatalf("Invalid organization id: %v", err)
			}
			orgID = &parsed
		}

		hash, err := auth.NewPasswordHasher().Hash(password)
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}

		var id uuid.UUID
		err = db.QueryRow(
			`INSERT INTO profiles (email, first_name, last_name, password_hash, role, organization_id)
			 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
			email, firstName, lastName, hash, role, orgID,
		).Scan(&id)
		if err != nil {
			log.Fatalf("Failed to create profile: %v", err)
		}

		fmt.Printf("Created profile %s (%s)\n", email, id)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("crmctl v0.2.0")
	},
}

func openDB() *sql.DB {
	if dbConnString == "" {
		dbConnString = os.Getenv("DATABASE_URL")
	}
	if dbConnString == "" {
		log.Fatal("Database connection string is required (--db or DATABASE_URL)")
	}

	db, err := sql.Open("postgres", dbConnString)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	return db
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
