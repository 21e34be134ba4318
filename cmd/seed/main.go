package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/miftad456/task-management-sub001/config"
	"github.com/miftad456/task-management-sub001/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	password := "password123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	seedUser := func(name, username, email string) string {
		var id string
		err := db.QueryRow(`
			INSERT INTO users (name, username, email, password_hash, avatar_url)
			VALUES ($1, $2, $3, $4, '')
			ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
			RETURNING id
		`, name, username, email, hash).Scan(&id)
		if err != nil {
			log.Fatalf("failed to seed user %s: %v", username, err)
		}
		fmt.Printf("seeded user: id=%s username=%s password=%s\n", id, username, password)
		return id
	}

	aliceID := seedUser("Alice Demo", "alice", "alice@example.com")
	bobID := seedUser("Bob Demo", "bob", "bob@example.com")
	carolID := seedUser("Carol Demo", "carol", "carol@example.com")

	var teamID string
	if err := db.QueryRow(`
		INSERT INTO teams (name, manager_id)
		VALUES ('Demo Team', $1)
		ON CONFLICT DO NOTHING
		RETURNING id
	`, carolID).Scan(&teamID); err != nil {
		// already seeded on a previous run
		if err := db.QueryRow(`SELECT id FROM teams WHERE name = 'Demo Team' AND manager_id = $1`, carolID).Scan(&teamID); err != nil {
			log.Fatalf("failed to seed team: %v", err)
		}
	}
	for _, uid := range []string{aliceID, bobID} {
		if _, err := db.Exec(`
			INSERT INTO team_members (team_id, user_id)
			VALUES ($1, $2)
			ON CONFLICT (team_id, user_id) DO NOTHING
		`, teamID, uid); err != nil {
			log.Fatalf("failed to seed team member: %v", err)
		}
	}
	fmt.Printf("seeded team: id=%s manager=%s members=[%s %s]\n", teamID, carolID, aliceID, bobID)

	tasks := []struct {
		title    string
		priority string
	}{
		{"Write onboarding docs", "medium"},
		{"Fix signup flow", "high"},
		{"Clean up backlog", "low"},
	}
	for _, t := range tasks {
		if _, err := db.Exec(`
			INSERT INTO tasks (title, description, status, priority, owner_id)
			SELECT $1, '', 'pending', $2, $3
			WHERE NOT EXISTS (SELECT 1 FROM tasks WHERE title = $1 AND owner_id = $3)
		`, t.title, t.priority, aliceID); err != nil {
			log.Fatalf("failed to seed task %q: %v", t.title, err)
		}
	}
	fmt.Println("seeded demo tasks for alice")
}
