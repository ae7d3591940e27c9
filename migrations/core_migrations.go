package migrations

import "gorm.io/gorm"

func GetCoreMigrations() []MigrationDefinition {
	return []MigrationDefinition{
		{
			Name: "2026_08_01_000000_create_teams_and_matches",
			Up: func(db *gorm.DB) error {
				// Teams: the unique (name, sport) index is what turns a
				// concurrent duplicate registration into a constraint
				// violation instead of a race
				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS teams (
						id BIGSERIAL PRIMARY KEY,
						name VARCHAR(255) NOT NULL,
						sport VARCHAR(50) NOT NULL,
						captain VARCHAR(255) NOT NULL,
						contact VARCHAR(255),
						players JSONB DEFAULT '[]'::jsonb,
						status VARCHAR(20) NOT NULL DEFAULT 'pending',
						created_at TIMESTAMP DEFAULT NOW(),
						updated_at TIMESTAMP DEFAULT NOW()
					);
					CREATE UNIQUE INDEX IF NOT EXISTS idx_teams_name_sport ON teams(name, sport);
					CREATE INDEX IF NOT EXISTS idx_teams_status ON teams(status);
				`).Error; err != nil {
					return err
				}

				// Matches: team references are names, not foreign keys
				return db.Exec(`
					CREATE TABLE IF NOT EXISTS matches (
						id BIGSERIAL PRIMARY KEY,
						sport VARCHAR(50) NOT NULL,
						team1 VARCHAR(255) NOT NULL,
						team2 VARCHAR(255) NOT NULL,
						date TIMESTAMP NOT NULL,
						time VARCHAR(50) DEFAULT 'TBD',
						location VARCHAR(255),
						score JSONB DEFAULT '{"team1": null, "team2": null}'::jsonb,
						status VARCHAR(20) NOT NULL DEFAULT 'scheduled',
						winner VARCHAR(255),
						created_at TIMESTAMP DEFAULT NOW(),
						updated_at TIMESTAMP DEFAULT NOW()
					);
					CREATE INDEX IF NOT EXISTS idx_matches_sport ON matches(sport);
					CREATE INDEX IF NOT EXISTS idx_matches_date ON matches(date);
				`).Error
			},
			Down: func(db *gorm.DB) error {
				if err := db.Exec(`DROP TABLE IF EXISTS matches;`).Error; err != nil {
					return err
				}
				return db.Exec(`DROP TABLE IF EXISTS teams;`).Error
			},
		},
	}
}
