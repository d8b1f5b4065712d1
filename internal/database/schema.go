package database

// Table definitions for the marketplace schema.  EnsureSchema runs every
// statement with CREATE TABLE IF NOT EXISTS so a fresh database bootstraps
// itself on startup; there is deliberately no migration tooling here.
// Identifiers are CHAR(36) UUIDs generated by the application, never by the
// caller, and created_at/updated_at are maintained by the storage layer.

import (
	"context"
	"database/sql"
	"time"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            CHAR(36) PRIMARY KEY,
		email         VARCHAR(100) NOT NULL UNIQUE,
		password_hash VARCHAR(100) NOT NULL,
		user_type     VARCHAR(20)  NOT NULL DEFAULT 'sponsor',
		is_active     TINYINT(1)   NOT NULL DEFAULT 1,
		created_at    DATETIME     NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at    DATETIME     NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS sessions (
		id         CHAR(36) PRIMARY KEY,
		user_id    CHAR(36)    NOT NULL,
		token_hash CHAR(64)    NOT NULL UNIQUE,
		user_type  VARCHAR(20) NOT NULL,
		expires_at DATETIME    NOT NULL,
		revoked_at DATETIME    NULL,
		created_at DATETIME    NOT NULL DEFAULT CURRENT_TIMESTAMP,
		INDEX idx_sessions_expires (expires_at),
		CONSTRAINT fk_sessions_user FOREIGN KEY (user_id) REFERENCES users(id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS sponsor_stores (
		id              CHAR(36) PRIMARY KEY,
		store_name      VARCHAR(200) NOT NULL,
		email           VARCHAR(100) NOT NULL UNIQUE,
		phone           VARCHAR(20)  NULL,
		address         TEXT         NULL,
		description     TEXT         NULL,
		category        VARCHAR(100) NULL,
		business_hours  TEXT         NULL,
		website         VARCHAR(200) NULL,
		status          VARCHAR(20)  NOT NULL DEFAULT 'pending',
		logo_url        VARCHAR(255) NULL,
		cover_image_url VARCHAR(255) NULL,
		owner_user_id   CHAR(36)     NULL,
		total_views     INT          NOT NULL DEFAULT 0,
		total_bookings  INT          NOT NULL DEFAULT 0,
		average_rating  DECIMAL(3,2) NOT NULL DEFAULT 0.00,
		is_active       TINYINT(1)   NOT NULL DEFAULT 1,
		created_at      DATETIME     NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at      DATETIME     NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		INDEX idx_stores_active_created (is_active, created_at)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS tourism_guides (
		id                CHAR(36) PRIMARY KEY,
		store_id          CHAR(36)     NOT NULL,
		guide_name        VARCHAR(100) NOT NULL,
		email             VARCHAR(100) NOT NULL,
		phone             VARCHAR(20)  NULL,
		languages         JSON         NOT NULL,
		specialties       TEXT         NULL,
		introduction      TEXT         NULL,
		experience        VARCHAR(20)  NULL,
		hourly_rate       INT          NOT NULL DEFAULT 0,
		availability      VARCHAR(20)  NULL,
		status            VARCHAR(20)  NOT NULL DEFAULT 'pending',
		profile_image_url VARCHAR(255) NULL,
		total_bookings    INT          NOT NULL DEFAULT 0,
		average_rating    DECIMAL(3,2) NOT NULL DEFAULT 0.00,
		is_available      TINYINT(1)   NOT NULL DEFAULT 1,
		created_at        DATETIME     NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at        DATETIME     NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		INDEX idx_guides_store (store_id, is_available),
		CONSTRAINT fk_guides_store FOREIGN KEY (store_id) REFERENCES sponsor_stores(id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS experience_programs (
		id               CHAR(36) PRIMARY KEY,
		store_id         CHAR(36)     NOT NULL,
		program_name     VARCHAR(200) NOT NULL,
		description      TEXT         NULL,
		duration_minutes INT          NOT NULL DEFAULT 60,
		price            INT          NOT NULL,
		max_participants INT          NOT NULL DEFAULT 10,
		languages        JSON         NOT NULL,
		category         VARCHAR(50)  NULL,
		image_url        VARCHAR(255) NULL,
		is_active        TINYINT(1)   NOT NULL DEFAULT 1,
		created_at       DATETIME     NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at       DATETIME     NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		INDEX idx_programs_store (store_id, is_active),
		CONSTRAINT fk_programs_store FOREIGN KEY (store_id) REFERENCES sponsor_stores(id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS reservations (
		id                CHAR(36) PRIMARY KEY,
		store_id          CHAR(36)     NOT NULL,
		guide_id          CHAR(36)     NULL,
		program_id        CHAR(36)     NULL,
		customer_name     VARCHAR(100) NOT NULL,
		customer_email    VARCHAR(100) NOT NULL,
		customer_phone    VARCHAR(20)  NULL,
		participant_count INT          NOT NULL DEFAULT 1,
		reservation_date  DATETIME     NOT NULL,
		total_price       INT          NOT NULL DEFAULT 0,
		status            VARCHAR(20)  NOT NULL DEFAULT 'confirmed',
		payment_status    VARCHAR(20)  NOT NULL DEFAULT 'pending',
		special_requests  TEXT         NULL,
		created_at        DATETIME     NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at        DATETIME     NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		INDEX idx_reservations_store (store_id, created_at),
		CONSTRAINT fk_reservations_store FOREIGN KEY (store_id) REFERENCES sponsor_stores(id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS reviews (
		id             CHAR(36) PRIMARY KEY,
		store_id       CHAR(36)     NOT NULL,
		guide_id       CHAR(36)     NULL,
		reservation_id CHAR(36)     NULL,
		customer_name  VARCHAR(100) NOT NULL,
		rating         TINYINT      NOT NULL,
		comment        TEXT         NULL,
		is_public      TINYINT(1)   NOT NULL DEFAULT 1,
		created_at     DATETIME     NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at     DATETIME     NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		INDEX idx_reviews_store (store_id, is_public),
		CONSTRAINT fk_reviews_store FOREIGN KEY (store_id) REFERENCES sponsor_stores(id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// EnsureSchema creates any missing tables.  It is safe to run on every
// startup.
func EnsureSchema(db *sql.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
