// Command dbtool creates the database schema and optionally seeds
// development data. It speaks plain database/sql so it can run against an
// empty database before the application ever starts.
package main

import (
	"database/sql"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS customers (
		id uuid PRIMARY KEY,
		name text NOT NULL,
		address text NOT NULL,
		phone text NOT NULL,
		email text NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS vehicles (
		id uuid PRIMARY KEY,
		plate text NOT NULL,
		kind text NOT NULL,
		model text NOT NULL,
		brand text NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS drivers (
		id uuid PRIMARY KEY,
		name text NOT NULL,
		available boolean NOT NULL,
		location_lat double precision,
		location_lon double precision,
		vehicle_id uuid
	)`,
	`CREATE INDEX IF NOT EXISTS idx_drivers_available ON drivers (available)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id uuid PRIMARY KEY,
		customer_id uuid NOT NULL,
		number text NOT NULL,
		status text NOT NULL,
		created_at timestamptz NOT NULL,
		estimated_delivery_time timestamptz
	)`,
	`CREATE TABLE IF NOT EXISTS shipments (
		id uuid PRIMARY KEY,
		order_id uuid NOT NULL,
		driver_id uuid,
		vehicle_id uuid,
		status text NOT NULL,
		created_at timestamptz NOT NULL,
		estimated_delivery_time timestamptz NOT NULL,
		actual_delivery_time timestamptz,
		origin_lat double precision,
		origin_lon double precision,
		destination_lat double precision,
		destination_lon double precision,
		qr_code text NOT NULL DEFAULT '',
		signature text NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS idx_shipments_driver_id ON shipments (driver_id)`,
	`CREATE INDEX IF NOT EXISTS idx_shipments_created_at ON shipments (created_at)`,
	`CREATE TABLE IF NOT EXISTS device_registrations (
		entity_id uuid PRIMARY KEY,
		device_token text NOT NULL,
		updated_at timestamptz NOT NULL
	)`,
}

var seed = []string{
	`INSERT INTO customers (id, name, address, phone, email) VALUES
		('0b0f8e63-111a-4b28-9b79-c1dc671b0001', 'Maria Lopez', '12 Harbor St', '+1-555-0101', 'maria@example.com'),
		('0b0f8e63-111a-4b28-9b79-c1dc671b0002', 'John Carter', '88 Elm Ave', '+1-555-0102', 'john@example.com')
	ON CONFLICT (id) DO NOTHING`,
	`INSERT INTO vehicles (id, plate, kind, model, brand) VALUES
		('1c1f8e63-222a-4b28-9b79-c1dc671b0001', 'AB-123-CD', 'van', 'Sprinter', 'Mercedes'),
		('1c1f8e63-222a-4b28-9b79-c1dc671b0002', 'EF-456-GH', 'motorcycle', 'CB500', 'Honda')
	ON CONFLICT (id) DO NOTHING`,
	`INSERT INTO drivers (id, name, available, location_lat, location_lon, vehicle_id) VALUES
		('2d2f8e63-333a-4b28-9b79-c1dc671b0001', 'Ana Silva', true, 40.4168, -3.7038, '1c1f8e63-222a-4b28-9b79-c1dc671b0001'),
		('2d2f8e63-333a-4b28-9b79-c1dc671b0002', 'Luis Gomez', true, 40.4200, -3.7100, '1c1f8e63-222a-4b28-9b79-c1dc671b0002')
	ON CONFLICT (id) DO NOTHING`,
	`INSERT INTO orders (id, customer_id, number, status, created_at, estimated_delivery_time) VALUES
		('3e3f8e63-444a-4b28-9b79-c1dc671b0001', '0b0f8e63-111a-4b28-9b79-c1dc671b0001', 'ORD-001', 'created', now(), NULL)
	ON CONFLICT (id) DO NOTHING`,
}

func main() {
	withSeed := flag.Bool("seed", false, "insert development seed data after creating the schema")
	flag.Parse()

	if err := godotenv.Load(".env"); err != nil {
		log.Info("no .env file found, using process environment")
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_SSLMODE"),
	)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	if err = db.Ping(); err != nil {
		log.Fatalf("failed to reach database: %v", err)
	}

	for _, stmt := range schema {
		if _, err = db.Exec(stmt); err != nil {
			log.Fatalf("schema statement failed: %v", err)
		}
	}
	log.Info("schema is up to date")

	if *withSeed {
		for _, stmt := range seed {
			if _, err = db.Exec(stmt); err != nil {
				log.Fatalf("seed statement failed: %v", err)
			}
		}
		log.Info("seed data inserted")
	}
}
