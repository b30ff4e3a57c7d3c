package sql

import (
	"database/sql"
	_ "embed"
	"fmt"
	"log"
)

//go:embed init.sql
var initSQL string

//go:embed thinkers.sql
var thinkersSQL string

//go:embed connections.sql
var connectionsSQL string

// Function lists for verification
var ThinkersFunctions = []string{
	"init_thinkers",
	"insert_thinker",
	"select_thinker",
	"select_all_thinkers",
	"update_thinker",
	"delete_thinker",
}

var ConnectionsFunctions = []string{
	"init_connections",
	"insert_connection",
	"select_connection",
	"select_all_connections",
	"select_connections_by_types",
	"select_connections_of_thinker",
	"update_connection_strength",
	"delete_connection",
}

// Init intializes db extensions
func Init(db *sql.DB) error {
	_, err := db.Exec(initSQL)
	if err != nil {
		return fmt.Errorf("error executing schema SQL: %w", err)
	}

	log.Println("Database extensions initialized successfully")
	return nil
}

// LoadThinkersSql loads thinker-related SQL functions
func LoadThinkersSql(db *sql.DB, force bool) error {
	return loadSql(db, "thinkers", thinkersSQL, ThinkersFunctions, force)
}

// LoadConnectionsSql loads connection-related SQL functions
func LoadConnectionsSql(db *sql.DB, force bool) error {
	return loadSql(db, "connections", connectionsSQL, ConnectionsFunctions, force)
}

// LoadAllSql loads all SQL functions
func LoadAllSql(db *sql.DB, force bool) error {
	if err := LoadThinkersSql(db, force); err != nil {
		return err
	}

	if err := LoadConnectionsSql(db, force); err != nil {
		return err
	}

	return nil
}

// loadSql executes the given SQL unless all its functions already exist.
// With force the SQL is executed in any case.
func loadSql(db *sql.DB, name string, query string, functions []string, force bool) error {
	if !force {
		exist, err := checkFunctions(db, functions)
		if err != nil {
			return fmt.Errorf("error checking existing %s functions: %w", name, err)
		}
		if exist {
			return nil
		}
	}

	_, err := db.Exec(query)
	if err != nil {
		return fmt.Errorf("error executing %s SQL: %w", name, err)
	}

	exist, err := checkFunctions(db, functions)
	if err != nil {
		return fmt.Errorf("error checking existing functions: %w", err)
	}
	if !exist {
		return fmt.Errorf("not all required SQL functions were created")
	}

	log.Printf("SQL %s functions loaded successfully", name)
	return nil
}

// checkFunctions verifies that all required functions exist in the database
func checkFunctions(db *sql.DB, sqlFunctions []string) (bool, error) {
	var allExist bool
	for _, f := range sqlFunctions {
		err := db.QueryRow(
			`SELECT EXISTS(SELECT 1 FROM pg_proc WHERE proname = $1);`,
			f,
		).Scan(&allExist)
		if err != nil {
			return false, fmt.Errorf("error checking existence of function %s: %w", f, err)
		}
		if !allExist {
			log.Printf("Function %s does not exist", f)
			break
		}
	}
	return allExist, nil
}
