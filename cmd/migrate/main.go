// Command migrate brings the configured Spanner database up to date. It
// creates the instance and database when missing (the emulator starts
// empty) and applies every DDL file under the migrations directory in
// lexical order.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	database "cloud.google.com/go/spanner/admin/database/apiv1"
	"cloud.google.com/go/spanner/admin/database/apiv1/databasepb"
	instance "cloud.google.com/go/spanner/admin/instance/apiv1"
	"cloud.google.com/go/spanner/admin/instance/apiv1/instancepb"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/makanikart/catalog-service/internal/config"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the service config file")
	dir := flag.String("migrations", "migrations", "directory with DDL files")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	onEmulator := os.Getenv("SPANNER_EMULATOR_HOST") != ""
	if onEmulator {
		log.Printf("targeting emulator at %s", os.Getenv("SPANNER_EMULATOR_HOST"))
	}

	m := &migrator{db: cfg.Spanner, dir: *dir, onEmulator: onEmulator}
	if err := m.run(context.Background()); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	log.Printf("database %s is up to date", cfg.Spanner.DatabasePath())
}

type migrator struct {
	db         config.SpannerConfig
	dir        string
	onEmulator bool
}

func (m *migrator) run(ctx context.Context) error {
	if err := m.ensureInstance(ctx); err != nil {
		return fmt.Errorf("ensure instance: %w", err)
	}

	// The database admin client serves both remaining steps.
	admin, err := database.NewDatabaseAdminClient(ctx)
	if err != nil {
		return fmt.Errorf("database admin client: %w", err)
	}
	defer admin.Close()

	if err := m.ensureDatabase(ctx, admin); err != nil {
		return fmt.Errorf("ensure database: %w", err)
	}
	if err := m.apply(ctx, admin); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

func (m *migrator) ensureInstance(ctx context.Context) error {
	admin, err := instance.NewInstanceAdminClient(ctx)
	if err != nil {
		return fmt.Errorf("instance admin client: %w", err)
	}
	defer admin.Close()

	_, err = admin.GetInstance(ctx, &instancepb.GetInstanceRequest{Name: m.db.InstancePath()})
	if err == nil {
		return nil
	}
	if status.Code(err) != codes.NotFound {
		// Anything creation would also hit surfaces in the next step.
		log.Printf("instance lookup: %v", err)
		return nil
	}

	log.Printf("creating instance %s", m.db.Instance)
	op, err := admin.CreateInstance(ctx, &instancepb.CreateInstanceRequest{
		Parent:     "projects/" + m.db.Project,
		InstanceId: m.db.Instance,
		Instance: &instancepb.Instance{
			Config:      fmt.Sprintf("projects/%s/instanceConfigs/emulator-config", m.db.Project),
			DisplayName: m.db.Instance,
			NodeCount:   1,
		},
	})
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return nil
		}
		return fmt.Errorf("create instance: %w", err)
	}
	if _, err := op.Wait(ctx); err != nil && status.Code(err) != codes.AlreadyExists {
		// The emulator completes creation but can report the
		// long-running operation inconsistently.
		log.Printf("instance creation wait: %v", err)
	}
	return nil
}

func (m *migrator) ensureDatabase(ctx context.Context, admin *database.DatabaseAdminClient) error {
	_, err := admin.GetDatabase(ctx, &databasepb.GetDatabaseRequest{Name: m.db.DatabasePath()})
	if err == nil {
		return nil
	}
	if status.Code(err) != codes.NotFound {
		if m.onEmulator {
			log.Printf("database lookup: %v", err)
			return nil
		}
		return fmt.Errorf("database lookup: %w", err)
	}

	log.Printf("creating database %s", m.db.Database)
	op, err := admin.CreateDatabase(ctx, &databasepb.CreateDatabaseRequest{
		Parent:          m.db.InstancePath(),
		CreateStatement: fmt.Sprintf("CREATE DATABASE `%s`", m.db.Database),
	})
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return nil
		}
		return fmt.Errorf("create database: %w", err)
	}
	if _, err := op.Wait(ctx); err != nil {
		return fmt.Errorf("create database: %w", err)
	}
	return nil
}

func (m *migrator) apply(ctx context.Context, admin *database.DatabaseAdminClient) error {
	// Glob returns the files sorted, which is the application order.
	files, err := filepath.Glob(filepath.Join(m.dir, "*.sql"))
	if err != nil {
		return err
	}
	if len(files) == 0 {
		log.Printf("no *.sql files under %s", m.dir)
		return nil
	}

	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return err
		}
		stmts := ddlStatements(string(content))
		if len(stmts) == 0 {
			continue
		}

		op, err := admin.UpdateDatabaseDdl(ctx, &databasepb.UpdateDatabaseDdlRequest{
			Database:   m.db.DatabasePath(),
			Statements: stmts,
		})
		if err != nil {
			return fmt.Errorf("%s: %w", filepath.Base(file), err)
		}
		if err := op.Wait(ctx); err != nil {
			return fmt.Errorf("%s: %w", filepath.Base(file), err)
		}
		log.Printf("applied %s (%d statements)", filepath.Base(file), len(stmts))
	}
	return nil
}

// ddlStatements splits a migration file on semicolons, after dropping
// blank lines and -- comments.
func ddlStatements(content string) []string {
	var kept []string
	for _, line := range strings.Split(content, "\n") {
		if line = strings.TrimSpace(line); line != "" && !strings.HasPrefix(line, "--") {
			kept = append(kept, line)
		}
	}

	var stmts []string
	for _, stmt := range strings.Split(strings.Join(kept, "\n"), ";") {
		if stmt = strings.TrimSpace(stmt); stmt != "" {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}
