package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/RedKnight91/sqlcontroller/config"
	"github.com/RedKnight91/sqlcontroller/database"
	"github.com/RedKnight91/sqlcontroller/schema"
	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: config.Cfg.SlogLevel(),
	}))

	ctx := context.Background()

	db, err := openDB(logger)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if config.Cfg.SchemaPath != "" {
		file, err := schema.Load(config.Cfg.SchemaPath)
		if err != nil {
			log.Fatal(err)
		}
		if err := schema.Apply(ctx, db, file); err != nil {
			log.Fatal(err)
		}
	}

	people, err := db.CreateTable(ctx, "people", []database.Field{
		database.NewField("name", "text", "not null"),
		database.NewField("age", "integer"),
	})
	if err != nil {
		log.Fatal(err)
	}

	if err := people.DeleteAllRows(ctx); err != nil {
		log.Fatal(err)
	}

	if err := people.AddRow(ctx, []any{"Joe", 33}, "name", "age"); err != nil {
		log.Fatal(err)
	}
	if err := people.AddRows(ctx, [][]any{{"Mia", 27}, {"Bud", 56}}, "name", "age"); err != nil {
		log.Fatal(err)
	}

	cond, err := database.BuildCondition("age", ">", 30)
	if err != nil {
		log.Fatal(err)
	}

	rows, err := people.GetRows(ctx, database.BuildQueryClauses(cond, "", 0, 0))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("people over 30:")
	for _, row := range rows {
		fmt.Printf("  %s is %d\n", row["name"], row["age"])
	}

	err = people.UpdateRows(ctx, map[string]any{"age": 34},
		database.BuildQueryClauses("name = 'Joe'", "", 0, 0))
	if err != nil {
		log.Fatal(err)
	}

	joe, err := people.GetRow(ctx, database.BuildQueryClauses("name = 'Joe'", "", 0, 0))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("after his birthday, %s is %d\n", joe["name"], joe["age"])

	if err := people.DeleteRows(ctx, database.BuildQueryClauses("age > 50", "", 0, 0)); err != nil {
		log.Fatal(err)
	}

	remaining, err := people.GetAllRows(ctx)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%d people remain\n", len(remaining))
}

// openDB opens the configured database: a hosted one when a remote URL is
// set, the local file otherwise.
func openDB(logger *slog.Logger) (*database.Database, error) {
	if config.Cfg.RemoteURL != "" {
		return database.OpenRemote(config.Cfg.RemoteURL, config.Cfg.AuthToken,
			database.WithLogger(logger))
	}

	return database.Open(config.Cfg.DBPath,
		database.WithLogger(logger),
		database.WithBusyTimeout(time.Duration(config.Cfg.BusyTimeoutMS)*time.Millisecond))
}
