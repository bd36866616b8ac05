// Package main seeds a catering database with users, recipes, and shifts
// for local development.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/mportesi/catering/internal/platform/config"
	"github.com/mportesi/catering/internal/recipe"
	"github.com/mportesi/catering/internal/shift"
	"github.com/mportesi/catering/internal/storage/sqlite"
	"github.com/mportesi/catering/internal/user"
)

func main() {
	cfg, err := config.ParseEnv()
	if err != nil {
		log.Fatalf("parse config: %v", err)
	}

	var dbPath string
	flag.StringVar(&dbPath, "db-path", cfg.DatabasePath, "path to sqlite database")
	flag.Parse()

	store, err := sqlite.Open(dbPath)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	defer store.Close()

	ctx := context.Background()

	users := []*user.User{
		user.New("marianna", user.RoleChef, user.RoleCook),
		user.New("tony", user.RoleCook),
		user.New("federica", user.RoleOrganizer),
		user.New("giulia", user.RoleServicePersonnel),
	}
	for _, u := range users {
		existing, err := store.LoadUserByUsername(ctx, u.Username())
		if err != nil {
			log.Fatalf("load user %s: %v", u.Username(), err)
		}
		if existing != nil {
			continue
		}
		if err := store.CreateUser(ctx, u); err != nil {
			log.Fatalf("create user %s: %v", u.Username(), err)
		}
		fmt.Printf("user %s (id %d)\n", u.Username(), u.ID())
	}

	for _, r := range seedRecipes() {
		if err := store.CreateRecipe(ctx, r); err != nil {
			log.Fatalf("create recipe %s: %v", r.Name(), err)
		}
		fmt.Printf("recipe %s (id %d, %d preparations)\n", r.Name(), r.ID(), len(r.Preparations()))
	}

	day := time.Now().AddDate(0, 0, 7)
	for _, window := range [][2]string{{"08:00", "14:00"}, {"14:00", "20:00"}} {
		start, _ := time.Parse("15:04", window[0])
		end, _ := time.Parse("15:04", window[1])
		sh := shift.New(day, start, end)
		if err := store.CreateShift(ctx, sh); err != nil {
			log.Fatalf("create shift: %v", err)
		}
		fmt.Printf("shift %s %s-%s (id %d)\n", day.Format("2006-01-02"), window[0], window[1], sh.ID())
	}
}

func seedRecipes() []*recipe.Recipe {
	lasagna := recipe.NewRecipe("Lasagna al forno")
	lasagna.SetDescription("Classic baked lasagna with ragu and besciamella")
	for _, step := range []string{"Prepare ragu", "Prepare besciamella", "Assemble and bake"} {
		lasagna.AddPreparation(recipe.NewPreparation(step))
	}

	tiramisu := recipe.NewRecipe("Tiramisu")
	tiramisu.SetDescription("Espresso-soaked savoiardi layered with mascarpone cream")
	for _, step := range []string{"Whip mascarpone cream", "Soak savoiardi", "Layer and chill"} {
		tiramisu.AddPreparation(recipe.NewPreparation(step))
	}

	crudo := recipe.NewRecipe("Prosciutto e melone")
	crudo.SetDescription("Cured ham with ripe cantaloupe, no cooking required")

	return []*recipe.Recipe{lasagna, tiramisu, crudo}
}
