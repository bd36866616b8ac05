// Package main runs an end-to-end catering flow against a local database:
// a chef authors and publishes a menu, an event gets a service, the menu is
// approved for it, and a kitchen summary sheet is derived and staffed.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/mportesi/catering/internal/app"
	"github.com/mportesi/catering/internal/menu"
	"github.com/mportesi/catering/internal/platform/config"
)

func main() {
	cfg, err := config.ParseEnv()
	if err != nil {
		log.Fatalf("parse config: %v", err)
	}

	var chefName string
	flag.StringVar(&cfg.DatabasePath, "db-path", cfg.DatabasePath, "path to sqlite database")
	flag.StringVar(&chefName, "chef", "marianna", "username of the chef running the flow")
	flag.Parse()

	ctx := context.Background()

	a, err := app.New(ctx, cfg)
	if err != nil {
		log.Fatalf("wire application: %v", err)
	}
	defer a.Close()

	chef, err := a.Login(ctx, chefName)
	if err != nil {
		log.Fatalf("login: %v", err)
	}
	if chef == nil {
		log.Fatalf("unknown user %q; run cmd/seed first", chefName)
	}

	recipes, err := a.Store.LoadAllRecipes(ctx)
	if err != nil {
		log.Fatalf("load recipes: %v", err)
	}
	if len(recipes) == 0 {
		log.Fatalf("no recipes in database; run cmd/seed first")
	}

	m, err := a.Menus.CreateMenu(ctx, "Spring Gala")
	if err != nil {
		log.Fatalf("create menu: %v", err)
	}
	starters, err := a.Menus.AddSection(ctx, m, "Starters")
	if err != nil {
		log.Fatalf("add section: %v", err)
	}
	mains, err := a.Menus.AddSection(ctx, m, "Mains")
	if err != nil {
		log.Fatalf("add section: %v", err)
	}
	for i, rec := range recipes {
		sec := mains
		if i%2 == 1 {
			sec = starters
		}
		if _, err := a.Menus.AddItem(ctx, m, rec, sec, rec.Name()); err != nil {
			log.Fatalf("add item: %v", err)
		}
	}
	if err := a.Menus.SetFeatures(ctx, m, map[string]bool{
		menu.FeatureNeedsCook:  true,
		menu.FeatureWarmDishes: true,
	}); err != nil {
		log.Fatalf("set features: %v", err)
	}
	if err := a.Menus.Publish(ctx, m); err != nil {
		log.Fatalf("publish menu: %v", err)
	}
	fmt.Printf("menu %q published (id %d, %d items)\n", m.Title(), m.ID(), len(m.Items()))

	day := time.Now().AddDate(0, 0, 7)
	ev, err := a.Events.CreateEvent(ctx, "Spring Gala", day, day, chef)
	if err != nil {
		log.Fatalf("create event: %v", err)
	}
	dinner, err := a.Events.AddService(ctx, ev, "Gala dinner", day,
		mustClock("19:00"), mustClock("23:00"), "Villa Reale")
	if err != nil {
		log.Fatalf("add service: %v", err)
	}
	if err := a.Events.AssignMenu(ctx, ev, dinner, m); err != nil {
		log.Fatalf("assign menu: %v", err)
	}

	sheet, err := a.Kitchen.GenerateSummarySheet(ctx, ev, dinner)
	if err != nil {
		log.Fatalf("generate summary sheet: %v", err)
	}
	fmt.Printf("summary sheet %d derived with %d tasks\n", sheet.ID(), sheet.TaskCount())

	shifts := a.Shifts.ShiftsOn(day)
	if len(shifts) > 0 && len(sheet.Tasks()) > 0 {
		sh := shifts[0]
		if err := a.Shifts.BookUser(ctx, sh, chef); err != nil {
			log.Fatalf("book shift: %v", err)
		}
		if _, err := a.Kitchen.AssignTask(ctx, sheet, sheet.Tasks()[0], sh, chef); err != nil {
			log.Fatalf("assign task: %v", err)
		}
		fmt.Printf("task %q assigned to %s on shift %d\n",
			sheet.Tasks()[0].Description(), chef.Username(), sh.ID())
	}

	entries, err := a.Store.ListAuditEntries(ctx, a.Config.AuditHistoryLimit)
	if err != nil {
		log.Fatalf("list audit entries: %v", err)
	}
	fmt.Printf("\naudit trail (%d most recent):\n", len(entries))
	for _, entry := range entries {
		fmt.Printf("  %s  %-32s %s/%d  %s\n",
			entry.Timestamp.Format(time.RFC3339), entry.Action,
			entry.EntityKind, entry.EntityID, entry.Detail)
	}
}

func mustClock(value string) time.Time {
	t, err := time.Parse("15:04", value)
	if err != nil {
		log.Fatalf("parse clock %q: %v", value, err)
	}
	return t
}
