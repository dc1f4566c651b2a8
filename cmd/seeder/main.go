// The seeder fills an empty directory with demo listings so the API has
// something to serve in dev and load-test environments. Locations are drawn
// from the gazetteer, so every seeded record validates against it.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
	"sync"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"homestay/internal/adapters/observability"
	"homestay/internal/domain"
	"homestay/internal/gazetteer"
	"homestay/internal/shared"
	mysqlrepo "homestay/internal/storage/mysql"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)
	log.Info().
		Int("count", cfg.SeedCount).
		Int("workers", cfg.SeedWorkers).
		Msg("seeder starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	if err := mysqlrepo.EnsureSchema(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("schema setup failed")
	}
	log.Info().Msg("db ping ok")

	repo := mysqlrepo.New(db)
	places := gazetteer.All()

	sem := semaphore.NewWeighted(int64(cfg.SeedWorkers))
	var wg sync.WaitGroup

	for i := 0; i < cfg.SeedCount; i++ {
		n := randomListing(places, i)

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(n domain.NewAccommodation) {
			defer wg.Done()
			defer sem.Release(1)

			a, err := repo.Create(ctx, n)
			if err != nil {
				log.Warn().Err(err).Str("city", n.Location.City).Msg("seed insert failed")
				return
			}
			log.Info().Str("id", a.ID.String()).Str("city", a.Location.City).Msg("seeded")
		}(n)
	}

	wg.Wait()
	log.Info().Msg("seeding completed")
}

func randomListing(places []gazetteer.Entry, i int) domain.NewAccommodation {
	p := places[rand.Intn(len(places))]
	return domain.NewAccommodation{
		HostID:        fmt.Sprintf("seed-host-%03d", i%25),
		MaxGuests:     domain.MinGuests + rand.Intn(domain.MaxGuests),
		Location:      domain.Location{Region: string(p.Region), City: p.Name},
		Accessibility: rand.Intn(4) == 0,
		PetsAllowed:   rand.Intn(2) == 0,
	}
}
