// Package pg provides PostgreSQL connection management with retry logic,
// pool tuning and integrated goose migrations, built on the pgx driver.
//
//	cfg := pg.Config{ConnectionString: os.Getenv("PG_CONN_URL")}
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, cfg, logger); err != nil {
//		log.Fatal(err)
//	}
//
// Healthcheck returns a probe function for readiness endpoints.
package pg
