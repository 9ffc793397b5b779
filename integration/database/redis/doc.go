// Package redis provides Redis connection management with readiness waiting
// and health checking, built on go-redis.
//
//	client, err := redis.Connect(ctx, redis.Config{
//		ConnectionURL: os.Getenv("REDIS_URL"),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
package redis
