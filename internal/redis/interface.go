package redis

import (
	"github.com/redis/go-redis/v9"
)

//go:generate mockgen -destination=mocks/redis.go -package=redismocks -source=interface.go

// Client is the subset of go-redis the run store needs. It embeds the
// universal client so a cluster client fits as well.
type Client interface {
	redis.UniversalClient
}
