package main

import (
	"time"

	"github.com/anistream/anistream/cmd"
	"github.com/anistream/anistream/config"
	"github.com/anistream/anistream/internal/cache"
	"github.com/anistream/anistream/key"
	"github.com/anistream/anistream/log"
	"github.com/anistream/anistream/where"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	if viper.GetBool(key.CacheEnabled) {
		go collectGarbage()
	}

	cmd.Execute()
}

func collectGarbage() {
	ttl := time.Duration(viper.GetInt(key.CacheTTL)) * time.Minute
	removed := cache.New(where.Listings(), ttl).CollectGarbage()
	if removed > 0 {
		log.Infof("removed %d expired cache entries", removed)
	}
}
