package repository

// storeConfig gathers construction-time settings for the sharded store.
type storeConfig struct {
	shardCount int
}

// StoreOption applies a configuration option to the ShardedStore.
type StoreOption func(*storeConfig)

// WithShardCount sets the number of shards.
func WithShardCount(count int) StoreOption {
	return func(c *storeConfig) {
		if count > 0 {
			c.shardCount = count
		}
	}
}
