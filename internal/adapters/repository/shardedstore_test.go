package repository_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/Reesemix123/the-coach-hub-sub008/internal/adapters/repository"
	"github.com/Reesemix123/the-coach-hub-sub008/internal/domain/classify"
	"github.com/Reesemix123/the-coach-hub-sub008/internal/domain/model"
)

func outcome(assignmentID, playID, label string) model.Outcome {
	return model.Outcome{
		AssignmentID: assignmentID,
		PlayID:       playID,
		Kind:         model.KindRoute,
		Label:        label,
		Confidence:   classify.High,
		ClassifiedAt: time.Now(),
	}
}

func TestShardedStore(t *testing.T) {
	Convey("Given a new sharded store", t, func() {
		store := repository.NewShardedStore()
		ctx := context.Background()

		Convey("When an outcome is stored", func() {
			So(store.Put(ctx, outcome("a-1", "play-1", "Go/Streak/9")), ShouldBeNil)

			Convey("Then it can be fetched by assignment id", func() {
				got, err := store.Get(ctx, "a-1")
				So(err, ShouldBeNil)
				So(got.Label, ShouldEqual, "Go/Streak/9")
				So(store.Count(ctx), ShouldEqual, 1)
			})

			Convey("And when it is stored again with a new label", func() {
				So(store.Put(ctx, outcome("a-1", "play-1", "Seam")), ShouldBeNil)

				Convey("Then the write is an upsert", func() {
					got, err := store.Get(ctx, "a-1")
					So(err, ShouldBeNil)
					So(got.Label, ShouldEqual, "Seam")
					So(store.Count(ctx), ShouldEqual, 1)
				})
			})

			Convey("And when it moves to a different play", func() {
				So(store.Put(ctx, outcome("a-1", "play-2", "Seam")), ShouldBeNil)

				Convey("Then the old play index no longer lists it", func() {
					old, err := store.ByPlay(ctx, "play-1")
					So(err, ShouldBeNil)
					So(old, ShouldBeEmpty)

					moved, err := store.ByPlay(ctx, "play-2")
					So(err, ShouldBeNil)
					So(moved, ShouldHaveLength, 1)
				})
			})
		})

		Convey("When fetching an unknown assignment", func() {
			_, err := store.Get(ctx, "missing")

			Convey("Then it is a not-found error", func() {
				So(err, ShouldEqual, repository.ErrNotFound)
			})
		})

		Convey("When storing an outcome without an id", func() {
			err := store.Put(ctx, outcome("", "play-1", "Go/Streak/9"))

			Convey("Then the write is rejected", func() {
				So(err, ShouldEqual, repository.ErrEmptyID)
			})
		})

		Convey("When several outcomes share a play", func() {
			for i := 0; i < 5; i++ {
				So(store.Put(ctx, outcome(fmt.Sprintf("a-%d", i), "play-9", "Slant")), ShouldBeNil)
			}
			So(store.Put(ctx, outcome("other", "play-x", "Flat")), ShouldBeNil)

			Convey("Then ByPlay returns exactly that play's outcomes", func() {
				got, err := store.ByPlay(ctx, "play-9")
				So(err, ShouldBeNil)
				So(got, ShouldHaveLength, 5)
			})

			Convey("Then an unknown play yields an empty list", func() {
				got, err := store.ByPlay(ctx, "play-none")
				So(err, ShouldBeNil)
				So(got, ShouldBeEmpty)
			})
		})

		Convey("When many goroutines write across shards", func() {
			const writers = 16
			const perWriter = 50
			var wg sync.WaitGroup

			for w := 0; w < writers; w++ {
				wg.Add(1)
				go func(w int) {
					defer wg.Done()
					for i := 0; i < perWriter; i++ {
						id := fmt.Sprintf("w%d-a%d", w, i)
						_ = store.Put(ctx, outcome(id, fmt.Sprintf("play-%d", w), "Out"))
					}
				}(w)
			}
			wg.Wait()

			Convey("Then every write is visible", func() {
				So(store.Count(ctx), ShouldEqual, writers*perWriter)

				got, err := store.ByPlay(ctx, "play-3")
				So(err, ShouldBeNil)
				So(got, ShouldHaveLength, perWriter)
			})
		})
	})

	Convey("Given a store with a single shard", t, func() {
		store := repository.NewShardedStore(repository.WithShardCount(1))
		ctx := context.Background()

		Convey("When outcomes are stored", func() {
			So(store.Put(ctx, outcome("a-1", "play-1", "Go/Streak/9")), ShouldBeNil)
			So(store.Put(ctx, outcome("a-2", "play-1", "Post")), ShouldBeNil)

			Convey("Then reads behave identically", func() {
				So(store.Count(ctx), ShouldEqual, 2)
				got, err := store.ByPlay(ctx, "play-1")
				So(err, ShouldBeNil)
				So(got, ShouldHaveLength, 2)
			})
		})
	})
}
