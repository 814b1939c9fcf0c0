package queue_test

import (
	"context"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/Reesemix123/the-coach-hub-sub008/internal/adapters/mq/queue"
	"github.com/Reesemix123/the-coach-hub-sub008/internal/domain/geometry"
	"github.com/Reesemix123/the-coach-hub-sub008/internal/domain/model"
)

func job(id string) queue.Job {
	return model.Assignment{
		AssignmentID: id,
		PlayID:       "play-1",
		Kind:         model.KindRoute,
		Path:         geometry.Path{{X: 350, Y: 400}, {X: 350, Y: 200}},
	}
}

func TestInMemoryQueue(t *testing.T) {
	Convey("Given a queue with capacity 2", t, func() {
		q := queue.NewInMemoryQueue(queue.WithCapacity(2))
		ctx := context.Background()

		Convey("When jobs are enqueued within capacity", func() {
			So(q.Enqueue(ctx, job("a")), ShouldBeTrue)
			So(q.Enqueue(ctx, job("b")), ShouldBeTrue)

			Convey("Then the length reflects the backlog", func() {
				So(q.Len(ctx), ShouldEqual, 2)
			})

			Convey("And when a third job arrives", func() {
				Convey("Then it is shed instead of blocking", func() {
					So(q.Enqueue(ctx, job("c")), ShouldBeFalse)
					So(q.Len(ctx), ShouldEqual, 2)
				})
			})

			Convey("And when jobs are dequeued", func() {
				first := <-q.Dequeue(ctx)
				second := <-q.Dequeue(ctx)

				Convey("Then they come out in FIFO order", func() {
					So(first.AssignmentID, ShouldEqual, "a")
					So(second.AssignmentID, ShouldEqual, "b")
					So(q.Len(ctx), ShouldEqual, 0)
				})
			})
		})

		Convey("When the queue is closed", func() {
			So(q.Enqueue(ctx, job("a")), ShouldBeTrue)
			So(q.Close(), ShouldBeNil)

			Convey("Then it reports closed", func() {
				So(q.IsClosed(), ShouldBeTrue)
			})

			Convey("Then new jobs are rejected", func() {
				So(q.Enqueue(ctx, job("b")), ShouldBeFalse)
			})

			Convey("Then buffered jobs still drain", func() {
				j, ok := <-q.Dequeue(ctx)
				So(ok, ShouldBeTrue)
				So(j.AssignmentID, ShouldEqual, "a")

				_, ok = <-q.Dequeue(ctx)
				So(ok, ShouldBeFalse)
			})

			Convey("Then closing again is an error", func() {
				So(q.Close(), ShouldEqual, queue.ErrClosed)
			})
		})
	})
}
