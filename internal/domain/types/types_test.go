package types_test

import (
	"testing"

	"github.com/revibe/mood-api/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func TestPriority_Rank(t *testing.T) {
	Convey("Given the declared priorities", t, func() {
		Convey("Then High should rank before Medium before Low", func() {
			So(types.PriorityHigh.Rank(), ShouldBeLessThan, types.PriorityMedium.Rank())
			So(types.PriorityMedium.Rank(), ShouldBeLessThan, types.PriorityLow.Rank())
		})

		Convey("And unknown priorities should rank last", func() {
			So(types.Priority("Urgent").Rank(), ShouldBeGreaterThan, types.PriorityLow.Rank())
		})
	})
}
