package sentiment_test

import (
	"testing"

	sentiment "github.com/revibe/mood-api/internal/domain/sentiment"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLexiconAnalyzer_Adjustment(t *testing.T) {
	Convey("Given an analyzer with the default lexicon", t, func() {
		a := sentiment.NewLexiconAnalyzer()

		Convey("When the text is neutral", func() {
			So(a.Adjustment("ok"), ShouldEqual, 0)
			So(a.Adjustment("went to work, came home"), ShouldEqual, 0)
			So(a.Adjustment(""), ShouldEqual, 0)
		})

		Convey("When the text is positive", func() {
			adj := a.Adjustment("a great and productive day")

			Convey("Then the adjustment should be positive", func() {
				So(adj, ShouldBeGreaterThan, 0)
			})
		})

		Convey("When the text is negative", func() {
			adj := a.Adjustment("terrible day, totally exhausted")

			Convey("Then the adjustment should be negative", func() {
				So(adj, ShouldBeLessThan, 0)
			})
		})

		Convey("When matching is case-insensitive and punctuation-tolerant", func() {
			So(a.Adjustment("GREAT!"), ShouldEqual, a.Adjustment("great"))
			So(a.Adjustment("great, wonderful."), ShouldEqual, a.Adjustment("great wonderful"))
		})

		Convey("When positive and negative words mix", func() {
			So(a.Adjustment("great but stressful"), ShouldEqual, 0)
		})

		Convey("When the text is overwhelmingly positive", func() {
			adj := a.Adjustment("great amazing wonderful happy fantastic excellent peaceful calm")

			Convey("Then the adjustment should clamp at the limit", func() {
				So(adj, ShouldEqual, 1.0)
			})
		})

		Convey("When the text is overwhelmingly negative", func() {
			adj := a.Adjustment("terrible awful horrible miserable sad angry anxious drained")

			Convey("Then the adjustment should clamp at the negative limit", func() {
				So(adj, ShouldEqual, -1.0)
			})
		})
	})
}

func TestLexiconAnalyzer_Options(t *testing.T) {
	Convey("Given an analyzer with a custom limit", t, func() {
		a := sentiment.NewLexiconAnalyzer(sentiment.WithLimit(0.5))

		Convey("When the text would exceed the limit", func() {
			adj := a.Adjustment("great amazing wonderful happy")

			Convey("Then the adjustment should clamp at the custom bound", func() {
				So(adj, ShouldEqual, 0.5)
			})
		})
	})

	Convey("Given an analyzer with a custom lexicon", t, func() {
		a := sentiment.NewLexiconAnalyzer(sentiment.WithLexicon(map[string]float64{
			"Sunny": 0.4,
		}))

		Convey("When only custom words appear", func() {
			Convey("Then custom words should match case-insensitively", func() {
				So(a.Adjustment("sunny outside"), ShouldEqual, 0.4)
			})

			Convey("And default lexicon words should no longer match", func() {
				So(a.Adjustment("great"), ShouldEqual, 0)
			})
		})
	})
}

func TestLexiconAnalyzer_Determinism(t *testing.T) {
	Convey("Given any text", t, func() {
		a := sentiment.NewLexiconAnalyzer()
		text := "a good day with some stressful moments"
		first := a.Adjustment(text)

		Convey("When analyzed repeatedly", func() {
			Convey("Then the result should never change", func() {
				for i := 0; i < 50; i++ {
					So(a.Adjustment(text), ShouldEqual, first)
				}
			})
		})
	})
}
