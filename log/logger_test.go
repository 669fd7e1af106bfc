package log

import (
	"github.com/sirupsen/logrus"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Logger", func() {
	Describe("ConfigureLogger", func() {
		When("a level is configured", func() {
			It("should be applied to the global logger", func() {
				ConfigureLogger(Config{Level: LevelDebug, Format: FormatTypeText})
				Expect(Log().GetLevel()).Should(Equal(logrus.DebugLevel))

				ConfigureLogger(Config{Level: LevelWarn, Format: FormatTypeText})
				Expect(Log().GetLevel()).Should(Equal(logrus.WarnLevel))
			})
		})
		When("json format is configured", func() {
			It("should use the json formatter", func() {
				ConfigureLogger(Config{Level: LevelInfo, Format: FormatTypeJson})
				Expect(Log().Formatter).Should(BeAssignableToTypeOf(&logrus.JSONFormatter{}))
			})
		})
	})

	Describe("EscapeInput", func() {
		It("should remove line breaks", func() {
			Expect(EscapeInput("evil\r\nname")).Should(Equal("evilname"))
		})
	})

	Describe("yaml unmarshalling", func() {
		It("should parse a level name", func() {
			var level Level
			err := level.UnmarshalYAML(func(v interface{}) error {
				*(v.(*string)) = "error"

				return nil
			})
			Expect(err).Should(Succeed())
			Expect(level).Should(Equal(LevelError))
		})
		It("should reject an unknown level name", func() {
			var level Level
			err := level.UnmarshalYAML(func(v interface{}) error {
				*(v.(*string)) = "shouting"

				return nil
			})
			Expect(err).Should(HaveOccurred())
		})
	})
})
