package util

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Common functions", func() {
	Describe("Deduplicate", func() {
		It("should keep first occurrence order", func() {
			Expect(Deduplicate([]string{"b", "a", "b", "c", "a"})).Should(Equal([]string{"b", "a", "c"}))
		})
		It("should pass through a slice without duplicates", func() {
			Expect(Deduplicate([]int{3, 1, 2})).Should(Equal([]int{3, 1, 2}))
		})
		It("should return an empty slice for empty input", func() {
			Expect(Deduplicate([]string{})).Should(BeEmpty())
		})
	})
})
