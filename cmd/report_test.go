package cmd

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/dnsvet/dnsvet/config"
	"github.com/dnsvet/dnsvet/helpertest"
	"github.com/dnsvet/dnsvet/model"
	"github.com/dnsvet/dnsvet/store"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Report command", func() {
	var tmpDir *helpertest.TmpFolder

	BeforeEach(func() {
		tmpDir = helpertest.NewTmpFolder("ReportCommand")
		Expect(tmpDir.Error).Should(Succeed())
		DeferCleanup(tmpDir.Clean)
	})

	Describe("requestedNames", func() {
		When("names are given as arguments", func() {
			It("should return them normalized in input order", func() {
				names, err := requestedNames("", []string{"Example.COM", "example.org."})

				Expect(err).Should(Succeed())
				Expect(names).Should(Equal([]model.DomainName{"example.com.", "example.org."}))
			})
		})

		When("names are given in a file", func() {
			It("should read them from the file", func() {
				namesFile := tmpDir.CreateStringFile("names.txt",
					"example.com",
					"# a comment",
					"",
					"example.org",
				)
				Expect(namesFile.Error).Should(Succeed())

				names, err := requestedNames(namesFile.Path, nil)

				Expect(err).Should(Succeed())
				Expect(names).Should(Equal([]model.DomainName{"example.com.", "example.org."}))
			})

			It("should fail with a fatal status if the file is unreadable", func() {
				_, err := requestedNames(tmpDir.JoinPath("nonexistent.txt"), nil)

				Expect(err).Should(HaveOccurred())

				var statusErr *statusError
				Expect(errors.As(err, &statusErr)).Should(BeTrue())
				Expect(statusErr.code).Should(Equal(ExitFatal))
			})
		})

		When("names are given both ways", func() {
			It("should fail with a usage error", func() {
				_, err := requestedNames("some-file", []string{"example.com"})

				Expect(err).Should(HaveOccurred())
				Expect(err.Error()).Should(ContainSubstring("not both"))
			})
		})

		When("no names are given", func() {
			It("should fail with a usage error", func() {
				_, err := requestedNames("", nil)

				Expect(err).Should(HaveOccurred())
				Expect(err.Error()).Should(ContainSubstring("no names given"))
			})
		})
	})

	Describe("loadAnchors", func() {
		When("no anchor file is configured", func() {
			It("should return an empty set", func() {
				anchorSet, err := loadAnchors("")

				Expect(err).Should(Succeed())
				Expect(anchorSet.IsEmpty()).Should(BeTrue())
			})
		})

		When("the anchor file is missing", func() {
			It("should return an error", func() {
				_, err := loadAnchors(tmpDir.JoinPath("nonexistent.anchors"))

				Expect(err).Should(HaveOccurred())
			})
		})
	})

	Describe("output destination", func() {
		BeforeEach(func() {
			cfg = &config.Config{
				Store: config.StoreConfig{
					Type:               config.StoreTypeSqlite,
					Target:             tmpDir.JoinPath("report.db"),
					ConnectionAttempts: 1,
				},
			}
		})

		When("the destination is unwritable", func() {
			It("should abort before any record is loaded", func() {
				c := NewReportCommand()
				Expect(c.Flags().Set("output", tmpDir.JoinPath("missing-dir", "report.json"))).Should(Succeed())

				err := runReport(c, []string{"example.com"})
				Expect(err).Should(HaveOccurred())

				var statusErr *statusError
				Expect(errors.As(err, &statusErr)).Should(BeTrue())
				Expect(statusErr.code).Should(Equal(ExitFatal))
				Expect(err.Error()).Should(ContainSubstring("output file"))

				// the store was never opened
				Expect(tmpDir.JoinPath("report.db")).ShouldNot(BeAnExistingFile())
			})
		})

		When("the destination is writable", func() {
			It("should write the document there", func() {
				seed, err := store.New(&cfg.Store)
				Expect(err).Should(Succeed())
				Expect(seed.Insert(context.Background(), &model.AnalysisRecord{
					Name:       "example.com.",
					AnalyzedAt: time.Now(),
				})).Should(Succeed())
				Expect(seed.Close()).Should(Succeed())

				path := tmpDir.JoinPath("report.json")

				c := NewReportCommand()
				Expect(c.Flags().Set("output", path)).Should(Succeed())

				Expect(runReport(c, []string{"example.com"})).Should(Succeed())

				data, err := os.ReadFile(path)
				Expect(err).Should(Succeed())
				Expect(string(data)).Should(ContainSubstring(`"example.com"`))
			})
		})
	})
})
