package paging_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nrfta/relay-paging"
)

var _ = Describe("PageInfoResolver", func() {
	var (
		ctx      context.Context
		resolver paging.PageInfoResolver
	)

	BeforeEach(func() {
		ctx = context.Background()
		resolver = paging.NewPageInfoResolver()
	})

	It("resolves fields from an assembled page", func() {
		conn := paging.AssembleConnection(*paging.WithFirst(nil, 1), dbArtists("a", "b"), "artist", artistID)

		hasNextPage, err := resolver.HasNextPage(ctx, &conn.PageInfo)
		Expect(err).ToNot(HaveOccurred())
		Expect(hasNextPage).To(BeTrue())

		hasPreviousPage, _ := resolver.HasPreviousPage(ctx, &conn.PageInfo)
		Expect(hasPreviousPage).To(BeFalse())

		startCursor, _ := resolver.StartCursor(ctx, &conn.PageInfo)
		Expect(startCursor).To(HaveValue(Equal(paging.EncodeCursor("artist", "a"))))

		endCursor, _ := resolver.EndCursor(ctx, &conn.PageInfo)
		Expect(endCursor).To(Equal(startCursor))
	})

	It("resolves a nil page info like an empty one", func() {
		hasNextPage, _ := resolver.HasNextPage(ctx, nil)
		Expect(hasNextPage).To(BeFalse())

		endCursor, err := resolver.EndCursor(ctx, nil)
		Expect(err).ToNot(HaveOccurred())
		Expect(endCursor).To(BeNil())
	})
})

var _ = Describe("NewEmptyPageInfo", func() {
	It("creates a empty page info", func() {
		pageInfo := paging.NewEmptyPageInfo()

		Expect(pageInfo.HasNextPage).To(BeFalse())
		Expect(pageInfo.HasPreviousPage).To(BeFalse())
		Expect(pageInfo.StartCursor).To(BeNil())
		Expect(pageInfo.EndCursor).To(BeNil())
	})
})
