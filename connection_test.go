package paging_test

import (
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nrfta/relay-paging"
)

// Mock database models
type DBArtist struct {
	ID   string
	Name string
}

// Mock domain models
type DomainArtist struct {
	ID          string
	DisplayName string
}

func artistID(a DBArtist) string { return a.ID }

func dbArtists(ids ...string) []DBArtist {
	artists := make([]DBArtist, len(ids))
	for i, id := range ids {
		artists[i] = DBArtist{ID: id, Name: "Artist " + id}
	}
	return artists
}

var _ = Describe("Connection and Edge", func() {
	Describe("BuildConnection", func() {
		It("should build a connection with edges and nodes", func() {
			records := dbArtists("1", "2", "3")
			pageInfo := paging.PageInfo{HasNextPage: true}

			transform := func(db DBArtist) (*DomainArtist, error) {
				return &DomainArtist{ID: "artist-" + db.ID, DisplayName: db.Name}, nil
			}
			cursorEncoder := func(i int, db DBArtist) string {
				return fmt.Sprintf("cursor:%s", db.ID)
			}

			conn, err := paging.BuildConnection(records, pageInfo, cursorEncoder, transform)

			Expect(err).ToNot(HaveOccurred())
			Expect(conn.Nodes).To(HaveLen(3))
			Expect(conn.Nodes[0].ID).To(Equal("artist-1"))
			Expect(conn.Nodes[0].DisplayName).To(Equal("Artist 1"))
			Expect(conn.Edges).To(HaveLen(3))
			Expect(conn.Edges[0].Cursor).To(Equal("cursor:1"))
			Expect(conn.Edges[0].Node).To(Equal(conn.Nodes[0]))
			Expect(conn.Edges[2].Cursor).To(Equal("cursor:3"))
			Expect(conn.PageInfo.HasNextPage).To(BeTrue())
		})

		It("should handle empty result set", func() {
			conn, err := paging.BuildConnection(
				[]DBArtist{},
				paging.PageInfo{},
				func(i int, db DBArtist) string { return db.ID },
				func(db DBArtist) (DBArtist, error) { return db, nil },
			)

			Expect(err).ToNot(HaveOccurred())
			Expect(conn.Nodes).To(BeEmpty())
			Expect(conn.Edges).To(BeEmpty())
		})

		It("should propagate transform errors", func() {
			records := []DBArtist{{ID: "1", Name: "Alice"}, {ID: "2", Name: ""}}

			transform := func(db DBArtist) (*DomainArtist, error) {
				if db.Name == "" {
					return nil, fmt.Errorf("artist %s has no name", db.ID)
				}
				return &DomainArtist{ID: db.ID, DisplayName: db.Name}, nil
			}

			conn, err := paging.BuildConnection(records, paging.PageInfo{}, func(i int, db DBArtist) string { return db.ID }, transform)

			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("transform item at index 1"))
			Expect(err.Error()).To(ContainSubstring("has no name"))
			Expect(conn).To(BeNil())
		})
	})

	Describe("AssembleConnection", func() {
		It("should drop the peek record and report a next page", func() {
			args := paging.WithFirst(nil, 2)

			conn := paging.AssembleConnection(*args, dbArtists("a", "b", "c"), "artist", artistID)

			Expect(conn.PageInfo.HasNextPage).To(BeTrue())
			Expect(conn.Edges).To(HaveLen(2))
			Expect(conn.Nodes).To(Equal(dbArtists("a", "b")))
			Expect(conn.Edges[1].Node.ID).To(Equal("b"))
		})

		It("should keep every record when no peek record arrived", func() {
			args := paging.WithFirst(nil, 2)

			conn := paging.AssembleConnection(*args, dbArtists("a", "b"), "artist", artistID)

			Expect(conn.PageInfo.HasNextPage).To(BeFalse())
			Expect(conn.Edges).To(HaveLen(2))
		})

		It("should encode each edge cursor from the entity type and record id", func() {
			conn := paging.AssembleConnection(*paging.WithFirst(nil, 5), dbArtists("a", "b"), "artist", artistID)

			Expect(conn.Edges[0].Cursor).To(Equal(paging.EncodeCursor("artist", "a")))
			Expect(conn.Edges[1].Cursor).To(Equal(paging.EncodeCursor("artist", "b")))
			Expect(paging.DecodeCursor(conn.Edges[1].Cursor)).To(Equal("b"))
		})

		It("should fall back to the default cursor type", func() {
			conn := paging.AssembleConnection(paging.PageArgs{}, dbArtists("a"), "", artistID)

			Expect(conn.Edges[0].Cursor).To(Equal(paging.EncodeCursor(paging.DefaultCursorType, "a")))
		})

		It("should set start and end cursors from the first and last edge", func() {
			conn := paging.AssembleConnection(*paging.WithFirst(nil, 3), dbArtists("a", "b", "c"), "artist", artistID)

			Expect(conn.PageInfo.StartCursor).To(HaveValue(Equal(conn.Edges[0].Cursor)))
			Expect(conn.PageInfo.EndCursor).To(HaveValue(Equal(conn.Edges[2].Cursor)))
		})

		It("should leave start and end cursors nil without edges", func() {
			conn := paging.AssembleConnection(*paging.WithFirst(nil, 3), []DBArtist{}, "artist", artistID)

			Expect(conn.Edges).To(BeEmpty())
			Expect(conn.PageInfo.StartCursor).To(BeNil())
			Expect(conn.PageInfo.EndCursor).To(BeNil())
			Expect(conn.PageInfo.HasNextPage).To(BeFalse())
		})

		It("should report a previous page whenever after is supplied", func() {
			args := paging.WithAfter(paging.WithFirst(nil, 2), paging.EncodeCursor("artist", "a"))

			conn := paging.AssembleConnection(*args, dbArtists("b"), "artist", artistID)

			Expect(conn.PageInfo.HasPreviousPage).To(BeTrue())
		})

		It("should not report a previous page for backward pages", func() {
			args := paging.WithBefore(paging.WithLast(nil, 2), paging.EncodeCursor("artist", "d"))

			conn := paging.AssembleConnection(*args, dbArtists("b", "c"), "artist", artistID)

			Expect(conn.PageInfo.HasPreviousPage).To(BeFalse())
			Expect(conn.PageInfo.HasNextPage).To(BeFalse())
			Expect(conn.Edges).To(HaveLen(2))
		})

		It("should turn first: 0 into an empty page that still detects more data", func() {
			conn := paging.AssembleConnection(*paging.WithFirst(nil, 0), dbArtists("a"), "artist", artistID)

			Expect(conn.Edges).To(BeEmpty())
			Expect(conn.PageInfo.HasNextPage).To(BeTrue())
		})

		It("should transform records with AssembleConnectionAs", func() {
			conn, err := paging.AssembleConnectionAs(
				*paging.WithFirst(nil, 1),
				dbArtists("a", "b"),
				"artist",
				artistID,
				func(db DBArtist) (DomainArtist, error) {
					return DomainArtist{ID: db.ID, DisplayName: db.Name}, nil
				},
			)

			Expect(err).ToNot(HaveOccurred())
			Expect(conn.Nodes).To(Equal([]DomainArtist{{ID: "a", DisplayName: "Artist a"}}))
			Expect(conn.Edges[0].Cursor).To(Equal(paging.EncodeCursor("artist", "a")))
			Expect(conn.PageInfo.HasNextPage).To(BeTrue())
		})
	})
})
